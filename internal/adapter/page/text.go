package page

import (
	"strings"

	"golang.org/x/net/html"
)

// TextContent concatenates every descendant text node of node in document
// order. Whitespace is kept as parsed.
func TextContent(node *html.Node) string {
	if node == nil {
		return ""
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
		return
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}
