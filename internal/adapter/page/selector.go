package page

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector group with querySelector semantics.
type Selector struct {
	raw string
	sel cascadia.Selector
}

// Compile parses expr into a Selector.
func Compile(expr string) (*Selector, error) {
	raw := strings.TrimSpace(expr)
	if raw == "" {
		return nil, fmt.Errorf("empty selector")
	}

	sel, err := cascadia.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", raw, err)
	}
	return &Selector{raw: raw, sel: sel}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Selector {
	s, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the selector source.
func (s *Selector) String() string {
	return s.raw
}

// First returns the first element under root, in document order, that matches s.
func (s *Selector) First(root *html.Node) *html.Node {
	if root == nil {
		return nil
	}
	return s.sel.MatchFirst(root)
}

// Match reports whether node matches s.
func (s *Selector) Match(node *html.Node) bool {
	return node != nil && s.sel.Match(node)
}
