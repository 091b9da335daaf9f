package page

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/html"
)

// maxPageBytes caps how much of a page is read. Larger pages are rejected
// rather than parsed partially.
const maxPageBytes = 4 << 20

// Source loads the document the now-playing element lives in.
type Source interface {
	Load(ctx context.Context) (*html.Node, error)
}

// HTTPSource fetches the page over HTTP.
type HTTPSource struct {
	pageURL    string
	httpClient *http.Client
}

// NewHTTPSource builds a Source for pageURL.
func NewHTTPSource(pageURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		pageURL:    pageURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Load retrieves and parses the page.
func (s *HTTPSource) Load(ctx context.Context) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create page request: %w", err)
	}
	req.Header.Set("Accept", "text/html, application/xhtml+xml")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; NowPlayingLogger/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("page status %d: %s", resp.StatusCode, string(body))
	}

	doc, err := parseDocument(resp.Body, maxPageBytes)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

// FileSource reads the page from disk, or from stdin when path is "-".
type FileSource struct {
	path  string
	stdin io.Reader
}

// NewFileSource builds a Source for a saved page.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, stdin: os.Stdin}
}

// Load parses the file.
func (s *FileSource) Load(ctx context.Context) (*html.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.path == "-" {
		doc, err := parseDocument(s.stdin, maxPageBytes)
		if err != nil {
			return nil, fmt.Errorf("parse stdin page: %w", err)
		}
		return doc, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open page file: %w", err)
	}
	defer f.Close()

	doc, err := parseDocument(f, maxPageBytes)
	if err != nil {
		return nil, fmt.Errorf("parse page file: %w", err)
	}
	return doc, nil
}

func parseDocument(r io.Reader, limit int64) (*html.Node, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("page exceeds %d bytes", limit)
	}
	return html.Parse(bytes.NewReader(data))
}
