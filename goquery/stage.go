// Package goquery provides the local HTML extraction stage: a plain HTTP
// GET plus CSS-selector text extraction. It is the last-ditch fallback for
// SPA shells and minimal HTML when the crawling provider yields nothing.
package goquery

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/askweb/askweb"
)

// DefaultTimeout bounds the HTTP GET. Matches the provider client's order
// of magnitude so a stuck origin cannot block an ingestion run.
const DefaultTimeout = 25 * time.Second

// userAgent is a browser-like UA; some origins serve empty shells to
// obvious bots.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64)"

// Ensure Stage implements askweb.Stage at compile time.
var _ askweb.Stage = (*Stage)(nil)

// Stage extracts visible text from a page over plain HTTP.
type Stage struct {
	client *http.Client
}

// Option configures a Stage.
type Option func(*Stage)

// WithTimeout sets the HTTP request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Stage) {
		s.client.Timeout = d
	}
}

// NewStage creates a new local extraction Stage.
func NewStage(opts ...Option) *Stage {
	s := &Stage{client: &http.Client{Timeout: DefaultTimeout}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stage identifier.
func (s *Stage) Name() string { return "local" }

// Extract fetches the URL and returns at most one candidate containing the
// page's visible text: script/style/noscript are stripped, a main/article
// region is preferred over the full body, and the text of headings,
// paragraphs, and list items is joined by newlines in document order.
func (s *Stage) Extract(ctx context.Context, url string) ([]askweb.Extraction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	text := ExtractText(doc)
	if text == "" {
		return nil, nil
	}
	return []askweb.Extraction{{Content: text, URL: url}}, nil
}

// ExtractText pulls the visible text out of a parsed page.
func ExtractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		root = doc.Selection
	}

	var parts []string
	root.Find("h1, h2, h3, h4, p, li").Each(func(_ int, sel *goquery.Selection) {
		if text := normalizeSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n")
}

// normalizeSpace collapses runs of whitespace into single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
