package askweb

import "context"

// Crawl modes supported by the crawling provider.
const (
	ModeScrape = "scrape" // fetch a single page
	ModeCrawl  = "crawl"  // traverse linked pages
)

// ScrapeResult holds the response of a synchronous scrape call.
type ScrapeResult struct {
	Markdown string
	Text     string
}

// Content returns the best available text: markdown, falling back to plain
// text. Returns "" when the scrape yielded nothing usable.
func (r *ScrapeResult) Content() string {
	if r == nil {
		return ""
	}
	if r.Markdown != "" {
		return r.Markdown
	}
	return r.Text
}

// CrawlChunk is one unit of content returned by a crawl. Different provider
// responses populate different fields; Text normalizes them at the boundary.
type CrawlChunk struct {
	Markdown   string
	Plain      string
	RawContent string
}

// Text returns the first non-empty candidate: markdown, plain text, then
// raw content. Returns "" when the chunk carries no usable text.
func (c CrawlChunk) Text() string {
	if c.Markdown != "" {
		return c.Markdown
	}
	if c.Plain != "" {
		return c.Plain
	}
	return c.RawContent
}

// CrawlService represents an external crawling provider.
type CrawlService interface {
	// Available reports whether the provider can be used. When false the
	// provider-backed extraction stages are disabled for the process.
	Available() bool

	// Scrape fetches a single page synchronously.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)

	// Crawl traverses the site starting at url and returns one chunk per
	// visited page.
	Crawl(ctx context.Context, url string) ([]CrawlChunk, error)
}
