package firecrawl

import (
	"context"
	"strings"

	"github.com/askweb/askweb"
)

// Compile-time interface verification.
var (
	_ askweb.Stage = (*ReaderStage)(nil)
	_ askweb.Stage = (*ScrapeStage)(nil)
)

// ReaderStage is the richest extraction stage. In scrape mode it fetches a
// single page; in crawl mode it traverses linked pages and yields one
// candidate per page. Chunk text is normalized at the provider boundary
// (markdown, then plain text, then raw content).
type ReaderStage struct {
	crawler askweb.CrawlService
	mode    string
}

// NewReaderStage creates a ReaderStage. Unknown modes fall back to scrape.
func NewReaderStage(crawler askweb.CrawlService, mode string) *ReaderStage {
	if mode != askweb.ModeCrawl {
		mode = askweb.ModeScrape
	}
	return &ReaderStage{crawler: crawler, mode: mode}
}

// Name returns the stage identifier.
func (s *ReaderStage) Name() string { return "reader" }

// Extract produces one candidate per non-empty chunk the provider returns.
func (s *ReaderStage) Extract(ctx context.Context, url string) ([]askweb.Extraction, error) {
	var chunks []askweb.CrawlChunk

	if s.mode == askweb.ModeCrawl {
		var err error
		chunks, err = s.crawler.Crawl(ctx, url)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := s.crawler.Scrape(ctx, url)
		if err != nil {
			return nil, err
		}
		chunks = []askweb.CrawlChunk{{Markdown: res.Markdown, Plain: res.Text}}
	}

	var out []askweb.Extraction
	for _, chunk := range chunks {
		if text := strings.TrimSpace(chunk.Text()); text != "" {
			out = append(out, askweb.Extraction{Content: text, URL: url})
		}
	}
	return out, nil
}

// ScrapeStage is the fallback behind ReaderStage: a direct call to the
// provider's synchronous scrape endpoint, accepting markdown and falling
// back to plain text.
type ScrapeStage struct {
	crawler askweb.CrawlService
}

// NewScrapeStage creates a ScrapeStage.
func NewScrapeStage(crawler askweb.CrawlService) *ScrapeStage {
	return &ScrapeStage{crawler: crawler}
}

// Name returns the stage identifier.
func (s *ScrapeStage) Name() string { return "scrape" }

// Extract produces at most one candidate from a synchronous scrape.
func (s *ScrapeStage) Extract(ctx context.Context, url string) ([]askweb.Extraction, error) {
	res, err := s.crawler.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(res.Content())
	if text == "" {
		return nil, nil
	}
	return []askweb.Extraction{{Content: text, URL: url}}, nil
}
