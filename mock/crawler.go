package mock

import (
	"context"

	"github.com/askweb/askweb"
)

var _ askweb.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of askweb.CrawlService.
type CrawlService struct {
	AvailableFn func() bool
	ScrapeFn    func(ctx context.Context, url string) (*askweb.ScrapeResult, error)
	CrawlFn     func(ctx context.Context, url string) ([]askweb.CrawlChunk, error)
}

func (s *CrawlService) Available() bool {
	if s.AvailableFn == nil {
		return true
	}
	return s.AvailableFn()
}

func (s *CrawlService) Scrape(ctx context.Context, url string) (*askweb.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}

func (s *CrawlService) Crawl(ctx context.Context, url string) ([]askweb.CrawlChunk, error) {
	return s.CrawlFn(ctx, url)
}
