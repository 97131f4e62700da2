// Package scrape orchestrates the ingestion pipeline: URL normalization,
// the ordered extraction fallback chain, and document persistence.
package scrape

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/askweb/askweb"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency bounds the number of URLs processed at once.
const DefaultConcurrency = 4

// Pipeline scrapes URLs and stores the extracted documents.
//
// Stages are attempted in order per URL; the pipeline commits to the first
// stage that yields any non-empty candidate. Stage errors are recovered
// locally (logged, treated as "no result"); store errors abort the run.
type Pipeline struct {
	Stages      []askweb.Stage
	Documents   askweb.DocumentService
	Limiter     *rate.Limiter // optional, bounds outbound scraping
	Logger      *slog.Logger  // optional
	Concurrency int
}

// Run normalizes the raw inputs and scrapes each resulting URL. It returns
// the number of documents actually persisted, which can be lower than the
// URL count (URLs where every stage misses contribute zero documents) or
// higher (crawl mode yields several documents per URL).
func (p *Pipeline) Run(ctx context.Context, inputs []string) (int, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var inserted atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for url := range askweb.NormalizeURLs(inputs) {
		g.Go(func() error {
			if p.Limiter != nil {
				if err := p.Limiter.Wait(ctx); err != nil {
					return err
				}
			}

			docs := p.extract(ctx, url, logger)
			if len(docs) == 0 {
				logger.Info("nothing extracted", "url", url)
				return nil
			}

			n, err := p.Documents.CreateDocuments(ctx, docs)
			if err != nil {
				return err
			}
			inserted.Add(int64(n))
			logger.Info("documents stored", "url", url, "count", n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(inserted.Load()), err
	}
	return int(inserted.Load()), nil
}

// extract runs the fallback chain for one URL and returns the candidate
// documents from the first stage that produced any.
func (p *Pipeline) extract(ctx context.Context, url string, logger *slog.Logger) []*askweb.Document {
	for _, stage := range p.Stages {
		candidates, err := stage.Extract(ctx, url)
		if err != nil {
			logger.Warn("extraction stage failed", "stage", stage.Name(), "url", url, "error", err)
			continue
		}
		if len(candidates) == 0 {
			continue
		}

		logger.Debug("extraction stage succeeded", "stage", stage.Name(), "url", url, "candidates", len(candidates))

		docs := make([]*askweb.Document, 0, len(candidates))
		for _, c := range candidates {
			docs = append(docs, &askweb.Document{Content: c.Content, URL: c.URL})
		}
		return docs
	}
	return nil
}
