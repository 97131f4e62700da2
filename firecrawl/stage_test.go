package firecrawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/askweb/askweb"
	"github.com/askweb/askweb/firecrawl"
	"github.com/askweb/askweb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderStage_ScrapeMode(t *testing.T) {
	t.Parallel()

	crawler := &mock.CrawlService{
		ScrapeFn: func(_ context.Context, url string) (*askweb.ScrapeResult, error) {
			return &askweb.ScrapeResult{Markdown: "# Page", Text: "Page"}, nil
		},
	}
	stage := firecrawl.NewReaderStage(crawler, askweb.ModeScrape)

	got, err := stage.Extract(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "# Page", got[0].Content)
	assert.Equal(t, "https://example.com", got[0].URL)
}

func TestReaderStage_CrawlMode(t *testing.T) {
	t.Parallel()

	t.Run("one candidate per non-empty chunk", func(t *testing.T) {
		t.Parallel()

		crawler := &mock.CrawlService{
			CrawlFn: func(_ context.Context, url string) ([]askweb.CrawlChunk, error) {
				return []askweb.CrawlChunk{
					{Markdown: "first"},
					{Plain: "second"},
					{},                        // nothing extractable
					{RawContent: "  third  "}, // generic accessor, trimmed
				}, nil
			},
		}
		stage := firecrawl.NewReaderStage(crawler, askweb.ModeCrawl)

		got, err := stage.Extract(context.Background(), "https://example.com")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "first", got[0].Content)
		assert.Equal(t, "second", got[1].Content)
		assert.Equal(t, "third", got[2].Content)
	})

	t.Run("markdown preferred over plain text and raw content", func(t *testing.T) {
		t.Parallel()

		chunk := askweb.CrawlChunk{Markdown: "md", Plain: "plain", RawContent: "raw"}
		assert.Equal(t, "md", chunk.Text())

		chunk.Markdown = ""
		assert.Equal(t, "plain", chunk.Text())

		chunk.Plain = ""
		assert.Equal(t, "raw", chunk.Text())
	})
}

func TestReaderStage_UnknownModeFallsBackToScrape(t *testing.T) {
	t.Parallel()

	scraped := false
	crawler := &mock.CrawlService{
		ScrapeFn: func(_ context.Context, _ string) (*askweb.ScrapeResult, error) {
			scraped = true
			return &askweb.ScrapeResult{Text: "hi"}, nil
		},
	}
	stage := firecrawl.NewReaderStage(crawler, "bogus")

	_, err := stage.Extract(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.True(t, scraped)
}

func TestScrapeStage(t *testing.T) {
	t.Parallel()

	t.Run("accepts markdown, falls back to text", func(t *testing.T) {
		t.Parallel()

		crawler := &mock.CrawlService{
			ScrapeFn: func(_ context.Context, _ string) (*askweb.ScrapeResult, error) {
				return &askweb.ScrapeResult{Text: "plain only"}, nil
			},
		}
		stage := firecrawl.NewScrapeStage(crawler)

		got, err := stage.Extract(context.Background(), "https://example.com")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "plain only", got[0].Content)
	})

	t.Run("empty response yields no candidates", func(t *testing.T) {
		t.Parallel()

		crawler := &mock.CrawlService{
			ScrapeFn: func(_ context.Context, _ string) (*askweb.ScrapeResult, error) {
				return &askweb.ScrapeResult{}, nil
			},
		}
		stage := firecrawl.NewScrapeStage(crawler)

		got, err := stage.Extract(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("provider errors propagate to the pipeline", func(t *testing.T) {
		t.Parallel()

		crawler := &mock.CrawlService{
			ScrapeFn: func(_ context.Context, _ string) (*askweb.ScrapeResult, error) {
				return nil, errors.New("provider down")
			},
		}
		stage := firecrawl.NewScrapeStage(crawler)

		_, err := stage.Extract(context.Background(), "https://example.com")
		assert.Error(t, err)
	})
}
