// Package firecrawl provides a crawling provider client and the
// provider-backed extraction stages.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/askweb/askweb"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.firecrawl.dev"
	DefaultTimeout = 30 * time.Second

	// crawlPollInterval is how often an in-flight crawl job is polled.
	crawlPollInterval = 2 * time.Second
)

// Ensure Client implements askweb.CrawlService at compile time.
var _ askweb.CrawlService = (*Client)(nil)

// Config holds configuration for the Firecrawl client.
type Config struct {
	// APIKey authorizes requests. An empty key marks the provider as
	// unavailable and disables the provider-backed extraction stages.
	APIKey string

	// BaseURL is the API base URL (default: https://api.firecrawl.dev).
	BaseURL string

	// Timeout bounds each HTTP request (default: 30s).
	Timeout time.Duration
}

// Client talks to the Firecrawl REST API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a new Client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// Available reports whether the provider can be used.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// scrapeRequest is the /v1/scrape request format.
type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

// scrapeData is the content payload shared by scrape and crawl responses.
type scrapeData struct {
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
	RawHTML  string `json:"rawHtml"`
}

// scrapeResponse is the /v1/scrape response format.
type scrapeResponse struct {
	Success bool       `json:"success"`
	Data    scrapeData `json:"data"`
	Error   string     `json:"error"`
}

// Scrape fetches a single page synchronously.
func (c *Client) Scrape(ctx context.Context, url string) (*askweb.ScrapeResult, error) {
	var resp scrapeResponse
	if err := c.post(ctx, "/v1/scrape", scrapeRequest{
		URL:     url,
		Formats: []string{"markdown", "text"},
	}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("firecrawl scrape failed: %s", resp.Error)
	}
	return &askweb.ScrapeResult{Markdown: resp.Data.Markdown, Text: resp.Data.Text}, nil
}

// crawlRequest is the /v1/crawl request format.
type crawlRequest struct {
	URL           string         `json:"url"`
	ScrapeOptions *scrapeOptions `json:"scrapeOptions,omitempty"`
}

type scrapeOptions struct {
	Formats []string `json:"formats"`
}

// crawlStartResponse is the /v1/crawl response format. Crawls are
// asynchronous: the job ID is polled until completion.
type crawlStartResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// crawlStatusResponse is the /v1/crawl/{id} response format.
type crawlStatusResponse struct {
	Status string       `json:"status"`
	Data   []scrapeData `json:"data"`
	Error  string       `json:"error"`
}

// Crawl traverses the site starting at url and returns one chunk per
// visited page. Blocks until the crawl job completes or ctx expires.
func (c *Client) Crawl(ctx context.Context, url string) ([]askweb.CrawlChunk, error) {
	var start crawlStartResponse
	if err := c.post(ctx, "/v1/crawl", crawlRequest{
		URL:           url,
		ScrapeOptions: &scrapeOptions{Formats: []string{"markdown", "text"}},
	}, &start); err != nil {
		return nil, err
	}
	if !start.Success || start.ID == "" {
		return nil, fmt.Errorf("firecrawl crawl failed: %s", start.Error)
	}

	ticker := time.NewTicker(crawlPollInterval)
	defer ticker.Stop()

	for {
		var status crawlStatusResponse
		if err := c.get(ctx, "/v1/crawl/"+start.ID, &status); err != nil {
			return nil, err
		}

		switch status.Status {
		case "completed":
			chunks := make([]askweb.CrawlChunk, 0, len(status.Data))
			for _, d := range status.Data {
				chunks = append(chunks, askweb.CrawlChunk{
					Markdown:   d.Markdown,
					Plain:      d.Text,
					RawContent: d.RawHTML,
				})
			}
			return chunks, nil
		case "failed":
			return nil, fmt.Errorf("firecrawl crawl job failed: %s", status.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return fmt.Errorf("firecrawl error (status %d): failed to read response", resp.StatusCode)
		}
		return fmt.Errorf("firecrawl error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
