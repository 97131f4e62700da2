package firecrawl_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/askweb/askweb/firecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Available(t *testing.T) {
	t.Parallel()

	assert.True(t, firecrawl.NewClient(firecrawl.Config{APIKey: "fc-test"}).Available())
	assert.False(t, firecrawl.NewClient(firecrawl.Config{}).Available())
}

func TestClient_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("returns markdown and text", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/scrape", r.URL.Path)
			assert.Equal(t, "Bearer fc-test", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "https://example.com", req["url"])

			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"markdown": "# Hello", "text": "Hello"},
			})
		}))
		defer srv.Close()

		client := firecrawl.NewClient(firecrawl.Config{APIKey: "fc-test", BaseURL: srv.URL})
		res, err := client.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "# Hello", res.Markdown)
		assert.Equal(t, "Hello", res.Text)
		assert.Equal(t, "# Hello", res.Content())
	})

	t.Run("surfaces provider errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error":"insufficient credits"}`))
		}))
		defer srv.Close()

		client := firecrawl.NewClient(firecrawl.Config{APIKey: "fc-test", BaseURL: srv.URL})
		_, err := client.Scrape(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 402")
	})
}

func TestClient_Crawl(t *testing.T) {
	t.Parallel()

	var polls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/crawl":
			json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "job-1"})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/crawl/job-1":
			if polls.Add(1) == 1 {
				json.NewEncoder(w).Encode(map[string]any{"status": "scraping"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"status": "completed",
				"data": []map[string]any{
					{"markdown": "page one"},
					{"text": "page two"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := firecrawl.NewClient(firecrawl.Config{APIKey: "fc-test", BaseURL: srv.URL})
	chunks, err := client.Crawl(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "page one", chunks[0].Text())
	assert.Equal(t, "page two", chunks[1].Text())
	assert.GreaterOrEqual(t, polls.Load(), int64(2), "job should be polled until completion")
}
