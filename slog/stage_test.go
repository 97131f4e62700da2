package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/askweb/askweb"
	"github.com/askweb/askweb/mock"
	askwebslog "github.com/askweb/askweb/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStage_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs a successful extraction", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))
		stage := askwebslog.NewLoggingStage(&mock.Stage{
			NameFn: func() string { return "goquery" },
			ExtractFn: func(ctx context.Context, url string) ([]askweb.Extraction, error) {
				return []askweb.Extraction{{Content: "text", URL: url}}, nil
			},
		}, logger)

		candidates, err := stage.Extract(context.Background(), "https://example.com")
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "text", candidates[0].Content)

		out := buf.String()
		assert.Contains(t, out, "stage=goquery")
		assert.Contains(t, out, "candidates=1")
	})

	t.Run("logs a failed extraction and propagates the error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))
		stage := askwebslog.NewLoggingStage(&mock.Stage{
			NameFn: func() string { return "firecrawl-scrape" },
			ExtractFn: func(ctx context.Context, url string) ([]askweb.Extraction, error) {
				return nil, askweb.Errorf(askweb.EUNAVAILABLE, "connection refused")
			},
		}, logger)

		_, err := stage.Extract(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, askweb.EUNAVAILABLE, askweb.ErrorCode(err))
		assert.Contains(t, buf.String(), "extraction failed")
	})

	t.Run("delegates the stage name", func(t *testing.T) {
		t.Parallel()

		stage := askwebslog.NewLoggingStage(&mock.Stage{
			NameFn: func() string { return "reader" },
		}, stdslog.New(stdslog.DiscardHandler))
		assert.Equal(t, "reader", stage.Name())
	})
}
