package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/askweb/askweb"
	main "github.com/askweb/askweb/cmd/askweb"
	"github.com/askweb/askweb/mock"
	"github.com/askweb/askweb/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_ScrapeThenStats(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><main><h1>Paris</h1><p>Paris is the capital of France.</p></main></body></html>`))
	}))
	defer srv.Close()

	dbPath := filepath.Join(t.TempDir(), "askweb.db")

	m := main.NewMain()
	m.DBPath = dbPath
	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"scrape", srv.URL}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Inserted 1 document(s).")

	m2 := main.NewMain()
	m2.DBPath = dbPath
	stdout2 := &bytes.Buffer{}
	err = m2.Run(context.Background(), []string{"stats"}, stdout2, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout2.String(), "Documents: 1")
}

func TestMain_StatsOnFreshDatabase(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "askweb.db")

	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"stats"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Documents: 0")
}

type builderFunc func(ctx context.Context) (askweb.Index, error)

func (f builderFunc) Build(ctx context.Context) (askweb.Index, error) { return f(ctx) }

func TestReindexCmd_Run(t *testing.T) {
	t.Parallel()

	idx := &mock.Index{
		LenFn:   func() int { return 5 },
		ModelFn: func() string { return "nomic-embed-text" },
	}
	cache := rag.NewCache(builderFunc(func(ctx context.Context) (askweb.Index, error) {
		return idx, nil
	}))

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Cache:  cache,
	}

	cmd := &main.ReindexCmd{}
	err := cmd.Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Indexed 5 document(s) with model nomic-embed-text.")
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Documents: &mock.DocumentService{
			CountDocumentsFn: func(ctx context.Context) (int, error) { return 12, nil },
		},
	}

	cmd := &main.StatsCmd{}
	err := cmd.Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Documents: 12")
}
