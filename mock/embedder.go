package mock

import (
	"context"

	"github.com/askweb/askweb"
)

var _ askweb.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of askweb.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
	ModelFn func() string
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

func (e *Embedder) Model() string {
	if e.ModelFn == nil {
		return "mock-embed"
	}
	return e.ModelFn()
}
