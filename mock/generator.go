package mock

import (
	"context"

	"github.com/askweb/askweb"
)

var _ askweb.Generator = (*Generator)(nil)

// Generator is a mock implementation of askweb.Generator.
type Generator struct {
	GenerateFn       func(ctx context.Context, prompt string) (string, error)
	GenerateStreamFn func(ctx context.Context, prompt string, fn askweb.StreamFunc) error
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}

func (g *Generator) GenerateStream(ctx context.Context, prompt string, fn askweb.StreamFunc) error {
	if g.GenerateStreamFn != nil {
		return g.GenerateStreamFn(ctx, prompt, fn)
	}
	// Default: emit the blocking result as a single chunk.
	text, err := g.GenerateFn(ctx, prompt)
	if err != nil {
		return err
	}
	return fn(text)
}
