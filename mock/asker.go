package mock

import (
	"context"

	"github.com/askweb/askweb"
)

var _ askweb.Asker = (*Asker)(nil)

// Asker is a mock implementation of askweb.Asker.
type Asker struct {
	AskFn       func(ctx context.Context, question string) (string, error)
	AskStreamFn func(ctx context.Context, question string, fn askweb.StreamFunc) error
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}

func (a *Asker) AskStream(ctx context.Context, question string, fn askweb.StreamFunc) error {
	if a.AskStreamFn != nil {
		return a.AskStreamFn(ctx, question, fn)
	}
	answer, err := a.AskFn(ctx, question)
	if err != nil {
		return err
	}
	return fn(answer)
}
