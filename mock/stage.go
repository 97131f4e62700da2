package mock

import (
	"context"

	"github.com/askweb/askweb"
)

var _ askweb.Stage = (*Stage)(nil)

// Stage is a mock implementation of askweb.Stage.
type Stage struct {
	NameFn    func() string
	ExtractFn func(ctx context.Context, url string) ([]askweb.Extraction, error)
}

func (s *Stage) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *Stage) Extract(ctx context.Context, url string) ([]askweb.Extraction, error) {
	return s.ExtractFn(ctx, url)
}
