package mock

import (
	"context"

	"github.com/askweb/askweb"
)

var (
	_ askweb.Index       = (*Index)(nil)
	_ askweb.IndexSource = (*IndexSource)(nil)
)

// Index is a mock implementation of askweb.Index.
type Index struct {
	SearchFn     func(ctx context.Context, vector []float32, k int) ([]askweb.Match, error)
	LenFn        func() int
	ModelFn      func() string
	DimensionsFn func() int
}

func (i *Index) Search(ctx context.Context, vector []float32, k int) ([]askweb.Match, error) {
	return i.SearchFn(ctx, vector, k)
}

func (i *Index) Len() int {
	if i.LenFn == nil {
		return 0
	}
	return i.LenFn()
}

func (i *Index) Model() string {
	if i.ModelFn == nil {
		return "mock-embed"
	}
	return i.ModelFn()
}

func (i *Index) Dimensions() int {
	if i.DimensionsFn == nil {
		return 0
	}
	return i.DimensionsFn()
}

// IndexSource is a mock implementation of askweb.IndexSource.
type IndexSource struct {
	IndexFn func(ctx context.Context) (askweb.Index, error)
}

func (s *IndexSource) Index(ctx context.Context) (askweb.Index, error) {
	return s.IndexFn(ctx)
}
