package rag_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/askweb/askweb"
	"github.com/askweb/askweb/memindex"
	"github.com/askweb/askweb/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowBuilder counts builds and blocks until released, so tests can pile
// up concurrent callers behind one in-flight build.
type slowBuilder struct {
	builds  atomic.Int64
	release chan struct{}
	err     error
}

func (b *slowBuilder) Build(ctx context.Context) (askweb.Index, error) {
	b.builds.Add(1)
	if b.release != nil {
		<-b.release
	}
	if b.err != nil {
		return nil, b.err
	}
	return memindex.New("test-model", nil), nil
}

func TestCache_ConcurrentFirstUseBuildsOnce(t *testing.T) {
	t.Parallel()

	builder := &slowBuilder{release: make(chan struct{})}
	cache := rag.NewCache(builder)

	const callers = 10
	var wg sync.WaitGroup
	results := make([]askweb.Index, callers)
	errs := make([]error, callers)

	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = cache.Index(context.Background())
		}()
	}

	close(builder.release)
	wg.Wait()

	assert.Equal(t, int64(1), builder.builds.Load(), "concurrent first-time callers must share one build")
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i], "all callers must receive the same index")
	}
}

func TestCache_SecondCallReusesIndex(t *testing.T) {
	t.Parallel()

	builder := &slowBuilder{}
	cache := rag.NewCache(builder)

	first, err := cache.Index(context.Background())
	require.NoError(t, err)

	second, err := cache.Index(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), builder.builds.Load())
}

func TestCache_RebuildSwapsIndex(t *testing.T) {
	t.Parallel()

	builder := &slowBuilder{}
	cache := rag.NewCache(builder)

	first, err := cache.Index(context.Background())
	require.NoError(t, err)

	rebuilt, err := cache.Rebuild(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, rebuilt)
	assert.Equal(t, int64(2), builder.builds.Load())

	current, err := cache.Index(context.Background())
	require.NoError(t, err)
	assert.Same(t, rebuilt, current, "readers must see the swapped index")
}

func TestCache_FailedBuildIsNotCached(t *testing.T) {
	t.Parallel()

	builder := &slowBuilder{err: errors.New("embedder down")}
	cache := rag.NewCache(builder)

	_, err := cache.Index(context.Background())
	require.Error(t, err)

	builder.err = nil
	idx, err := cache.Index(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, idx)
	assert.Equal(t, int64(2), builder.builds.Load(), "a failed build must not poison the cache")
}
