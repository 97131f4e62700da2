// Package memindex provides an in-memory askweb.Index using exact
// brute-force cosine similarity. At the corpus sizes this service targets,
// a linear scan over pre-normalized vectors outperforms the constant
// factors of an approximate structure.
package memindex

import (
	"context"
	"math"
	"sort"

	"github.com/askweb/askweb"
)

// Ensure Index implements askweb.Index at compile time.
var _ askweb.Index = (*Index)(nil)

// Index holds embedded documents and answers nearest-neighbor queries.
// An Index is immutable after construction; rebuilds allocate a new one.
type Index struct {
	docs  []*askweb.IndexedDocument
	norms []float64
	model string
	dims  int
}

// New constructs an index over the given documents. The model identifies
// the embedding space the vectors were produced in; queries against the
// index must come from the same space. New accepts an empty document set
// and returns a valid index that matches nothing.
func New(model string, docs []*askweb.IndexedDocument) *Index {
	idx := &Index{
		docs:  docs,
		norms: make([]float64, len(docs)),
		model: model,
	}
	for i, doc := range docs {
		idx.norms[i] = norm(doc.Embedding)
		if idx.dims == 0 {
			idx.dims = len(doc.Embedding)
		}
	}
	return idx
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int { return len(idx.docs) }

// Model returns the embedding model identifier the index was built with.
func (idx *Index) Model() string { return idx.model }

// Dimensions returns the embedding vector length, or 0 for an empty index.
func (idx *Index) Dimensions() int { return idx.dims }

// Search returns the k most similar documents to the query vector, ordered
// by descending cosine similarity. An empty index returns zero matches.
func (idx *Index) Search(ctx context.Context, vector []float32, k int) ([]askweb.Match, error) {
	if k <= 0 || len(idx.docs) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	queryNorm := norm(vector)
	matches := make([]askweb.Match, 0, len(idx.docs))
	for i, doc := range idx.docs {
		matches = append(matches, askweb.Match{
			Document: doc,
			Score:    cosine(vector, doc.Embedding, queryNorm, idx.norms[i]),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// norm computes the L2 norm of a vector.
func norm(vec []float32) float64 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// cosine computes cosine similarity with pre-calculated L2 norms.
// Mismatched lengths and zero vectors score 0.
func cosine(a, b []float32, normA, normB float64) float64 {
	if len(a) != len(b) || normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (normA * normB)
}
