package askweb

import "context"

// IndexedDocument is a stored document enriched with its embedding vector
// and retrieval metadata. Indexed documents are constructed fresh on every
// index build and never patched incrementally.
type IndexedDocument struct {
	Content   string
	Embedding []float32
	Metadata  map[string]string // "source" carries the document URL when present
}

// Match is one retrieval result, ranked by similarity score (higher is
// more similar).
type Match struct {
	Document *IndexedDocument
	Score    float64
}

// Index supports nearest-neighbor retrieval over embedded documents. An
// index reflects exactly the document set it was built from; documents
// stored after the build are invisible until a rebuild.
type Index interface {
	// Search returns the k most similar documents to the query vector,
	// ordered by descending score. An empty index returns zero matches,
	// never an error.
	Search(ctx context.Context, vector []float32, k int) ([]Match, error)

	// Len returns the number of indexed documents.
	Len() int

	// Model returns the identifier of the embedding model the index was
	// built with.
	Model() string

	// Dimensions returns the embedding vector length, or 0 for an empty
	// index.
	Dimensions() int
}

// IndexSource builds or returns the current index. Implementations decide
// whether a call rebuilds from scratch or reuses a cached index.
type IndexSource interface {
	Index(ctx context.Context) (Index, error)
}
