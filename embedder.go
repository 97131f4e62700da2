package askweb

import "context"

// Embedder computes fixed-length vector representations of text. The same
// embedder instance must be used both to build an index and to embed
// queries against it; mismatched embedding spaces are a configuration
// fault, not a recoverable condition.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Model returns the embedding model identifier (e.g., "nomic-embed-text").
	Model() string
}
