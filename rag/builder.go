// Package rag implements retrieval-augmented generation over the document
// store: index building, process-wide index caching, and question
// answering.
package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/askweb/askweb"
	"github.com/askweb/askweb/memindex"
)

// IndexBuilder builds a fresh index from the current document store state.
type IndexBuilder interface {
	Build(ctx context.Context) (askweb.Index, error)
}

// Ensure Builder implements IndexBuilder at compile time.
var _ IndexBuilder = (*Builder)(nil)

// Builder assembles a vector index from every stored document. Each call
// recomputes from scratch; there is no incremental update path. Callers
// needing freshness rebuild explicitly after ingestion.
type Builder struct {
	Documents askweb.DocumentService
	Embedder  askweb.Embedder
	Logger    *slog.Logger // optional
}

// Build scans the full document store, embeds every document with
// non-empty content, and returns a queryable index. Documents whose
// content is empty after trimming never reach the embedding model. An
// empty store produces a valid empty index, not an error.
func (b *Builder) Build(ctx context.Context) (askweb.Index, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	docs, err := b.Documents.AllDocuments(ctx)
	if err != nil {
		return nil, err
	}

	indexed := make([]*askweb.IndexedDocument, 0, len(docs))
	for _, doc := range docs {
		content := strings.TrimSpace(doc.Content)
		if content == "" {
			continue
		}

		vec, err := b.Embedder.Embed(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("embed document %s: %w", doc.ID, err)
		}

		var metadata map[string]string
		if doc.URL != "" {
			metadata = map[string]string{"source": doc.URL}
		}
		indexed = append(indexed, &askweb.IndexedDocument{
			Content:   content,
			Embedding: vec,
			Metadata:  metadata,
		})
	}

	logger.Info("index built", "documents", len(indexed), "skipped", len(docs)-len(indexed), "model", b.Embedder.Model())

	return memindex.New(b.Embedder.Model(), indexed), nil
}
