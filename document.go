package askweb

import (
	"context"
	"time"
)

// Document represents one extracted piece of web content. A single scraped
// URL may produce several documents (crawl mode returns one per page), and
// scraping the same URL twice inserts two documents: there is no
// uniqueness constraint on URL, so re-scraping refreshes content by
// appending rather than replacing.
type Document struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentService represents a service for managing stored documents.
// Documents are append-only from the ingestion path's perspective.
type DocumentService interface {
	// CreateDocuments appends all documents in one atomic batch and returns
	// the number inserted. Either every document in the call becomes visible
	// or the call fails entirely.
	CreateDocuments(ctx context.Context, docs []*Document) (int, error)

	// CountDocuments returns the total number of stored documents.
	CountDocuments(ctx context.Context) (int, error)

	// AllDocuments returns every stored document. Used by the index builder,
	// which always rebuilds from the full corpus.
	AllDocuments(ctx context.Context) ([]*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
