package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/askweb/askweb"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ askweb.DocumentService = (*DocumentService)(nil)

// DocumentService implements askweb.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string. The hash
// is informational (it lets operators spot identical re-scrapes); it does
// not enforce uniqueness.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateDocuments appends all documents in one transaction and returns the
// inserted count. On failure no document from the batch is visible.
func (s *DocumentService) CreateDocuments(ctx context.Context, docs []*askweb.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, askweb.WrapError(err, askweb.EUNAVAILABLE, "document store unreachable")
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, doc := range docs {
		doc.ID = uuid.New().String()
		doc.CreatedAt = now
		doc.ContentHash = hashContent(doc.Content)

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (id, content, url, content_hash, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, doc.ID, doc.Content, doc.URL, doc.ContentHash, doc.CreatedAt.Format(time.RFC3339)); err != nil {
			return 0, askweb.WrapError(err, askweb.EUNAVAILABLE, "document insert failed")
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, askweb.WrapError(err, askweb.EUNAVAILABLE, "document insert failed")
	}

	return len(docs), nil
}

// CountDocuments returns the total number of stored documents.
func (s *DocumentService) CountDocuments(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n)
	if err != nil {
		return 0, askweb.WrapError(err, askweb.EUNAVAILABLE, "document store unreachable")
	}
	return n, nil
}

// AllDocuments returns every stored document in insertion order.
func (s *DocumentService) AllDocuments(ctx context.Context) ([]*askweb.Document, error) {
	return s.FindDocuments(ctx, askweb.DocumentFilter{})
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter askweb.DocumentFilter) ([]*askweb.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, content, url, content_hash, created_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at ASC, id ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, askweb.WrapError(err, askweb.EUNAVAILABLE, "document store unreachable")
	}
	defer rows.Close()

	var docs []*askweb.Document
	for rows.Next() {
		var doc askweb.Document
		var createdAt string

		if err := rows.Scan(&doc.ID, &doc.Content, &doc.URL, &doc.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		var parseErr error
		doc.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
