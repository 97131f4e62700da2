package mock

import (
	"context"

	"github.com/askweb/askweb"
)

var _ askweb.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of askweb.DocumentService.
type DocumentService struct {
	CreateDocumentsFn func(ctx context.Context, docs []*askweb.Document) (int, error)
	CountDocumentsFn  func(ctx context.Context) (int, error)
	AllDocumentsFn    func(ctx context.Context) ([]*askweb.Document, error)
	FindDocumentsFn   func(ctx context.Context, filter askweb.DocumentFilter) ([]*askweb.Document, error)
}

func (s *DocumentService) CreateDocuments(ctx context.Context, docs []*askweb.Document) (int, error) {
	return s.CreateDocumentsFn(ctx, docs)
}

func (s *DocumentService) CountDocuments(ctx context.Context) (int, error) {
	return s.CountDocumentsFn(ctx)
}

func (s *DocumentService) AllDocuments(ctx context.Context) ([]*askweb.Document, error) {
	return s.AllDocumentsFn(ctx)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter askweb.DocumentFilter) ([]*askweb.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
