package port

//go:generate mockgen -source=document_port.go -destination=../mocks/mock_document_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"portfolio-api/app/domain"
)

// DocumentRepository defines persistence for one document collection.
// Operations are straight pass-throughs to the store; the store is the
// sole serialization point for concurrent writes.
type DocumentRepository interface {
	Insert(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error)
	List(ctx context.Context) ([]*domain.StoredDocument, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Document) (*domain.StoredDocument, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// BlogUsecase defines blog post operations
type BlogUsecase interface {
	Create(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error)
	List(ctx context.Context) ([]*domain.StoredDocument, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Document) (*domain.StoredDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectUsecase defines project operations
type ProjectUsecase interface {
	Create(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error)
	List(ctx context.Context) ([]*domain.StoredDocument, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Document) (*domain.StoredDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageUsecase defines contact message operations
type MessageUsecase interface {
	Create(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error)
	List(ctx context.Context) ([]*domain.StoredDocument, error)
}
