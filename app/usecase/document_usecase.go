package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// BlogUsecase implements blog post operations. Blogs are pass-through
// documents; the only logic is rejecting empty patches.
type BlogUsecase struct {
	repo   port.DocumentRepository
	logger *slog.Logger
}

// NewBlogUsecase creates a new BlogUsecase instance
func NewBlogUsecase(repo port.DocumentRepository, logger *slog.Logger) *BlogUsecase {
	return &BlogUsecase{
		repo:   repo,
		logger: logger.With("component", "blog_usecase"),
	}
}

func (uc *BlogUsecase) Create(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error) {
	return uc.repo.Insert(ctx, doc)
}

func (uc *BlogUsecase) List(ctx context.Context) ([]*domain.StoredDocument, error) {
	return uc.repo.List(ctx)
}

func (uc *BlogUsecase) Update(ctx context.Context, id uuid.UUID, patch domain.Document) (*domain.StoredDocument, error) {
	if len(patch) == 0 {
		return nil, domain.ErrEmptyPatch
	}
	return uc.repo.Update(ctx, id, patch)
}

// Delete removes a blog post. Deleting an id that is already gone is not
// an error; the end state is the same.
func (uc *BlogUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := uc.repo.Delete(ctx, id)
	return err
}

// ProjectUsecase implements project operations. Projects are the one
// collection with required fields enforced on creation.
type ProjectUsecase struct {
	repo   port.DocumentRepository
	logger *slog.Logger
}

// NewProjectUsecase creates a new ProjectUsecase instance
func NewProjectUsecase(repo port.DocumentRepository, logger *slog.Logger) *ProjectUsecase {
	return &ProjectUsecase{
		repo:   repo,
		logger: logger.With("component", "project_usecase"),
	}
}

func (uc *ProjectUsecase) Create(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error) {
	if err := domain.ValidateProject(doc); err != nil {
		uc.logger.Warn("project rejected", "error", err)
		return nil, err
	}
	return uc.repo.Insert(ctx, doc)
}

func (uc *ProjectUsecase) List(ctx context.Context) ([]*domain.StoredDocument, error) {
	return uc.repo.List(ctx)
}

func (uc *ProjectUsecase) Update(ctx context.Context, id uuid.UUID, patch domain.Document) (*domain.StoredDocument, error) {
	if len(patch) == 0 {
		return nil, domain.ErrEmptyPatch
	}
	return uc.repo.Update(ctx, id, patch)
}

// Delete removes a project; a missing id is reported as not found.
func (uc *ProjectUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// MessageUsecase implements contact message operations. Submission is
// public; reading the inbox is not.
type MessageUsecase struct {
	repo   port.DocumentRepository
	logger *slog.Logger
}

// NewMessageUsecase creates a new MessageUsecase instance
func NewMessageUsecase(repo port.DocumentRepository, logger *slog.Logger) *MessageUsecase {
	return &MessageUsecase{
		repo:   repo,
		logger: logger.With("component", "message_usecase"),
	}
}

func (uc *MessageUsecase) Create(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error) {
	return uc.repo.Insert(ctx, doc)
}

func (uc *MessageUsecase) List(ctx context.Context) ([]*domain.StoredDocument, error) {
	return uc.repo.List(ctx)
}
