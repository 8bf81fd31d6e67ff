package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// DocumentRepository implements port.DocumentRepository for one JSONB
// table. Blogs, projects and messages each get their own instance; the
// table name comes from the typed collection constants, never from user
// input.
type DocumentRepository struct {
	db     DatabaseIface
	table  string
	logger *slog.Logger
}

// NewDocumentRepository creates a document repository bound to a collection
func NewDocumentRepository(db DatabaseIface, collection domain.Collection, logger *slog.Logger) port.DocumentRepository {
	return &DocumentRepository{
		db:     db,
		table:  string(collection),
		logger: logger.With("component", "document_repository", "collection", string(collection)),
	}
}

// Insert stores a new document and returns it with its assigned id
func (r *DocumentRepository) Insert(ctx context.Context, doc domain.Document) (*domain.StoredDocument, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING created_at, updated_at`, r.table)

	stored := &domain.StoredDocument{
		ID:       uuid.New(),
		Document: doc,
	}

	err := r.db.QueryRow(ctx, query, stored.ID, doc).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to insert document", "error", err)
		return nil, fmt.Errorf("failed to insert document into %s: %w", r.table, err)
	}

	r.logger.Info("document inserted", "id", stored.ID)
	return stored, nil
}

// List returns all documents in the collection, newest first
func (r *DocumentRepository) List(ctx context.Context) ([]*domain.StoredDocument, error) {
	query := fmt.Sprintf(`
		SELECT id, doc, created_at, updated_at
		FROM %s
		ORDER BY created_at DESC`, r.table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, fmt.Errorf("failed to list documents from %s: %w", r.table, err)
	}
	defer rows.Close()

	documents := make([]*domain.StoredDocument, 0)
	for rows.Next() {
		stored := &domain.StoredDocument{}
		if err := rows.Scan(&stored.ID, &stored.Document, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document from %s: %w", r.table, err)
		}
		documents = append(documents, stored)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents from %s: %w", r.table, err)
	}

	return documents, nil
}

// Update merges a partial patch into the stored document. Per-record
// ordering is provided by the store; the read and write are two round
// trips, which is acceptable for single-writer portfolio content.
func (r *DocumentRepository) Update(ctx context.Context, id uuid.UUID, patch domain.Document) (*domain.StoredDocument, error) {
	selectQuery := fmt.Sprintf(`SELECT doc, created_at FROM %s WHERE id = $1`, r.table)

	stored := &domain.StoredDocument{ID: id}
	var current domain.Document

	err := r.db.QueryRow(ctx, selectQuery, id).Scan(&current, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		r.logger.Error("failed to read document for update", "id", id, "error", err)
		return nil, fmt.Errorf("failed to read document from %s: %w", r.table, err)
	}

	stored.Document = current.Merge(patch)

	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET doc = $2, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`, r.table)

	err = r.db.QueryRow(ctx, updateQuery, id, stored.Document).Scan(&stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		r.logger.Error("failed to update document", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update document in %s: %w", r.table, err)
	}

	r.logger.Info("document updated", "id", id)
	return stored, nil
}

// Delete removes a document by id and reports how many rows went away
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete document", "id", id, "error", err)
		return 0, fmt.Errorf("failed to delete document from %s: %w", r.table, err)
	}

	deleted := result.RowsAffected()
	r.logger.Info("document delete executed", "id", id, "rows_affected", deleted)
	return deleted, nil
}
