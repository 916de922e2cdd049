package store

import (
	"context"
	"database/sql"
	"fmt"

	"trackflow/internal/models"
)

// CreateDocument inserts a document row referencing a lead or an order
func (s *Store) CreateDocument(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (filename, file_path, lead_id, order_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at`

	err := s.db.QueryRowxContext(ctx, query,
		doc.Filename, doc.FilePath, doc.LeadID, doc.OrderID,
	).Scan(&doc.ID, &doc.UploadedAt)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("referenced lead or order: %w", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// GetDocumentByID retrieves a document by ID
func (s *Store) GetDocumentByID(ctx context.Context, id int64) (*models.Document, error) {
	var doc models.Document
	err := s.db.GetContext(ctx, &doc, "SELECT * FROM documents WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocumentsForEntity retrieves all documents attached to a lead or an
// order. An entity with no documents yields an empty slice, not an error.
func (s *Store) GetDocumentsForEntity(ctx context.Context, entityType string, entityID int64) ([]models.Document, error) {
	column := "lead_id"
	if entityType == models.EntityTypeOrder {
		column = "order_id"
	}

	docs := []models.Document{}
	query := fmt.Sprintf("SELECT * FROM documents WHERE %s = $1 ORDER BY id", column)
	err := s.db.SelectContext(ctx, &docs, query, entityID)
	return docs, err
}

// DeleteDocument deletes a document row
func (s *Store) DeleteDocument(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("document %d: %w", id, ErrNotFound)
	}
	return nil
}
