package store

import (
	"context"
	"database/sql"
	"fmt"

	"trackflow/internal/models"

	"github.com/jmoiron/sqlx"
)

// CreateLead inserts a lead. When the lead lands in stage Won a companion
// order with stage "Order Received" is inserted in the same transaction, so
// a Won lead is never committed without its order.
func (s *Store) CreateLead(ctx context.Context, lead *models.Lead) (*models.Order, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO leads (name, contact, company, product_interest, stage, follow_up_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowxContext(ctx, query,
		lead.Name, lead.Contact, lead.Company, lead.ProductInterest,
		lead.Stage, lead.FollowUpDate, lead.Notes,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert lead: %w", err)
	}

	var order *models.Order
	if lead.Stage == models.LeadStageWon {
		order, err = insertCompanionOrder(ctx, tx, lead.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}

// GetLeadByID retrieves a lead by ID
func (s *Store) GetLeadByID(ctx context.Context, id int64) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.GetContext(ctx, &lead, "SELECT * FROM leads WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lead %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetLeads retrieves all leads
func (s *Store) GetLeads(ctx context.Context) ([]models.Lead, error) {
	leads := []models.Lead{}
	err := s.db.SelectContext(ctx, &leads, "SELECT * FROM leads ORDER BY id")
	return leads, err
}

// UpdateLead replaces every field of the lead and refreshes updated_at.
// The lead row is locked for the duration of the transaction; if the new
// stage is Won and the lead has no orders yet, exactly one companion order
// is inserted before the lock is released. Returns the updated lead and the
// auto-created order, if any.
func (s *Store) UpdateLead(ctx context.Context, id int64, lead *models.Lead) (*models.Order, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var locked int64
	err = tx.GetContext(ctx, &locked, "SELECT id FROM leads WHERE id = $1 FOR UPDATE", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lead %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock lead: %w", err)
	}

	query := `
		UPDATE leads
		SET name = $1, contact = $2, company = $3, product_interest = $4,
		    stage = $5, follow_up_date = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowxContext(ctx, query,
		lead.Name, lead.Contact, lead.Company, lead.ProductInterest,
		lead.Stage, lead.FollowUpDate, lead.Notes, id,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	var order *models.Order
	if lead.Stage == models.LeadStageWon {
		var count int
		if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM orders WHERE lead_id = $1", id); err != nil {
			return nil, fmt.Errorf("failed to count orders: %w", err)
		}
		if count == 0 {
			order, err = insertCompanionOrder(ctx, tx, id)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteLead deletes a lead; dependent orders, documents and reminders go
// with it through the cascading foreign keys.
func (s *Store) DeleteLead(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM leads WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("lead %d: %w", id, ErrNotFound)
	}
	return nil
}

// LeadExists reports whether a lead row exists
func (s *Store) LeadExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM leads WHERE id = $1)", id)
	return exists, err
}

func insertCompanionOrder(ctx context.Context, tx *sqlx.Tx, leadID int64) (*models.Order, error) {
	order := &models.Order{LeadID: leadID, Stage: models.OrderStageReceived}

	err := tx.QueryRowxContext(ctx,
		`INSERT INTO orders (lead_id, stage) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		order.LeadID, order.Stage,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert companion order: %w", err)
	}
	return order, nil
}
