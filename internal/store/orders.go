package store

import (
	"context"
	"database/sql"
	"fmt"

	"trackflow/internal/models"
)

// CreateOrder inserts a new order
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (lead_id, stage, courier, tracking_number, dispatch_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRowxContext(ctx, query,
		order.LeadID, order.Stage, order.Courier, order.TrackingNumber,
		order.DispatchDate, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrders retrieves all orders
func (s *Store) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders, "SELECT * FROM orders ORDER BY id")
	return orders, err
}

// GetOrdersByLeadID retrieves all orders belonging to a lead
func (s *Store) GetOrdersByLeadID(ctx context.Context, leadID int64) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE lead_id = $1 ORDER BY id", leadID)
	return orders, err
}

// UpdateOrder applies a partial overwrite: nil fields keep their current
// values, supplied fields replace them. updated_at is always refreshed.
func (s *Store) UpdateOrder(ctx context.Context, id int64, upd *models.OrderUpdate) (*models.Order, error) {
	query := `
		UPDATE orders
		SET stage           = COALESCE($1, stage),
		    courier         = COALESCE($2, courier),
		    tracking_number = COALESCE($3, tracking_number),
		    dispatch_date   = COALESCE($4, dispatch_date),
		    notes           = COALESCE($5, notes),
		    updated_at      = NOW()
		WHERE id = $6
		RETURNING *`

	var order models.Order
	err := s.db.QueryRowxContext(ctx, query,
		upd.Stage, upd.Courier, upd.TrackingNumber, upd.DispatchDate, upd.Notes, id,
	).StructScan(&order)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &order, nil
}

// DeleteOrder deletes an order; its documents and reminders cascade away.
func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return nil
}

// OrderExists reports whether an order row exists
func (s *Store) OrderExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", id)
	return exists, err
}
