package store

import (
	"context"
	"database/sql"
	"fmt"

	"trackflow/internal/models"
)

// CreateReminder inserts a new reminder. Lead and order references are not
// existence-checked up front; a dangling reference is rejected by the
// schema's foreign keys and surfaces as ErrNotFound.
func (s *Store) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	query := `
		INSERT INTO reminders (title, description, reminder_date, is_completed, lead_id, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := s.db.QueryRowxContext(ctx, query,
		reminder.Title, reminder.Description, reminder.ReminderDate,
		reminder.IsCompleted, reminder.LeadID, reminder.OrderID,
	).Scan(&reminder.ID, &reminder.CreatedAt)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("referenced lead or order: %w", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

// GetReminders retrieves all reminders
func (s *Store) GetReminders(ctx context.Context) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	err := s.db.SelectContext(ctx, &reminders, "SELECT * FROM reminders ORDER BY id")
	return reminders, err
}

// UpdateReminder applies a partial overwrite; reminders carry no updated_at.
func (s *Store) UpdateReminder(ctx context.Context, id int64, upd *models.ReminderUpdate) (*models.Reminder, error) {
	query := `
		UPDATE reminders
		SET title         = COALESCE($1, title),
		    description   = COALESCE($2, description),
		    reminder_date = COALESCE($3, reminder_date),
		    is_completed  = COALESCE($4, is_completed)
		WHERE id = $5
		RETURNING *`

	var reminder models.Reminder
	err := s.db.QueryRowxContext(ctx, query,
		upd.Title, upd.Description, upd.ReminderDate, upd.IsCompleted, id,
	).StructScan(&reminder)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	return &reminder, nil
}

// DeleteReminder deletes a reminder
func (s *Store) DeleteReminder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	return nil
}
