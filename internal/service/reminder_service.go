package service

import (
	"context"
	"time"

	"trackflow/internal/models"
	"trackflow/internal/store"
	"trackflow/internal/util"

	"go.uber.org/zap"
)

// ReminderService owns the reminder lifecycle. Unlike orders, reminders do
// not verify their optional lead/order references at create time.
type ReminderService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(store *store.Store) *ReminderService {
	return &ReminderService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// CreateReminderRequest represents a request to create a reminder
type CreateReminderRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  *string    `json:"description"`
	ReminderDate *time.Time `json:"reminder_date" binding:"required"`
	IsCompleted  bool       `json:"is_completed"`
	LeadID       *int64     `json:"lead_id"`
	OrderID      *int64     `json:"order_id"`
}

// CreateReminder inserts a reminder
func (s *ReminderService) CreateReminder(ctx context.Context, req *CreateReminderRequest) (*models.Reminder, error) {
	ctx, span := util.StartSpan(ctx, "ReminderService.CreateReminder")
	defer span.End()

	reminder := &models.Reminder{
		Title:        req.Title,
		Description:  req.Description,
		ReminderDate: *req.ReminderDate,
		IsCompleted:  req.IsCompleted,
		LeadID:       req.LeadID,
		OrderID:      req.OrderID,
	}

	if err := s.store.CreateReminder(ctx, reminder); err != nil {
		return nil, err
	}

	util.RemindersCreatedTotal.Inc()
	s.logger.Info("Reminder created", zap.Int64("reminder_id", reminder.ID))
	return reminder, nil
}

// ListReminders retrieves all reminders
func (s *ReminderService) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	ctx, span := util.StartSpan(ctx, "ReminderService.ListReminders")
	defer span.End()

	return s.store.GetReminders(ctx)
}

// UpdateReminder applies a partial overwrite to a reminder
func (s *ReminderService) UpdateReminder(ctx context.Context, id int64, upd *models.ReminderUpdate) (*models.Reminder, error) {
	ctx, span := util.StartSpan(ctx, "ReminderService.UpdateReminder")
	defer span.End()

	reminder, err := s.store.UpdateReminder(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if marksCompleted(upd) {
		util.RemindersCompletedTotal.Inc()
	}

	s.logger.Info("Reminder updated", zap.Int64("reminder_id", id))
	return reminder, nil
}

// marksCompleted reports whether the update flips the reminder to done
func marksCompleted(upd *models.ReminderUpdate) bool {
	return upd.IsCompleted != nil && *upd.IsCompleted
}

// DeleteReminder removes a reminder
func (s *ReminderService) DeleteReminder(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "ReminderService.DeleteReminder")
	defer span.End()

	if err := s.store.DeleteReminder(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Reminder deleted", zap.Int64("reminder_id", id))
	return nil
}
