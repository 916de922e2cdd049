package store

import (
	"context"
	"time"

	"trackflow/internal/models"
)

// CountLeads returns the total number of leads
func (s *Store) CountLeads(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM leads")
	return count, err
}

// CountOpenLeads counts leads still moving through the pipeline, that is
// every lead not yet Won or Lost.
func (s *Store) CountOpenLeads(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM leads WHERE stage NOT IN ($1, $2)",
		models.LeadStageWon, models.LeadStageLost)
	return count, err
}

// CountLeadsInStage counts leads at a single pipeline stage
func (s *Store) CountLeadsInStage(ctx context.Context, stage string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM leads WHERE stage = $1", stage)
	return count, err
}

// CountOrdersInStage counts orders at a single pipeline stage
func (s *Store) CountOrdersInStage(ctx context.Context, stage string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM orders WHERE stage = $1", stage)
	return count, err
}

// CountPendingReminders counts reminders that are due at the given time and
// not yet completed.
func (s *Store) CountPendingReminders(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM reminders WHERE is_completed = FALSE AND reminder_date <= $1", now)
	return count, err
}
