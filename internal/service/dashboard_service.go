package service

import (
	"context"
	"math"
	"time"

	"trackflow/internal/models"
	"trackflow/internal/store"
	"trackflow/internal/util"

	"go.uber.org/zap"
)

// DashboardService computes the dashboard snapshot. Every call recomputes
// from current entity state; nothing is cached or maintained incrementally.
type DashboardService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *store.Store) *DashboardService {
	return &DashboardService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// GetStats computes a point-in-time dashboard snapshot
func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	ctx, span := util.StartSpan(ctx, "DashboardService.GetStats")
	defer span.End()

	stats := &models.DashboardStats{}
	var err error

	if stats.TotalLeads, err = s.store.CountLeads(ctx); err != nil {
		return nil, err
	}
	if stats.OpenLeads, err = s.store.CountOpenLeads(ctx); err != nil {
		return nil, err
	}
	if stats.WonLeads, err = s.store.CountLeadsInStage(ctx, models.LeadStageWon); err != nil {
		return nil, err
	}
	if stats.LostLeads, err = s.store.CountLeadsInStage(ctx, models.LeadStageLost); err != nil {
		return nil, err
	}

	stats.ConversionRate = conversionRate(stats.WonLeads, stats.TotalLeads)

	if stats.OrdersReceived, err = s.store.CountOrdersInStage(ctx, models.OrderStageReceived); err != nil {
		return nil, err
	}
	if stats.OrdersInDevelopment, err = s.store.CountOrdersInStage(ctx, models.OrderStageInDevelopment); err != nil {
		return nil, err
	}
	if stats.OrdersReadyToDispatch, err = s.store.CountOrdersInStage(ctx, models.OrderStageReadyToDispatch); err != nil {
		return nil, err
	}
	if stats.OrdersDispatched, err = s.store.CountOrdersInStage(ctx, models.OrderStageDispatched); err != nil {
		return nil, err
	}

	if stats.PendingReminders, err = s.store.CountPendingReminders(ctx, time.Now()); err != nil {
		return nil, err
	}

	util.DashboardQueriesTotal.Inc()
	return stats, nil
}

// conversionRate is won/total as a percentage, rounded to two decimals.
// Zero leads means a zero rate, not a division by zero.
func conversionRate(won, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(won) / float64(total) * 100
	return math.Round(rate*100) / 100
}
