package service

import (
	"context"
	"fmt"
	"time"

	"trackflow/internal/broker"
	"trackflow/internal/models"
	"trackflow/internal/redisclient"
	"trackflow/internal/store"
	"trackflow/internal/util"

	"go.uber.org/zap"
)

// LeadService owns the lead lifecycle rules, including the Won-stage side
// effect that guarantees a won lead an order.
type LeadService struct {
	store  *store.Store
	cache  *redisclient.Client
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(store *store.Store, cache *redisclient.Client, events *broker.EventPublisher) *LeadService {
	return &LeadService{
		store:  store,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// LeadRequest carries the full lead field set. It is used for create and
// update alike: lead updates are full replacements, so any optional field
// left out of an update resets, and a missing stage falls back to New.
type LeadRequest struct {
	Name            string     `json:"name" binding:"required"`
	Contact         string     `json:"contact" binding:"required"`
	Company         string     `json:"company" binding:"required"`
	ProductInterest string     `json:"product_interest" binding:"required"`
	Stage           string     `json:"stage"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	Notes           *string    `json:"notes"`
}

// toLead resolves the stage default and maps the request onto a lead record
func (r *LeadRequest) toLead() (*models.Lead, error) {
	stage := r.Stage
	if stage == "" {
		stage = models.LeadStageNew
	}
	if !models.ValidLeadStage(stage) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}

	return &models.Lead{
		Name:            r.Name,
		Contact:         r.Contact,
		Company:         r.Company,
		ProductInterest: r.ProductInterest,
		Stage:           stage,
		FollowUpDate:    r.FollowUpDate,
		Notes:           r.Notes,
	}, nil
}

// CreateLead validates and inserts a lead. A lead created directly in stage
// Won gets a companion order in the same transaction.
func (s *LeadService) CreateLead(ctx context.Context, req *LeadRequest) (*models.Lead, error) {
	ctx, span := util.StartSpan(ctx, "LeadService.CreateLead")
	defer span.End()

	lead, err := req.toLead()
	if err != nil {
		return nil, err
	}

	order, err := s.store.CreateLead(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	util.LeadsCreatedTotal.Inc()
	s.logger.Info("Lead created",
		zap.Int64("lead_id", lead.ID),
		zap.String("stage", lead.Stage))

	if err := s.events.PublishLeadCreated(ctx, lead); err != nil {
		s.logger.Error("Failed to publish LeadCreated event", zap.Error(err))
	}

	s.recordAutoOrder(ctx, lead.ID, order)
	return lead, nil
}

// GetLead retrieves a lead, serving from the cache when possible
func (s *LeadService) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	ctx, span := util.StartSpan(ctx, "LeadService.GetLead")
	defer span.End()

	if cached, err := s.cache.GetCachedLead(ctx, id); err != nil {
		s.logger.Warn("Lead cache lookup failed", zap.Int64("lead_id", id), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	lead, err := s.store.GetLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheLead(ctx, lead); err != nil {
		s.logger.Warn("Failed to cache lead", zap.Int64("lead_id", id), zap.Error(err))
	}
	return lead, nil
}

// ListLeads retrieves all leads
func (s *LeadService) ListLeads(ctx context.Context) ([]models.Lead, error) {
	ctx, span := util.StartSpan(ctx, "LeadService.ListLeads")
	defer span.End()

	return s.store.GetLeads(ctx)
}

// UpdateLead replaces every field of an existing lead. If the new stage is
// Won and the lead has no orders, a companion order is created alongside.
func (s *LeadService) UpdateLead(ctx context.Context, id int64, req *LeadRequest) (*models.Lead, error) {
	ctx, span := util.StartSpan(ctx, "LeadService.UpdateLead")
	defer span.End()

	lead, err := req.toLead()
	if err != nil {
		return nil, err
	}

	order, err := s.store.UpdateLead(ctx, id, lead)
	if err != nil {
		return nil, err
	}

	s.invalidateLead(ctx, id)
	s.logger.Info("Lead updated",
		zap.Int64("lead_id", id),
		zap.String("stage", lead.Stage))

	if err := s.events.PublishLeadUpdated(ctx, lead); err != nil {
		s.logger.Error("Failed to publish LeadUpdated event", zap.Error(err))
	}

	s.recordAutoOrder(ctx, id, order)
	return lead, nil
}

// DeleteLead removes a lead and everything hanging off it
func (s *LeadService) DeleteLead(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "LeadService.DeleteLead")
	defer span.End()

	// Collect order ids first so their cache entries can be dropped once
	// the cascade has taken them out.
	orders, err := s.store.GetOrdersByLeadID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteLead(ctx, id); err != nil {
		return err
	}

	s.invalidateLead(ctx, id)
	for _, order := range orders {
		if err := s.cache.InvalidateOrder(ctx, order.ID); err != nil {
			s.logger.Warn("Failed to invalidate order cache", zap.Int64("order_id", order.ID), zap.Error(err))
		}
	}

	util.LeadsDeletedTotal.Inc()
	s.logger.Info("Lead deleted", zap.Int64("lead_id", id))

	if err := s.events.PublishLeadDeleted(ctx, id); err != nil {
		s.logger.Error("Failed to publish LeadDeleted event", zap.Error(err))
	}
	return nil
}

func (s *LeadService) recordAutoOrder(ctx context.Context, leadID int64, order *models.Order) {
	if order == nil {
		return
	}

	util.LeadsWonTotal.Inc()
	util.OrdersAutoCreatedTotal.Inc()
	s.logger.Info("Companion order created for won lead",
		zap.Int64("lead_id", leadID),
		zap.Int64("order_id", order.ID))

	if err := s.events.PublishLeadWon(ctx, leadID, order.ID); err != nil {
		s.logger.Error("Failed to publish LeadWon event", zap.Error(err))
	}
}

func (s *LeadService) invalidateLead(ctx context.Context, id int64) {
	if err := s.cache.InvalidateLead(ctx, id); err != nil {
		s.logger.Warn("Failed to invalidate lead cache", zap.Int64("lead_id", id), zap.Error(err))
	}
}
