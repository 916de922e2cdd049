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

// OrderService owns the order lifecycle rules
type OrderService struct {
	store  *store.Store
	cache  *redisclient.Client
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store *store.Store, cache *redisclient.Client, events *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:  store,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	LeadID         int64      `json:"lead_id" binding:"required"`
	Stage          string     `json:"stage"`
	Courier        *string    `json:"courier"`
	TrackingNumber *string    `json:"tracking_number"`
	DispatchDate   *time.Time `json:"dispatch_date"`
	Notes          *string    `json:"notes"`
}

// CreateOrder inserts an order after verifying its lead exists
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.CreateOrder")
	defer span.End()

	stage := req.Stage
	if stage == "" {
		stage = models.OrderStageReceived
	}
	if !models.ValidOrderStage(stage) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}

	exists, err := s.store.LeadExists(ctx, req.LeadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lead %d: %w", req.LeadID, store.ErrNotFound)
	}

	order := &models.Order{
		LeadID:         req.LeadID,
		Stage:          stage,
		Courier:        req.Courier,
		TrackingNumber: req.TrackingNumber,
		DispatchDate:   req.DispatchDate,
		Notes:          req.Notes,
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	util.OrdersCreatedTotal.Inc()
	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("lead_id", order.LeadID))

	if err := s.events.PublishOrderCreated(ctx, order); err != nil {
		s.logger.Error("Failed to publish OrderCreated event", zap.Error(err))
	}
	return order, nil
}

// GetOrder retrieves an order, serving from the cache when possible
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.GetOrder")
	defer span.End()

	if cached, err := s.cache.GetCachedOrder(ctx, id); err != nil {
		s.logger.Warn("Order cache lookup failed", zap.Int64("order_id", id), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	order, err := s.store.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheOrder(ctx, order); err != nil {
		s.logger.Warn("Failed to cache order", zap.Int64("order_id", id), zap.Error(err))
	}
	return order, nil
}

// ListOrders retrieves all orders
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.ListOrders")
	defer span.End()

	return s.store.GetOrders(ctx)
}

// UpdateOrder applies a partial overwrite to an order
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, upd *models.OrderUpdate) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.UpdateOrder")
	defer span.End()

	if upd.Stage != nil && !models.ValidOrderStage(*upd.Stage) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, *upd.Stage)
	}

	order, err := s.store.UpdateOrder(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.invalidateOrder(ctx, id)
	s.logger.Info("Order updated",
		zap.Int64("order_id", id),
		zap.String("stage", order.Stage))

	if err := s.events.PublishOrderUpdated(ctx, order); err != nil {
		s.logger.Error("Failed to publish OrderUpdated event", zap.Error(err))
	}
	return order, nil
}

// DeleteOrder removes an order and its dependent documents and reminders
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "OrderService.DeleteOrder")
	defer span.End()

	if err := s.store.DeleteOrder(ctx, id); err != nil {
		return err
	}

	s.invalidateOrder(ctx, id)
	s.logger.Info("Order deleted", zap.Int64("order_id", id))

	if err := s.events.PublishOrderDeleted(ctx, id); err != nil {
		s.logger.Error("Failed to publish OrderDeleted event", zap.Error(err))
	}
	return nil
}

func (s *OrderService) invalidateOrder(ctx context.Context, id int64) {
	if err := s.cache.InvalidateOrder(ctx, id); err != nil {
		s.logger.Warn("Failed to invalidate order cache", zap.Int64("order_id", id), zap.Error(err))
	}
}
