package broker

import (
	"context"
	"fmt"
	"time"

	"trackflow/internal/models"

	"github.com/google/uuid"
)

// EventPublisher handles publishing CRM domain events. Publishing is
// fire-and-forget within a request: callers log failures and carry on.
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}

// PublishLeadCreated publishes a LEAD_CREATED event
func (ep *EventPublisher) PublishLeadCreated(ctx context.Context, lead *models.Lead) error {
	event := &models.LeadEvent{
		BaseEvent: newBaseEvent(models.EventTypeLeadCreated),
		LeadID:    lead.ID,
		Stage:     lead.Stage,
	}
	return ep.producer.PublishEvent(ctx, leadKey(lead.ID), event)
}

// PublishLeadUpdated publishes a LEAD_UPDATED event
func (ep *EventPublisher) PublishLeadUpdated(ctx context.Context, lead *models.Lead) error {
	event := &models.LeadEvent{
		BaseEvent: newBaseEvent(models.EventTypeLeadUpdated),
		LeadID:    lead.ID,
		Stage:     lead.Stage,
	}
	return ep.producer.PublishEvent(ctx, leadKey(lead.ID), event)
}

// PublishLeadDeleted publishes a LEAD_DELETED event
func (ep *EventPublisher) PublishLeadDeleted(ctx context.Context, leadID int64) error {
	event := &models.LeadEvent{
		BaseEvent: newBaseEvent(models.EventTypeLeadDeleted),
		LeadID:    leadID,
	}
	return ep.producer.PublishEvent(ctx, leadKey(leadID), event)
}

// PublishLeadWon publishes a LEAD_WON event carrying the auto-created order
func (ep *EventPublisher) PublishLeadWon(ctx context.Context, leadID, orderID int64) error {
	event := &models.LeadWonEvent{
		BaseEvent: newBaseEvent(models.EventTypeLeadWon),
		LeadID:    leadID,
		OrderID:   orderID,
	}
	return ep.producer.PublishEvent(ctx, leadKey(leadID), event)
}

// PublishOrderCreated publishes an ORDER_CREATED event
func (ep *EventPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	event := &models.OrderEvent{
		BaseEvent: newBaseEvent(models.EventTypeOrderCreated),
		OrderID:   order.ID,
		LeadID:    order.LeadID,
		Stage:     order.Stage,
	}
	return ep.producer.PublishEvent(ctx, orderKey(order.ID), event)
}

// PublishOrderUpdated publishes an ORDER_UPDATED event
func (ep *EventPublisher) PublishOrderUpdated(ctx context.Context, order *models.Order) error {
	event := &models.OrderEvent{
		BaseEvent: newBaseEvent(models.EventTypeOrderUpdated),
		OrderID:   order.ID,
		LeadID:    order.LeadID,
		Stage:     order.Stage,
	}
	return ep.producer.PublishEvent(ctx, orderKey(order.ID), event)
}

// PublishOrderDeleted publishes an ORDER_DELETED event
func (ep *EventPublisher) PublishOrderDeleted(ctx context.Context, orderID int64) error {
	event := &models.OrderEvent{
		BaseEvent: newBaseEvent(models.EventTypeOrderDeleted),
		OrderID:   orderID,
	}
	return ep.producer.PublishEvent(ctx, orderKey(orderID), event)
}

// PublishDocumentUploaded publishes a DOCUMENT_UPLOADED event
func (ep *EventPublisher) PublishDocumentUploaded(ctx context.Context, doc *models.Document, entityType string, entityID int64) error {
	event := &models.DocumentUploadedEvent{
		BaseEvent:  newBaseEvent(models.EventTypeDocumentUploaded),
		DocumentID: doc.ID,
		EntityType: entityType,
		EntityID:   entityID,
		Filename:   doc.Filename,
	}
	return ep.producer.PublishEvent(ctx, fmt.Sprintf("document-%d", doc.ID), event)
}

func leadKey(id int64) string {
	return fmt.Sprintf("lead-%d", id)
}

func orderKey(id int64) string {
	return fmt.Sprintf("order-%d", id)
}
