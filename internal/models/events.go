package models

import "time"

// Event types
const (
	EventTypeLeadCreated      = "LEAD_CREATED"
	EventTypeLeadUpdated      = "LEAD_UPDATED"
	EventTypeLeadDeleted      = "LEAD_DELETED"
	EventTypeLeadWon          = "LEAD_WON"
	EventTypeOrderCreated     = "ORDER_CREATED"
	EventTypeOrderUpdated     = "ORDER_UPDATED"
	EventTypeOrderDeleted     = "ORDER_DELETED"
	EventTypeDocumentUploaded = "DOCUMENT_UPLOADED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// LeadEvent published on lead lifecycle changes
type LeadEvent struct {
	BaseEvent
	LeadID int64  `json:"lead_id"`
	Stage  string `json:"stage,omitempty"`
}

// LeadWonEvent published when a lead reaches stage Won and a companion
// order is auto-created
type LeadWonEvent struct {
	BaseEvent
	LeadID  int64 `json:"lead_id"`
	OrderID int64 `json:"order_id"`
}

// OrderEvent published on order lifecycle changes
type OrderEvent struct {
	BaseEvent
	OrderID int64  `json:"order_id"`
	LeadID  int64  `json:"lead_id"`
	Stage   string `json:"stage,omitempty"`
}

// DocumentUploadedEvent published when a file is attached to an entity
type DocumentUploadedEvent struct {
	BaseEvent
	DocumentID int64  `json:"document_id"`
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Filename   string `json:"filename"`
}
