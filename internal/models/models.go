package models

import "time"

// Lead represents a prospective customer moving through the sales pipeline
type Lead struct {
	ID              int64      `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Contact         string     `db:"contact" json:"contact"`
	Company         string     `db:"company" json:"company"`
	ProductInterest string     `db:"product_interest" json:"product_interest"`
	Stage           string     `db:"stage" json:"stage"`
	FollowUpDate    *time.Time `db:"follow_up_date" json:"follow_up_date"`
	Notes           *string    `db:"notes" json:"notes"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Order represents a fulfillment record for a won lead
type Order struct {
	ID             int64      `db:"id" json:"id"`
	LeadID         int64      `db:"lead_id" json:"lead_id"`
	Stage          string     `db:"stage" json:"stage"`
	Courier        *string    `db:"courier" json:"courier"`
	TrackingNumber *string    `db:"tracking_number" json:"tracking_number"`
	DispatchDate   *time.Time `db:"dispatch_date" json:"dispatch_date"`
	Notes          *string    `db:"notes" json:"notes"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// Document binds an uploaded file to a lead or an order
type Document struct {
	ID         int64     `db:"id" json:"id"`
	Filename   string    `db:"filename" json:"filename"`
	FilePath   string    `db:"file_path" json:"file_path"`
	LeadID     *int64    `db:"lead_id" json:"lead_id"`
	OrderID    *int64    `db:"order_id" json:"order_id"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// Reminder is a dated follow-up task, optionally linked to a lead and/or order
type Reminder struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	ReminderDate time.Time `db:"reminder_date" json:"reminder_date"`
	IsCompleted  bool      `db:"is_completed" json:"is_completed"`
	LeadID       *int64    `db:"lead_id" json:"lead_id"`
	OrderID      *int64    `db:"order_id" json:"order_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Lead stages
const (
	LeadStageNew          = "New"
	LeadStageContacted    = "Contacted"
	LeadStageQualified    = "Qualified"
	LeadStageProposalSent = "Proposal Sent"
	LeadStageWon          = "Won"
	LeadStageLost         = "Lost"
)

// Order stages
const (
	OrderStageReceived        = "Order Received"
	OrderStageInDevelopment   = "In Development"
	OrderStageReadyToDispatch = "Ready to Dispatch"
	OrderStageDispatched      = "Dispatched"
)

var leadStages = map[string]bool{
	LeadStageNew:          true,
	LeadStageContacted:    true,
	LeadStageQualified:    true,
	LeadStageProposalSent: true,
	LeadStageWon:          true,
	LeadStageLost:         true,
}

var orderStages = map[string]bool{
	OrderStageReceived:        true,
	OrderStageInDevelopment:   true,
	OrderStageReadyToDispatch: true,
	OrderStageDispatched:      true,
}

// ValidLeadStage reports whether s is one of the six lead pipeline stages
func ValidLeadStage(s string) bool {
	return leadStages[s]
}

// ValidOrderStage reports whether s is one of the four order pipeline stages
func ValidOrderStage(s string) bool {
	return orderStages[s]
}

// Document owner entity types
const (
	EntityTypeLead  = "lead"
	EntityTypeOrder = "order"
)

// ValidEntityType reports whether s names an entity documents can attach to
func ValidEntityType(s string) bool {
	return s == EntityTypeLead || s == EntityTypeOrder
}

// DashboardStats is the point-in-time snapshot served by /api/dashboard
type DashboardStats struct {
	TotalLeads            int     `json:"total_leads"`
	OpenLeads             int     `json:"open_leads"`
	WonLeads              int     `json:"won_leads"`
	LostLeads             int     `json:"lost_leads"`
	ConversionRate        float64 `json:"conversion_rate"`
	OrdersReceived        int     `json:"orders_received"`
	OrdersInDevelopment   int     `json:"orders_in_development"`
	OrdersReadyToDispatch int     `json:"orders_ready_to_dispatch"`
	OrdersDispatched      int     `json:"orders_dispatched"`
	PendingReminders      int     `json:"pending_reminders"`
}
