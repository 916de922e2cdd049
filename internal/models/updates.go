package models

import "time"

// OrderUpdate is the optional field set for partial order updates. A nil
// field leaves the stored value unchanged.
type OrderUpdate struct {
	Stage          *string    `json:"stage"`
	Courier        *string    `json:"courier"`
	TrackingNumber *string    `json:"tracking_number"`
	DispatchDate   *time.Time `json:"dispatch_date"`
	Notes          *string    `json:"notes"`
}

// ReminderUpdate is the optional field set for partial reminder updates
type ReminderUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	ReminderDate *time.Time `json:"reminder_date"`
	IsCompleted  *bool      `json:"is_completed"`
}
