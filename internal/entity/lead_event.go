package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	LeadEventContacted = "contacted"
	LeadEventLost      = "lost"
	LeadEventConverted = "converted"
)

// LeadEvent is an append-only activity record used by reporting views.
// Events are informational: duplicates are acceptable and nothing reads
// them back to drive the state machine.
type LeadEvent struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	RestaurantID string    `json:"restaurant_id"`
	EventType    string    `json:"event_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLeadEvent(leadID, restaurantID, eventType string) *LeadEvent {
	return &LeadEvent{
		ID:           uuid.New().String(),
		LeadID:       leadID,
		RestaurantID: restaurantID,
		EventType:    eventType,
		CreatedAt:    time.Now(),
	}
}
