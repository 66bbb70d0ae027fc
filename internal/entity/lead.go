package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew                LeadStatus = "New"
	LeadStatusContacted          LeadStatus = "Contacted"
	LeadStatusReservationCreated LeadStatus = "Reservation Created"
	LeadStatusClosedWon          LeadStatus = "Closed Won"
	LeadStatusClosedLost         LeadStatus = "Closed Lost"
)

// leadTransitions encodes every allowed status edge. Closed Won is only
// reachable through the reservation cascade; no operation sets it directly.
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew:       {LeadStatusContacted, LeadStatusReservationCreated, LeadStatusClosedLost},
	LeadStatusContacted: {LeadStatusContacted, LeadStatusReservationCreated, LeadStatusClosedLost},

	// Reservation Created only moves via cascade (completed/cancelled reservation).
	LeadStatusReservationCreated: {LeadStatusClosedWon, LeadStatusClosedLost},

	LeadStatusClosedWon:  {},
	LeadStatusClosedLost: {},
}

func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	for _, t := range leadTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Open reports whether the lead can still be worked by the direct lifecycle
// operations (mark contacted, close lost, convert). A Reservation Created
// lead is terminal for those; it only moves again through the cascade.
func (s LeadStatus) Open() bool {
	return s == LeadStatusNew || s == LeadStatusContacted
}

// Entidade: Lead
type Lead struct {
	ID              string     `json:"id"`
	RestaurantID    string     `json:"restaurant_id"`
	Phone           string     `json:"phone"`
	Name            string     `json:"name,omitempty"`
	Intent          string     `json:"intent"` // whatsapp, callback, contact
	Source          string     `json:"source"` // website, chat_concierge, ...
	Message         string     `json:"message,omitempty"`
	Status          LeadStatus `json:"status"`
	ReservationID   string     `json:"reservation_id,omitempty"`
	NextFollowUp    *time.Time `json:"next_follow_up,omitempty"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	IsDeleted       bool       `json:"is_deleted"`
}

// Factory
func NewLead(restaurantID, phone, name, intent, source, message string) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Phone:        phone,
		Name:         name,
		Intent:       intent,
		Source:       source,
		Message:      message,
		Status:       LeadStatusNew,
		CreatedAt:    time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.RestaurantID == "" {
		return errors.New("restaurant_id is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}
