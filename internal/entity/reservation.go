package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
	ReservationStatusCompleted: {},
	ReservationStatusCancelled: {},
}

func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, t := range reservationTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

type Reservation struct {
	ID           string            `json:"id"`
	RestaurantID string            `json:"restaurant_id"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email,omitempty"`
	Date         string            `json:"date"` // YYYY-MM-DD
	Time         string            `json:"time"` // HH:MM
	Guests       int               `json:"guests"`
	Occasion     string            `json:"occasion,omitempty"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewReservation cria uma nova instância com ID, status pending e timestamp.
func NewReservation(restaurantID, name, phone, date, timeSlot string, guests int, occasion string) (*Reservation, error) {
	res := &Reservation{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         name,
		Phone:        phone,
		Date:         date,
		Time:         timeSlot,
		Guests:       guests,
		Occasion:     occasion,
		Status:       ReservationStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Reservation) Validate() error {
	if r.RestaurantID == "" {
		return errors.New("restaurant_id is required")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Phone == "" {
		return errors.New("phone is required")
	}
	if r.Date == "" {
		return errors.New("date is required")
	}
	if r.Time == "" {
		return errors.New("time is required")
	}
	if r.Guests <= 0 {
		return errors.New("guests must be positive")
	}
	return nil
}
