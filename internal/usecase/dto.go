package usecase

import "github.com/xavierca1/tavola-crm/internal/entity"

type CreateLeadInput struct {
	RestaurantID string `json:"restaurant_id"`
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	Intent       string `json:"intent"`
	Source       string `json:"source"`
	Message      string `json:"message"`
}

type MarkContactedInput struct {
	LeadID       string `json:"lead_id"`
	RestaurantID string `json:"restaurant_id"`
	NextFollowUp string `json:"next_follow_up"` // YYYY-MM-DD, optional
}

type CloseLeadInput struct {
	LeadID       string `json:"lead_id"`
	RestaurantID string `json:"restaurant_id"`
}

type ConvertLeadInput struct {
	LeadID       string `json:"lead_id"`
	RestaurantID string `json:"restaurant_id"`
	Date         string `json:"date"`   // optional, defaults to today
	Time         string `json:"time"`   // optional, defaults to 19:00
	Guests       int    `json:"guests"` // optional, defaults to 2
}

type ConvertLeadOutput struct {
	Lead        *entity.Lead        `json:"lead"`
	Reservation *entity.Reservation `json:"reservation"`
}

type CreateReservationInput struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Guests       int    `json:"guests"`
	Occasion     string `json:"occasion"`
}

type UpdateReservationStatusInput struct {
	ReservationID string `json:"reservation_id"`
	RestaurantID  string `json:"restaurant_id"`
	Status        string `json:"status"`
}
