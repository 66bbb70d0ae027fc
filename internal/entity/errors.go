package entity

import "errors"

var (
	ErrLeadNotFound        = errors.New("lead not found")
	ErrReservationNotFound = errors.New("reservation not found")
)
