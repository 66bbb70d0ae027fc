package usecase

import (
	"context"

	"github.com/xavierca1/tavola-crm/internal/entity"
)

type CreateReservationUseCase struct {
	Reservations ReservationRepositoryInterface
}

func NewCreateReservationUseCase(reservations ReservationRepositoryInterface) *CreateReservationUseCase {
	return &CreateReservationUseCase{Reservations: reservations}
}

// Execute books a table directly, with no originating lead.
func (uc *CreateReservationUseCase) Execute(ctx context.Context, input CreateReservationInput) (*entity.Reservation, error) {
	if validationErrors := ValidateCreateReservationInput(input); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	reservation, err := entity.NewReservation(
		input.RestaurantID,
		input.Name,
		input.Phone,
		input.Date,
		input.Time,
		input.Guests,
		input.Occasion,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	reservation.Email = input.Email

	if err := uc.Reservations.Create(ctx, reservation); err != nil {
		return nil, storeError("failed to persist reservation: " + err.Error())
	}

	return reservation, nil
}
