package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/http/middleware"
	"github.com/xavierca1/tavola-crm/internal/infra/queue"
)

type UpdateReservationStatusUseCase struct {
	Reservations ReservationRepositoryInterface
	Leads        LeadRepositoryInterface
	Notifier     NotificationProducerInterface
}

func NewUpdateReservationStatusUseCase(
	reservations ReservationRepositoryInterface,
	leads LeadRepositoryInterface,
	notifier NotificationProducerInterface,
) *UpdateReservationStatusUseCase {
	return &UpdateReservationStatusUseCase{
		Reservations: reservations,
		Leads:        leads,
		Notifier:     notifier,
	}
}

// Execute transitions a reservation and, best-effort, reflects terminal
// outcomes back onto the lead that produced it. The reservation write is the
// primary effect; cascade and notification failures are logged and counted
// but never fail the call.
func (uc *UpdateReservationStatusUseCase) Execute(ctx context.Context, input UpdateReservationStatusInput) (*entity.Reservation, error) {
	target := entity.ReservationStatus(input.Status)
	switch target {
	case entity.ReservationStatusConfirmed, entity.ReservationStatusCompleted, entity.ReservationStatusCancelled:
	default:
		return nil, validationFailed([]ValidationError{{"status", "must be confirmed, completed or cancelled"}})
	}

	reservation, err := uc.Reservations.FindByID(ctx, input.ReservationID, input.RestaurantID)
	if err != nil {
		if errors.Is(err, entity.ErrReservationNotFound) {
			return nil, notFound("reservation not found")
		}
		return nil, storeError("failed to load reservation: " + err.Error())
	}

	if !reservation.Status.CanTransitionTo(target) {
		return nil, invalidTransition(
			"reservation cannot move from '" + string(reservation.Status) + "' to '" + string(target) + "'",
		)
	}

	if err := uc.Reservations.UpdateStatus(ctx, reservation.ID, reservation.RestaurantID, target); err != nil {
		return nil, storeError("failed to update reservation: " + err.Error())
	}
	reservation.Status = target
	middleware.RecordReservationStatus(string(target))

	uc.cascadeToLead(ctx, reservation, target)

	if target == entity.ReservationStatusConfirmed && uc.Notifier != nil {
		payload := queue.ConfirmationPayload{
			ReservationID: reservation.ID,
			RestaurantID:  reservation.RestaurantID,
			CustomerName:  reservation.Name,
			CustomerPhone: reservation.Phone,
			CustomerEmail: reservation.Email,
			Date:          reservation.Date,
			Time:          reservation.Time,
			Guests:        reservation.Guests,
		}
		if err := uc.Notifier.PublishConfirmation(ctx, payload); err != nil {
			log.Printf("⚠️ confirmation publish failed (reservation=%s): %v", reservation.ID, err)
		}
	}

	return reservation, nil
}

// cascadeToLead closes the originating lead when its reservation reaches a
// terminal state. The link is one-directional and best-effort: a reservation
// booked directly has no lead, and any failure here is swallowed.
func (uc *UpdateReservationStatusUseCase) cascadeToLead(ctx context.Context, reservation *entity.Reservation, target entity.ReservationStatus) {
	var leadStatus entity.LeadStatus
	switch target {
	case entity.ReservationStatusCompleted:
		leadStatus = entity.LeadStatusClosedWon
	case entity.ReservationStatusCancelled:
		leadStatus = entity.LeadStatusClosedLost
	default:
		return
	}

	lead, err := uc.Leads.FindByReservationID(ctx, reservation.ID, reservation.RestaurantID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return // direct booking, nothing to cascade
		}
		log.Printf("⚠️ cascade lookup failed (reservation=%s): %v", reservation.ID, err)
		middleware.RecordCascadeFailure()
		return
	}

	if !lead.Status.CanTransitionTo(leadStatus) {
		log.Printf("⚠️ cascade skipped: lead %s is '%s', cannot move to '%s'", lead.ID, lead.Status, leadStatus)
		return
	}

	if err := uc.Leads.UpdateStatus(ctx, lead.ID, lead.RestaurantID, leadStatus); err != nil {
		log.Printf("⚠️ cascade update failed (lead=%s): %v", lead.ID, err)
		middleware.RecordCascadeFailure()
	}
}
