package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/http/middleware"
)

const (
	defaultGuestName   = "Guest"
	defaultTimeSlot    = "19:00"
	defaultGuestsCount = 2
)

type ConvertLeadUseCase struct {
	Leads        LeadRepositoryInterface
	Reservations ReservationRepositoryInterface
	Events       LeadEventRepositoryInterface
}

func NewConvertLeadUseCase(
	leads LeadRepositoryInterface,
	reservations ReservationRepositoryInterface,
	events LeadEventRepositoryInterface,
) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{
		Leads:        leads,
		Reservations: reservations,
		Events:       events,
	}
}

// Execute turns an open lead into a pending reservation. Contact details are
// copied from the lead at this moment and not kept in sync afterwards. The
// reservation insert and the lead update run as a compensated pair: if the
// lead update fails, the just-created reservation is deleted instead of being
// left orphaned.
func (uc *ConvertLeadUseCase) Execute(ctx context.Context, input ConvertLeadInput) (*ConvertLeadOutput, error) {
	if validationErrors := ValidateConvertLeadInput(input); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID, input.RestaurantID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFound("lead not found")
		}
		return nil, storeError("failed to load lead: " + err.Error())
	}

	if !lead.Status.CanTransitionTo(entity.LeadStatusReservationCreated) {
		return nil, invalidTransition("lead with status '" + string(lead.Status) + "' cannot be converted")
	}

	name := lead.Name
	if name == "" {
		name = defaultGuestName
	}
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	timeSlot := input.Time
	if timeSlot == "" {
		timeSlot = defaultTimeSlot
	}
	guests := input.Guests
	if guests == 0 {
		guests = defaultGuestsCount
	}

	reservation, err := entity.NewReservation(
		lead.RestaurantID, name, lead.Phone, date, timeSlot, guests, "",
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	txn := NewTransaction()

	txn.AddOperation("create_reservation", func(ctx context.Context) error {
		return uc.Reservations.Create(ctx, reservation)
	})
	txn.AddCompensation("delete_reservation", func(ctx context.Context) error {
		return uc.Reservations.Delete(ctx, reservation.ID, reservation.RestaurantID)
	})

	txn.AddOperation("link_lead", func(ctx context.Context) error {
		return uc.Leads.SetReservation(ctx, lead.ID, lead.RestaurantID, reservation.ID)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, storeError("failed to convert lead: " + err.Error())
	}

	lead.Status = entity.LeadStatusReservationCreated
	lead.ReservationID = reservation.ID

	event := entity.NewLeadEvent(lead.ID, lead.RestaurantID, entity.LeadEventConverted)
	if err := uc.Events.Append(ctx, event); err != nil {
		log.Printf("⚠️ lead event append failed (lead=%s): %v", lead.ID, err)
	}

	middleware.RecordLeadConverted()

	return &ConvertLeadOutput{Lead: lead, Reservation: reservation}, nil
}
