package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xavierca1/tavola-crm/internal/entity"
)

type MarkContactedUseCase struct {
	Leads  LeadRepositoryInterface
	Events LeadEventRepositoryInterface
}

func NewMarkContactedUseCase(leads LeadRepositoryInterface, events LeadEventRepositoryInterface) *MarkContactedUseCase {
	return &MarkContactedUseCase{Leads: leads, Events: events}
}

// Execute moves a lead to Contacted and stamps last_contacted_at. Calling
// it again on an already-Contacted lead refreshes the timestamp; each call
// appends its own activity event.
func (uc *MarkContactedUseCase) Execute(ctx context.Context, input MarkContactedInput) (*entity.Lead, error) {
	var nextFollowUp *time.Time
	if input.NextFollowUp != "" {
		t, err := time.Parse("2006-01-02", input.NextFollowUp)
		if err != nil {
			return nil, validationFailed([]ValidationError{{"next_follow_up", "must be a valid date (YYYY-MM-DD)"}})
		}
		nextFollowUp = &t
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID, input.RestaurantID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFound("lead not found")
		}
		return nil, storeError("failed to load lead: " + err.Error())
	}

	if !lead.Status.CanTransitionTo(entity.LeadStatusContacted) {
		return nil, invalidTransition("lead with status '" + string(lead.Status) + "' cannot be marked as contacted")
	}

	now := time.Now()
	if err := uc.Leads.MarkContacted(ctx, lead.ID, lead.RestaurantID, now, nextFollowUp); err != nil {
		return nil, storeError("failed to update lead: " + err.Error())
	}

	lead.Status = entity.LeadStatusContacted
	lead.LastContactedAt = &now
	if nextFollowUp != nil {
		lead.NextFollowUp = nextFollowUp
	}

	// Events are informational only; a failed append never fails the call.
	event := entity.NewLeadEvent(lead.ID, lead.RestaurantID, entity.LeadEventContacted)
	if err := uc.Events.Append(ctx, event); err != nil {
		log.Printf("⚠️ lead event append failed (lead=%s): %v", lead.ID, err)
	}

	return lead, nil
}
