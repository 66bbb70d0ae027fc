package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/tavola-crm/internal/entity"
)

type CloseLeadUseCase struct {
	Leads  LeadRepositoryInterface
	Events LeadEventRepositoryInterface
}

func NewCloseLeadUseCase(leads LeadRepositoryInterface, events LeadEventRepositoryInterface) *CloseLeadUseCase {
	return &CloseLeadUseCase{Leads: leads, Events: events}
}

// Execute closes a lead as lost. Leads already in a terminal state (won,
// lost, or converted into a reservation) are rejected; a converted lead
// only closes through the reservation cascade.
func (uc *CloseLeadUseCase) Execute(ctx context.Context, input CloseLeadInput) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, input.LeadID, input.RestaurantID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFound("lead not found")
		}
		return nil, storeError("failed to load lead: " + err.Error())
	}

	if !lead.Status.Open() {
		return nil, invalidTransition("lead with status '" + string(lead.Status) + "' cannot be closed")
	}

	if err := uc.Leads.UpdateStatus(ctx, lead.ID, lead.RestaurantID, entity.LeadStatusClosedLost); err != nil {
		return nil, storeError("failed to update lead: " + err.Error())
	}
	lead.Status = entity.LeadStatusClosedLost

	event := entity.NewLeadEvent(lead.ID, lead.RestaurantID, entity.LeadEventLost)
	if err := uc.Events.Append(ctx, event); err != nil {
		log.Printf("⚠️ lead event append failed (lead=%s): %v", lead.ID, err)
	}

	return lead, nil
}
