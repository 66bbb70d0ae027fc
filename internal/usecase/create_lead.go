package usecase

import (
	"context"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/http/middleware"
)

type CreateLeadUseCase struct {
	Leads LeadRepositoryInterface
}

func NewCreateLeadUseCase(leads LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads}
}

// Execute registers an inbound contact signal as a fresh lead. Multiple
// leads may share a phone number: each submission is tracked on its own,
// so there is no duplicate check here.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	lead, err := entity.NewLead(
		input.RestaurantID,
		input.Phone,
		input.Name,
		input.Intent,
		input.Source,
		input.Message,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, storeError("failed to persist lead: " + err.Error())
	}

	middleware.RecordLeadCreated(lead.Source)

	return lead, nil
}
