package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/queue"
	"github.com/xavierca1/tavola-crm/internal/usecase"
)

func pendingReservation() *entity.Reservation {
	return &entity.Reservation{
		ID:           "res-1",
		RestaurantID: "R1",
		Name:         "A",
		Phone:        "123",
		Date:         "2025-01-01",
		Time:         "19:00",
		Guests:       4,
		Status:       entity.ReservationStatusPending,
	}
}

func TestUpdateReservationStatusConfirm(t *testing.T) {
	ctx := context.Background()
	res := pendingReservation()

	mockReservations := new(MockReservationRepository)
	mockLeads := new(MockLeadRepository)
	mockNotifier := new(MockNotificationProducer)

	mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)
	mockReservations.On("UpdateStatus", ctx, "res-1", "R1", entity.ReservationStatusConfirmed).Return(nil)
	mockNotifier.On("PublishConfirmation", ctx, mock.Anything).Return(nil)

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, mockLeads, mockNotifier)

	updated, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "confirmed",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, updated.Status)

	// Confirmation has no lead-status cascade but does fire a notification.
	mockLeads.AssertNotCalled(t, "FindByReservationID", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertCalled(t, "PublishConfirmation", ctx, mock.MatchedBy(func(p queue.ConfirmationPayload) bool {
		return p.ReservationID == "res-1" && p.Guests == 4
	}))
}

func TestUpdateReservationStatusTerminalLock(t *testing.T) {
	ctx := context.Background()

	for _, terminal := range []entity.ReservationStatus{
		entity.ReservationStatusCompleted,
		entity.ReservationStatusCancelled,
	} {
		res := pendingReservation()
		res.Status = terminal

		mockReservations := new(MockReservationRepository)
		mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)

		uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, new(MockLeadRepository), new(MockNotificationProducer))

		_, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
			ReservationID: "res-1", RestaurantID: "R1", Status: "cancelled",
		})

		domainErr, ok := err.(*usecase.DomainError)
		assert.True(t, ok, "from %s", terminal)
		assert.Equal(t, usecase.CodeInvalidTransition, domainErr.Code)
		mockReservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestUpdateReservationStatusRejectsSkippingConfirm(t *testing.T) {
	ctx := context.Background()
	res := pendingReservation()

	mockReservations := new(MockReservationRepository)
	mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, new(MockLeadRepository), new(MockNotificationProducer))

	_, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "completed",
	})

	assert.True(t, usecase.IsDomainError(err))
}

func TestUpdateReservationStatusNotFound(t *testing.T) {
	ctx := context.Background()
	mockReservations := new(MockReservationRepository)
	mockReservations.On("FindByID", ctx, "missing", "R1").Return(nil, entity.ErrReservationNotFound)

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, new(MockLeadRepository), new(MockNotificationProducer))

	_, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "missing", RestaurantID: "R1", Status: "confirmed",
	})

	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeNotFound, domainErr.Code)
}

func TestUpdateReservationStatusInvalidTarget(t *testing.T) {
	uc := usecase.NewUpdateReservationStatusUseCase(new(MockReservationRepository), new(MockLeadRepository), new(MockNotificationProducer))

	_, err := uc.Execute(context.Background(), usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "pending",
	})

	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
}

func TestCascadeCompletedClosesLeadWon(t *testing.T) {
	ctx := context.Background()
	res := pendingReservation()
	res.Status = entity.ReservationStatusConfirmed

	lead := &entity.Lead{
		ID:            "lead-1",
		RestaurantID:  "R1",
		Status:        entity.LeadStatusReservationCreated,
		ReservationID: "res-1",
	}

	mockReservations := new(MockReservationRepository)
	mockLeads := new(MockLeadRepository)

	mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)
	mockReservations.On("UpdateStatus", ctx, "res-1", "R1", entity.ReservationStatusCompleted).Return(nil)
	mockLeads.On("FindByReservationID", ctx, "res-1", "R1").Return(lead, nil)
	mockLeads.On("UpdateStatus", ctx, "lead-1", "R1", entity.LeadStatusClosedWon).Return(nil)

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, mockLeads, new(MockNotificationProducer))

	updated, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "completed",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, updated.Status)
	mockLeads.AssertCalled(t, "UpdateStatus", ctx, "lead-1", "R1", entity.LeadStatusClosedWon)
}

func TestCascadeCancelledClosesLeadLost(t *testing.T) {
	ctx := context.Background()
	res := pendingReservation()

	lead := &entity.Lead{
		ID:            "lead-1",
		RestaurantID:  "R1",
		Status:        entity.LeadStatusReservationCreated,
		ReservationID: "res-1",
	}

	mockReservations := new(MockReservationRepository)
	mockLeads := new(MockLeadRepository)

	mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)
	mockReservations.On("UpdateStatus", ctx, "res-1", "R1", entity.ReservationStatusCancelled).Return(nil)
	mockLeads.On("FindByReservationID", ctx, "res-1", "R1").Return(lead, nil)
	mockLeads.On("UpdateStatus", ctx, "lead-1", "R1", entity.LeadStatusClosedLost).Return(nil)

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, mockLeads, new(MockNotificationProducer))

	_, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "cancelled",
	})

	assert.NoError(t, err)
	mockLeads.AssertCalled(t, "UpdateStatus", ctx, "lead-1", "R1", entity.LeadStatusClosedLost)
}

// A direct booking has no originating lead; the call still succeeds and
// only mutates the reservation.
func TestCascadeSkipsDirectBookings(t *testing.T) {
	ctx := context.Background()
	res := pendingReservation()
	res.Status = entity.ReservationStatusConfirmed

	mockReservations := new(MockReservationRepository)
	mockLeads := new(MockLeadRepository)

	mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)
	mockReservations.On("UpdateStatus", ctx, "res-1", "R1", entity.ReservationStatusCompleted).Return(nil)
	mockLeads.On("FindByReservationID", ctx, "res-1", "R1").Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, mockLeads, new(MockNotificationProducer))

	updated, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "completed",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, updated.Status)
	mockLeads.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Cascade is best-effort: a failed lead update never fails the call.
func TestCascadeFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	res := pendingReservation()
	res.Status = entity.ReservationStatusConfirmed

	lead := &entity.Lead{
		ID:            "lead-1",
		RestaurantID:  "R1",
		Status:        entity.LeadStatusReservationCreated,
		ReservationID: "res-1",
	}

	mockReservations := new(MockReservationRepository)
	mockLeads := new(MockLeadRepository)

	mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)
	mockReservations.On("UpdateStatus", ctx, "res-1", "R1", entity.ReservationStatusCompleted).Return(nil)
	mockLeads.On("FindByReservationID", ctx, "res-1", "R1").Return(lead, nil)
	mockLeads.On("UpdateStatus", ctx, "lead-1", "R1", entity.LeadStatusClosedWon).Return(errors.New("db down"))

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, mockLeads, new(MockNotificationProducer))

	updated, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "completed",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, updated.Status)
}

// A failed notification publish is logged, not surfaced.
func TestConfirmationPublishFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	res := pendingReservation()

	mockReservations := new(MockReservationRepository)
	mockNotifier := new(MockNotificationProducer)

	mockReservations.On("FindByID", ctx, "res-1", "R1").Return(res, nil)
	mockReservations.On("UpdateStatus", ctx, "res-1", "R1", entity.ReservationStatusConfirmed).Return(nil)
	mockNotifier.On("PublishConfirmation", ctx, mock.Anything).Return(errors.New("broker unavailable"))

	uc := usecase.NewUpdateReservationStatusUseCase(mockReservations, new(MockLeadRepository), mockNotifier)

	updated, err := uc.Execute(ctx, usecase.UpdateReservationStatusInput{
		ReservationID: "res-1", RestaurantID: "R1", Status: "confirmed",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, updated.Status)
}
