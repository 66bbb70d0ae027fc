package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/usecase"
)

func TestCreateReservationSuccess(t *testing.T) {
	ctx := context.Background()
	mockReservations := new(MockReservationRepository)
	mockReservations.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateReservationUseCase(mockReservations)

	res, err := uc.Execute(ctx, usecase.CreateReservationInput{
		RestaurantID: "R1",
		Name:         "A",
		Phone:        "123456789",
		Date:         "2025-01-01",
		Time:         "19:00",
		Guests:       4,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPending, res.Status)
	assert.NotEmpty(t, res.ID)
	mockReservations.AssertCalled(t, "Create", ctx, mock.Anything)
}

func TestCreateReservationValidation(t *testing.T) {
	uc := usecase.NewCreateReservationUseCase(new(MockReservationRepository))

	cases := []struct {
		name  string
		input usecase.CreateReservationInput
	}{
		{"missing name", usecase.CreateReservationInput{RestaurantID: "R1", Phone: "123456789", Date: "2025-01-01", Time: "19:00", Guests: 2}},
		{"missing phone", usecase.CreateReservationInput{RestaurantID: "R1", Name: "A", Date: "2025-01-01", Time: "19:00", Guests: 2}},
		{"missing date", usecase.CreateReservationInput{RestaurantID: "R1", Name: "A", Phone: "123456789", Time: "19:00", Guests: 2}},
		{"bad date", usecase.CreateReservationInput{RestaurantID: "R1", Name: "A", Phone: "123456789", Date: "january 1st", Time: "19:00", Guests: 2}},
		{"bad time", usecase.CreateReservationInput{RestaurantID: "R1", Name: "A", Phone: "123456789", Date: "2025-01-01", Time: "7pm", Guests: 2}},
		{"zero guests", usecase.CreateReservationInput{RestaurantID: "R1", Name: "A", Phone: "123456789", Date: "2025-01-01", Time: "19:00"}},
		{"missing tenant", usecase.CreateReservationInput{Name: "A", Phone: "123456789", Date: "2025-01-01", Time: "19:00", Guests: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.input)

			domainErr, ok := err.(*usecase.DomainError)
			assert.True(t, ok)
			assert.Equal(t, usecase.CodeValidation, domainErr.Code)
		})
	}
}
