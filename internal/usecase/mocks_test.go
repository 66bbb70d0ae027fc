package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id, restaurantID string) (*entity.Lead, error) {
	args := m.Called(ctx, id, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByReservationID(ctx context.Context, reservationID, restaurantID string) (*entity.Lead, error) {
	args := m.Called(ctx, reservationID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, restaurantID string, status entity.LeadStatus) error {
	args := m.Called(ctx, id, restaurantID, status)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkContacted(ctx context.Context, id, restaurantID string, contactedAt time.Time, nextFollowUp *time.Time) error {
	args := m.Called(ctx, id, restaurantID, contactedAt, nextFollowUp)
	return args.Error(0)
}

func (m *MockLeadRepository) SetReservation(ctx context.Context, id, restaurantID, reservationID string) error {
	args := m.Called(ctx, id, restaurantID, reservationID)
	return args.Error(0)
}

// MockReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *entity.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id, restaurantID string) (*entity.Reservation, error) {
	args := m.Called(ctx, id, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id, restaurantID string, status entity.ReservationStatus) error {
	args := m.Called(ctx, id, restaurantID, status)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id, restaurantID string) error {
	args := m.Called(ctx, id, restaurantID)
	return args.Error(0)
}

// MockLeadEventRepository
type MockLeadEventRepository struct {
	mock.Mock
}

func (m *MockLeadEventRepository) Append(ctx context.Context, event *entity.LeadEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishConfirmation(ctx context.Context, payload queue.ConfirmationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
