package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id, restaurantID string) (*entity.Lead, error)
	FindByReservationID(ctx context.Context, reservationID, restaurantID string) (*entity.Lead, error)
	UpdateStatus(ctx context.Context, id, restaurantID string, status entity.LeadStatus) error
	MarkContacted(ctx context.Context, id, restaurantID string, contactedAt time.Time, nextFollowUp *time.Time) error
	SetReservation(ctx context.Context, id, restaurantID, reservationID string) error
}

type ReservationRepositoryInterface interface {
	Create(ctx context.Context, res *entity.Reservation) error
	FindByID(ctx context.Context, id, restaurantID string) (*entity.Reservation, error)
	UpdateStatus(ctx context.Context, id, restaurantID string, status entity.ReservationStatus) error
	Delete(ctx context.Context, id, restaurantID string) error
}

type LeadEventRepositoryInterface interface {
	Append(ctx context.Context, event *entity.LeadEvent) error
}

type NotificationProducerInterface interface {
	PublishConfirmation(ctx context.Context, payload queue.ConfirmationPayload) error
}
