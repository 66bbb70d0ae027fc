package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/tavola-crm/internal/entity"
)

// LeadEventRepository is append-only: events feed reporting views and are
// never updated or deleted.
type LeadEventRepository struct {
	DB *sql.DB
}

func NewLeadEventRepository(db *sql.DB) *LeadEventRepository {
	return &LeadEventRepository{DB: db}
}

func (r *LeadEventRepository) Append(ctx context.Context, event *entity.LeadEvent) error {
	query := `
		INSERT INTO lead_events (id, lead_id, restaurant_id, event_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		event.ID,
		event.LeadID,
		event.RestaurantID,
		event.EventType,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append lead event: %w", err)
	}

	return nil
}

func (r *LeadEventRepository) ListByLead(ctx context.Context, leadID, restaurantID string) ([]*entity.LeadEvent, error) {
	query := `
		SELECT id, lead_id, restaurant_id, event_type, created_at
		FROM lead_events
		WHERE lead_id = $1 AND restaurant_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead events: %w", err)
	}
	defer rows.Close()

	var events []*entity.LeadEvent
	for rows.Next() {
		var event entity.LeadEvent
		if err := rows.Scan(&event.ID, &event.LeadID, &event.RestaurantID, &event.EventType, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead event: %w", err)
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
