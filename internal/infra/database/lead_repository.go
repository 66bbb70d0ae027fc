package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xavierca1/tavola-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, restaurant_id, phone, name, intent, source, message,
	status, reservation_id, next_follow_up, last_contacted_at,
	created_at, is_deleted
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, restaurant_id, phone, name, intent, source, message,
			status, created_at, is_deleted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.RestaurantID,
		lead.Phone,
		nullString(lead.Name),
		lead.Intent,
		lead.Source,
		nullString(lead.Message),
		lead.Status,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id, restaurantID string) (*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE id = $1 AND restaurant_id = $2 AND is_deleted = FALSE
	`

	return r.scanLead(r.DB.QueryRowContext(ctx, query, id, restaurantID))
}

// FindByReservationID is the reverse lookup the cascade relies on: the
// reservation never references its lead, only the lead points forward.
func (r *LeadRepository) FindByReservationID(ctx context.Context, reservationID, restaurantID string) (*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE reservation_id = $1 AND restaurant_id = $2 AND is_deleted = FALSE
		LIMIT 1
	`

	return r.scanLead(r.DB.QueryRowContext(ctx, query, reservationID, restaurantID))
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, restaurantID string, status entity.LeadStatus) error {
	query := `UPDATE leads SET status = $1 WHERE id = $2 AND restaurant_id = $3 AND is_deleted = FALSE`

	result, err := r.DB.ExecContext(ctx, query, status, id, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	return checkRowsAffected(result, entity.ErrLeadNotFound)
}

func (r *LeadRepository) MarkContacted(ctx context.Context, id, restaurantID string, contactedAt time.Time, nextFollowUp *time.Time) error {
	query := `
		UPDATE leads
		SET status = $1,
		    last_contacted_at = $2,
		    next_follow_up = COALESCE($3, next_follow_up)
		WHERE id = $4 AND restaurant_id = $5 AND is_deleted = FALSE
	`

	result, err := r.DB.ExecContext(ctx, query,
		entity.LeadStatusContacted, contactedAt, nextFollowUp, id, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to mark lead contacted: %w", err)
	}

	return checkRowsAffected(result, entity.ErrLeadNotFound)
}

func (r *LeadRepository) SetReservation(ctx context.Context, id, restaurantID, reservationID string) error {
	query := `
		UPDATE leads
		SET status = $1, reservation_id = $2
		WHERE id = $3 AND restaurant_id = $4 AND is_deleted = FALSE
	`

	result, err := r.DB.ExecContext(ctx, query,
		entity.LeadStatusReservationCreated, reservationID, id, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to link lead to reservation: %w", err)
	}

	return checkRowsAffected(result, entity.ErrLeadNotFound)
}

// SoftDelete hides the lead from listings without removing the row.
func (r *LeadRepository) SoftDelete(ctx context.Context, id, restaurantID string) error {
	query := `UPDATE leads SET is_deleted = TRUE WHERE id = $1 AND restaurant_id = $2`

	result, err := r.DB.ExecContext(ctx, query, id, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return checkRowsAffected(result, entity.ErrLeadNotFound)
}

type ListLeadsFilter struct {
	RestaurantID string
	Status       string
	Phone        string // pattern match
	From, To     *time.Time
	Page         int
	PageSize     int
}

func (r *LeadRepository) List(ctx context.Context, filter ListLeadsFilter) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE restaurant_id = $1 AND is_deleted = FALSE
	`
	args := []interface{}{filter.RestaurantID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Phone != "" {
		args = append(args, "%"+filter.Phone+"%")
		query += fmt.Sprintf(" AND phone LIKE $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := filter.Page
	if page < 0 {
		page = 0
	}

	args = append(args, pageSize, page*pageSize)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *LeadRepository) scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var name, message, reservationID sql.NullString
	var nextFollowUp, lastContactedAt sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.RestaurantID,
		&lead.Phone,
		&name,
		&lead.Intent,
		&lead.Source,
		&message,
		&lead.Status,
		&reservationID,
		&nextFollowUp,
		&lastContactedAt,
		&lead.CreatedAt,
		&lead.IsDeleted,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan lead: %w", err)
	}

	lead.Name = name.String
	lead.Message = message.String
	lead.ReservationID = reservationID.String
	if nextFollowUp.Valid {
		lead.NextFollowUp = &nextFollowUp.Time
	}
	if lastContactedAt.Valid {
		lead.LastContactedAt = &lastContactedAt.Time
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func checkRowsAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
