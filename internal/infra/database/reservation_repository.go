package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xavierca1/tavola-crm/internal/entity"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

const reservationColumns = `
	id, restaurant_id, name, phone, email, date, time, guests,
	occasion, status, created_at
`

func (r *ReservationRepository) Create(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (
			id, restaurant_id, name, phone, email, date, time, guests,
			occasion, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		res.ID,
		res.RestaurantID,
		res.Name,
		res.Phone,
		nullString(res.Email),
		res.Date,
		res.Time,
		res.Guests,
		nullString(res.Occasion),
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id, restaurantID string) (*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE id = $1 AND restaurant_id = $2
	`

	return r.scanReservation(r.DB.QueryRowContext(ctx, query, id, restaurantID))
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id, restaurantID string, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $1 WHERE id = $2 AND restaurant_id = $3`

	result, err := r.DB.ExecContext(ctx, query, status, id, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	return checkRowsAffected(result, entity.ErrReservationNotFound)
}

// Delete exists for the conversion compensation path only; the lifecycle
// never hard-deletes a reservation a caller has seen.
func (r *ReservationRepository) Delete(ctx context.Context, id, restaurantID string) error {
	query := `DELETE FROM reservations WHERE id = $1 AND restaurant_id = $2`

	_, err := r.DB.ExecContext(ctx, query, id, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	return nil
}

type ListReservationsFilter struct {
	RestaurantID string
	Status       string
	Date         string
	From, To     *time.Time
	Page         int
	PageSize     int
}

func (r *ReservationRepository) List(ctx context.Context, filter ListReservationsFilter) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE restaurant_id = $1
	`
	args := []interface{}{filter.RestaurantID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
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
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

func (r *ReservationRepository) scanReservation(row rowScanner) (*entity.Reservation, error) {
	var res entity.Reservation
	var email, occasion sql.NullString

	err := row.Scan(
		&res.ID,
		&res.RestaurantID,
		&res.Name,
		&res.Phone,
		&email,
		&res.Date,
		&res.Time,
		&res.Guests,
		&occasion,
		&res.Status,
		&res.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservation: %w", err)
	}

	res.Email = email.String
	res.Occasion = occasion.String

	return &res, nil
}
