package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `r.id, r.car_id, r.user_id, r.customer_name, r.customer_email, r.customer_phone,
    r.customer_address, r.pickup_at, r.return_at, r.status, r.payment_status, r.amount_cents,
    r.notes, r.created_at, r.updated_at`

func scanReservation(row rowScanner, extra ...any) (Reservations, error) {
	var i Reservations
	dest := []any{
		&i.ID,
		&i.CarID,
		&i.UserID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CustomerPhone,
		&i.CustomerAddress,
		&i.PickupAt,
		&i.ReturnAt,
		&i.Status,
		&i.PaymentStatus,
		&i.AmountCents,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return i, err
}

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (id, car_id, user_id, customer_name, customer_email, customer_phone,
    customer_address, pickup_at, return_at, status, payment_status, amount_cents, notes,
    created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
`

type CreateReservationParams struct {
	ID              uuid.UUID          `json:"id"`
	CarID           uuid.UUID          `json:"car_id"`
	UserID          pgtype.UUID        `json:"user_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress pgtype.Text        `json:"customer_address"`
	PickupAt        pgtype.Timestamptz `json:"pickup_at"`
	ReturnAt        pgtype.Timestamptz `json:"return_at"`
	Status          string             `json:"status"`
	PaymentStatus   string             `json:"payment_status"`
	AmountCents     int64              `json:"amount_cents"`
	Notes           pgtype.Text        `json:"notes"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.CarID,
		arg.UserID,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.CustomerAddress,
		arg.PickupAt,
		arg.ReturnAt,
		arg.Status,
		arg.PaymentStatus,
		arg.AmountCents,
		arg.Notes,
		arg.CreatedAt,
	)
	return err
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const hasBlockingOverlap = `-- name: HasBlockingOverlap :one
SELECT EXISTS (
    SELECT 1 FROM reservations
    WHERE car_id = $1
      AND status = ANY($2::text[])
      AND pickup_at <= $4
      AND return_at >= $3
      AND ($5::uuid IS NULL OR id <> $5)
)
`

type HasBlockingOverlapParams struct {
	CarID     uuid.UUID          `json:"car_id"`
	Statuses  []string           `json:"statuses"`
	PickupAt  pgtype.Timestamptz `json:"pickup_at"`
	ReturnAt  pgtype.Timestamptz `json:"return_at"`
	ExcludeID pgtype.UUID        `json:"exclude_id"`
}

// HasBlockingOverlap uses closed-interval semantics: touching boundaries overlap.
func (q *Queries) HasBlockingOverlap(ctx context.Context, db DBTX, arg HasBlockingOverlapParams) (bool, error) {
	row := db.QueryRow(ctx, hasBlockingOverlap, arg.CarID, arg.Statuses, arg.PickupAt, arg.ReturnAt, arg.ExcludeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const updateReservationStatus = `-- name: UpdateReservationStatus :execrows
UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations SET
    customer_name = $2, customer_email = $3, customer_phone = $4, customer_address = $5,
    pickup_at = $6, return_at = $7, status = $8, payment_status = $9,
    amount_cents = $10, notes = $11, updated_at = $12
WHERE id = $1
`

type UpdateReservationParams struct {
	ID              uuid.UUID          `json:"id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress pgtype.Text        `json:"customer_address"`
	PickupAt        pgtype.Timestamptz `json:"pickup_at"`
	ReturnAt        pgtype.Timestamptz `json:"return_at"`
	Status          string             `json:"status"`
	PaymentStatus   string             `json:"payment_status"`
	AmountCents     int64              `json:"amount_cents"`
	Notes           pgtype.Text        `json:"notes"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.CustomerAddress,
		arg.PickupAt,
		arg.ReturnAt,
		arg.Status,
		arg.PaymentStatus,
		arg.AmountCents,
		arg.Notes,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type ReservationViewRow struct {
	Reservations
	CarMake  string `json:"car_make"`
	CarModel string `json:"car_model"`
}

const getReservationViewByID = `-- name: GetReservationViewByID :one
SELECT ` + reservationColumns + `, c.make, c.model
FROM reservations r
JOIN cars c ON c.id = r.car_id
WHERE r.id = $1
`

func (q *Queries) GetReservationViewByID(ctx context.Context, db DBTX, id uuid.UUID) (ReservationViewRow, error) {
	var i ReservationViewRow
	res, err := scanReservation(db.QueryRow(ctx, getReservationViewByID, id), &i.CarMake, &i.CarModel)
	i.Reservations = res
	return i, err
}

const listReservationViews = `-- name: ListReservationViews :many
SELECT ` + reservationColumns + `, c.make, c.model
FROM reservations r
JOIN cars c ON c.id = r.car_id
WHERE ($1::text IS NULL OR r.status = $1)
  AND ($2::uuid IS NULL OR r.car_id = $2)
  AND ($3::uuid IS NULL OR r.user_id = $3)
  AND ($4::timestamptz IS NULL OR r.return_at >= $4)
  AND ($5::timestamptz IS NULL OR r.pickup_at <= $5)
  AND ($6::timestamptz IS NULL OR (r.created_at, r.id) < ($6, $7::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $8
`

type ListReservationViewsParams struct {
	Status         pgtype.Text        `json:"status"`
	CarID          pgtype.UUID        `json:"car_id"`
	UserID         pgtype.UUID        `json:"user_id"`
	From           pgtype.Timestamptz `json:"from"`
	To             pgtype.Timestamptz `json:"to"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListReservationViews(ctx context.Context, db DBTX, arg ListReservationViewsParams) ([]ReservationViewRow, error) {
	rows, err := db.Query(ctx, listReservationViews,
		arg.Status,
		arg.CarID,
		arg.UserID,
		arg.From,
		arg.To,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationViewRow
	for rows.Next() {
		var i ReservationViewRow
		res, err := scanReservation(rows, &i.CarMake, &i.CarModel)
		if err != nil {
			return nil, err
		}
		i.Reservations = res
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
