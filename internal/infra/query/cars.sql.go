package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const carColumns = `id, make, model, year, color, category, seats, transmission, fuel_type,
    mileage, daily_rate_cents, status, image_url, reservations, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (Cars, error) {
	var i Cars
	err := row.Scan(
		&i.ID,
		&i.Make,
		&i.Model,
		&i.Year,
		&i.Color,
		&i.Category,
		&i.Seats,
		&i.Transmission,
		&i.FuelType,
		&i.Mileage,
		&i.DailyRateCents,
		&i.Status,
		&i.ImageUrl,
		&i.Reservations,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createCar = `-- name: CreateCar :exec
INSERT INTO cars (id, make, model, year, color, category, seats, transmission, fuel_type,
    mileage, daily_rate_cents, status, image_url, reservations, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, '[]'::jsonb, $14, $14)
`

type CreateCarParams struct {
	ID             uuid.UUID          `json:"id"`
	Make           string             `json:"make"`
	Model          string             `json:"model"`
	Year           int32              `json:"year"`
	Color          pgtype.Text        `json:"color"`
	Category       string             `json:"category"`
	Seats          int32              `json:"seats"`
	Transmission   string             `json:"transmission"`
	FuelType       string             `json:"fuel_type"`
	Mileage        int32              `json:"mileage"`
	DailyRateCents int64              `json:"daily_rate_cents"`
	Status         string             `json:"status"`
	ImageUrl       pgtype.Text        `json:"image_url"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateCar(ctx context.Context, db DBTX, arg CreateCarParams) error {
	_, err := db.Exec(ctx, createCar,
		arg.ID,
		arg.Make,
		arg.Model,
		arg.Year,
		arg.Color,
		arg.Category,
		arg.Seats,
		arg.Transmission,
		arg.FuelType,
		arg.Mileage,
		arg.DailyRateCents,
		arg.Status,
		arg.ImageUrl,
		arg.CreatedAt,
	)
	return err
}

const getCarByID = `-- name: GetCarByID :one
SELECT ` + carColumns + ` FROM cars WHERE id = $1
`

func (q *Queries) GetCarByID(ctx context.Context, db DBTX, id uuid.UUID) (Cars, error) {
	return scanCar(db.QueryRow(ctx, getCarByID, id))
}

const getCarByIDForUpdate = `-- name: GetCarByIDForUpdate :one
SELECT ` + carColumns + ` FROM cars WHERE id = $1 FOR UPDATE
`

// GetCarByIDForUpdate takes the row lock that serializes bookings for one car.
func (q *Queries) GetCarByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Cars, error) {
	return scanCar(db.QueryRow(ctx, getCarByIDForUpdate, id))
}

const listCars = `-- name: ListCars :many
SELECT ` + carColumns + ` FROM cars
WHERE ($1::text IS NULL OR category = $1)
  AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id DESC
LIMIT $3 OFFSET $4
`

type ListCarsParams struct {
	Category pgtype.Text `json:"category"`
	Status   pgtype.Text `json:"status"`
	Limit    int32       `json:"limit"`
	Offset   int32       `json:"offset"`
}

func (q *Queries) ListCars(ctx context.Context, db DBTX, arg ListCarsParams) ([]Cars, error) {
	rows, err := db.Query(ctx, listCars, arg.Category, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Cars
	for rows.Next() {
		i, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getCarReservationRefsByIDs = `-- name: GetCarReservationRefsByIDs :many
SELECT id, reservations FROM cars WHERE id = ANY($1::uuid[])
`

type GetCarReservationRefsByIDsRow struct {
	ID           uuid.UUID `json:"id"`
	Reservations []byte    `json:"reservations"`
}

func (q *Queries) GetCarReservationRefsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]GetCarReservationRefsByIDsRow, error) {
	rows, err := db.Query(ctx, getCarReservationRefsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetCarReservationRefsByIDsRow
	for rows.Next() {
		var i GetCarReservationRefsByIDsRow
		if err := rows.Scan(&i.ID, &i.Reservations); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateCar = `-- name: UpdateCar :execrows
UPDATE cars SET
    make = $2, model = $3, year = $4, color = $5, category = $6, seats = $7,
    transmission = $8, fuel_type = $9, mileage = $10, daily_rate_cents = $11,
    status = $12, image_url = $13, updated_at = $14
WHERE id = $1
`

type UpdateCarParams struct {
	ID             uuid.UUID          `json:"id"`
	Make           string             `json:"make"`
	Model          string             `json:"model"`
	Year           int32              `json:"year"`
	Color          pgtype.Text        `json:"color"`
	Category       string             `json:"category"`
	Seats          int32              `json:"seats"`
	Transmission   string             `json:"transmission"`
	FuelType       string             `json:"fuel_type"`
	Mileage        int32              `json:"mileage"`
	DailyRateCents int64              `json:"daily_rate_cents"`
	Status         string             `json:"status"`
	ImageUrl       pgtype.Text        `json:"image_url"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateCar(ctx context.Context, db DBTX, arg UpdateCarParams) (int64, error) {
	result, err := db.Exec(ctx, updateCar,
		arg.ID,
		arg.Make,
		arg.Model,
		arg.Year,
		arg.Color,
		arg.Category,
		arg.Seats,
		arg.Transmission,
		arg.FuelType,
		arg.Mileage,
		arg.DailyRateCents,
		arg.Status,
		arg.ImageUrl,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCar = `-- name: DeleteCar :execrows
DELETE FROM cars WHERE id = $1
`

func (q *Queries) DeleteCar(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteCar, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const appendCarReservationRef = `-- name: AppendCarReservationRef :execrows
UPDATE cars SET reservations = reservations || jsonb_build_array($2::jsonb), updated_at = now()
WHERE id = $1
`

type AppendCarReservationRefParams struct {
	ID  uuid.UUID `json:"id"`
	Ref []byte    `json:"ref"`
}

func (q *Queries) AppendCarReservationRef(ctx context.Context, db DBTX, arg AppendCarReservationRefParams) (int64, error) {
	result, err := db.Exec(ctx, appendCarReservationRef, arg.ID, arg.Ref)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateCarReservationRefStatus = `-- name: UpdateCarReservationRefStatus :execrows
UPDATE cars SET reservations = (
    SELECT COALESCE(jsonb_agg(
        CASE WHEN t.elem->>'reservationId' = $2::text
             THEN jsonb_set(t.elem, '{status}', to_jsonb($3::text))
             ELSE t.elem END
        ORDER BY t.ord), '[]'::jsonb)
    FROM jsonb_array_elements(cars.reservations) WITH ORDINALITY AS t(elem, ord)
), updated_at = now()
WHERE id = $1
  AND reservations @> jsonb_build_array(jsonb_build_object('reservationId', $2::text))
`

type UpdateCarReservationRefStatusParams struct {
	ID            uuid.UUID `json:"id"`
	ReservationID string    `json:"reservation_id"`
	Status        string    `json:"status"`
}

func (q *Queries) UpdateCarReservationRefStatus(ctx context.Context, db DBTX, arg UpdateCarReservationRefStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateCarReservationRefStatus, arg.ID, arg.ReservationID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const replaceCarReservationRef = `-- name: ReplaceCarReservationRef :execrows
UPDATE cars SET reservations = (
    SELECT COALESCE(jsonb_agg(
        CASE WHEN t.elem->>'reservationId' = $2::text
             THEN $3::jsonb
             ELSE t.elem END
        ORDER BY t.ord), '[]'::jsonb)
    FROM jsonb_array_elements(cars.reservations) WITH ORDINALITY AS t(elem, ord)
), updated_at = now()
WHERE id = $1
  AND reservations @> jsonb_build_array(jsonb_build_object('reservationId', $2::text))
`

type ReplaceCarReservationRefParams struct {
	ID            uuid.UUID `json:"id"`
	ReservationID string    `json:"reservation_id"`
	Ref           []byte    `json:"ref"`
}

func (q *Queries) ReplaceCarReservationRef(ctx context.Context, db DBTX, arg ReplaceCarReservationRefParams) (int64, error) {
	result, err := db.Exec(ctx, replaceCarReservationRef, arg.ID, arg.ReservationID, arg.Ref)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const removeCarReservationRef = `-- name: RemoveCarReservationRef :execrows
UPDATE cars SET reservations = (
    SELECT COALESCE(jsonb_agg(t.elem ORDER BY t.ord), '[]'::jsonb)
    FROM jsonb_array_elements(cars.reservations) WITH ORDINALITY AS t(elem, ord)
    WHERE t.elem->>'reservationId' <> $2::text
), updated_at = now()
WHERE id = $1
  AND reservations @> jsonb_build_array(jsonb_build_object('reservationId', $2::text))
`

type RemoveCarReservationRefParams struct {
	ID            uuid.UUID `json:"id"`
	ReservationID string    `json:"reservation_id"`
}

func (q *Queries) RemoveCarReservationRef(ctx context.Context, db DBTX, arg RemoveCarReservationRefParams) (int64, error) {
	result, err := db.Exec(ctx, removeCarReservationRef, arg.ID, arg.ReservationID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
