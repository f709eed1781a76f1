package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Cars struct {
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
	Reservations   []byte             `json:"reservations"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Reservations struct {
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
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID         uuid.UUID          `json:"id"`
	Kind       string             `json:"kind"`
	Topic      string             `json:"topic"`
	MessageKey string             `json:"message_key"`
	Payload    []byte             `json:"payload"`
	RunAt      pgtype.Timestamptz `json:"run_at"`
	Attempts   int32              `json:"attempts"`
	Status     string             `json:"status"`
	LastError  pgtype.Text        `json:"last_error"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}
