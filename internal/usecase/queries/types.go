package queries

import (
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

// CarView represents read-optimized car data with its availability at read time
type CarView struct {
	ID             uuid.UUID
	Make           string
	Model          string
	Year           int
	Color          string
	Category       string
	Seats          int
	Transmission   string
	FuelType       string
	Mileage        int
	DailyRateCents int64
	Status         string
	ImageURL       string
	Reservations   []reservation.Ref
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Availability   car.Availability
}

type CarFilter struct {
	Category *string
	Status   *string
}

// ReservationView represents read-optimized reservation data joined with its car
type ReservationView struct {
	ID              uuid.UUID
	CarID           uuid.UUID
	CarMake         string
	CarModel        string
	UserID          *uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	PickupAt        time.Time
	ReturnAt        time.Time
	Status          string
	PaymentStatus   string
	AmountCents     int64
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReservationFilter narrows listings; From/To select reservations whose range intersects [From, To].
type ReservationFilter struct {
	Status *string
	CarID  *uuid.UUID
	UserID *uuid.UUID
	From   *time.Time
	To     *time.Time
}

type RangeAvailability struct {
	CarID     uuid.UUID
	PickupAt  time.Time
	ReturnAt  time.Time
	Available bool
}
