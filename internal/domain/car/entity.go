package car

import (
	"errors"
	"strings"
	"time"

	"car-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrEmptyMake           = errors.New("car make cannot be empty")
	ErrEmptyModel          = errors.New("car model cannot be empty")
	ErrNameTooLong         = errors.New("car make or model is too long (max 100 characters)")
	ErrNegativeDailyRate   = errors.New("daily rate cannot be negative")
	ErrInvalidSeats        = errors.New("seats must be between 1 and 60")
	ErrNegativeMileage     = errors.New("mileage cannot be negative")
	ErrReservationRefExist = errors.New("reservation already linked to car")
	ErrReservationRefGone  = errors.New("reservation not linked to car")
)

const (
	MaxNameLength = 100
	DefaultSeats  = 4
)

type Specs struct {
	Make           string
	Model          string
	Year           int
	Color          string
	Category       Category
	Seats          int
	Transmission   Transmission
	FuelType       FuelType
	Mileage        int
	DailyRateCents int64
	ImageURL       string
}

type Car struct {
	id           uuid.UUID
	specs        Specs
	status       FleetStatus
	reservations []reservation.Ref
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCar applies fleet defaults (Sedan, 4 seats, Automatic, Gasoline) to unset fields.
func NewCar(specs Specs, now time.Time) (*Car, error) {
	specs = withDefaults(specs)
	if err := validateSpecs(specs); err != nil {
		return nil, err
	}
	return &Car{
		id:        uuid.New(),
		specs:     specs,
		status:    FleetAvailable,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCar(id uuid.UUID, specs Specs, status FleetStatus, refs []reservation.Ref, createdAt, updatedAt time.Time) *Car {
	return &Car{
		id:           id,
		specs:        specs,
		status:       status,
		reservations: refs,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func withDefaults(s Specs) Specs {
	s.Make = strings.TrimSpace(s.Make)
	s.Model = strings.TrimSpace(s.Model)
	if s.Category == "" {
		s.Category = CategorySedan
	}
	if s.Seats == 0 {
		s.Seats = DefaultSeats
	}
	if s.Transmission == "" {
		s.Transmission = TransmissionAutomatic
	}
	if s.FuelType == "" {
		s.FuelType = FuelGasoline
	}
	return s
}

func validateSpecs(s Specs) error {
	if s.Make == "" {
		return ErrEmptyMake
	}
	if s.Model == "" {
		return ErrEmptyModel
	}
	if len(s.Make) > MaxNameLength || len(s.Model) > MaxNameLength {
		return ErrNameTooLong
	}
	if s.DailyRateCents < 0 {
		return ErrNegativeDailyRate
	}
	if s.Seats < 1 || s.Seats > 60 {
		return ErrInvalidSeats
	}
	if s.Mileage < 0 {
		return ErrNegativeMileage
	}
	if !s.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !s.Transmission.IsValid() {
		return ErrInvalidTransmission
	}
	if !s.FuelType.IsValid() {
		return ErrInvalidFuelType
	}
	return nil
}

func (c *Car) Update(specs Specs, status FleetStatus, now time.Time) error {
	specs = withDefaults(specs)
	if err := validateSpecs(specs); err != nil {
		return err
	}
	if !status.IsValid() {
		return ErrInvalidFleetStatus
	}
	c.specs = specs
	c.status = status
	c.updatedAt = now
	return nil
}

// AttachReservation appends a ref, keeping insertion order.
func (c *Car) AttachReservation(ref reservation.Ref) error {
	if c.indexOf(ref.ReservationID) >= 0 {
		return ErrReservationRefExist
	}
	c.reservations = append(c.reservations, ref)
	return nil
}

func (c *Car) UpdateReservationStatus(id uuid.UUID, status reservation.Status) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrReservationRefGone
	}
	c.reservations[i].Status = status
	return nil
}

// ReplaceReservation rewrites a linked ref in place, keeping its position.
func (c *Car) ReplaceReservation(ref reservation.Ref) error {
	i := c.indexOf(ref.ReservationID)
	if i < 0 {
		return ErrReservationRefGone
	}
	c.reservations[i] = ref
	return nil
}

func (c *Car) DetachReservation(id uuid.UUID) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrReservationRefGone
	}
	c.reservations = append(c.reservations[:i], c.reservations[i+1:]...)
	return nil
}

func (c *Car) indexOf(id uuid.UUID) int {
	for i, ref := range c.reservations {
		if ref.ReservationID == id {
			return i
		}
	}
	return -1
}

// IsAvailableForRange checks the cached refs; a malformed range is never available.
func (c *Car) IsAvailableForRange(pickup, ret time.Time, blocking reservation.StatusSet) bool {
	if !pickup.Before(ret) {
		return false
	}
	return !HasConflict(c.reservations, reservation.ReconstructPeriod(pickup, ret), blocking)
}

func (c *Car) HasBlockingReservations() bool {
	for _, ref := range c.reservations {
		if ref.Status.IsBlocking() {
			return true
		}
	}
	return false
}

func (c *Car) Availability(now time.Time) Availability {
	return Summarize(c.reservations, now)
}

func (c *Car) ID() uuid.UUID        { return c.id }
func (c *Car) Specs() Specs         { return c.specs }
func (c *Car) Status() FleetStatus  { return c.status }
func (c *Car) CreatedAt() time.Time { return c.createdAt }
func (c *Car) UpdatedAt() time.Time { return c.updatedAt }

// Reservations returns a copy of the cached refs.
func (c *Car) Reservations() []reservation.Ref {
	out := make([]reservation.Ref, len(c.reservations))
	copy(out, c.reservations)
	return out
}
