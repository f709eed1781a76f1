//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID             uuid.UUID
	Make           string
	Model          string
	Year           int
	Category       car.Category
	Seats          int
	DailyRateCents int64
	Status         car.FleetStatus
	Refs           []reservation.Ref
	CreatedAt      time.Time
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:             uuid.New(),
		Make:           "Toyota",
		Model:          "Corolla",
		Year:           2022,
		Category:       car.CategorySedan,
		Seats:          5,
		DailyRateCents: 4500,
		Status:         car.FleetAvailable,
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) WithID(id uuid.UUID) *CarBuilder {
	b.ID = id
	return b
}

// WithReservation appends a ref covering [pickup, ret] in the given status.
func (b *CarBuilder) WithReservation(pickup, ret time.Time, status reservation.Status) *CarBuilder {
	b.Refs = append(b.Refs, reservation.Ref{
		ReservationID: uuid.New(),
		PickupAt:      pickup,
		ReturnAt:      ret,
		Status:        status,
	})
	return b
}

func (b *CarBuilder) specs() car.Specs {
	return car.Specs{
		Make:           b.Make,
		Model:          b.Model,
		Year:           b.Year,
		Category:       b.Category,
		Seats:          b.Seats,
		Transmission:   car.TransmissionAutomatic,
		FuelType:       car.FuelGasoline,
		DailyRateCents: b.DailyRateCents,
	}
}

func (b *CarBuilder) BuildDomain() *car.Car {
	refs := append([]reservation.Ref(nil), b.Refs...)
	return car.ReconstructCar(b.ID, b.specs(), b.Status, refs, b.CreatedAt, b.CreatedAt)
}

func (b *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Make:           b.Make,
		Model:          b.Model,
		Year:           b.Year,
		Category:       string(b.Category),
		Seats:          b.Seats,
		DailyRateCents: b.DailyRateCents,
	}
}

func (b *CarBuilder) BuildCreateInput() commands.CreateCarInput {
	return commands.CreateCarInput{
		Make:           b.Make,
		Model:          b.Model,
		Year:           b.Year,
		Category:       string(b.Category),
		Seats:          b.Seats,
		DailyRateCents: b.DailyRateCents,
	}
}

func (b *CarBuilder) BuildViewQuery() *queries.CarView {
	return &queries.CarView{
		ID:             b.ID,
		Make:           b.Make,
		Model:          b.Model,
		Year:           b.Year,
		Category:       string(b.Category),
		Seats:          b.Seats,
		Transmission:   string(car.TransmissionAutomatic),
		FuelType:       string(car.FuelGasoline),
		DailyRateCents: b.DailyRateCents,
		Status:         string(b.Status),
		Reservations:   append([]reservation.Ref(nil), b.Refs...),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
		Availability:   car.Availability{State: car.StateFullyAvailable},
	}
}
