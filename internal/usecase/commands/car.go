package commands

import (
	"context"
	"log/slog"

	"car-rental/internal/domain/car"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/patch"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCarInput struct {
	Make           string `validate:"required,max=100"`
	Model          string `validate:"required,max=100"`
	Year           int    `validate:"required,gte=1900,lte=2100"`
	Color          string `validate:"max=50"`
	Category       string
	Seats          int `validate:"gte=0,lte=60"`
	Transmission   string
	FuelType       string
	Mileage        int   `validate:"gte=0"`
	DailyRateCents int64 `validate:"gte=0"`
	ImageURL       string
}

// UpdateCarInput is a partial update; nil fields keep their current value.
type UpdateCarInput struct {
	Make           *string
	Model          *string
	Year           *int
	Color          *string
	Category       *string
	Seats          *int
	Transmission   *string
	FuelType       *string
	Mileage        *int
	DailyRateCents *int64
	ImageURL       *string
	Status         *string
}

type CarCommands interface {
	CreateCar(ctx context.Context, input CreateCarInput) (uuid.UUID, error)
	UpdateCar(ctx context.Context, id uuid.UUID, input UpdateCarInput) error
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

type carUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	validator *inputValidator
}

func NewCarCommands(uow shared.UnitOfWork, clk clock.Clock) CarCommands {
	return &carUseCaseImpl{
		uow:       uow,
		clock:     clk,
		validator: newInputValidator(),
	}
}

func (uc *carUseCaseImpl) CreateCar(ctx context.Context, input CreateCarInput) (uuid.UUID, error) {
	if err := uc.validator.Struct(input); err != nil {
		return uuid.Nil, err
	}

	c, err := car.NewCar(car.Specs{
		Make:           input.Make,
		Model:          input.Model,
		Year:           input.Year,
		Color:          input.Color,
		Category:       car.Category(input.Category),
		Seats:          input.Seats,
		Transmission:   car.Transmission(input.Transmission),
		FuelType:       car.FuelType(input.FuelType),
		Mileage:        input.Mileage,
		DailyRateCents: input.DailyRateCents,
		ImageURL:       input.ImageURL,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Cars().Create(ctx, c)
	})
	if err != nil {
		return uuid.Nil, classifyTxErr(err)
	}

	slog.InfoContext(ctx, "car created", "car_id", c.ID())
	return c.ID(), nil
}

func (uc *carUseCaseImpl) UpdateCar(ctx context.Context, id uuid.UUID, input UpdateCarInput) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Cars().LockByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrCarNotFound)
		}

		cur := c.Specs()
		specs := car.Specs{
			Make:           patch.Coalesce(input.Make, cur.Make),
			Model:          patch.Coalesce(input.Model, cur.Model),
			Year:           patch.Coalesce(input.Year, cur.Year),
			Color:          patch.Coalesce(input.Color, cur.Color),
			Category:       patch.CoalesceAs(input.Category, cur.Category, func(s string) car.Category { return car.Category(s) }),
			Seats:          patch.Coalesce(input.Seats, cur.Seats),
			Transmission:   patch.CoalesceAs(input.Transmission, cur.Transmission, func(s string) car.Transmission { return car.Transmission(s) }),
			FuelType:       patch.CoalesceAs(input.FuelType, cur.FuelType, func(s string) car.FuelType { return car.FuelType(s) }),
			Mileage:        patch.Coalesce(input.Mileage, cur.Mileage),
			DailyRateCents: patch.Coalesce(input.DailyRateCents, cur.DailyRateCents),
			ImageURL:       patch.Coalesce(input.ImageURL, cur.ImageURL),
		}
		status := patch.CoalesceAs(input.Status, c.Status(), func(s string) car.FleetStatus { return car.FleetStatus(s) })

		if err := c.Update(specs, status, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		return tx.Cars().Update(ctx, c)
	})
	if err != nil {
		return classifyTxErr(err)
	}

	slog.InfoContext(ctx, "car updated", "car_id", id)
	return nil
}

// DeleteCar refuses while any blocking reservation is linked; history goes with the car.
func (uc *carUseCaseImpl) DeleteCar(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Cars().LockByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrCarNotFound)
		}
		if c.HasBlockingReservations() {
			return errs.ErrCarHasActiveReservations
		}
		return notFoundAs(tx.Cars().Delete(ctx, id), errs.ErrCarNotFound)
	})
	if err != nil {
		return classifyTxErr(err)
	}

	slog.InfoContext(ctx, "car deleted", "car_id", id)
	return nil
}
