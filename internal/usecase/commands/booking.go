package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// stage names the last step a booking attempt reached.
type stage string

const (
	stageStarted            stage = "started"
	stageValidated          stage = "validated"
	stageConflictChecked    stage = "conflict_checked"
	stageReservationCreated stage = "reservation_created"
	stageResourceLinked     stage = "resource_linked"
	stageCommitted          stage = "committed"
	stageAborted            stage = "aborted"
)

const defaultReservationsTopic = "car-rental.reservations"

type CreateReservationInput struct {
	CarID           string     `validate:"required,uuid"`
	UserID          *uuid.UUID `validate:"-"`
	CustomerName    string     `validate:"required,max=200"`
	CustomerEmail   string     `validate:"required,email,max=320"`
	CustomerPhone   string     `validate:"required,max=50"`
	CustomerAddress string     `validate:"max=500"`
	PickupAt        string     `validate:"required"`
	ReturnAt        string     `validate:"required"`
	AmountCents     int64      `validate:"gte=0"`
	Notes           string     `validate:"max=1000"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
}

// UpdateReservationInput carries a partial edit; nil fields keep their stored value.
// PickupAt and ReturnAt may be sent alone, the other end is taken from the stored period.
type UpdateReservationInput struct {
	CustomerName    *string `validate:"omitempty,max=200"`
	CustomerEmail   *string `validate:"omitempty,email,max=320"`
	CustomerPhone   *string `validate:"omitempty,max=50"`
	CustomerAddress *string `validate:"omitempty,max=500"`
	PickupAt        *string `validate:"-"`
	ReturnAt        *string `validate:"-"`
	AmountCents     *int64  `validate:"omitempty,gte=0"`
	Notes           *string `validate:"omitempty,max=1000"`
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*CreateReservationResult, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*queries.ReservationView, error)
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) (*queries.ReservationView, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	validator *inputValidator
	topic     string
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, topic string) BookingCommands {
	if topic == "" {
		topic = defaultReservationsTopic
	}
	return &bookingUseCaseImpl{
		uow:       uow,
		clock:     clk,
		validator: newInputValidator(),
		topic:     topic,
	}
}

func (uc *bookingUseCaseImpl) CreateReservation(ctx context.Context, input CreateReservationInput) (*CreateReservationResult, error) {
	input = normalizeInput(input)
	carID, period, amount, err := uc.validateInput(input)
	if err != nil {
		slog.DebugContext(ctx, "reservation rejected", "stage", stageStarted, "error", err.Error())
		return nil, err
	}
	reached := stageValidated

	customer := reservation.Customer{
		Name:    input.CustomerName,
		Email:   input.CustomerEmail,
		Phone:   input.CustomerPhone,
		Address: input.CustomerAddress,
	}

	var (
		created *reservation.Reservation
		bound   *car.Car
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// fresh attempt on every unit-of-work retry
		reached = stageValidated

		c, err := tx.Cars().LockByID(ctx, carID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCarNotFound)
			}
			return err
		}

		blocking := reservation.NewStatusSet(reservation.BlockingStatuses()...)
		conflict, err := tx.Reservations().HasBlockingOverlap(ctx, carID, period, blocking, uuid.Nil)
		if err != nil {
			return err
		}
		if conflict {
			return errs.ErrReservationConflict
		}
		reached = stageConflictChecked

		now := uc.clock.Now()
		res := reservation.NewReservation(carID, input.UserID, period, customer, amount, reservation.NewNote(input.Notes), now)
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		reached = stageReservationCreated

		if err := tx.Cars().AppendReservationRef(ctx, carID, res.Ref()); err != nil {
			return err
		}
		reached = stageResourceLinked

		if err := uc.enqueue(ctx, tx, shared.JobKindReservationCreated, res); err != nil {
			return err
		}

		created = res
		bound = c
		return nil
	})
	if err != nil {
		mapped := classifyTxErr(err)
		slog.WarnContext(ctx, "reservation aborted",
			"stage", reached,
			"next", stageAborted,
			"car_id", carID,
			"error", err.Error())
		return nil, mapped
	}

	slog.InfoContext(ctx, "reservation created",
		"stage", stageCommitted,
		"reservation_id", created.ID(),
		"car_id", carID)

	return &CreateReservationResult{Reservation: toReservationView(created, bound)}, nil
}

func (uc *bookingUseCaseImpl) validateInput(input CreateReservationInput) (uuid.UUID, reservation.Period, reservation.Money, error) {
	if err := uc.validator.Struct(input); err != nil {
		return uuid.Nil, reservation.Period{}, reservation.Money{}, err
	}
	carID, err := uuid.Parse(input.CarID)
	if err != nil {
		return uuid.Nil, reservation.Period{}, reservation.Money{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	period, err := reservation.ParsePeriod(input.PickupAt, input.ReturnAt)
	if err != nil {
		return uuid.Nil, reservation.Period{}, reservation.Money{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	amount, err := reservation.NewMoney(input.AmountCents)
	if err != nil {
		return uuid.Nil, reservation.Period{}, reservation.Money{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	return carID, period, amount, nil
}

func (uc *bookingUseCaseImpl) UpdateReservationStatus(ctx context.Context, id uuid.UUID, raw string) error {
	status, err := reservation.ParseStatus(strings.TrimSpace(raw))
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidStatus)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		if status.IsBlocking() && !res.Status().IsBlocking() {
			blocking := reservation.NewStatusSet(reservation.BlockingStatuses()...)
			conflict, err := tx.Reservations().HasBlockingOverlap(ctx, res.CarID(), res.Period(), blocking, res.ID())
			if err != nil {
				return err
			}
			if conflict {
				return errs.ErrReservationConflict
			}
		}

		now := uc.clock.Now()
		if err := res.ChangeStatus(status, now); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatus)
		}
		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), status, now); err != nil {
			return err
		}
		if err := tx.Cars().UpdateReservationRefStatus(ctx, res.CarID(), res.ID(), status); err != nil {
			return err
		}
		return uc.enqueue(ctx, tx, shared.JobKindReservationStatusChanged, res)
	})
	if err != nil {
		return classifyTxErr(err)
	}

	slog.InfoContext(ctx, "reservation status updated", "reservation_id", id, "status", status)
	return nil
}

// UpdateReservation edits customer details, amount, notes and the rental period. A new
// period is checked against the car's other blocking reservations and written to the
// car's ref in the same transaction.
func (uc *bookingUseCaseImpl) UpdateReservation(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*queries.ReservationView, error) {
	input = normalizeUpdateInput(input)
	if err := uc.validator.Struct(input); err != nil {
		return nil, err
	}
	if err := requireNotBlank(input); err != nil {
		return nil, err
	}
	var amount *reservation.Money
	if input.AmountCents != nil {
		m, err := reservation.NewMoney(*input.AmountCents)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		amount = &m
	}

	var (
		updated *reservation.Reservation
		bound   *car.Car
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		c, err := tx.Cars().LockByID(ctx, res.CarID())
		if err != nil {
			return notFoundAs(err, errs.ErrCarNotFound)
		}

		now := uc.clock.Now()
		if input.PickupAt != nil || input.ReturnAt != nil {
			period, err := mergePeriod(res.Period(), input.PickupAt, input.ReturnAt)
			if err != nil {
				return err
			}
			if res.Status().IsBlocking() {
				blocking := reservation.NewStatusSet(reservation.BlockingStatuses()...)
				conflict, err := tx.Reservations().HasBlockingOverlap(ctx, res.CarID(), period, blocking, res.ID())
				if err != nil {
					return err
				}
				if conflict {
					return errs.ErrReservationConflict
				}
			}
			res.Reschedule(period, now)
		}
		res.Revise(mergeCustomer(res.Customer(), input), pickMoney(res.Amount(), amount), pickNote(res.Note(), input.Notes), now)

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		if err := tx.Cars().ReplaceReservationRef(ctx, res.CarID(), res.Ref()); err != nil {
			return err
		}
		if err := uc.enqueue(ctx, tx, shared.JobKindReservationUpdated, res); err != nil {
			return err
		}
		updated = res
		bound = c
		return nil
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	slog.InfoContext(ctx, "reservation updated", "reservation_id", id)
	return toReservationView(updated, bound), nil
}

// UpdatePaymentStatus records a payment outcome. A paid reservation becomes active, so it
// must not collide with another blocking reservation of the same car.
func (uc *bookingUseCaseImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, raw string) (*queries.ReservationView, error) {
	ps, err := reservation.ParsePaymentStatus(strings.TrimSpace(raw))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPayment)
	}

	var (
		updated *reservation.Reservation
		bound   *car.Car
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		c, err := tx.Cars().LockByID(ctx, res.CarID())
		if err != nil {
			return notFoundAs(err, errs.ErrCarNotFound)
		}

		wasBlocking := res.Status().IsBlocking()
		if err := res.ChangePaymentStatus(ps, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidPayment)
		}
		if res.Status().IsBlocking() && !wasBlocking {
			blocking := reservation.NewStatusSet(reservation.BlockingStatuses()...)
			conflict, err := tx.Reservations().HasBlockingOverlap(ctx, res.CarID(), res.Period(), blocking, res.ID())
			if err != nil {
				return err
			}
			if conflict {
				return errs.ErrReservationConflict
			}
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		if err := tx.Cars().UpdateReservationRefStatus(ctx, res.CarID(), res.ID(), res.Status()); err != nil {
			return err
		}
		if err := uc.enqueue(ctx, tx, shared.JobKindPaymentStatusChanged, res); err != nil {
			return err
		}
		updated = res
		bound = c
		return nil
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	slog.InfoContext(ctx, "payment status updated", "reservation_id", id, "payment_status", ps)
	return toReservationView(updated, bound), nil
}

func (uc *bookingUseCaseImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, res.ID()); err != nil {
			return err
		}
		if err := tx.Cars().RemoveReservationRef(ctx, res.CarID(), res.ID()); err != nil {
			return err
		}
		return uc.enqueue(ctx, tx, shared.JobKindReservationDeleted, res)
	})
	if err != nil {
		return classifyTxErr(err)
	}

	slog.InfoContext(ctx, "reservation deleted", "reservation_id", id)
	return nil
}

// lockReservation takes the owning car's lock and then re-reads the reservation under it.
func (uc *bookingUseCaseImpl) lockReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrReservationNotFound)
	}
	if _, err := tx.Cars().LockByID(ctx, res.CarID()); err != nil {
		return nil, notFoundAs(err, errs.ErrCarNotFound)
	}
	res, err = tx.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrReservationNotFound)
	}
	return res, nil
}

func (uc *bookingUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, res *reservation.Reservation) error {
	now := uc.clock.Now()
	payload, err := json.Marshal(shared.ReservationEvent{
		ReservationID: res.ID(),
		CarID:         res.CarID(),
		UserID:        res.UserID(),
		Status:        res.Status().String(),
		PickupAt:      res.Period().Pickup(),
		ReturnAt:      res.Period().Return(),
		CustomerEmail: res.Customer().Email,
		OccurredAt:    now,
	})
	if err != nil {
		return errs.Wrap(err, "encode reservation event")
	}

	return tx.Notifications().CreateJob(ctx, shared.NewJob{
		Kind:    kind,
		Topic:   uc.topic,
		Key:     res.CarID().String(),
		Payload: payload,
		RunAt:   now,
	})
}

func normalizeInput(in CreateReservationInput) CreateReservationInput {
	in.CarID = strings.TrimSpace(in.CarID)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerAddress = strings.TrimSpace(in.CustomerAddress)
	in.PickupAt = strings.TrimSpace(in.PickupAt)
	in.ReturnAt = strings.TrimSpace(in.ReturnAt)
	return in
}

func normalizeUpdateInput(in UpdateReservationInput) UpdateReservationInput {
	for _, f := range []**string{&in.CustomerName, &in.CustomerEmail, &in.CustomerPhone, &in.CustomerAddress, &in.PickupAt, &in.ReturnAt} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
	return in
}

// requireNotBlank rejects an edit that clears a field a reservation cannot exist without.
func requireNotBlank(in UpdateReservationInput) error {
	var out ValidationErrors
	for name, f := range map[string]*string{
		"CustomerName":  in.CustomerName,
		"CustomerEmail": in.CustomerEmail,
		"CustomerPhone": in.CustomerPhone,
		"PickupAt":      in.PickupAt,
		"ReturnAt":      in.ReturnAt,
	} {
		if f != nil && *f == "" {
			out = append(out, ValidationError{Field: name, Message: name + " is required"})
		}
	}
	if len(out) > 0 {
		return errs.Mark(out, errs.ErrMissingFields)
	}
	return nil
}

func mergePeriod(current reservation.Period, pickup, ret *string) (reservation.Period, error) {
	p, r := current.Pickup(), current.Return()
	var err error
	if pickup != nil {
		if p, err = reservation.ParseInstant(*pickup); err != nil {
			return reservation.Period{}, errs.Mark(err, errs.ErrInvalidRange)
		}
	}
	if ret != nil {
		if r, err = reservation.ParseInstant(*ret); err != nil {
			return reservation.Period{}, errs.Mark(err, errs.ErrInvalidRange)
		}
	}
	period, err := reservation.NewPeriod(p, r)
	if err != nil {
		return reservation.Period{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	return period, nil
}

func mergeCustomer(c reservation.Customer, in UpdateReservationInput) reservation.Customer {
	if in.CustomerName != nil {
		c.Name = *in.CustomerName
	}
	if in.CustomerEmail != nil {
		c.Email = *in.CustomerEmail
	}
	if in.CustomerPhone != nil {
		c.Phone = *in.CustomerPhone
	}
	if in.CustomerAddress != nil {
		c.Address = *in.CustomerAddress
	}
	return c
}

func pickMoney(current reservation.Money, next *reservation.Money) reservation.Money {
	if next == nil {
		return current
	}
	return *next
}

func pickNote(current reservation.Note, next *string) reservation.Note {
	if next == nil {
		return current
	}
	return reservation.NewNote(*next)
}

func notFoundAs(err error, category error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, category)
	}
	return err
}

// classifyTxErr maps a failed unit of work to exactly one caller-facing category.
func classifyTxErr(err error) error {
	for _, known := range []error{
		errs.ErrCarNotFound,
		errs.ErrReservationNotFound,
		errs.ErrReservationConflict,
		errs.ErrInvalidStatus,
		errs.ErrInvalidPayment,
		errs.ErrInvalidRange,
		errs.ErrInvalidInput,
		errs.ErrCarHasActiveReservations,
	} {
		if errs.Is(err, known) {
			return err
		}
	}

	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrReservationConflict)
	case infra.IsKind(err, infra.KindUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return errs.Mark(err, errs.ErrDependencyUnavailable)
	default:
		return errs.MarkWrap(err, errs.ErrTransactionFailed, "reservation write rolled back")
	}
}

func toReservationView(res *reservation.Reservation, c *car.Car) *queries.ReservationView {
	cust := res.Customer()
	view := &queries.ReservationView{
		ID:              res.ID(),
		CarID:           res.CarID(),
		UserID:          res.UserID(),
		CustomerName:    cust.Name,
		CustomerEmail:   cust.Email,
		CustomerPhone:   cust.Phone,
		CustomerAddress: cust.Address,
		PickupAt:        res.Period().Pickup(),
		ReturnAt:        res.Period().Return(),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		AmountCents:     res.Amount().Cents(),
		Notes:           res.Note().String(),
		CreatedAt:       res.CreatedAt(),
		UpdatedAt:       res.UpdatedAt(),
	}
	if c != nil {
		view.CarMake = c.Specs().Make
		view.CarModel = c.Specs().Model
	}
	return view
}
