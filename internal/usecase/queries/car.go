package queries

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type CarReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	List(ctx context.Context, filter CarFilter, limit, offset int) ([]*CarView, error)
	FindRefsByCarIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]reservation.Ref, error)
}

type AvailabilityReadStore interface {
	HasBlockingOverlap(ctx context.Context, carID uuid.UUID, period reservation.Period, blocking reservation.StatusSet) (bool, error)
}

type CarQueries interface {
	GetCar(ctx context.Context, id uuid.UUID) (*CarView, error)
	ListCars(ctx context.Context, filter CarFilter, limit, offset int) ([]*CarView, error)
	// SummarizeAvailability returns one entry per known car; unknown ids are omitted.
	SummarizeAvailability(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]car.Availability, error)
	// IsAvailableForRange reports whether no reservation in blocking overlaps [pickup, ret].
	// A nil blocking set means the pending, active and upcoming statuses.
	IsAvailableForRange(ctx context.Context, carID uuid.UUID, pickup, ret string, blocking reservation.StatusSet) (*RangeAvailability, error)
}

type carQueriesImpl struct {
	cars         CarReadStore
	availability AvailabilityReadStore
	clock        clock.Clock
}

func NewCarQueries(cars CarReadStore, availability AvailabilityReadStore, clk clock.Clock) CarQueries {
	return &carQueriesImpl{cars: cars, availability: availability, clock: clk}
}

func (q *carQueriesImpl) GetCar(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.cars.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrCarNotFound)
	}
	view.Availability = car.Summarize(view.Reservations, q.clock.Now())
	return view, nil
}

func (q *carQueriesImpl) ListCars(ctx context.Context, filter CarFilter, limit, offset int) ([]*CarView, error) {
	if offset < 0 {
		offset = 0
	}
	views, err := q.cars.List(ctx, filter, ValidateLimit(limit), offset)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrCarNotFound)
	}

	// one instant for the whole page
	now := q.clock.Now()
	for _, v := range views {
		v.Availability = car.Summarize(v.Reservations, now)
	}
	return views, nil
}

func (q *carQueriesImpl) SummarizeAvailability(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]car.Availability, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]car.Availability{}, nil
	}
	refs, err := q.cars.FindRefsByCarIDs(ctx, dedupe(ids))
	if err != nil {
		return nil, mapReadErr(err, errs.ErrCarNotFound)
	}
	return car.SummarizeMany(refs, q.clock.Now()), nil
}

func (q *carQueriesImpl) IsAvailableForRange(ctx context.Context, carID uuid.UUID, pickup, ret string, blocking reservation.StatusSet) (*RangeAvailability, error) {
	period, err := reservation.ParsePeriod(pickup, ret)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	if _, err := q.cars.FindByID(ctx, carID); err != nil {
		return nil, mapReadErr(err, errs.ErrCarNotFound)
	}

	if blocking == nil {
		blocking = reservation.NewStatusSet(reservation.BlockingStatuses()...)
	}
	conflict, err := q.availability.HasBlockingOverlap(ctx, carID, period, blocking)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrCarNotFound)
	}

	return &RangeAvailability{
		CarID:     carID,
		PickupAt:  period.Pickup(),
		ReturnAt:  period.Return(),
		Available: !conflict,
	}, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mapReadErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrDependencyUnavailable)
	default:
		return err
	}
}
