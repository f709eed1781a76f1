//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/infra/memstore"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"
	"car-rental/tests/common/builder"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

type CarQueriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	q     queries.CarQueries
}

func (s *CarQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.q = queries.NewCarQueries(s.store.CarReads(), s.store.ReservationReads(), clock.NewMockClock(day(5)))
}

func TestCarQueriesSuite(t *testing.T) {
	suite.Run(t, new(CarQueriesTestSuite))
}

// seed writes the car together with reservation rows matching its refs.
func (s *CarQueriesTestSuite) seed(b *builder.CarBuilder) uuid.UUID {
	c := builder.NewCarBuilder().WithID(b.ID).BuildDomain()
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Cars().Create(ctx, c); err != nil {
			return err
		}
		for _, ref := range b.Refs {
			res := builder.NewReservationBuilder().
				WithCarID(b.ID).
				WithPeriod(ref.PickupAt, ref.ReturnAt).
				WithStatus(ref.Status).
				With(func(rb *builder.ReservationBuilder) { rb.ID = ref.ReservationID }).
				BuildDomain()
			if err := tx.Reservations().Create(ctx, res); err != nil {
				return err
			}
			if err := tx.Cars().AppendReservationRef(ctx, b.ID, ref); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)
	return b.ID
}

func (s *CarQueriesTestSuite) TestGetCarComputesAvailability() {
	id := s.seed(builder.NewCarBuilder().WithReservation(day(1), day(10), reservation.StatusActive))

	view, err := s.q.GetCar(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(car.StateBooked, view.Availability.State)
	s.Equal(5, *view.Availability.DaysRemaining)

	_, err = s.q.GetCar(s.ctx, uuid.New())
	s.True(errs.Is(err, errs.ErrCarNotFound), err)
}

func (s *CarQueriesTestSuite) TestListCars() {
	s.seed(builder.NewCarBuilder())
	s.seed(builder.NewCarBuilder().WithReservation(day(20), day(25), reservation.StatusPending))

	views, err := s.q.ListCars(s.ctx, queries.CarFilter{}, 10, 0)
	s.Require().NoError(err)
	s.Len(views, 2)

	states := map[car.State]int{}
	for _, v := range views {
		states[v.Availability.State]++
	}
	s.Equal(1, states[car.StateFullyAvailable])
	s.Equal(1, states[car.StateAvailableUntilReservation])

	views, err = s.q.ListCars(s.ctx, queries.CarFilter{}, 10, 5)
	s.Require().NoError(err)
	s.Empty(views)

	suv := "SUV"
	views, err = s.q.ListCars(s.ctx, queries.CarFilter{Category: &suv}, 10, 0)
	s.Require().NoError(err)
	s.Empty(views)
}

func (s *CarQueriesTestSuite) TestSummarizeAvailability() {
	booked := s.seed(builder.NewCarBuilder().WithReservation(day(1), day(10), reservation.StatusActive))
	future := s.seed(builder.NewCarBuilder().WithReservation(day(20), day(25), reservation.StatusPending))
	history := s.seed(builder.NewCarBuilder().
		WithReservation(day(1), day(3), reservation.StatusCompleted).
		WithReservation(day(4), day(8), reservation.StatusCancelled))
	unknown := uuid.New()

	got, err := s.q.SummarizeAvailability(s.ctx, []uuid.UUID{booked, future, history, unknown, booked})
	s.Require().NoError(err)

	s.Len(got, 3)
	s.Equal(car.StateBooked, got[booked].State)
	s.Equal(5, *got[booked].DaysRemaining)
	s.Equal(car.StateAvailableUntilReservation, got[future].State)
	s.Equal(15, *got[future].DaysAvailable)
	s.Equal(car.StateFullyAvailable, got[history].State)
	s.NotContains(got, unknown)

	empty, err := s.q.SummarizeAvailability(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *CarQueriesTestSuite) TestIsAvailableForRange() {
	id := s.seed(builder.NewCarBuilder().
		WithReservation(day(10), day(15), reservation.StatusPending).
		WithReservation(day(20), day(22), reservation.StatusCancelled))

	cases := []struct {
		name      string
		pickup    string
		ret       string
		available bool
	}{
		{"before the booking", "2025-01-01", "2025-01-09", true},
		{"touching the pickup day", "2025-01-05", "2025-01-10", false},
		{"inside the booking", "2025-01-11", "2025-01-12", false},
		{"after the booking", "2025-01-16", "2025-01-19", true},
		{"over a cancelled booking", "2025-01-20", "2025-01-22", true},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, err := s.q.IsAvailableForRange(s.ctx, id, tc.pickup, tc.ret, nil)
			s.Require().NoError(err)
			s.Equal(tc.available, got.Available)
			s.Equal(id, got.CarID)
		})
	}

	_, err := s.q.IsAvailableForRange(s.ctx, id, "2025-01-12", "2025-01-11", nil)
	s.True(errs.Is(err, errs.ErrInvalidRange), err)

	_, err = s.q.IsAvailableForRange(s.ctx, uuid.New(), "2025-01-01", "2025-01-02", nil)
	s.True(errs.Is(err, errs.ErrCarNotFound), err)
}

func (s *CarQueriesTestSuite) TestIsAvailableForRangeWithCustomStatuses() {
	id := s.seed(builder.NewCarBuilder().
		WithReservation(day(10), day(15), reservation.StatusPending).
		WithReservation(day(20), day(22), reservation.StatusCancelled))

	cancelledOnly := reservation.NewStatusSet(reservation.StatusCancelled)

	got, err := s.q.IsAvailableForRange(s.ctx, id, "2025-01-21", "2025-01-23", cancelledOnly)
	s.Require().NoError(err)
	s.False(got.Available)

	got, err = s.q.IsAvailableForRange(s.ctx, id, "2025-01-11", "2025-01-12", cancelledOnly)
	s.Require().NoError(err)
	s.True(got.Available)

	got, err = s.q.IsAvailableForRange(s.ctx, id, "2025-01-11", "2025-01-12", reservation.NewStatusSet())
	s.Require().NoError(err)
	s.True(got.Available)
}

func TestCarQueriesMapsStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	cars := queriesmock.NewMockCarReadStore(ctrl)
	availability := queriesmock.NewMockAvailabilityReadStore(ctrl)
	q := queries.NewCarQueries(cars, availability, clock.NewMockClock(day(5)))

	down := infra.NewRepoErr(infra.KindUnavailable, "connection refused")
	cars.EXPECT().FindRefsByCarIDs(gomock.Any(), gomock.Any()).Return(nil, down)

	_, err := q.SummarizeAvailability(context.Background(), []uuid.UUID{uuid.New()})
	if !errs.Is(err, errs.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}

func TestListCarsClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cars := queriesmock.NewMockCarReadStore(ctrl)
	q := queries.NewCarQueries(cars, queriesmock.NewMockAvailabilityReadStore(ctrl), clock.NewMockClock(day(5)))

	cars.EXPECT().List(gomock.Any(), queries.CarFilter{}, queries.MaxListLimit, 0).Return([]*queries.CarView{}, nil)

	_, err := q.ListCars(context.Background(), queries.CarFilter{}, 10000, -3)
	if err != nil {
		t.Fatal(err)
	}
}
