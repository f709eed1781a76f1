//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/infra/memstore"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"
	"car-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReservations(t *testing.T, store *memstore.Store, n int, userID *uuid.UUID) (uuid.UUID, []uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildDomain()
	ids := make([]uuid.UUID, 0, n)

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Cars().Create(ctx, c); err != nil {
			return err
		}
		for i := range n {
			start := day(1).AddDate(0, 0, i*3)
			res := builder.NewReservationBuilder().
				WithCarID(c.ID()).
				WithPeriod(start, start.Add(48*time.Hour)).
				With(func(b *builder.ReservationBuilder) {
					b.CreatedAt = day(1).Add(time.Duration(i) * time.Minute)
					b.UserID = userID
				}).
				BuildDomain()
			if err := tx.Reservations().Create(ctx, res); err != nil {
				return err
			}
			if err := tx.Cars().AppendReservationRef(ctx, c.ID(), res.Ref()); err != nil {
				return err
			}
			ids = append(ids, res.ID())
		}
		return nil
	})
	require.NoError(t, err)
	return c.ID(), ids
}

func TestReservationQueriesPaginates(t *testing.T) {
	store := memstore.New()
	_, ids := seedReservations(t, store, 5, nil)
	q := queries.NewReservationQueries(store.ReservationReads())
	ctx := context.Background()

	var seen []uuid.UUID
	var cursor *queries.Cursor
	for page := 0; ; page++ {
		items, next, err := q.List(ctx, queries.ReservationFilter{}, cursor, 2)
		require.NoError(t, err)
		for _, it := range items {
			seen = append(seen, it.ID)
		}
		if next == nil {
			break
		}
		require.Less(t, page, 5, "pagination did not terminate")
		cursor = next
	}

	// newest first
	want := []uuid.UUID{ids[4], ids[3], ids[2], ids[1], ids[0]}
	assert.Equal(t, want, seen)
}

func TestReservationQueriesFilters(t *testing.T) {
	store := memstore.New()
	userID := uuid.New()
	carID, _ := seedReservations(t, store, 3, &userID)
	q := queries.NewReservationQueries(store.ReservationReads())
	ctx := context.Background()

	t.Run("by car", func(t *testing.T) {
		items, _, err := q.List(ctx, queries.ReservationFilter{CarID: &carID}, nil, 10)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("by date window", func(t *testing.T) {
		// reservations cover Jan 1-3, Jan 4-6 and Jan 7-9
		from, to := day(3), day(4)
		items, _, err := q.List(ctx, queries.ReservationFilter{From: &from, To: &to}, nil, 10)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("by user", func(t *testing.T) {
		items, _, err := q.ListByUser(ctx, userID, nil, 10)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		items, _, err = q.ListByUser(ctx, uuid.New(), nil, 10)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("unknown status", func(t *testing.T) {
		bad := "archived"
		_, _, err := q.List(ctx, queries.ReservationFilter{Status: &bad}, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidStatus), err)
	})

	t.Run("reversed window", func(t *testing.T) {
		from, to := day(5), day(4)
		_, _, err := q.List(ctx, queries.ReservationFilter{From: &from, To: &to}, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidRange), err)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		_, _, err := q.List(ctx, queries.ReservationFilter{}, &queries.Cursor{After: "%%%"}, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput), err)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound), err)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 30, 0, 123456789, time.UTC)
	id := uuid.New()

	ks, err := (&queries.Cursor{After: queries.EncodeAfterCursor(at, id)}).Keyset()
	require.NoError(t, err)
	assert.True(t, at.Truncate(time.Microsecond).Equal(ks.CreatedAt))
	assert.Equal(t, id, ks.ID)

	ks, err = (*queries.Cursor)(nil).Keyset()
	require.NoError(t, err)
	assert.Nil(t, ks)
}
