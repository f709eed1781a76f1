//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/usecase/queries"
	readstoremock "car-rental/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type mockDBTX struct{}

func (m *mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func carRow(id uuid.UUID, refs string) query.Cars {
	return query.Cars{
		ID:             id,
		Make:           "Toyota",
		Model:          "Corolla",
		Year:           2022,
		Color:          pgtype.Text{String: "Blue", Valid: true},
		Category:       "Sedan",
		Seats:          5,
		Transmission:   "Automatic",
		FuelType:       "Gasoline",
		DailyRateCents: 4500,
		Status:         "available",
		Reservations:   []byte(refs),
		CreatedAt:      pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

// =============================================================================
// FindByID
// =============================================================================

func TestCarReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()
	resID := uuid.New()

	testCases := []struct {
		name       string
		row        query.Cars
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: view with refs",
			row:  carRow(carID, `[{"reservationId":"`+resID.String()+`","pickupAt":"2025-03-01T00:00:00Z","returnAt":"2025-03-04T00:00:00Z","status":"upcoming"}]`),
		},
		{
			name:       "error: not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: connection lost",
			queryErr:   errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockCarReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewCarReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetCarByID(ctx, mockDB, carID).Return(tc.row, tc.queryErr)

			view, err := store.FindByID(ctx, carID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Blue", view.Color)
			assert.Equal(t, 2022, view.Year)
			require.Len(t, view.Reservations, 1)
			assert.Equal(t, resID, view.Reservations[0].ReservationID)
		})
	}
}

// =============================================================================
// List
// =============================================================================

func TestCarReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: filters and clamped paging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCarReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewCarReadStore(mockQueries, mockDB)

		category := "SUV"
		want := query.ListCarsParams{
			Category: pgtype.Text{String: "SUV", Valid: true},
			Limit:    queries.MaxListLimit,
			Offset:   0,
		}
		mockQueries.EXPECT().ListCars(ctx, mockDB, want).
			Return([]query.Cars{carRow(uuid.New(), `[]`), carRow(uuid.New(), ``)}, nil)

		views, err := store.List(ctx, queries.CarFilter{Category: &category}, 10_000, -5)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Empty(t, views[1].Reservations)
	})

	t.Run("error: one bad row fails the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCarReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewCarReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListCars(ctx, mockDB, gomock.Any()).
			Return([]query.Cars{carRow(uuid.New(), `[]`), carRow(uuid.New(), `oops`)}, nil)

		_, err := store.List(ctx, queries.CarFilter{}, 20, 0)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// FindRefsByCarIDs
// =============================================================================

func TestCarReadStore_FindRefsByCarIDs(t *testing.T) {
	ctx := context.Background()
	a, b, missing := uuid.New(), uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCarReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewCarReadStore(mockQueries, mockDB)

	ids := []uuid.UUID{a, b, missing}
	mockQueries.EXPECT().GetCarReservationRefsByIDs(ctx, mockDB, ids).Return([]query.GetCarReservationRefsByIDsRow{
		{ID: a, Reservations: []byte(`[{"reservationId":"` + uuid.NewString() + `","pickupAt":"2025-03-01T00:00:00Z","returnAt":"2025-03-04T00:00:00Z","status":"active"}]`)},
		{ID: b, Reservations: []byte(`[]`)},
	}, nil)

	got, err := store.FindRefsByCarIDs(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, got[a], 1)
	assert.Contains(t, got, b)
	assert.NotContains(t, got, missing)
}
