//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCar(t *testing.T, db DBLike, carMake, carModel string) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO cars (id, make, model, year, daily_rate_cents) VALUES ($1, $2, $3, 2022, 5000)",
		carID, carMake, carModel)
	require.NoError(t, err)
	return carID
}

// CreateTestReservation inserts the reservation row and appends its ref to the car's cached list.
func CreateTestReservation(t *testing.T, db DBLike, carID uuid.UUID, pickup, ret time.Time, status string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	resID := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, car_id, customer_name, customer_email, customer_phone, pickup_at, return_at, status)
		VALUES ($1, $2, 'Test Customer', 'customer@example.com', '+15550100', $3, $4, $5)`,
		resID, carID, pickup, ret, status)
	require.NoError(t, err)

	ref, err := json.Marshal([]map[string]any{{
		"reservationId": resID,
		"pickupAt":      pickup.UTC(),
		"returnAt":      ret.UTC(),
		"status":        status,
	}})
	require.NoError(t, err)
	_, err = db.Exec(ctx, "UPDATE cars SET reservations = reservations || $2::jsonb WHERE id = $1", carID, ref)
	require.NoError(t, err)
	return resID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
