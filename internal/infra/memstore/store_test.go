//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/infra/memstore"
	"car-rental/internal/usecase/shared"
	"car-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func newStoreWithCar(t *testing.T) (*memstore.Store, *builder.CarBuilder) {
	t.Helper()
	store := memstore.New()
	b := builder.NewCarBuilder()
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Cars().Create(ctx, b.BuildDomain())
	}))
	return store, b
}

func TestWithinRollsBackOnError(t *testing.T) {
	store, b := newStoreWithCar(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res := builder.NewReservationBuilder().WithCarID(b.ID).BuildDomain()
		require.NoError(t, tx.Reservations().Create(ctx, res))
		require.NoError(t, tx.Cars().AppendReservationRef(ctx, b.ID, res.Ref()))
		require.NoError(t, tx.Notifications().CreateJob(ctx, shared.NewJob{Kind: "k", Topic: "t", Key: "x", RunAt: day(1)}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	view, err := store.CarReads().FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Reservations)
	assert.Empty(t, store.Jobs().Snapshot())
}

func TestCommitRejectsOverlappingBlockingRows(t *testing.T) {
	store, b := newStoreWithCar(t)
	ctx := context.Background()

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		first := builder.NewReservationBuilder().WithCarID(b.ID).WithPeriod(day(10), day(15)).BuildDomain()
		second := builder.NewReservationBuilder().WithCarID(b.ID).WithPeriod(day(15), day(18)).BuildDomain()
		if err := tx.Reservations().Create(ctx, first); err != nil {
			return err
		}
		return tx.Reservations().Create(ctx, second)
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict), err)
}

func TestCommitAllowsOverlapWithCancelled(t *testing.T) {
	store, b := newStoreWithCar(t)
	ctx := context.Background()

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		first := builder.NewReservationBuilder().WithCarID(b.ID).WithStatus(reservation.StatusCancelled).BuildDomain()
		second := builder.NewReservationBuilder().WithCarID(b.ID).BuildDomain()
		if err := tx.Reservations().Create(ctx, first); err != nil {
			return err
		}
		return tx.Reservations().Create(ctx, second)
	})
	assert.NoError(t, err)
}

func TestLockHonoursContext(t *testing.T) {
	store, b := newStoreWithCar(t)

	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Cars().LockByID(ctx, b.ID); err != nil {
				return err
			}
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Cars().LockByID(ctx, b.ID)
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindUnavailable), err)

	close(release)
	require.NoError(t, <-done)
}

func TestLockByIDRefreshesRowsReadBeforeTheLock(t *testing.T) {
	store, b := newStoreWithCar(t)
	ctx := context.Background()

	res := builder.NewReservationBuilder().WithCarID(b.ID).BuildDomain()
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		return tx.Cars().AppendReservationRef(ctx, b.ID, res.Ref())
	}))

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reservations().FindByID(ctx, res.ID()); err != nil {
			return err
		}

		// another unit of work deletes the row before this one takes the car lock
		require.NoError(t, store.Within(ctx, func(ctx context.Context, other shared.Tx) error {
			if _, err := other.Cars().LockByID(ctx, b.ID); err != nil {
				return err
			}
			if err := other.Reservations().Delete(ctx, res.ID()); err != nil {
				return err
			}
			return other.Cars().RemoveReservationRef(ctx, b.ID, res.ID())
		}))

		c, err := tx.Cars().LockByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, c.Reservations())

		_, err = tx.Reservations().FindByID(ctx, res.ID())
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound), err)
}

func TestReservationCreateRequiresCar(t *testing.T) {
	store := memstore.New()

	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, builder.NewReservationBuilder().BuildDomain())
	})
	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated), err)
}

func TestJobsLifecycle(t *testing.T) {
	store, _ := newStoreWithCar(t)
	ctx := context.Background()

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().CreateJob(ctx, shared.NewJob{Kind: "a", Topic: "t", Key: "1", RunAt: day(1)}); err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, shared.NewJob{Kind: "b", Topic: "t", Key: "2", RunAt: day(9)})
	}))

	jobs := store.Jobs()
	due, err := jobs.ClaimDue(ctx, day(5), day(0), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "a", due[0].Kind)
	assert.Equal(t, 1, due[0].Attempts)

	// claimed jobs are not handed out twice
	again, err := jobs.ClaimDue(ctx, day(5), day(0), 10)
	require.NoError(t, err)
	assert.Empty(t, again)

	require.NoError(t, jobs.MarkRetry(ctx, due[0].ID, "broker down", day(6)))
	retried, err := jobs.ClaimDue(ctx, day(6), day(0), 10)
	require.NoError(t, err)
	require.Len(t, retried, 1)
	assert.Equal(t, 2, retried[0].Attempts)

	require.NoError(t, jobs.MarkSent(ctx, retried[0].ID))
	for _, j := range jobs.Snapshot() {
		if j.ID == retried[0].ID {
			assert.Equal(t, shared.JobStatusSent, j.Status)
			assert.Nil(t, j.LastError)
		}
	}
}

func TestJobsReclaimsStaleProcessing(t *testing.T) {
	store, _ := newStoreWithCar(t)
	ctx := context.Background()

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, shared.NewJob{Kind: "a", Topic: "t", Key: "1", RunAt: day(1)})
	}))

	jobs := store.Jobs()
	claimed, err := jobs.ClaimDue(ctx, day(2), day(1), 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.True(t, day(2).Equal(claimed[0].UpdatedAt))

	// the worker died without settling it; within the lease it stays with that worker
	held, err := jobs.ClaimDue(ctx, day(2).Add(time.Minute), day(2).Add(-time.Minute), 10)
	require.NoError(t, err)
	assert.Empty(t, held)

	reclaimed, err := jobs.ClaimDue(ctx, day(3), day(2).Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, claimed[0].ID, reclaimed[0].ID)
	assert.Equal(t, 2, reclaimed[0].Attempts)
	assert.Equal(t, shared.JobStatusProcessing, reclaimed[0].Status)

	// sent jobs are never reclaimed
	require.NoError(t, jobs.MarkSent(ctx, reclaimed[0].ID))
	none, err := jobs.ClaimDue(ctx, day(9), day(9), 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
