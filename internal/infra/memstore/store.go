// Package memstore is an in-process store with the same transactional contract as the
// Postgres one: per-car locks held until the unit of work ends, staged writes applied
// on commit, and nothing applied when the callback fails.
package memstore

import (
	"bytes"
	"context"
	"sync"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	cars         map[uuid.UUID]*car.Car
	reservations map[uuid.UUID]*reservation.Reservation
	jobs         []*shared.Job

	locksMu  sync.Mutex
	carLocks map[uuid.UUID]chan struct{}
}

func New() *Store {
	return &Store{
		cars:         make(map[uuid.UUID]*car.Car),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		carLocks:     make(map[uuid.UUID]chan struct{}),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(s)
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("transaction aborted", err, infra.KindUnavailable)
	}
	return tx.commit()
}

// lock blocks until the car lock is free or ctx is done.
func (s *Store) lock(ctx context.Context, id uuid.UUID) error {
	s.locksMu.Lock()
	ch, ok := s.carLocks[id]
	if !ok {
		ch = make(chan struct{}, 1)
		s.carLocks[id] = ch
	}
	s.locksMu.Unlock()

	select {
	case ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return infra.WrapRepoErr("timed out waiting for car lock", ctx.Err(), infra.KindUnavailable)
	}
}

func (s *Store) unlock(id uuid.UUID) {
	s.locksMu.Lock()
	ch := s.carLocks[id]
	s.locksMu.Unlock()
	<-ch
}

func cloneCar(c *car.Car) *car.Car {
	return car.ReconstructCar(c.ID(), c.Specs(), c.Status(), c.Reservations(), c.CreatedAt(), c.UpdatedAt())
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	cp := *r
	return &cp
}

// keyOf orders listings like Postgres does: microsecond created_at, then id bytes.
func keyOf(createdAt time.Time, id uuid.UUID) (time.Time, uuid.UUID) {
	return createdAt.Truncate(time.Microsecond), id
}

// lessDesc reports whether a sorts before b in (created_at DESC, id DESC) order.
func lessDesc(aCreated time.Time, aID uuid.UUID, bCreated time.Time, bID uuid.UUID) bool {
	at, ai := keyOf(aCreated, aID)
	bt, bi := keyOf(bCreated, bID)
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return bytes.Compare(ai[:], bi[:]) > 0
}
