package memstore

import (
	"context"
	"errors"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store  *Store
	locked []uuid.UUID

	// rows read or written by this tx; only dirty ones are applied on commit
	cars         map[uuid.UUID]*car.Car
	reservations map[uuid.UUID]*reservation.Reservation
	dirtyCars    map[uuid.UUID]bool
	dirtyRes     map[uuid.UUID]bool
	deletedCars  map[uuid.UUID]bool
	deletedRes   map[uuid.UUID]bool
	jobs         []*shared.Job
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:        s,
		cars:         make(map[uuid.UUID]*car.Car),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		dirtyCars:    make(map[uuid.UUID]bool),
		dirtyRes:     make(map[uuid.UUID]bool),
		deletedCars:  make(map[uuid.UUID]bool),
		deletedRes:   make(map[uuid.UUID]bool),
	}
}

func (t *memTx) Cars() shared.CarRepository                   { return &carRepo{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository   { return &reservationRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository { return &notificationRepo{tx: t} }

func (t *memTx) release() {
	for i := len(t.locked) - 1; i >= 0; i-- {
		t.store.unlock(t.locked[i])
	}
	t.locked = nil
}

func (t *memTx) holds(id uuid.UUID) bool {
	for _, l := range t.locked {
		if l == id {
			return true
		}
	}
	return false
}

func (t *memTx) car(id uuid.UUID) (*car.Car, error) {
	if t.deletedCars[id] {
		return nil, infra.NewRepoErr(infra.KindNotFound, "car not found")
	}
	if c, ok := t.cars[id]; ok {
		return c, nil
	}

	t.store.mu.RLock()
	c, ok := t.store.cars[id]
	t.store.mu.RUnlock()
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "car not found")
	}
	staged := cloneCar(c)
	t.cars[id] = staged
	return staged, nil
}

func (t *memTx) reservation(id uuid.UUID) (*reservation.Reservation, error) {
	if t.deletedRes[id] {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if r, ok := t.reservations[id]; ok {
		return r, nil
	}

	t.store.mu.RLock()
	r, ok := t.store.reservations[id]
	t.store.mu.RUnlock()
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	staged := cloneReservation(r)
	t.reservations[id] = staged
	return staged, nil
}

// evictClean drops rows of carID this tx read but did not write, so reads taken
// after the car lock see commits made before it was acquired.
func (t *memTx) evictClean(carID uuid.UUID) {
	if !t.dirtyCars[carID] && !t.deletedCars[carID] {
		delete(t.cars, carID)
	}
	for id, r := range t.reservations {
		if r.CarID() == carID && !t.dirtyRes[id] && !t.deletedRes[id] {
			delete(t.reservations, id)
		}
	}
}

// visibleReservations merges committed rows for carID with this tx's writes.
func (t *memTx) visibleReservations(carID uuid.UUID) []*reservation.Reservation {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.visibleLocked(carID)
}

// visibleLocked is visibleReservations for callers already holding store.mu.
func (t *memTx) visibleLocked(carID uuid.UUID) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0)
	for id, r := range t.store.reservations {
		if r.CarID() != carID || t.deletedRes[id] || t.dirtyRes[id] {
			continue
		}
		out = append(out, r)
	}
	for id := range t.dirtyRes {
		if r := t.reservations[id]; r != nil && r.CarID() == carID && !t.deletedRes[id] {
			out = append(out, r)
		}
	}
	return out
}

func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := t.checkExclusion(); err != nil {
		return err
	}

	for id := range t.deletedCars {
		delete(s.cars, id)
		for resID, r := range s.reservations {
			if r.CarID() == id {
				delete(s.reservations, resID)
			}
		}
	}
	for id := range t.dirtyCars {
		if !t.deletedCars[id] {
			s.cars[id] = cloneCar(t.cars[id])
		}
	}
	for id := range t.deletedRes {
		delete(s.reservations, id)
	}
	for id := range t.dirtyRes {
		if !t.deletedRes[id] {
			s.reservations[id] = cloneReservation(t.reservations[id])
		}
	}
	s.jobs = append(s.jobs, t.jobs...)
	return nil
}

// checkExclusion rejects the commit when two blocking reservations of one car would
// overlap. Callers hold store.mu.
func (t *memTx) checkExclusion() error {
	for id := range t.dirtyRes {
		r := t.reservations[id]
		if t.deletedRes[id] || !r.Status().IsBlocking() {
			continue
		}
		for _, other := range t.visibleLocked(r.CarID()) {
			if other.ID() == id || !other.Status().IsBlocking() {
				continue
			}
			if other.Period().Overlaps(r.Period()) {
				return infra.NewRepoErr(infra.KindConflict, "reservations_no_overlap")
			}
		}
	}
	return nil
}

type carRepo struct {
	tx *memTx
}

func (r *carRepo) LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	if !r.tx.holds(id) {
		if err := r.tx.store.lock(ctx, id); err != nil {
			return nil, err
		}
		r.tx.locked = append(r.tx.locked, id)
		r.tx.evictClean(id)
	}
	c, err := r.tx.car(id)
	if err != nil {
		return nil, err
	}
	return cloneCar(c), nil
}

func (r *carRepo) Create(_ context.Context, c *car.Car) error {
	r.tx.store.mu.RLock()
	_, exists := r.tx.store.cars[c.ID()]
	r.tx.store.mu.RUnlock()
	if _, staged := r.tx.cars[c.ID()]; exists || staged {
		return infra.NewRepoErr(infra.KindDuplicateKey, "car already exists")
	}
	r.tx.cars[c.ID()] = cloneCar(c)
	r.tx.dirtyCars[c.ID()] = true
	return nil
}

func (r *carRepo) Update(_ context.Context, c *car.Car) error {
	current, err := r.tx.car(c.ID())
	if err != nil {
		return err
	}
	// the refs column is owned by the ref operations
	updated := car.ReconstructCar(c.ID(), c.Specs(), c.Status(), current.Reservations(), current.CreatedAt(), c.UpdatedAt())
	r.tx.cars[c.ID()] = updated
	r.tx.dirtyCars[c.ID()] = true
	return nil
}

func (r *carRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, err := r.tx.car(id); err != nil {
		return err
	}
	// reservations go with the car
	for _, res := range r.tx.visibleReservations(id) {
		r.tx.deletedRes[res.ID()] = true
	}
	r.tx.deletedCars[id] = true
	return nil
}

func (r *carRepo) AppendReservationRef(_ context.Context, carID uuid.UUID, ref reservation.Ref) error {
	c, err := r.tx.car(carID)
	if err != nil {
		return err
	}
	if err := c.AttachReservation(ref); err != nil {
		return infra.WrapRepoErr("failed to link reservation to car", err, infra.KindDuplicateKey)
	}
	r.tx.dirtyCars[carID] = true
	return nil
}

func (r *carRepo) UpdateReservationRefStatus(_ context.Context, carID, reservationID uuid.UUID, status reservation.Status) error {
	c, err := r.tx.car(carID)
	if err != nil {
		return err
	}
	if err := c.UpdateReservationStatus(reservationID, status); err != nil {
		return refErr(err)
	}
	r.tx.dirtyCars[carID] = true
	return nil
}

func (r *carRepo) ReplaceReservationRef(_ context.Context, carID uuid.UUID, ref reservation.Ref) error {
	c, err := r.tx.car(carID)
	if err != nil {
		return err
	}
	if err := c.ReplaceReservation(ref); err != nil {
		return refErr(err)
	}
	r.tx.dirtyCars[carID] = true
	return nil
}

func (r *carRepo) RemoveReservationRef(_ context.Context, carID, reservationID uuid.UUID) error {
	c, err := r.tx.car(carID)
	if err != nil {
		return err
	}
	if err := c.DetachReservation(reservationID); err != nil {
		return refErr(err)
	}
	r.tx.dirtyCars[carID] = true
	return nil
}

func refErr(err error) error {
	if errors.Is(err, car.ErrReservationRefGone) {
		return infra.WrapRepoErr("reservation ref not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to update reservation ref", err, infra.KindDBFailure)
}

type reservationRepo struct {
	tx *memTx
}

func (r *reservationRepo) HasBlockingOverlap(_ context.Context, carID uuid.UUID, period reservation.Period, blocking reservation.StatusSet, exclude uuid.UUID) (bool, error) {
	for _, res := range r.tx.visibleReservations(carID) {
		if res.ID() == exclude || !blocking.Contains(res.Status()) {
			continue
		}
		if res.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, err := r.tx.car(res.CarID()); err != nil {
		return infra.WrapRepoErr("car does not exist", err, infra.KindForeignKeyViolated)
	}
	if _, err := r.tx.reservation(res.ID()); err == nil {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists")
	}
	r.tx.reservations[res.ID()] = cloneReservation(res)
	r.tx.dirtyRes[res.ID()] = true
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.tx.reservation(id)
	if err != nil {
		return nil, err
	}
	return cloneReservation(res), nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status reservation.Status, at time.Time) error {
	res, err := r.tx.reservation(id)
	if err != nil {
		return err
	}
	if err := res.ChangeStatus(status, at); err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err, infra.KindDBFailure)
	}
	r.tx.dirtyRes[id] = true
	return nil
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	current, err := r.tx.reservation(res.ID())
	if err != nil {
		return err
	}
	if current.CarID() != res.CarID() {
		return infra.NewRepoErr(infra.KindDBFailure, "reservation car cannot change")
	}
	r.tx.reservations[res.ID()] = cloneReservation(res)
	r.tx.dirtyRes[res.ID()] = true
	return nil
}

func (r *reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, err := r.tx.reservation(id); err != nil {
		return err
	}
	r.tx.deletedRes[id] = true
	return nil
}

type notificationRepo struct {
	tx *memTx
}

func (r *notificationRepo) CreateJob(_ context.Context, job shared.NewJob) error {
	r.tx.jobs = append(r.tx.jobs, &shared.Job{
		ID:        uuid.New(),
		Kind:      job.Kind,
		Topic:     job.Topic,
		Key:       job.Key,
		Payload:   append([]byte(nil), job.Payload...),
		RunAt:     job.RunAt,
		Status:    shared.JobStatusQueued,
		CreatedAt: job.RunAt,
		UpdatedAt: job.RunAt,
	})
	return nil
}
