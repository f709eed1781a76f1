package memstore

import (
	"context"
	"sort"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

// CarReads serves queries.CarReadStore from committed state.
type CarReads struct {
	store *Store
}

func (s *Store) CarReads() *CarReads {
	return &CarReads{store: s}
}

func (r *CarReads) FindByID(_ context.Context, id uuid.UUID) (*queries.CarView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.cars[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "car not found")
	}
	return toCarView(c), nil
}

func (r *CarReads) List(_ context.Context, filter queries.CarFilter, limit, offset int) ([]*queries.CarView, error) {
	r.store.mu.RLock()
	matched := make([]*car.Car, 0, len(r.store.cars))
	for _, c := range r.store.cars {
		if filter.Category != nil && string(c.Specs().Category) != *filter.Category {
			continue
		}
		if filter.Status != nil && string(c.Status()) != *filter.Status {
			continue
		}
		matched = append(matched, c)
	}
	r.store.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return lessDesc(matched[i].CreatedAt(), matched[i].ID(), matched[j].CreatedAt(), matched[j].ID())
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []*queries.CarView{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	views := make([]*queries.CarView, len(matched))
	for i, c := range matched {
		views[i] = toCarView(c)
	}
	return views, nil
}

func (r *CarReads) FindRefsByCarIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID][]reservation.Ref, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make(map[uuid.UUID][]reservation.Ref, len(ids))
	for _, id := range ids {
		if c, ok := r.store.cars[id]; ok {
			out[id] = c.Reservations()
		}
	}
	return out, nil
}

// ReservationReads serves queries.ReservationReadStore and queries.AvailabilityReadStore.
type ReservationReads struct {
	store *Store
}

func (s *Store) ReservationReads() *ReservationReads {
	return &ReservationReads{store: s}
}

func (r *ReservationReads) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return r.toView(res), nil
}

func (r *ReservationReads) List(_ context.Context, filter queries.ReservationFilter, after *queries.Keyset, limit int) ([]*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*reservation.Reservation, 0)
	for _, res := range r.store.reservations {
		if matchesFilter(res, filter) && isAfter(res, after) {
			matched = append(matched, res)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return lessDesc(matched[i].CreatedAt(), matched[i].ID(), matched[j].CreatedAt(), matched[j].ID())
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	views := make([]*queries.ReservationView, len(matched))
	for i, res := range matched {
		views[i] = r.toView(res)
	}
	return views, nil
}

func (r *ReservationReads) HasBlockingOverlap(_ context.Context, carID uuid.UUID, period reservation.Period, blocking reservation.StatusSet) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, res := range r.store.reservations {
		if res.CarID() == carID && blocking.Contains(res.Status()) && res.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

func matchesFilter(res *reservation.Reservation, f queries.ReservationFilter) bool {
	if f.Status != nil && res.Status().String() != *f.Status {
		return false
	}
	if f.CarID != nil && res.CarID() != *f.CarID {
		return false
	}
	if f.UserID != nil && (res.UserID() == nil || *res.UserID() != *f.UserID) {
		return false
	}
	if f.From != nil && res.Period().Return().Before(*f.From) {
		return false
	}
	if f.To != nil && res.Period().Pickup().After(*f.To) {
		return false
	}
	return true
}

func isAfter(res *reservation.Reservation, after *queries.Keyset) bool {
	if after == nil {
		return true
	}
	return lessDesc(after.CreatedAt, after.ID, res.CreatedAt(), res.ID())
}

// toView needs store.mu held for the car join.
func (r *ReservationReads) toView(res *reservation.Reservation) *queries.ReservationView {
	v := &queries.ReservationView{
		ID:              res.ID(),
		CarID:           res.CarID(),
		UserID:          res.UserID(),
		CustomerName:    res.Customer().Name,
		CustomerEmail:   res.Customer().Email,
		CustomerPhone:   res.Customer().Phone,
		CustomerAddress: res.Customer().Address,
		PickupAt:        res.Period().Pickup(),
		ReturnAt:        res.Period().Return(),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		AmountCents:     res.Amount().Cents(),
		Notes:           res.Note().String(),
		CreatedAt:       res.CreatedAt(),
		UpdatedAt:       res.UpdatedAt(),
	}
	if c, ok := r.store.cars[res.CarID()]; ok {
		v.CarMake = c.Specs().Make
		v.CarModel = c.Specs().Model
	}
	return v
}

func toCarView(c *car.Car) *queries.CarView {
	s := c.Specs()
	return &queries.CarView{
		ID:             c.ID(),
		Make:           s.Make,
		Model:          s.Model,
		Year:           s.Year,
		Color:          s.Color,
		Category:       string(s.Category),
		Seats:          s.Seats,
		Transmission:   string(s.Transmission),
		FuelType:       string(s.FuelType),
		Mileage:        s.Mileage,
		DailyRateCents: s.DailyRateCents,
		Status:         string(c.Status()),
		ImageURL:       s.ImageURL,
		Reservations:   c.Reservations(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}
