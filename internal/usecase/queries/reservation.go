package queries

import (
	"context"

	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// List returns at most limit rows ordered by (created_at DESC, id DESC) after the keyset.
	List(ctx context.Context, filter ReservationFilter, after *Keyset, limit int) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, errs.ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if filter.Status != nil {
		if _, err := reservation.ParseStatus(*filter.Status); err != nil {
			return nil, nil, errs.Mark(err, errs.ErrInvalidStatus)
		}
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, nil, errs.Mark(reservation.ErrInvalidPeriod, errs.ErrInvalidRange)
	}

	keyset, err := after.Keyset()
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	rows, err := q.store.List(ctx, filter, keyset, limit+1)
	if err != nil {
		return nil, nil, mapReadErr(err, errs.ErrReservationNotFound)
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	return q.List(ctx, ReservationFilter{UserID: &userID}, after, limit)
}
