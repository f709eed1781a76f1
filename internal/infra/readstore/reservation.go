package readstore

import (
	"context"

	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ReservationViewRow, error)
	ListReservationViews(ctx context.Context, db query.DBTX, arg query.ListReservationViewsParams) ([]query.ReservationViewRow, error)
	HasBlockingOverlap(ctx context.Context, db query.DBTX, arg query.HasBlockingOverlapParams) (bool, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := s.queries.GetReservationViewByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rowToReservationView(row), nil
}

func (s *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, after *queries.Keyset, limit int) ([]*queries.ReservationView, error) {
	params := query.ListReservationViewsParams{
		Status: optionalText(filter.Status),
		CarID:  optionalUUID(filter.CarID),
		UserID: optionalUUID(filter.UserID),
		From:   optionalTime(filter.From),
		To:     optionalTime(filter.To),
		Limit:  clampOffset(limit),
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgtype.UUID{Bytes: after.ID, Valid: true}
	}

	rows, err := s.queries.ListReservationViews(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result, nil
}

// HasBlockingOverlap runs outside any transaction; the answer is advisory.
func (s *ReservationReadStore) HasBlockingOverlap(ctx context.Context, carID uuid.UUID, period reservation.Period, blocking reservation.StatusSet) (bool, error) {
	params := query.HasBlockingOverlapParams{
		CarID:    carID,
		Statuses: blocking.Strings(),
		PickupAt: pgconv.TimeToPgtype(period.Pickup()),
		ReturnAt: pgconv.TimeToPgtype(period.Return()),
	}
	exists, err := s.queries.HasBlockingOverlap(ctx, s.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return exists, nil
}

func rowToReservationView(row query.ReservationViewRow) *queries.ReservationView {
	r := row.Reservations
	return &queries.ReservationView{
		ID:              r.ID,
		CarID:           r.CarID,
		CarMake:         row.CarMake,
		CarModel:        row.CarModel,
		UserID:          pgconv.UUIDPtrFromPgtype(r.UserID),
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: pgconv.StringFromPgtype(r.CustomerAddress),
		PickupAt:        pgconv.TimeFromPgtype(r.PickupAt),
		ReturnAt:        pgconv.TimeFromPgtype(r.ReturnAt),
		Status:          r.Status,
		PaymentStatus:   r.PaymentStatus,
		AmountCents:     r.AmountCents,
		Notes:           pgconv.StringFromPgtype(r.Notes),
		CreatedAt:       pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(r.UpdatedAt),
	}
}
