package repository

import (
	"context"
	"time"

	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) error
	GetReservationByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Reservations, error)
	HasBlockingOverlap(ctx context.Context, db query.DBTX, arg query.HasBlockingOverlapParams) (bool, error)
	UpdateReservationStatus(ctx context.Context, db query.DBTX, arg query.UpdateReservationStatusParams) (int64, error)
	UpdateReservation(ctx context.Context, db query.DBTX, arg query.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) HasBlockingOverlap(ctx context.Context, carID uuid.UUID, period reservation.Period, blocking reservation.StatusSet, exclude uuid.UUID) (bool, error) {
	params := query.HasBlockingOverlapParams{
		CarID:    carID,
		Statuses: blocking.Strings(),
		PickupAt: pgconv.TimeToPgtype(period.Pickup()),
		ReturnAt: pgconv.TimeToPgtype(period.Return()),
	}
	if exclude != uuid.Nil {
		params.ExcludeID = pgtype.UUID{Bytes: exclude, Valid: true}
	}

	exists, err := r.queries.HasBlockingOverlap(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, at time.Time) error {
	params := query.UpdateReservationStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	}
	n, err := r.queries.UpdateReservationStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}
