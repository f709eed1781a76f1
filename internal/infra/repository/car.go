package repository

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CarWriteQueries interface {
	CreateCar(ctx context.Context, db query.DBTX, arg query.CreateCarParams) error
	GetCarByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Cars, error)
	UpdateCar(ctx context.Context, db query.DBTX, arg query.UpdateCarParams) (int64, error)
	DeleteCar(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	AppendCarReservationRef(ctx context.Context, db query.DBTX, arg query.AppendCarReservationRefParams) (int64, error)
	UpdateCarReservationRefStatus(ctx context.Context, db query.DBTX, arg query.UpdateCarReservationRefStatusParams) (int64, error)
	ReplaceCarReservationRef(ctx context.Context, db query.DBTX, arg query.ReplaceCarReservationRefParams) (int64, error)
	RemoveCarReservationRef(ctx context.Context, db query.DBTX, arg query.RemoveCarReservationRefParams) (int64, error)
}

type CarRepository struct {
	queries CarWriteQueries
	db      query.DBTX
}

func NewCarRepository(queries CarWriteQueries, db query.DBTX) *CarRepository {
	return &CarRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CarRepository) LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	row, err := r.queries.GetCarByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock car", err)
	}

	c, err := converter.CarFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode car", err, infra.KindDBFailure)
	}
	return c, nil
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) error {
	if err := r.queries.CreateCar(ctx, r.db, converter.CarToInfra(c)); err != nil {
		return infra.WrapRepoErr("failed to create car", err)
	}
	return nil
}

func (r *CarRepository) Update(ctx context.Context, c *car.Car) error {
	n, err := r.queries.UpdateCar(ctx, r.db, converter.CarToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "car not found")
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteCar(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "car not found")
	}
	return nil
}

func (r *CarRepository) AppendReservationRef(ctx context.Context, carID uuid.UUID, ref reservation.Ref) error {
	raw, err := converter.RefToJSON(ref)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation ref", err, infra.KindDBFailure)
	}

	n, err := r.queries.AppendCarReservationRef(ctx, r.db, query.AppendCarReservationRefParams{ID: carID, Ref: raw})
	if err != nil {
		return infra.WrapRepoErr("failed to link reservation to car", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "car not found")
	}
	return nil
}

func (r *CarRepository) UpdateReservationRefStatus(ctx context.Context, carID, reservationID uuid.UUID, status reservation.Status) error {
	params := query.UpdateCarReservationRefStatusParams{
		ID:            carID,
		ReservationID: reservationID.String(),
		Status:        status.String(),
	}
	n, err := r.queries.UpdateCarReservationRefStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation ref", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation ref not found")
	}
	return nil
}

// ReplaceReservationRef rewrites the ref with the same reservation id in place.
func (r *CarRepository) ReplaceReservationRef(ctx context.Context, carID uuid.UUID, ref reservation.Ref) error {
	raw, err := converter.RefToJSON(ref)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation ref", err, infra.KindDBFailure)
	}

	params := query.ReplaceCarReservationRefParams{
		ID:            carID,
		ReservationID: ref.ReservationID.String(),
		Ref:           raw,
	}
	n, err := r.queries.ReplaceCarReservationRef(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to replace reservation ref", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation ref not found")
	}
	return nil
}

func (r *CarRepository) RemoveReservationRef(ctx context.Context, carID, reservationID uuid.UUID) error {
	params := query.RemoveCarReservationRefParams{
		ID:            carID,
		ReservationID: reservationID.String(),
	}
	n, err := r.queries.RemoveCarReservationRef(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to remove reservation ref", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation ref not found")
	}
	return nil
}
