package readstore

import (
	"context"

	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadQueries interface {
	GetCarByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Cars, error)
	ListCars(ctx context.Context, db query.DBTX, arg query.ListCarsParams) ([]query.Cars, error)
	GetCarReservationRefsByIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.GetCarReservationRefsByIDsRow, error)
}

type CarReadStore struct {
	queries CarReadQueries
	db      query.DBTX
}

func NewCarReadStore(queries CarReadQueries, db query.DBTX) *CarReadStore {
	return &CarReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row, err := s.queries.GetCarByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}
	return rowToCarView(row)
}

func (s *CarReadStore) List(ctx context.Context, filter queries.CarFilter, limit, offset int) ([]*queries.CarView, error) {
	params := query.ListCarsParams{
		Category: optionalText(filter.Category),
		Status:   optionalText(filter.Status),
		Limit:    int32(queries.ValidateLimit(limit)), // #nosec G115 -- bounded by MaxListLimit
		Offset:   clampOffset(offset),
	}

	rows, err := s.queries.ListCars(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}

	views := make([]*queries.CarView, 0, len(rows))
	for _, row := range rows {
		v, err := rowToCarView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *CarReadStore) FindRefsByCarIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]reservation.Ref, error) {
	rows, err := s.queries.GetCarReservationRefsByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation refs", err)
	}

	out := make(map[uuid.UUID][]reservation.Ref, len(rows))
	for _, row := range rows {
		refs, err := converter.RefsFromJSON(row.Reservations)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation refs", err, infra.KindDBFailure)
		}
		out[row.ID] = refs
	}
	return out, nil
}

func rowToCarView(row query.Cars) (*queries.CarView, error) {
	refs, err := converter.RefsFromJSON(row.Reservations)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation refs", err, infra.KindDBFailure)
	}
	return &queries.CarView{
		ID:             row.ID,
		Make:           row.Make,
		Model:          row.Model,
		Year:           int(row.Year),
		Color:          pgconv.StringFromPgtype(row.Color),
		Category:       row.Category,
		Seats:          int(row.Seats),
		Transmission:   row.Transmission,
		FuelType:       row.FuelType,
		Mileage:        int(row.Mileage),
		DailyRateCents: row.DailyRateCents,
		Status:         row.Status,
		ImageURL:       pgconv.StringFromPgtype(row.ImageUrl),
		Reservations:   refs,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
