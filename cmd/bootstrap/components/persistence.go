package components

import (
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/usecase/outbox"
	"car-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Car
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CarReadQueries)),
		),
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Notification jobs
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationJobQueries)),
		),
		fx.Annotate(
			readstore.NewJobStore,
			fx.As(new(outbox.JobStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
