package components

import (
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.BookingCommands {
			return commands.NewBookingCommands(uow, clk, cfg.Kafka.Topic)
		},
		commands.NewCarCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCarQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
