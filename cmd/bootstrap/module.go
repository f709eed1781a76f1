package bootstrap

import (
	"car-rental/cmd/bootstrap/components"
	"car-rental/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		StoreModule(cfg.Store.Driver),
		MessagingModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}

// StoreModule wires the Postgres store or the in-process one.
func StoreModule(driver string) fx.Option {
	if driver == config.StoreDriverMemory {
		return components.MemoryModule
	}
	return fx.Options(
		DBModule,
		components.PostgresModule,
	)
}
