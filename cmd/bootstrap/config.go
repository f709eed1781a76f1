package bootstrap

import (
	"car-rental/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a configuration loaded before the container is built, since
// the store driver decides which persistence module is wired.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
