package components

import (
	"car-rental/internal/infra/uow"

	"go.uber.org/fx"
)

// Write-side repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
