package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCarHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
