package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, carHandler *api.CarHandler, reservationHandler *api.ReservationHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, carHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// request id is assigned before the error handler renders bodies
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, carHandler *api.CarHandler, reservationHandler *api.ReservationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/ping", ping)

		cars := apiGroup.Group("/cars")
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "", Handler: carHandler.List},
				{Method: http.MethodGet, Path: "/availability", Handler: carHandler.BatchAvailability},
				{Method: http.MethodGet, Path: "/:id", Handler: carHandler.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: carHandler.RangeAvailability},
				{Method: http.MethodPost, Path: "", Handler: carHandler.Create, Mw: requireAdmin},
				{Method: http.MethodPut, Path: "/:id", Handler: carHandler.Update, Mw: requireAdmin},
				{Method: http.MethodDelete, Path: "/:id", Handler: carHandler.Delete, Mw: requireAdmin},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			})

			authRequired := reservations.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: reservationHandler.ListMine},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: reservationHandler.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}},
				{Method: http.MethodPatch, Path: "/:id/payment", Handler: reservationHandler.UpdatePayment, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
