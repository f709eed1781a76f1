package middleware

import (
	"log/slog"
	"slices"

	"car-rental/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers browser clients read off booking responses
var requiredExposeHeaders = []string{"Location", RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allowHeaders, RequestIDHeader) {
		allowHeaders = append(allowHeaders, RequestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(corsCfg)
}
