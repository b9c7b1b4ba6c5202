package middleware

import (
	"log/slog"

	"hotel-booking-api/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	// gin-contrib treats the allow-all flag and an explicit origin list as
	// mutually exclusive, so a lone "*" maps to the flag.
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}
