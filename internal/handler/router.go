package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking-api/internal/handler/api"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, discountHandler *api.DiscountHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, discountHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, discountHandler *api.DiscountHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
			})
		}

		discounts := apiGroup.Group("/discounts")
		{
			addRoutes(discounts, []route{
				{Method: http.MethodPost, Path: "", Handler: discountHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: discountHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: discountHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: discountHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: discountHandler.Delete},
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

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
