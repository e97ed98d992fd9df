package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-manager/internal/handler/api"
	"booking-manager/internal/handler/middleware"
	"booking-manager/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Bookings     *api.BookingHandler
	Blocks       *api.BlockHandler
	Availability *api.AvailabilityHandler
}

func NewHandlers(bookings *api.BookingHandler, blocks *api.BlockHandler, availability *api.AvailabilityHandler) Handlers {
	return Handlers{Bookings: bookings, Blocks: blocks, Availability: availability}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(logger, cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
	engine.NoRoute(middleware.NotFound)
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	bookings := engine.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Bookings.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete},
			{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Bookings.Cancel},
			{Method: http.MethodPatch, Path: "/:id/reschedule", Handler: h.Bookings.Reschedule},
			{Method: http.MethodPut, Path: "/:id/reschedule", Handler: h.Bookings.Reschedule},
		})
	}

	blocks := engine.Group("/blocks")
	{
		addRoutes(blocks, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Blocks.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Blocks.List},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Blocks.Delete},
		})
	}

	addRoutes(engine.Group(""), []route{
		{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.Check},
	})
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
		h := r.Handler
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
