package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-scheduler/internal/handler/api"
	"booking-scheduler/internal/handler/middleware"
	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Auth         *middleware.AuthMiddleware
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	collector *metrics.Collector,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, collector)
	setupRoutes(engine, cfg, handlers{Booking: bookingHandler, Availability: availabilityHandler, Auth: authMiddleware})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, collector *metrics.Collector) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(collector))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RateLimit(cfg.RateLimit), h.Auth.RequireAuth())

	write := []gin.HandlerFunc{h.Auth.RequireWrite()}

	bookings := apiGroup.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: write},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update, Mw: write},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete, Mw: write},
			{Method: http.MethodPost, Path: "/:id/reschedule", Handler: h.Booking.Reschedule, Mw: write},
			{Method: http.MethodPut, Path: "/:id/practitioner", Handler: h.Booking.AssignPractitioner, Mw: write},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: write},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: write},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete, Mw: write},
			{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Booking.NoShow, Mw: write},
		})
	}

	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/practitioners/:id/bookings", Handler: h.Booking.ListByPractitioner},
		{Method: http.MethodGet, Path: "/rooms/:id/bookings", Handler: h.Booking.ListByRoom},
		{Method: http.MethodGet, Path: "/clients/:id/bookings", Handler: h.Booking.ListByClient},
		{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.ListAvailable},
		{Method: http.MethodGet, Path: "/availability/best", Handler: h.Availability.Best},
		{Method: http.MethodGet, Path: "/resources/:id/availability", Handler: h.Availability.Check},
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
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
