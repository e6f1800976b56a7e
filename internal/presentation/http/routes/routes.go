package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/adiwignya/tembakau-api/internal/config"
	"github.com/adiwignya/tembakau-api/internal/presentation/http/handler"
	"github.com/adiwignya/tembakau-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Transaction *handler.TransactionHandler
	Recap       *handler.RecapHandler
	Printer     *handler.PrinterHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerTransactionRoutes(v1, h)
		registerRecapRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerTransactionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	transactions := v1.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.POST("/:id/print", h.Printer.PrintReceipt)
	}
}

func registerRecapRoutes(v1 *gin.RouterGroup, h *Handlers) {
	recapGroup := v1.Group("/recap")
	{
		recapGroup.GET("", h.Recap.Get)
		recapGroup.GET("/export", h.Recap.ExportXLSX)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
