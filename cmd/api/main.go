package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/adiwignya/tembakau-api/internal/application/service"
	"github.com/adiwignya/tembakau-api/internal/config"
	"github.com/adiwignya/tembakau-api/internal/infrastructure/database"
	"github.com/adiwignya/tembakau-api/internal/infrastructure/repository"
	"github.com/adiwignya/tembakau-api/internal/presentation/http/handler"
	"github.com/adiwignya/tembakau-api/internal/presentation/http/routes"
	"github.com/adiwignya/tembakau-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(db)
	itemRepo := repository.NewTransactionItemRepository(db)

	// Initialize services
	transactionService := service.NewTransactionService(transactionRepo, itemRepo)
	recapService := service.NewRecapService(transactionRepo)
	exportService := service.NewExportService(recapService)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, transactionRepo, cfg.Printer.Type, cfg.Receipt)

	// Initialize handlers
	handlers := &routes.Handlers{
		Transaction: handler.NewTransactionHandler(transactionService),
		Recap:       handler.NewRecapHandler(recapService, exportService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
