package main

import (
	"context"
	"log"
	"time"

	"github.com/adiwignya/tembakau-api/internal/application/service"
	"github.com/adiwignya/tembakau-api/internal/config"
	"github.com/adiwignya/tembakau-api/internal/infrastructure/database"
	"github.com/adiwignya/tembakau-api/internal/infrastructure/repository"
	"github.com/adiwignya/tembakau-api/internal/infrastructure/sheets"
)

// One-shot batch that mirrors the whole database into a Google Sheets
// spreadsheet. Run it from cron; a non-zero exit means the mirror is
// stale and the previous run's data may be partially overwritten.
func main() {
	cfg := config.Load()

	if err := cfg.Sheets.Validate(); err != nil {
		log.Fatalf("Sheets configuration invalid: %v", err)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := sheets.NewClient(ctx, &cfg.Sheets)
	if err != nil {
		log.Fatalf("Failed to create sheets client: %v", err)
	}

	mirror := service.NewMirrorService(
		repository.NewTransactionRepository(db),
		repository.NewTransactionItemRepository(db),
		client,
		cfg.Sheets.TransactionsSheetName,
		cfg.Sheets.ItemsSheetName,
	)

	start := time.Now()
	if err := mirror.Run(ctx); err != nil {
		log.Fatalf("Mirror export failed: %v", err)
	}
	log.Printf("Mirror export completed in %v", time.Since(start))
}
