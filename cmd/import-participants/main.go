package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/quizcert/quizcert-backend/internal/config"
	"github.com/quizcert/quizcert-backend/internal/database"
	"github.com/quizcert/quizcert-backend/internal/logger"
	"github.com/quizcert/quizcert-backend/internal/repository"
	"github.com/quizcert/quizcert-backend/internal/service"
)

func main() {
	var path string
	flag.StringVar(&path, "file", "", "Path to the participants .xlsx file")
	flag.Parse()

	if path == "" {
		fmt.Println("Usage: import-participants -file <participants.xlsx>")
		os.Exit(1)
	}

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	participantRepo := repository.NewParticipantRepository(pool)
	participantService := service.NewParticipantService(participantRepo, log)

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Cannot open file")
	}
	defer f.Close()

	report, err := participantService.ImportXLSX(ctx, f)
	if err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}

	fmt.Printf("Imported: %d ok, %d failed\n", report.Success, report.Failed)
	for _, msg := range report.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	if report.Failed > 0 {
		os.Exit(1)
	}
}
