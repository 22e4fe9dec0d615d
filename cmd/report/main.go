package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"fleetrental/config"
	"fleetrental/di"
	"fleetrental/shared/logger"
)

// Renders the fleet report PDF from the saved state.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	app, err := di.InitializeApp()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize application")
		os.Exit(1)
	}

	ctx := context.Background()

	if _, err := app.Gateway.LoadAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to load state")
		os.Exit(1)
	}

	out, err := app.Report.Generate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate fleet report")
		os.Exit(1)
	}

	path := filepath.Join(cfg.Data.Dir, cfg.Data.ReportFile)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		log.Error().Err(err).Msg("failed to write fleet report")
		os.Exit(1)
	}

	log.Info().Str("path", path).Msg("fleet report written")
}
