package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openplots/limitgraph/internal/config"
	"github.com/openplots/limitgraph/internal/render"
	"github.com/openplots/limitgraph/internal/standards"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := render.Init(cfg.Locale); err != nil {
		log.Fatal().Err(err).Str("locale", cfg.Locale).Msg("Failed to initialize rendering")
	}

	if err := standards.Run(cfg, render.NewPlotRenderer()); err != nil {
		log.Fatal().Err(err).Str("standard", cfg.Standard).Msg("Publication run failed")
	}

	log.Info().Str("standard", cfg.Standard).Msg("Publication run complete")
}
