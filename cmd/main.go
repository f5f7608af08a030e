package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ball-tracker/config"
	"ball-tracker/internal/container"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	// Собираем сервисы приложения
	appContainer, err := container.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build container")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	reports, err := appContainer.Pipeline.Run(ctx, appContainer.Job)
	stop()
	if cerr := appContainer.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close resources")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("processing failed")
	}

	for _, r := range reports {
		log.Info().
			Int("quadrant", int(r.Quadrant)).
			Int("frames", r.Frames).
			Int("entries", r.Entries).
			Int("records", len(r.Records)).
			Msg("quadrant done")
	}
}
