// cmd/fireworks-term/main.go
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go-fireworks/internal/app"
	"go-fireworks/internal/audio"
	"go-fireworks/internal/config"
	"go-fireworks/internal/logging"
	"go-fireworks/internal/metrics"
	"go-fireworks/internal/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func main() {
	fs := config.Flags("fireworks-term")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	settings, err := config.Load(fs)
	if err != nil {
		errLog := logging.New(os.Stderr, "error")
		errLog.Fatal().Err(err).Msg("invalid configuration")
	}

	// Вывод в stderr испортил бы экран, поэтому без файла локальные логи
	// отбрасываются, а GELF-сервер, если задан, получает их всё равно
	var logger zerolog.Logger
	var closeLog func() error
	if settings.LogFile != "" {
		logger, closeLog, err = logging.Open(settings.LogFile, settings.LogLevel, settings.GraylogAddr)
	} else {
		logger, closeLog, err = logging.OpenWriter(io.Discard, settings.LogLevel, settings.GraylogAddr)
	}
	if err != nil {
		errLog := logging.New(os.Stderr, "error")
		errLog.Fatal().Err(err).Msg("failed to open log")
	}
	defer closeLog()

	if err := run(settings, logger); err != nil {
		errLog := logging.New(os.Stderr, "error")
		errLog.Error().Err(err).Msg("fireworks-term stopped")
		os.Exit(1)
	}
}

func run(settings *config.Settings, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sky := app.NewSky(settings, nil, logger)
	tally := metrics.Attach(sky.EventDispatcher, logger)
	defer tally.Report(logger)
	if settings.Sound {
		sound := audio.Attach(sky.EventDispatcher, float64(settings.Width), sky.Rng.Seed(), logger)
		defer sound.Cleanup()
	}

	runner := terminal.NewRunner(screen, sky, settings.TPS, settings.HUD, logger)
	return runner.Run(ctx)
}
