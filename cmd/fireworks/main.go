// cmd/fireworks/main.go
package main

import (
	"errors"
	"os"

	"go-fireworks/internal/app"
	"go-fireworks/internal/assets"
	"go-fireworks/internal/audio"
	"go-fireworks/internal/config"
	"go-fireworks/internal/logging"
	"go-fireworks/internal/metrics"
	"go-fireworks/internal/state"
	"go-fireworks/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// AppGame адаптирует машину состояний к ebiten.Game.
// Симуляция шагает ровно на кадр за Update, без учёта прошедшего времени.
type AppGame struct {
	stateMachine  *state.StateMachine
	width, height int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	fs := config.Flags("fireworks")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	settings, err := config.Load(fs)
	if err != nil {
		errLog := logging.New(os.Stderr, "error")
		errLog.Fatal().Err(err).Msg("invalid configuration")
	}
	logger, closeLog, err := logging.Open(settings.LogFile, settings.LogLevel, settings.GraylogAddr)
	if err != nil {
		errLog := logging.New(os.Stderr, "error")
		errLog.Fatal().Err(err).Msg("failed to open log")
	}
	defer closeLog()

	if err := run(settings, logger); err != nil {
		logger.Error().Err(err).Msg("fireworks stopped")
		closeLog()
		os.Exit(1)
	}
}

func run(settings *config.Settings, logger zerolog.Logger) error {
	logger.Info().
		Int("width", settings.Width).
		Int("height", settings.Height).
		Int("tps", settings.TPS).
		Int64("ringDeadline", settings.Ring.Deadline).
		Int64("heartDeadline", settings.Heart.Deadline).
		Msg("starting fireworks")

	sky := app.NewSky(settings, nil, logger)
	tally := metrics.Attach(sky.EventDispatcher, logger)
	defer tally.Report(logger)
	if settings.Sound {
		sound := audio.Attach(sky.EventDispatcher, float64(settings.Width), sky.Rng.Seed(), logger)
		defer sound.Cleanup()
	}

	face, err := assets.LoadHUDFace(14)
	if err != nil {
		return err
	}
	indicator := ui.NewStateIndicator(16, 16, 6, face)
	indicator.Visible = settings.HUD

	sm := state.NewStateMachine()
	sm.SetState(state.NewShowState(sm, sky, indicator))

	game := &AppGame{
		stateMachine: sm,
		width:        settings.Width,
		height:       settings.Height,
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Fireworks | mouse - launch, space - pause, H - HUD")
	ebiten.SetTPS(settings.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
