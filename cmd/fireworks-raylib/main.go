// cmd/fireworks-raylib/main.go
package main

import (
	"os"
	"time"

	"go-fireworks/internal/app"
	"go-fireworks/internal/audio"
	"go-fireworks/internal/config"
	"go-fireworks/internal/logging"
	"go-fireworks/internal/metrics"
	"go-fireworks/internal/ui/rlui"
	"go-fireworks/pkg/render/rlsurface"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize     = 16
	hudMargin       = 10
	pauseButtonSize = 18
)

func main() {
	fs := config.Flags("fireworks-raylib")
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

	// --- Инициализация ---
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(settings.Width), int32(settings.Height), "Fireworks (raylib) | mouse - launch, space - pause, H - HUD")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.TPS))

	sky := app.NewSky(settings, nil, logger)
	tally := metrics.Attach(sky.EventDispatcher, logger)
	defer tally.Report(logger)
	if settings.Sound {
		sound := audio.Attach(sky.EventDispatcher, float64(settings.Width), sky.Rng.Seed(), logger)
		defer sound.Cleanup()
	}

	surface := rlsurface.New(settings.Width, settings.Height)
	defer surface.Unload()

	pauseButton := rlui.NewPauseButton(
		float32(settings.Width-hudMargin-pauseButtonSize), float32(hudMargin+pauseButtonSize),
		pauseButtonSize, config.HUDTextColor, config.PausedTextColor,
	)
	showHUD := settings.HUD
	logger.Info().Int("width", settings.Width).Int("height", settings.Height).Msg("raylib window opened")

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		now := time.Now()
		mouse := rl.GetMousePosition()
		overButton := pauseButton.Contains(mouse.X, mouse.Y)
		if rl.IsKeyPressed(rl.KeySpace) || (overButton && rl.IsMouseButtonPressed(rl.MouseButtonLeft)) {
			pauseButton.Toggle(now)
		}
		if rl.IsKeyPressed(rl.KeyH) {
			showHUD = !showHUD
		}

		if !pauseButton.IsPaused {
			held := rl.IsMouseButtonDown(rl.MouseButtonLeft) && !overButton
			sky.Pointer.Set(float64(mouse.X), float64(mouse.Y), held)

			surface.Begin()
			sky.Tick(surface)
			surface.End()
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		surface.Present()
		pauseButton.Draw(now)
		if showHUD {
			stats := sky.Stats()
			stats.TPS = float64(rl.GetFPS())
			stats.Paused = pauseButton.IsPaused
			for i, line := range stats.Lines() {
				rl.DrawText(line, hudMargin, int32(hudMargin+i*(hudFontSize+4)), hudFontSize, rl.RayWhite)
			}
		}
		rl.EndDrawing()
	}
	logger.Info().Uint64("frames", sky.Frame).Msg("raylib window closed")
}
