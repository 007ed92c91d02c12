// cmd/fireworks-snapshot/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-fireworks/internal/app"
	"go-fireworks/internal/config"
	"go-fireworks/internal/logging"
	"go-fireworks/internal/metrics"
	"go-fireworks/internal/utils"
	"go-fireworks/pkg/render"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// atLayout — формат флага --at, местное время.
const atLayout = "2006-01-02T15:04"

// options — параметры, которых нет в общих настройках.
type options struct {
	Frames int
	Every  int
	Out    string
	At     time.Time
}

func main() {
	fs := config.Flags("fireworks-snapshot")
	fs.Int("frames", 240, "number of frames to simulate")
	fs.Int("every", 0, "write every N-th frame, 0 writes only the last one")
	fs.String("out", "frames", "output directory for PNG files")
	fs.String("at", "", "fixed wall-clock start time ("+atLayout+"), empty means now")
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

	opts, err := parseOptions(fs, time.Now())
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid options")
	}
	written, err := renderFrames(settings, opts, logger)
	if err != nil {
		logger.Error().Err(err).Msg("snapshot failed")
		closeLog()
		os.Exit(1)
	}
	logger.Info().Int("files", written).Str("dir", opts.Out).Msg("snapshot done")
}

func parseOptions(fs *pflag.FlagSet, now time.Time) (options, error) {
	var opts options
	var err error
	if opts.Frames, err = fs.GetInt("frames"); err != nil {
		return opts, err
	}
	if opts.Every, err = fs.GetInt("every"); err != nil {
		return opts, err
	}
	if opts.Out, err = fs.GetString("out"); err != nil {
		return opts, err
	}
	at, err := fs.GetString("at")
	if err != nil {
		return opts, err
	}
	opts.At = now
	if at != "" {
		if opts.At, err = time.ParseInLocation(atLayout, at, time.Local); err != nil {
			return opts, fmt.Errorf("failed to parse --at: %w", err)
		}
	}
	if opts.Frames <= 0 {
		return opts, fmt.Errorf("frames must be positive, got %d", opts.Frames)
	}
	if opts.Every < 0 {
		return opts, fmt.Errorf("every must not be negative, got %d", opts.Every)
	}
	return opts, nil
}

// renderFrames прогоняет симуляцию на фиксированных часах и пишет кадры в PNG.
// Возвращает число записанных файлов.
func renderFrames(settings *config.Settings, opts options, logger zerolog.Logger) (int, error) {
	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	clock := &utils.FixedClock{T: opts.At}
	sky := app.NewSky(settings, clock, logger)
	tally := metrics.Attach(sky.EventDispatcher, logger)
	defer tally.Report(logger)
	surface := render.NewSnapshotSurface(settings.Width, settings.Height)
	step := time.Second / time.Duration(settings.TPS)

	written := 0
	for frame := 1; frame <= opts.Frames; frame++ {
		sky.Tick(surface)
		clock.Advance(step)

		last := frame == opts.Frames
		if !last && (opts.Every == 0 || frame%opts.Every != 0) {
			continue
		}
		path := filepath.Join(opts.Out, fmt.Sprintf("frame_%05d.png", frame))
		if err := surface.SavePNG(path); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
		logger.Debug().Int("frame", frame).Str("path", path).
			Int("projectiles", len(sky.Projectiles)).Int("fragments", len(sky.Fragments)).
			Msg("frame written")
	}
	return written, nil
}
