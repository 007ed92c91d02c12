// internal/terminal/runner.go
package terminal

import (
	"context"
	"time"

	"go-fireworks/internal/app"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Runner ведёт симуляцию в терминале: тикер кадров и события tcell
// обрабатываются в одном select, так что Sky меняется из одной горутины.
type Runner struct {
	screen  tcell.Screen
	sky     *app.Sky
	surface *Surface
	tps     int
	logger  zerolog.Logger

	Paused  bool
	ShowHUD bool
}

func NewRunner(screen tcell.Screen, sky *app.Sky, tps int, showHUD bool, logger zerolog.Logger) *Runner {
	w, h := sky.Size()
	cols, rows := screen.Size()
	return &Runner{
		screen:  screen,
		sky:     sky,
		surface: NewSurface(w, h, cols, rows),
		tps:     max(tps, 1),
		logger:  logger,
		ShowHUD: showHUD,
	}
}

// Surface возвращает поверхность, на которой рисуется небо.
func (r *Runner) Surface() *Surface { return r.surface }

// Run крутит цикл до отмены ctx или клавиши выхода.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(r.tps))
	defer ticker.Stop()

	r.logger.Info().Int("tps", r.tps).Msg("terminal loop started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.HandleEvent(ev) {
				r.logger.Info().Uint64("frames", r.sky.Frame).Msg("terminal loop stopped")
				return nil
			}
		case <-ticker.C:
			r.Frame()
		}
	}
}

// HandleEvent применяет событие терминала. false означает выход.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				r.Paused = !r.Paused
			case 'h':
				r.ShowHUD = !r.ShowHUD
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := r.surface.CellToCanvas(col, row)
		r.sky.Pointer.Set(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.surface.Resize(cols, rows)
		r.screen.Sync()
	}
	return true
}

// Frame выполняет один кадр и выводит его.
func (r *Runner) Frame() {
	if !r.Paused {
		r.sky.Tick(r.surface)
	}
	r.surface.Flush(r.screen)
	if r.ShowHUD {
		stats := r.sky.Stats()
		stats.TPS = float64(r.tps)
		stats.Paused = r.Paused
		r.drawHUD(stats.Lines())
	}
	r.screen.Show()
}

func (r *Runner) drawHUD(lines []string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for row, line := range lines {
		for col, ch := range []rune(line) {
			r.screen.SetContent(col+1, row, ch, nil, style)
		}
	}
}
