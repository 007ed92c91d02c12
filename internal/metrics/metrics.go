// internal/metrics/metrics.go
package metrics

import (
	"context"
	"fmt"

	"go-fireworks/internal/event"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-fireworks/internal/metrics"

// Totals — счётчики за сессию, их пишем в лог при выходе.
type Totals struct {
	Bursts    int64
	Fragments int64
	Shows     int64
}

// Recorder считает взрывы и фигурные залпы по событиям диспетчера.
// Без настроенного провайдера OTel инструменты ничего не делают.
type Recorder struct {
	bursts    metric.Int64Counter
	fragments metric.Int64Counter
	shows     metric.Int64Counter
	finished  metric.Int64Counter

	totals Totals
}

// New создаёт Recorder. nil meter означает глобальный провайдер.
func New(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}
	r := &Recorder{}

	var err error
	r.bursts, err = m.Int64Counter(
		"fireworks.shells.burst",
		metric.WithDescription("Shells that reached their target"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating burst counter: %w", err)
	}

	r.fragments, err = m.Int64Counter(
		"fireworks.fragments.spawned",
		metric.WithDescription("Fragments created by bursts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fragment counter: %w", err)
	}

	r.shows, err = m.Int64Counter(
		"fireworks.shows.started",
		metric.WithDescription("Choreographed shows started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating show counter: %w", err)
	}

	r.finished, err = m.Int64Counter(
		"fireworks.shows.finished",
		metric.WithDescription("Choreographed shows that launched every shell"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating finished counter: %w", err)
	}

	return r, nil
}

// Attach создаёт Recorder на глобальном провайдере и подписывает его на d.
// Если инструменты не создались, шоу идёт без метрик и возвращается nil.
func Attach(d *event.Dispatcher, logger zerolog.Logger) *Recorder {
	r, err := New(nil)
	if err != nil {
		logger.Warn().Err(err).Msg("metrics disabled")
		return nil
	}
	r.Subscribe(d)
	return r
}

// Subscribe подписывает Recorder на события неба.
func (r *Recorder) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.ShellBurst, r)
	d.Subscribe(event.ShowStarted, r)
	d.Subscribe(event.ShowFinished, r)
}

func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.ShellBurst:
		b, ok := e.Data.(event.Burst)
		if !ok {
			return
		}
		r.totals.Bursts++
		r.totals.Fragments += int64(b.Fragments)
		r.bursts.Add(ctx, 1)
		r.fragments.Add(ctx, int64(b.Fragments))
	case event.ShowStarted:
		s, ok := e.Data.(event.Show)
		if !ok {
			return
		}
		r.totals.Shows++
		r.shows.Add(ctx, 1, metric.WithAttributes(attribute.String("show", s.Name)))
	case event.ShowFinished:
		s, ok := e.Data.(event.Show)
		if !ok {
			return
		}
		r.finished.Add(ctx, 1, metric.WithAttributes(
			attribute.String("show", s.Name),
			attribute.Int("projectiles", s.Projectiles),
		))
	}
}

// Totals возвращает накопленные значения. Вызывать из той же горутины, что и Tick.
func (r *Recorder) Totals() Totals {
	return r.totals
}

// Report пишет итоги сессии в лог.
func (r *Recorder) Report(logger zerolog.Logger) {
	if r == nil {
		return
	}
	logger.Info().
		Int64("bursts", r.totals.Bursts).
		Int64("fragments", r.totals.Fragments).
		Int64("shows", r.totals.Shows).
		Msg("session totals")
}
