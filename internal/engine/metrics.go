package engine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/vovakirdan/lunaris/internal/game"
)

const instrumentationName = "github.com/vovakirdan/lunaris/internal/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics counts target outcomes. The global provider is a no-op unless
// the binary installs one.
type metrics struct {
	spawnedCounter metric.Int64Counter
	hitCounter     metric.Int64Counter
	missedCounter  metric.Int64Counter
}

// WithMeter records engine counters on m instead of the global provider.
func WithMeter(m metric.Meter) Option {
	return func(e *Engine) { e.metrics = newMetrics(m) }
}

func newMetrics(m metric.Meter) *metrics {
	mt, err := buildMetrics(m)
	if err != nil {
		mt, _ = buildMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return mt
}

func buildMetrics(m metric.Meter) (*metrics, error) {
	var (
		mt  metrics
		err error
	)
	mt.spawnedCounter, err = m.Int64Counter(
		"engine.targets.spawned",
		metric.WithDescription("Total targets spawned"),
	)
	if err != nil {
		return nil, err
	}
	mt.hitCounter, err = m.Int64Counter(
		"engine.targets.hit",
		metric.WithDescription("Total targets eliminated by contact"),
	)
	if err != nil {
		return nil, err
	}
	mt.missedCounter, err = m.Int64Counter(
		"engine.targets.missed",
		metric.WithDescription("Total targets expired without contact"),
	)
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

func attrs(mode string, typ game.TargetType) metric.AddOption {
	return metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("type", typ.String()),
	)
}

func (m *metrics) spawned(mode string, typ game.TargetType) {
	m.spawnedCounter.Add(context.Background(), 1, attrs(mode, typ))
}

func (m *metrics) hit(mode string, typ game.TargetType) {
	m.hitCounter.Add(context.Background(), 1, attrs(mode, typ))
}

func (m *metrics) missed(mode string, typ game.TargetType) {
	m.missedCounter.Add(context.Background(), 1, attrs(mode, typ))
}
