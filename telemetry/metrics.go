// Package telemetry provides Prometheus metrics and correlation-id aware logging helpers.
package telemetry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	CommandsProcessed prometheus.Counter
	VerseLookups      prometheus.Counter
	VerseLookupFails  prometheus.Counter
	VerseFallbacks    prometheus.Counter
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	TriviaStarted     prometheus.Counter
	TriviaAnswered    prometheus.Counter
	TriviaExpired     prometheus.Counter
	AutoDetects       prometheus.Counter

	// Histograms (seconds)
	LookupDuration prometheus.Observer

	// Gauges
	OverlayClientsGauge prometheus.Gauge
	TriviaActiveGauge   prometheus.Gauge
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		CommandsProcessed = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_commands_processed_total", Help: "Number of chat commands handled"})
		VerseLookups = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_verse_lookups_total", Help: "Number of verse lookups attempted"})
		VerseLookupFails = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_verse_lookup_failures_total", Help: "Number of verse lookups that returned nothing"})
		VerseFallbacks = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_verse_fallbacks_total", Help: "Number of lookups served by the fallback API"})
		CacheHits = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_verse_cache_hits_total", Help: "Verse cache hits"})
		CacheMisses = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_verse_cache_misses_total", Help: "Verse cache misses"})
		TriviaStarted = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_trivia_started_total", Help: "Trivia questions asked"})
		TriviaAnswered = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_trivia_answered_total", Help: "Trivia questions answered correctly"})
		TriviaExpired = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_trivia_expired_total", Help: "Trivia questions that timed out"})
		AutoDetects = promauto.NewCounter(prometheus.CounterOpts{Name: "bot_auto_detects_total", Help: "Verse references auto-detected in chat"})
		LookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "bot_verse_lookup_duration_seconds", Help: "Verse lookup duration seconds", Buckets: prometheus.DefBuckets})
		OverlayClientsGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "bot_overlay_clients", Help: "Connected overlay SSE clients"})
		TriviaActiveGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "bot_trivia_active_sessions", Help: "Channels with an open trivia question"})
	})
}

// IncCounter is a nil-safe increment for optional metrics.
func IncCounter(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

// SetOverlayClients records the current SSE client count.
func SetOverlayClients(n int) {
	if OverlayClientsGauge != nil {
		OverlayClientsGauge.Set(float64(n))
	}
}

// AddTriviaSessions moves the open-question gauge by delta. Additive so the
// per-platform trivia games can share it.
func AddTriviaSessions(delta float64) {
	if TriviaActiveGauge != nil {
		TriviaActiveGauge.Add(delta)
	}
}

// Correlation ID helpers ----------------------------------------------------
type corrKeyType struct{}

var corrKey corrKeyType

// WithCorrelation returns a new context embedding correlation id (if absent) and the id.
func WithCorrelation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, corrKey, id)
}

// GetCorrelation returns correlation id or empty string.
func GetCorrelation(ctx context.Context) string {
	v := ctx.Value(corrKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// LoggerWithCorr returns a logger with corr attribute if present.
func LoggerWithCorr(ctx context.Context) *slog.Logger {
	if id := GetCorrelation(ctx); id != "" {
		return slog.Default().With(slog.String("corr", id))
	}
	return slog.Default()
}
