package telemetry

import (
	"context"
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestInitRegistersMetrics(t *testing.T) {
	Init()
	Init() // idempotent

	if CommandsProcessed == nil {
		t.Error("CommandsProcessed not initialized")
	}
	if VerseLookups == nil {
		t.Error("VerseLookups not initialized")
	}
	if CacheHits == nil || CacheMisses == nil {
		t.Error("cache counters not initialized")
	}
	if TriviaStarted == nil || TriviaAnswered == nil || TriviaExpired == nil {
		t.Error("trivia counters not initialized")
	}
	if LookupDuration == nil {
		t.Error("LookupDuration not initialized")
	}
	if OverlayClientsGauge == nil || TriviaActiveGauge == nil {
		t.Error("gauges not initialized")
	}
}

func TestIncCounterNilSafe(t *testing.T) {
	// Must not panic before Init.
	IncCounter(nil)

	Init()
	metric := &dto.Metric{}
	if err := AutoDetects.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	before := *metric.Counter.Value

	IncCounter(AutoDetects)

	if err := AutoDetects.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := *metric.Counter.Value; got != before+1 {
		t.Errorf("counter = %v, want %v", got, before+1)
	}
}

func TestSetOverlayClients(t *testing.T) {
	Init()
	SetOverlayClients(3)

	metric := &dto.Metric{}
	if err := OverlayClientsGauge.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := *metric.Gauge.Value; got != 3 {
		t.Errorf("gauge = %v, want 3", got)
	}
}

func TestCorrelationRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := GetCorrelation(ctx); got != "" {
		t.Errorf("empty context correlation = %q", got)
	}

	ctx = WithCorrelation(ctx, "abc-123")
	if got := GetCorrelation(ctx); got != "abc-123" {
		t.Errorf("correlation = %q, want abc-123", got)
	}
	if LoggerWithCorr(ctx) == nil {
		t.Error("LoggerWithCorr returned nil")
	}
}
