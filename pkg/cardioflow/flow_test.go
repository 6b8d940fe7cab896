package cardioflow

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"
)

// nopObs keeps runtime tests off the process-global Prometheus registry.
type nopObs struct{}

func (nopObs) LogInfo(msg string, fields ...Field)             {}
func (nopObs) LogError(msg string, err error, fields ...Field) {}
func (nopObs) IncCounter(name string, v float64)               {}
func (nopObs) ObserveLatency(name string, seconds float64)     {}
func (nopObs) SetGauge(name string, v float64)                 {}

func testConfig() *Config {
	cfg := &Config{
		Scenario: "rest",
		Rate:     100.0,
		Duration: Duration(100 * time.Millisecond),
	}
	cfg.ApplyDefaults()
	cfg.Policy.FlushInterval = Duration(10 * time.Millisecond)
	cfg.Metrics.Addr = "" // no listener in tests
	return cfg
}

func TestConfFromConfig(t *testing.T) {
	cfg := testConfig()

	flow, err := ConfFromConfig(cfg)
	if err != nil {
		t.Fatalf("ConfFromConfig returned error: %v", err)
	}
	if flow.Config() != cfg {
		t.Fatalf("expected Config to be returned verbatim")
	}

	if _, err := ConfFromConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestRuntimeDeliversBoundedRun(t *testing.T) {
	cfg := testConfig()

	var mu sync.Mutex
	var received []HeartData
	collectSink := NewCallbackSink("collect", func(batch []HeartData) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, batch...)
		return nil
	})

	flow, err := ConfFromConfig(cfg, WithFlowOptions(
		WithObservability(nopObs{}),
		WithSink(collectSink),
		WithRandSource(rand.New(rand.NewSource(1))),
	))
	if err != nil {
		t.Fatalf("ConfFromConfig returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := flow.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()

	// 100ms of simulated time at 100 Hz.
	if len(received) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(received))
	}
	for i, s := range received {
		if math.Abs(s.Timestamp-float64(i)*0.01) > 1e-9 {
			t.Fatalf("sample %d out of order: t=%g", i, s.Timestamp)
		}
		if s.Scenario != "rest" {
			t.Fatalf("sample %d has scenario %q", i, s.Scenario)
		}
	}
}

func TestRuntimeContextCancellation(t *testing.T) {
	cfg := testConfig()
	cfg.Duration = 0 // unbounded, must stop on cancel

	flow, err := ConfFromConfig(cfg, WithFlowOptions(
		WithObservability(nopObs{}),
		WithSink(NewCallbackSink("discard", func([]HeartData) error { return nil })),
	))
	if err != nil {
		t.Fatalf("ConfFromConfig returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := flow.Run(ctx); err != nil {
		t.Fatalf("cancelled run should end cleanly, got %v", err)
	}
}

func TestNewRuntimeValidation(t *testing.T) {
	if _, err := NewRuntime(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}

	cfg := testConfig()
	cfg.Scenario = "marathon"
	if _, err := NewRuntime(cfg, WithObservability(nopObs{})); err == nil {
		t.Fatalf("expected error for unknown scenario")
	}
}

func TestWithScenarioOverride(t *testing.T) {
	cfg := testConfig()

	rt, err := NewRuntime(cfg,
		WithObservability(nopObs{}),
		WithSink(NewCallbackSink("discard", func([]HeartData) error { return nil })),
		WithScenario(Sleep()),
	)
	if err != nil {
		t.Fatalf("NewRuntime returned error: %v", err)
	}
	if got := rt.Engine().CurrentScenario().Name; got != "sleep" {
		t.Fatalf("expected sleep scenario, got %q", got)
	}
	if rt.SessionID() == "" {
		t.Fatalf("expected a session id")
	}
}
