package domain

import (
	"errors"
	"testing"
)

func validScenario() ScenarioConfig {
	return ScenarioConfig{
		Name:        "rest",
		TargetBPM:   60,
		BPMVariance: 5,
		TargetRRMS:  1000,
		RRVariance:  100,
	}
}

func TestScenarioConfigValidate(t *testing.T) {
	if err := validScenario().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*ScenarioConfig)
	}{
		{"empty name", func(c *ScenarioConfig) { c.Name = "" }},
		{"zero bpm", func(c *ScenarioConfig) { c.TargetBPM = 0 }},
		{"negative bpm variance", func(c *ScenarioConfig) { c.BPMVariance = -1 }},
		{"zero rr", func(c *ScenarioConfig) { c.TargetRRMS = 0 }},
		{"zero rr variance", func(c *ScenarioConfig) { c.RRVariance = 0 }},
	}
	for _, m := range mutations {
		cfg := validScenario()
		m.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("%s: expected ErrInvalidConfiguration, got %v", m.name, err)
		}
	}
}

func TestScenarioConfigString(t *testing.T) {
	got := validScenario().String()
	want := "rest: BPM=60±5, RR=1000±100ms"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHeartDataString(t *testing.T) {
	d := HeartData{
		Timestamp:    12.5,
		BPM:          61.27,
		RRIntervalMS: 987.4,
		Scenario:     "rest",
	}
	want := "[rest] BPM: 61.3 | RR: 987ms | Time: 12.50s"
	if got := d.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
