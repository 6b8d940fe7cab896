package domain

import "fmt"

// HeartData is the canonical unit of synthetic cardiac telemetry in CardioFlow.
// One instance represents a single beat-level measurement; it is created fresh
// on every sensor read and never mutated afterwards.
type HeartData struct {
	Timestamp    float64        `json:"timestamp"`
	BPM          float64        `json:"bpm"`
	RRIntervalMS float64        `json:"rr_interval_ms"`
	Scenario     string         `json:"scenario"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

func (d HeartData) String() string {
	return fmt.Sprintf("[%s] BPM: %.1f | RR: %.0fms | Time: %.2fs",
		d.Scenario, d.BPM, d.RRIntervalMS, d.Timestamp)
}
