package domain

import "fmt"

// ScenarioConfig describes a named physiological target state: center values
// and allowed one-sigma spread for BPM and RR interval. Configurations are
// constructed once, validated eagerly, and shared read-only afterwards.
type ScenarioConfig struct {
	Name        string  `json:"name" yaml:"name"`
	TargetBPM   float64 `json:"target_bpm" yaml:"target_bpm"`
	BPMVariance float64 `json:"bpm_variance" yaml:"bpm_variance"`
	TargetRRMS  float64 `json:"target_rr_ms" yaml:"target_rr_ms"`
	RRVariance  float64 `json:"rr_variance" yaml:"rr_variance"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate enforces the construction invariants: a non-empty name and strictly
// positive numeric fields.
func (c ScenarioConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfiguration)
	}
	if c.TargetBPM <= 0 {
		return fmt.Errorf("%w: target_bpm must be > 0, got %g", ErrInvalidConfiguration, c.TargetBPM)
	}
	if c.BPMVariance <= 0 {
		return fmt.Errorf("%w: bpm_variance must be > 0, got %g", ErrInvalidConfiguration, c.BPMVariance)
	}
	if c.TargetRRMS <= 0 {
		return fmt.Errorf("%w: target_rr_ms must be > 0, got %g", ErrInvalidConfiguration, c.TargetRRMS)
	}
	if c.RRVariance <= 0 {
		return fmt.Errorf("%w: rr_variance must be > 0, got %g", ErrInvalidConfiguration, c.RRVariance)
	}
	return nil
}

func (c ScenarioConfig) String() string {
	return fmt.Sprintf("%s: BPM=%g±%g, RR=%g±%gms",
		c.Name, c.TargetBPM, c.BPMVariance, c.TargetRRMS, c.RRVariance)
}
