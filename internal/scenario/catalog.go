// Package scenario holds the catalog of built-in physiological states and the
// constructors for custom ones. Catalog entries are returned by value so
// callers can never mutate the process-wide definitions.
package scenario

import (
	"fmt"
	"math"

	"github.com/ldurand/CardioFlow/internal/domain"
)

// Rest is a calm, awake subject.
func Rest() domain.ScenarioConfig {
	return domain.ScenarioConfig{
		Name:        "rest",
		TargetBPM:   60.0,
		BPMVariance: 5.0,
		TargetRRMS:  1000.0,
		RRVariance:  100.0,
		Description: "Resting state, calm and awake",
	}
}

// Sleep is deep sleep.
func Sleep() domain.ScenarioConfig {
	return domain.ScenarioConfig{
		Name:        "sleep",
		TargetBPM:   52.0,
		BPMVariance: 4.0,
		TargetRRMS:  1150.0,
		RRVariance:  150.0,
		Description: "Deep sleep state",
	}
}

// Exercise is moderate to intense physical effort at the default 120 BPM.
func Exercise() domain.ScenarioConfig {
	return domain.ScenarioConfig{
		Name:        "exercise",
		TargetBPM:   120.0,
		BPMVariance: 10.0,
		TargetRRMS:  500.0,
		RRVariance:  50.0,
		Description: "Moderate to intense physical effort",
	}
}

// CustomExercise builds an exercise scenario centered on the requested BPM.
// The RR target follows the 60000/BPM identity and both variances scale with
// intensity, floored so low intensities still show realistic variability.
func CustomExercise(intensityBPM float64) (domain.ScenarioConfig, error) {
	if intensityBPM <= 0 {
		return domain.ScenarioConfig{}, fmt.Errorf("%w: exercise intensity must be > 0, got %g",
			domain.ErrInvalidConfiguration, intensityBPM)
	}

	targetRR := 60000.0 / intensityBPM
	cfg := domain.ScenarioConfig{
		Name:        fmt.Sprintf("exercise_%d", int(intensityBPM)),
		TargetBPM:   intensityBPM,
		BPMVariance: math.Max(5.0, intensityBPM*0.08),
		TargetRRMS:  targetRR,
		RRVariance:  math.Max(30.0, targetRR*0.1),
		Description: fmt.Sprintf("Custom effort at %g BPM", intensityBPM),
	}
	if err := cfg.Validate(); err != nil {
		return domain.ScenarioConfig{}, err
	}
	return cfg, nil
}

// ByName resolves a catalog name as supplied by the CLI or a config file.
// intensityBPM > 0 overrides the exercise target; it is ignored for the other
// catalog entries.
func ByName(name string, intensityBPM float64) (domain.ScenarioConfig, error) {
	switch name {
	case "rest":
		return Rest(), nil
	case "sleep":
		return Sleep(), nil
	case "exercise":
		if intensityBPM > 0 {
			return CustomExercise(intensityBPM)
		}
		return Exercise(), nil
	default:
		return domain.ScenarioConfig{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedScenario, name)
	}
}
