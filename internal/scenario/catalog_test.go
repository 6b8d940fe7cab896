package scenario

import (
	"errors"
	"testing"

	"github.com/ldurand/CardioFlow/internal/domain"
)

func TestCatalogTargets(t *testing.T) {
	cases := []struct {
		cfg       domain.ScenarioConfig
		bpm, rrMS float64
	}{
		{Rest(), 60, 1000},
		{Sleep(), 52, 1150},
		{Exercise(), 120, 500},
	}
	for _, c := range cases {
		if err := c.cfg.Validate(); err != nil {
			t.Fatalf("%s: %v", c.cfg.Name, err)
		}
		if c.cfg.TargetBPM != c.bpm || c.cfg.TargetRRMS != c.rrMS {
			t.Fatalf("%s: expected %g BPM / %g ms, got %g / %g",
				c.cfg.Name, c.bpm, c.rrMS, c.cfg.TargetBPM, c.cfg.TargetRRMS)
		}
	}
}

func TestCustomExerciseDerivedFields(t *testing.T) {
	cfg, err := CustomExercise(150)
	if err != nil {
		t.Fatalf("custom exercise: %v", err)
	}
	if cfg.Name != "exercise_150" {
		t.Fatalf("unexpected name %q", cfg.Name)
	}
	if cfg.TargetRRMS != 400 {
		t.Fatalf("RR target should be 60000/150 = 400, got %g", cfg.TargetRRMS)
	}
	if cfg.BPMVariance != 12 {
		t.Fatalf("BPM variance should scale to 0.08*150 = 12, got %g", cfg.BPMVariance)
	}
	if cfg.RRVariance != 40 {
		t.Fatalf("RR variance should scale to 0.1*400 = 40, got %g", cfg.RRVariance)
	}
}

func TestCustomExerciseVarianceFloors(t *testing.T) {
	cfg, err := CustomExercise(50)
	if err != nil {
		t.Fatalf("custom exercise: %v", err)
	}
	if cfg.BPMVariance != 5 {
		t.Fatalf("BPM variance floor is 5, got %g", cfg.BPMVariance)
	}
	// targetRR = 1200, so 0.1*RR dominates the 30ms floor here.
	if cfg.RRVariance != 120 {
		t.Fatalf("expected RR variance 120, got %g", cfg.RRVariance)
	}
}

func TestCustomExerciseInvalidIntensity(t *testing.T) {
	if _, err := CustomExercise(0); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if _, err := CustomExercise(-10); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"rest", "sleep", "exercise"} {
		cfg, err := ByName(name, 0)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg.Name != name {
			t.Fatalf("expected name %q, got %q", name, cfg.Name)
		}
	}
}

func TestByNameExerciseIntensityOverride(t *testing.T) {
	cfg, err := ByName("exercise", 140)
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if cfg.TargetBPM != 140 {
		t.Fatalf("intensity should override the exercise target, got %g", cfg.TargetBPM)
	}

	// Intensity is ignored for the other catalog entries.
	cfg, err = ByName("rest", 140)
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if cfg.TargetBPM != 60 {
		t.Fatalf("rest should keep its 60 BPM target, got %g", cfg.TargetBPM)
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("marathon", 0); !errors.Is(err, domain.ErrUnsupportedScenario) {
		t.Fatalf("expected ErrUnsupportedScenario, got %v", err)
	}
}
