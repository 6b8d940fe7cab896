// Package sensor contains the simulated cardiac sensor, the only mutable part
// of the simulation core.
package sensor

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
	"github.com/ldurand/CardioFlow/internal/transition"
)

const (
	// Maximum physiological rate of change per second of simulated time.
	defaultMaxBPMChangePerSec = 4.0
	defaultMaxRRChangePerSec  = 60.0

	// Slow wander: one oscillation roughly every ten seconds, bounded to a
	// fraction of the scenario variance.
	driftFrequencyHz = 0.1
	driftAmplitude   = 0.3

	// Short-term noise sigma as a fraction of the BPM variance.
	bpmNoiseFraction = 0.4

	// Soft bound on excursions around the smoothed value.
	clampSigmaMultiple = 3.0

	// Absolute physiological rails.
	minBPM  = 30.0
	maxBPM  = 220.0
	minRRMS = 300.0
	maxRRMS = 2000.0
)

// Option customizes a SimulatedSensor at construction.
type Option func(*SimulatedSensor)

// WithRand injects a seedable random source so tests can assert exact outputs.
func WithRand(rng *rand.Rand) Option {
	return func(s *SimulatedSensor) {
		s.rng = rng
	}
}

// WithMaxRates overrides the per-second rate limits for BPM and RR.
func WithMaxRates(bpmPerSec, rrPerSec float64) Option {
	return func(s *SimulatedSensor) {
		s.maxBPMPerSec = bpmPerSec
		s.maxRRPerSec = rrPerSec
	}
}

// SimulatedSensor generates physiologically plausible BPM/RR samples by
// combining rate-limited convergence toward the active scenario's targets,
// a slow sinusoidal drift, and Gaussian short-term noise. It owns all of its
// state exclusively; nothing here is shared between instances.
type SimulatedSensor struct {
	active  domain.ScenarioConfig
	pending *domain.ScenarioConfig

	currentBPM float64
	currentRR  float64
	elapsed    float64

	maxBPMPerSec float64
	maxRRPerSec  float64

	phase float64
	rng   *rand.Rand

	// pristine marks the state right after construction or Reset: the next
	// read emits the exact targets with no drift or noise.
	pristine bool
}

// NewSimulatedSensor validates the initial scenario and returns a sensor
// resting exactly on its targets.
func NewSimulatedSensor(initial domain.ScenarioConfig, opts ...Option) (*SimulatedSensor, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	s := &SimulatedSensor{
		active:       initial,
		maxBPMPerSec: defaultMaxBPMChangePerSec,
		maxRRPerSec:  defaultMaxRRChangePerSec,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.maxBPMPerSec <= 0 || s.maxRRPerSec <= 0 {
		return nil, fmt.Errorf("%w: max change rates must be > 0, got bpm=%g rr=%g",
			domain.ErrInvalidArgument, s.maxBPMPerSec, s.maxRRPerSec)
	}

	s.Reset()
	return s, nil
}

// Read produces one sample and advances the simulated clock by tick. The
// timestamp on the sample is the elapsed time before the advance, so the
// first read after a reset carries t = 0.
func (s *SimulatedSensor) Read(tick time.Duration) (domain.HeartData, error) {
	if tick <= 0 {
		return domain.HeartData{}, fmt.Errorf("%w: tick must be > 0, got %s", domain.ErrInvalidArgument, tick)
	}
	dt := tick.Seconds()

	if s.pristine {
		s.pristine = false
		data := s.sample(s.currentBPM, s.currentRR)
		s.elapsed += dt
		return data, nil
	}

	target := s.active
	if s.pending != nil {
		target = *s.pending
	}

	var err error
	s.currentBPM, err = transition.StepToward(s.currentBPM, target.TargetBPM, s.maxBPMPerSec*dt)
	if err != nil {
		return domain.HeartData{}, err
	}
	s.currentRR, err = transition.StepToward(s.currentRR, target.TargetRRMS, s.maxRRPerSec*dt)
	if err != nil {
		return domain.HeartData{}, err
	}

	// The crossfade completes once both axes land exactly on the targets.
	if s.pending != nil && s.currentBPM == s.pending.TargetBPM && s.currentRR == s.pending.TargetRRMS {
		s.active = *s.pending
		s.pending = nil
	}

	s.phase += 2 * math.Pi * driftFrequencyHz * dt
	bpmDrift := math.Sin(s.phase) * target.BPMVariance * driftAmplitude
	// RR wanders against BPM: longer intervals while the rate dips.
	rrDrift := -math.Sin(s.phase) * target.RRVariance * driftAmplitude

	bpm := s.currentBPM + bpmDrift + s.rng.NormFloat64()*target.BPMVariance*bpmNoiseFraction
	bpm = clamp(bpm,
		s.currentBPM-clampSigmaMultiple*target.BPMVariance,
		s.currentBPM+clampSigmaMultiple*target.BPMVariance)
	bpm = clamp(bpm, minBPM, maxBPM)

	rr := s.currentRR + rrDrift + s.rng.NormFloat64()*target.RRVariance
	rr = clamp(rr,
		s.currentRR-clampSigmaMultiple*target.RRVariance,
		s.currentRR+clampSigmaMultiple*target.RRVariance)
	rr = clamp(rr, minRRMS, maxRRMS)

	data := s.sample(bpm, rr)
	s.elapsed += dt
	return data, nil
}

// SetScenario schedules a gradual transition; current values are untouched so
// the glide stays continuous. Re-setting the active scenario while stable is
// a no-op.
func (s *SimulatedSensor) SetScenario(cfg domain.ScenarioConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if s.pending == nil && cfg == s.active {
		return nil
	}
	if s.pending != nil && cfg == *s.pending {
		return nil
	}
	s.pending = &cfg
	return nil
}

// Reset places the sensor exactly on the active scenario's targets and
// rewinds the simulated clock. Deterministic apart from the drift phase,
// which is re-seeded from the injected random source.
func (s *SimulatedSensor) Reset() {
	s.pending = nil
	s.currentBPM = s.active.TargetBPM
	s.currentRR = s.active.TargetRRMS
	s.elapsed = 0
	s.phase = s.rng.Float64() * 2 * math.Pi
	s.pristine = true
}

// CurrentScenario reports the scenario considered active. During a transition
// this stays the previous scenario until both values converge.
func (s *SimulatedSensor) CurrentScenario() domain.ScenarioConfig {
	return s.active
}

// CurrentBPM exposes the smoothed BPM before drift and noise.
func (s *SimulatedSensor) CurrentBPM() float64 { return s.currentBPM }

// CurrentRR exposes the smoothed RR interval before drift and noise.
func (s *SimulatedSensor) CurrentRR() float64 { return s.currentRR }

// Transitioning reports whether a scenario change is still in flight.
func (s *SimulatedSensor) Transitioning() bool { return s.pending != nil }

func (s *SimulatedSensor) sample(bpm, rr float64) domain.HeartData {
	return domain.HeartData{
		Timestamp:    s.elapsed,
		BPM:          bpm,
		RRIntervalMS: rr,
		Scenario:     s.active.Name,
		Metadata:     map[string]any{"is_simulated": true},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ ports.Sensor = (*SimulatedSensor)(nil)
