// Package engine orchestrates a cardiac sensor at a fixed sampling cadence.
// The engine is pull-based and fully synchronous: it never sleeps, spawns
// goroutines, or touches the wall clock; pacing a live feed is the caller's
// policy.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
)

// Engine drives a Sensor, exposing single-sample and time-bounded streaming
// access and mediating scenario changes.
type Engine struct {
	sensor ports.Sensor
	rate   float64
	tick   time.Duration
}

// New returns an engine sampling the given sensor at samplingRate Hz.
func New(sensor ports.Sensor, samplingRate float64) (*Engine, error) {
	if sensor == nil {
		return nil, fmt.Errorf("%w: sensor is required", domain.ErrInvalidArgument)
	}
	e := &Engine{sensor: sensor}
	if err := e.SetSamplingRate(samplingRate); err != nil {
		return nil, err
	}
	return e, nil
}

// GetSample reads exactly one sample, advancing simulated time by one tick.
func (e *Engine) GetSample() (domain.HeartData, error) {
	return e.sensor.Read(e.tick)
}

// Stream returns a lazy, finite iterator over samples covering duration
// seconds of simulated time. A sample is produced for every tick whose offset
// is strictly below duration, so 10s at 1 Hz yields exactly 10 samples. The
// iterator resumes from the sensor's current state, not from time zero.
func (e *Engine) Stream(duration time.Duration) (*Stream, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: stream duration must be > 0, got %s", domain.ErrInvalidArgument, duration)
	}
	// k ticks fit while k/rate < duration; the epsilon absorbs float noise on
	// exact multiples.
	limit := int(math.Ceil(duration.Seconds()*e.rate - 1e-9))
	return &Stream{engine: e, limit: limit}, nil
}

// ChangeScenario hands the new targets to the sensor; the effect appears
// gradually across subsequent samples, never as a jump.
func (e *Engine) ChangeScenario(cfg domain.ScenarioConfig) error {
	return e.sensor.SetScenario(cfg)
}

// Reset restores the sensor to its active scenario's exact targets at t = 0.
func (e *Engine) Reset() {
	e.sensor.Reset()
}

// CurrentScenario reports the sensor's active scenario.
func (e *Engine) CurrentScenario() domain.ScenarioConfig {
	return e.sensor.CurrentScenario()
}

// SamplingRate returns the configured cadence in Hz.
func (e *Engine) SamplingRate() float64 { return e.rate }

// SetSamplingRate changes the cadence for subsequent reads.
func (e *Engine) SetSamplingRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: sampling rate must be > 0 Hz, got %g", domain.ErrInvalidArgument, rate)
	}
	e.rate = rate
	e.tick = time.Duration(float64(time.Second) / rate)
	return nil
}

// Tick is the simulated duration advanced per sample.
func (e *Engine) Tick() time.Duration { return e.tick }

// Stream is a pull-based iterator over a bounded run of samples, in the style
// of bufio.Scanner: call Next until it returns false, then check Err.
type Stream struct {
	engine  *Engine
	limit   int
	taken   int
	current domain.HeartData
	err     error
}

// Next advances to the following sample. It returns false once the requested
// duration is covered or a read failed.
func (s *Stream) Next() bool {
	if s.err != nil || s.taken >= s.limit {
		return false
	}
	data, err := s.engine.GetSample()
	if err != nil {
		s.err = err
		return false
	}
	s.current = data
	s.taken++
	return true
}

// Sample returns the sample produced by the last successful Next.
func (s *Stream) Sample() domain.HeartData { return s.current }

// Err reports the first read failure, if any.
func (s *Stream) Err() error { return s.err }

// Collect drains the remaining samples eagerly. Prefer Next for long streams.
func (s *Stream) Collect() ([]domain.HeartData, error) {
	out := make([]domain.HeartData, 0, s.limit-s.taken)
	for s.Next() {
		out = append(out, s.Sample())
	}
	return out, s.Err()
}
