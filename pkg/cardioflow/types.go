package cardioflow

import (
	"github.com/ldurand/CardioFlow/internal/adapters/sensor"
	"github.com/ldurand/CardioFlow/internal/app/engine"
	"github.com/ldurand/CardioFlow/internal/app/stats"
	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
	"github.com/ldurand/CardioFlow/internal/scenario"
	"github.com/ldurand/CardioFlow/internal/transition"
)

// HeartData is one synthetic cardiac measurement, exported so custom sinks and
// sensors can reference it directly.
type HeartData = domain.HeartData

// ScenarioConfig is a named physiological target state.
type ScenarioConfig = domain.ScenarioConfig

// Sensor is the abstract cardiac data source; the simulated generator is one
// implementation, a real-hardware reader another.
type Sensor = ports.Sensor

// Sink consumes ordered batches of samples.
type Sink = ports.Sink

// SampleBuffer is the bounded buffer decoupling production from delivery.
type SampleBuffer = ports.SampleBuffer

// Observability emits metrics and structured logs for the runtime.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// StreamPolicy controls buffering between the producer and the sinks.
type StreamPolicy = ports.StreamPolicy

// Engine drives a sensor at a fixed sampling cadence.
type Engine = engine.Engine

// Stream is the lazy, finite sample iterator returned by Engine.Stream.
type Stream = engine.Stream

// SimulatedSensor is the built-in signal generator.
type SimulatedSensor = sensor.SimulatedSensor

// SensorOption customizes a SimulatedSensor at construction.
type SensorOption = sensor.Option

// Summary is the aggregate view over one run's samples.
type Summary = stats.Summary

// StatsCollector accumulates samples incrementally into a Summary.
type StatsCollector = stats.Collector

// Error taxonomy of the simulation core.
var (
	ErrInvalidConfiguration = domain.ErrInvalidConfiguration
	ErrInvalidArgument      = domain.ErrInvalidArgument
	ErrUnsupportedScenario  = domain.ErrUnsupportedScenario
)

// NewEngine builds an engine over the given sensor at samplingRate Hz.
func NewEngine(s Sensor, samplingRate float64) (*Engine, error) {
	return engine.New(s, samplingRate)
}

// NewSimulatedSensor builds the signal generator resting on the initial
// scenario's exact targets.
func NewSimulatedSensor(initial ScenarioConfig, opts ...SensorOption) (*SimulatedSensor, error) {
	return sensor.NewSimulatedSensor(initial, opts...)
}

// WithRand injects a seedable random source into a SimulatedSensor.
var WithRand = sensor.WithRand

// WithMaxRates overrides the per-second BPM/RR rate limits.
var WithMaxRates = sensor.WithMaxRates

// Catalog scenarios and constructors.
var (
	Rest           = scenario.Rest
	Sleep          = scenario.Sleep
	Exercise       = scenario.Exercise
	CustomExercise = scenario.CustomExercise
	ScenarioByName = scenario.ByName
)

// StepToward is the pure rate-limited interpolation step used by the sensor.
var StepToward = transition.StepToward

// NewStatsCollector returns an empty statistics accumulator.
func NewStatsCollector() *StatsCollector {
	return stats.NewCollector()
}
