package cardioflow

import (
	"math/rand"

	base "github.com/ldurand/CardioFlow/pkg/cardioflow"
)

// Re-exported errors for convenience.
var (
	ErrInvalidConfiguration = base.ErrInvalidConfiguration
	ErrInvalidArgument      = base.ErrInvalidArgument
	ErrUnsupportedScenario  = base.ErrUnsupportedScenario
	ErrChannelSinkClosed    = base.ErrChannelSinkClosed
)

// Type aliases so consumers can import github.com/ldurand/CardioFlow directly.
type (
	Config          = base.Config
	Duration        = base.Duration
	PolicyConfig    = base.PolicyConfig
	SinksConfig     = base.SinksConfig
	ConsoleConfig   = base.ConsoleConfig
	TimescaleConfig = base.TimescaleConfig
	MQTTConfig      = base.MQTTConfig
	RedisConfig     = base.RedisConfig
	MetricsConfig   = base.MetricsConfig
	LoggingConfig   = base.LoggingConfig
	StreamPolicy    = base.StreamPolicy
	Flow            = base.Flow
	FlowOption      = base.FlowOption
	Runtime         = base.Runtime
	RuntimeOption   = base.RuntimeOption
	HeartData       = base.HeartData
	ScenarioConfig  = base.ScenarioConfig
	Sensor          = base.Sensor
	SimulatedSensor = base.SimulatedSensor
	SensorOption    = base.SensorOption
	Sink            = base.Sink
	SampleBuffer    = base.SampleBuffer
	Observability   = base.Observability
	Field           = base.Field
	Engine          = base.Engine
	Stream          = base.Stream
	Summary         = base.Summary
	StatsCollector  = base.StatsCollector
	SampleBatchSink = base.SampleBatchSink
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

// Flow builder helpers.
func Conf(path string, opts ...FlowOption) (*Flow, error) {
	return base.Conf(path, opts...)
}

func ConfFromConfig(cfg *Config, opts ...FlowOption) (*Flow, error) {
	return base.ConfFromConfig(cfg, opts...)
}

func WithFlowOptions(opts ...RuntimeOption) FlowOption {
	return base.WithFlowOptions(opts...)
}

// Runtime and options.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

func WithSensor(s Sensor) RuntimeOption {
	return base.WithSensor(s)
}

func WithSink(s Sink) RuntimeOption {
	return base.WithSink(s)
}

func WithBuffer(b SampleBuffer) RuntimeOption {
	return base.WithBuffer(b)
}

func WithObservability(obs Observability) RuntimeOption {
	return base.WithObservability(obs)
}

func WithRandSource(rng *rand.Rand) RuntimeOption {
	return base.WithRandSource(rng)
}

func WithScenario(cfg ScenarioConfig) RuntimeOption {
	return base.WithScenario(cfg)
}

// Core constructors.
func NewEngine(s Sensor, samplingRate float64) (*Engine, error) {
	return base.NewEngine(s, samplingRate)
}

func NewSimulatedSensor(initial ScenarioConfig, opts ...SensorOption) (*SimulatedSensor, error) {
	return base.NewSimulatedSensor(initial, opts...)
}

func NewStatsCollector() *StatsCollector {
	return base.NewStatsCollector()
}

// Scenario catalog.
var (
	Rest           = base.Rest
	Sleep          = base.Sleep
	Exercise       = base.Exercise
	CustomExercise = base.CustomExercise
	ScenarioByName = base.ScenarioByName
)

// Sink adapters.
func NewCallbackSink(name string, fn SampleBatchSink) Sink {
	return base.NewCallbackSink(name, fn)
}

func NewChannelSink(name string, buffer int) (Sink, <-chan []HeartData, func()) {
	return base.NewChannelSink(name, buffer)
}
