package cardioflow

import "github.com/ldurand/CardioFlow/internal/app/config"

// Config re-exports the root configuration struct so downstream projects can
// construct or modify it programmatically.
type Config = config.Config

type (
	// Duration is the YAML-friendly duration used across config fields.
	Duration = config.Duration
	// PolicyConfig is the YAML shape of the buffering policy.
	PolicyConfig = config.PolicyConfig
	// SinksConfig selects and configures the output destinations.
	SinksConfig = config.SinksConfig
	// ConsoleConfig toggles the console sink.
	ConsoleConfig = config.ConsoleConfig
	// TimescaleConfig configures the database sink.
	TimescaleConfig = config.TimescaleConfig
	// MQTTConfig configures the broker sink.
	MQTTConfig = config.MQTTConfig
	// RedisConfig configures the Redis Stream sink.
	RedisConfig = config.RedisConfig
	// MetricsConfig configures the metrics HTTP server.
	MetricsConfig = config.MetricsConfig
	// LoggingConfig configures the zap logger.
	LoggingConfig = config.LoggingConfig
)

// LoadConfig loads YAML from disk using the internal config reader.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
