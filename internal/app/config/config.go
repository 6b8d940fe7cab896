package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
	"github.com/ldurand/CardioFlow/internal/scenario"
)

// Duration lets YAML configs spell intervals the human way ("30s", "1m").
// A zero or empty value stays zero.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" || node.Value == "0" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Scenario  string        `yaml:"scenario"`
	Intensity float64       `yaml:"intensity"`
	Duration  Duration      `yaml:"duration"`
	Rate      float64       `yaml:"rate"`
	Policy    PolicyConfig  `yaml:"policy"`
	Sinks     SinksConfig   `yaml:"sinks"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Logging   LoggingConfig `yaml:"logging"`
}

type PolicyConfig struct {
	MaxBufferLen  int      `yaml:"max_buffer_len"`
	MaxBatchSize  int      `yaml:"max_batch_size"`
	FlushInterval Duration `yaml:"flush_interval"`
	OnBufferFull  string   `yaml:"on_buffer_full"`
}

// Stream converts the YAML shape into the policy the runtime consumes.
func (p PolicyConfig) Stream() ports.StreamPolicy {
	return ports.StreamPolicy{
		MaxBufferLen:  p.MaxBufferLen,
		MaxBatchSize:  p.MaxBatchSize,
		FlushInterval: p.FlushInterval.Std(),
		OnBufferFull:  p.OnBufferFull,
	}
}

type SinksConfig struct {
	Console   ConsoleConfig   `yaml:"console"`
	Timescale TimescaleConfig `yaml:"timescale"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Redis     RedisConfig     `yaml:"redis"`
}

type ConsoleConfig struct {
	Enabled bool `yaml:"enabled"`
}

type TimescaleConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	QoS      int    `yaml:"qos"`
	ClientID string `yaml:"client_id"`
}

type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Stream  string `yaml:"stream"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Scenario == "" {
		c.Scenario = "rest"
	}
	if c.Rate == 0 {
		c.Rate = 1.0
	}
	if c.Policy.MaxBufferLen == 0 {
		c.Policy.MaxBufferLen = 10_000
	}
	if c.Policy.MaxBatchSize == 0 {
		c.Policy.MaxBatchSize = 256
	}
	if c.Policy.FlushInterval == 0 {
		c.Policy.FlushInterval = Duration(time.Second)
	}
	if c.Policy.OnBufferFull == "" {
		c.Policy.OnBufferFull = "drop"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9102"
	}
	if c.Sinks.Timescale.Table == "" {
		c.Sinks.Timescale.Table = "heart_samples"
	}
	if c.Sinks.MQTT.Topic == "" {
		c.Sinks.MQTT.Topic = "cardioflow/samples"
	}
	if c.Sinks.MQTT.ClientID == "" {
		c.Sinks.MQTT.ClientID = "cardioflow-producer"
	}
	if c.Sinks.Redis.Stream == "" {
		c.Sinks.Redis.Stream = "cardioflow:samples"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}

	// Connection details may come from the environment instead of the file,
	// matching how deployments pass broker addresses around.
	if c.Sinks.MQTT.Broker == "" {
		c.Sinks.MQTT.Broker = os.Getenv("CARDIOFLOW_MQTT_BROKER")
	}
	if c.Sinks.Redis.Addr == "" {
		c.Sinks.Redis.Addr = os.Getenv("CARDIOFLOW_REDIS_ADDR")
	}
	if c.Sinks.Timescale.ConnString == "" {
		c.Sinks.Timescale.ConnString = os.Getenv("CARDIOFLOW_TIMESCALE_CONN")
	}
}

func (c *Config) Validate() error {
	if _, err := scenario.ByName(c.Scenario, c.Intensity); err != nil {
		return err
	}
	if c.Rate <= 0 {
		return fmt.Errorf("%w: rate must be > 0 Hz, got %g", domain.ErrInvalidArgument, c.Rate)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration must be >= 0, got %s", domain.ErrInvalidArgument, c.Duration.Std())
	}
	if c.Policy.MaxBufferLen <= 0 {
		return fmt.Errorf("%w: policy.max_buffer_len must be > 0", domain.ErrInvalidArgument)
	}
	if c.Policy.MaxBatchSize <= 0 {
		return fmt.Errorf("%w: policy.max_batch_size must be > 0", domain.ErrInvalidArgument)
	}
	switch c.Policy.OnBufferFull {
	case "block", "drop":
	default:
		return fmt.Errorf("%w: policy.on_buffer_full must be \"block\" or \"drop\", got %q",
			domain.ErrInvalidArgument, c.Policy.OnBufferFull)
	}
	if c.Sinks.Timescale.Enabled && c.Sinks.Timescale.ConnString == "" {
		return fmt.Errorf("sinks.timescale.conn_string is required when enabled")
	}
	if c.Sinks.MQTT.Enabled && c.Sinks.MQTT.Broker == "" {
		return fmt.Errorf("sinks.mqtt.broker is required when enabled")
	}
	if c.Sinks.MQTT.Enabled && (c.Sinks.MQTT.QoS < 0 || c.Sinks.MQTT.QoS > 2) {
		return fmt.Errorf("sinks.mqtt.qos must be 0, 1, or 2, got %d", c.Sinks.MQTT.QoS)
	}
	if c.Sinks.Redis.Enabled && c.Sinks.Redis.Addr == "" {
		return fmt.Errorf("sinks.redis.addr is required when enabled")
	}
	return nil
}
