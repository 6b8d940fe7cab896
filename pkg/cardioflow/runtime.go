package cardioflow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ldurand/CardioFlow/internal/adapters/buffer"
	"github.com/ldurand/CardioFlow/internal/adapters/observability"
	"github.com/ldurand/CardioFlow/internal/adapters/sensor"
	"github.com/ldurand/CardioFlow/internal/adapters/sink"
	"github.com/ldurand/CardioFlow/internal/app/engine"
	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
	"github.com/ldurand/CardioFlow/internal/scenario"
)

// RuntimeOption customizes the dependencies used by Runtime.
type RuntimeOption func(*runtimeOverrides)

type runtimeOverrides struct {
	sensor        ports.Sensor
	sinks         []ports.Sink
	buffer        ports.SampleBuffer
	observability ports.Observability
	rng           *rand.Rand
	scenario      *domain.ScenarioConfig
}

// WithSensor injects a custom sensor implementation (hardware readers,
// replayers, alternative simulators).
func WithSensor(s Sensor) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.sensor = s
	}
}

// WithSink appends a sink; when any sink is injected this way the configured
// sink set is not built.
func WithSink(s Sink) RuntimeOption {
	return func(o *runtimeOverrides) {
		if s != nil {
			o.sinks = append(o.sinks, s)
		}
	}
}

// WithBuffer swaps the in-memory sample buffer for a custom implementation.
func WithBuffer(b SampleBuffer) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.buffer = b
	}
}

// WithObservability plugs in a custom metrics/logging backend.
func WithObservability(obs Observability) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.observability = obs
	}
}

// WithRandSource seeds the built-in simulated sensor deterministically.
func WithRandSource(rng *rand.Rand) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.rng = rng
	}
}

// WithScenario overrides the initial scenario resolved from the config.
func WithScenario(cfg ScenarioConfig) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.scenario = &cfg
	}
}

// Runtime wires sensor → engine → buffer → sinks and paces the simulated
// stream against the wall clock, mimicking a live telemetry feed. The core
// engine stays synchronous and clock-free; real-time pacing lives only here.
type Runtime struct {
	cfg       *Config
	policy    ports.StreamPolicy
	obs       ports.Observability
	engine    *engine.Engine
	sensor    ports.Sensor
	buffer    ports.SampleBuffer
	sinks     []ports.Sink
	sessionID string

	db          *sql.DB
	mqttClient  mqtt.Client
	redisClient *redis.Client
	metricsSrv  *http.Server
}

// NewRuntime bootstraps the default adapters (simulated sensor, in-memory
// buffer, configured sinks, Prometheus + zap observability). RuntimeOption
// values override any dependency.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var overrides runtimeOverrides
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	obs := overrides.observability
	if obs == nil {
		log, err := observability.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
		obs = observability.NewPromObs(log)
	}

	var initial domain.ScenarioConfig
	if overrides.scenario != nil {
		initial = *overrides.scenario
		if err := initial.Validate(); err != nil {
			return nil, err
		}
	} else {
		var err error
		initial, err = scenario.ByName(cfg.Scenario, cfg.Intensity)
		if err != nil {
			return nil, err
		}
	}

	src := overrides.sensor
	if src == nil {
		var sensorOpts []sensor.Option
		if overrides.rng != nil {
			sensorOpts = append(sensorOpts, sensor.WithRand(overrides.rng))
		}
		var err error
		src, err = sensor.NewSimulatedSensor(initial, sensorOpts...)
		if err != nil {
			return nil, err
		}
	}

	eng, err := engine.New(src, cfg.Rate)
	if err != nil {
		return nil, err
	}

	buf := overrides.buffer
	if buf == nil {
		buf = buffer.NewMemBuffer(cfg.Policy.MaxBufferLen)
	}

	rt := &Runtime{
		cfg:       cfg,
		policy:    cfg.Policy.Stream(),
		obs:       obs,
		engine:    eng,
		sensor:    src,
		buffer:    buf,
		sinks:     overrides.sinks,
		sessionID: uuid.NewString(),
	}

	if len(rt.sinks) == 0 {
		if err := rt.buildConfiguredSinks(); err != nil {
			_ = rt.closeClients()
			return nil, err
		}
	}
	if len(rt.sinks) == 0 {
		rt.sinks = []ports.Sink{sink.NewConsoleSink(nil)}
	}

	return rt, nil
}

func (r *Runtime) buildConfiguredSinks() error {
	sc := r.cfg.Sinks

	if sc.Console.Enabled {
		r.sinks = append(r.sinks, sink.NewConsoleSink(nil))
	}

	if sc.Timescale.Enabled {
		db, err := sql.Open("postgres", sc.Timescale.ConnString)
		if err != nil {
			return fmt.Errorf("open timescale: %w", err)
		}
		r.db = db
		r.sinks = append(r.sinks, sink.NewTimescaleSink(db, sc.Timescale.Table, r.sessionID))
	}

	if sc.MQTT.Enabled {
		client, err := sink.ConnectMQTT(sc.MQTT.Broker, sc.MQTT.ClientID)
		if err != nil {
			return err
		}
		r.mqttClient = client
		r.sinks = append(r.sinks, sink.NewMQTTSink(client, sc.MQTT.Topic, byte(sc.MQTT.QoS)))
	}

	if sc.Redis.Enabled {
		client := redis.NewClient(&redis.Options{Addr: sc.Redis.Addr})
		r.redisClient = client
		r.sinks = append(r.sinks, sink.NewRedisStreamSink(client, sc.Redis.Stream))
	}

	return nil
}

// Engine exposes the underlying simulation engine for direct sampling.
func (r *Runtime) Engine() *engine.Engine { return r.engine }

// SessionID identifies this run; database rows carry it.
func (r *Runtime) SessionID() string { return r.sessionID }

// ChangeScenario glides the live stream toward the new targets.
func (r *Runtime) ChangeScenario(cfg ScenarioConfig) error {
	if err := r.engine.ChangeScenario(cfg); err != nil {
		return err
	}
	r.obs.IncCounter("cardioflow_scenario_transitions_total", 1)
	r.obs.LogInfo("scenario_change", ports.Field{Key: "scenario", Value: cfg.Name})
	return nil
}

// Run produces samples at the configured rate until the context is cancelled
// or the configured duration (when > 0) of simulated time is covered, then
// flushes the buffer and shuts down.
func (r *Runtime) Run(ctx context.Context) error {
	r.startMetrics()

	r.obs.LogInfo("runtime_start",
		ports.Field{Key: "session_id", Value: r.sessionID},
		ports.Field{Key: "scenario", Value: r.engine.CurrentScenario().Name},
		ports.Field{Key: "rate_hz", Value: r.engine.SamplingRate()},
	)

	flushStop := make(chan struct{})
	flushDone := make(chan struct{})
	go r.runFlusher(flushStop, flushDone)

	err := r.produce(ctx)

	close(flushStop)
	<-flushDone
	r.flush()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Join(err, r.Shutdown(shutdownCtx))
}

func (r *Runtime) produce(ctx context.Context) error {
	// Same boundary contract as Engine.Stream: samples while k/rate < duration.
	var limit int
	if d := r.cfg.Duration.Std(); d > 0 {
		limit = int(math.Ceil(d.Seconds()*r.engine.SamplingRate() - 1e-9))
	}

	ticker := time.NewTicker(r.engine.Tick())
	defer ticker.Stop()

	produced := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			data, err := r.engine.GetSample()
			if err != nil {
				return err
			}
			r.obs.IncCounter("cardioflow_samples_generated_total", 1)
			r.obs.SetGauge("cardioflow_current_bpm", data.BPM)

			if !r.buffer.Push(data) {
				switch r.policy.OnBufferFull {
				case "block":
					if !r.pushBlocking(ctx, data) {
						return nil
					}
				default:
					r.obs.IncCounter("cardioflow_buffer_dropped_total", 1)
				}
			}
			r.obs.SetGauge("cardioflow_buffer_length", float64(r.buffer.Len()))

			produced++
			if limit > 0 && produced >= limit {
				return nil
			}
		}
	}
}

func (r *Runtime) pushBlocking(ctx context.Context, data HeartData) bool {
	for {
		if r.buffer.Push(data) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func (r *Runtime) runFlusher(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	interval := r.policy.FlushInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.flush()
		}
	}
}

func (r *Runtime) flush() {
	for {
		batch := r.buffer.PopBatch(r.policy.MaxBatchSize)
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		delivered := true
		for _, s := range r.sinks {
			if err := s.WriteBatch(batch); err != nil {
				delivered = false
				r.obs.LogError("sink_write_failed", err, ports.Field{Key: "sink", Value: s.Name()})
			}
		}
		r.obs.ObserveLatency("cardioflow_sink_write_latency_seconds", time.Since(start).Seconds())
		if delivered {
			r.obs.IncCounter("cardioflow_samples_delivered_total", float64(len(batch)))
		}
	}
}

// Shutdown releases the metrics server and any sink connections.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error

	if r.metricsSrv != nil {
		if err := r.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
		r.metricsSrv = nil
	}

	errs = append(errs, r.closeClients())
	return errors.Join(errs...)
}

func (r *Runtime) closeClients() error {
	var errs []error
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, err)
		}
		r.db = nil
	}
	if r.mqttClient != nil {
		r.mqttClient.Disconnect(250)
		r.mqttClient = nil
	}
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			errs = append(errs, err)
		}
		r.redisClient = nil
	}
	return errors.Join(errs...)
}

func (r *Runtime) startMetrics() {
	addr := r.cfg.Metrics.Addr
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.metricsSrv = &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := r.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.obs.LogError("metrics_server_failed", err)
		}
	}()
}
