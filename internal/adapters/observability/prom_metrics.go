package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ldurand/CardioFlow/internal/ports"
)

// PromObs backs the Observability port with Prometheus metrics and a zap
// structured logger.
type PromObs struct {
	log      *zap.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

// NewPromObs registers the CardioFlow metric set on the default registry.
func NewPromObs(log *zap.Logger) *PromObs {
	return NewPromObsWith(prometheus.DefaultRegisterer, log)
}

// NewPromObsWith registers on a caller-supplied registry, which tests use to
// avoid duplicate registration across instances.
func NewPromObsWith(reg prometheus.Registerer, log *zap.Logger) *PromObs {
	if log == nil {
		log = zap.NewNop()
	}

	generated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cardioflow_samples_generated_total",
		Help: "Total samples produced by the simulation engine.",
	})
	delivered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cardioflow_samples_delivered_total",
		Help: "Total samples successfully written to all sinks.",
	})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cardioflow_buffer_dropped_total",
		Help: "Samples lost to buffer backpressure policy.",
	})
	transitions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cardioflow_scenario_transitions_total",
		Help: "Scenario changes requested on the running sensor.",
	})
	bpmGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cardioflow_current_bpm",
		Help: "Most recently generated BPM value.",
	})
	bufGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cardioflow_buffer_length",
		Help: "Samples currently held in the in-memory buffer.",
	})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cardioflow_sink_write_latency_seconds",
		Help:    "Latency of a batch write across all configured sinks.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	reg.MustRegister(generated, delivered, dropped, transitions, bpmGauge, bufGauge, latency)

	return &PromObs{
		log: log,
		counters: map[string]prometheus.Counter{
			"cardioflow_samples_generated_total":    generated,
			"cardioflow_samples_delivered_total":    delivered,
			"cardioflow_buffer_dropped_total":       dropped,
			"cardioflow_scenario_transitions_total": transitions,
		},
		gauges: map[string]prometheus.Gauge{
			"cardioflow_current_bpm":   bpmGauge,
			"cardioflow_buffer_length": bufGauge,
		},
		histos: map[string]prometheus.Observer{
			"cardioflow_sink_write_latency_seconds": latency,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.log.Info(msg, zapFields(fields)...)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	p.log.Error(msg, append(zapFields(fields), zap.Error(err))...)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func zapFields(fields []ports.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

var _ ports.Observability = (*PromObs)(nil)
