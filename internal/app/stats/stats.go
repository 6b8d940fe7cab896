// Package stats aggregates collected samples into the summary block shown at
// the end of a simulation run. Pure read-only consumption of the stream.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/ldurand/CardioFlow/internal/domain"
)

// Summary holds the aggregate view over one run.
type Summary struct {
	Count    int
	BPMMean  float64
	BPMMin   float64
	BPMMax   float64
	RRMean   float64
	RRStd    float64
	Duration float64
}

// Collector accumulates samples incrementally so long streams never need to
// be materialized. BPM extremes are tracked directly; the RR standard
// deviation comes from running sums.
type Collector struct {
	count   int
	bpmSum  float64
	bpmMin  float64
	bpmMax  float64
	rrSum   float64
	rrSqSum float64
	first   float64
	last    float64
}

func NewCollector() *Collector {
	return &Collector{bpmMin: math.Inf(1), bpmMax: math.Inf(-1)}
}

func (c *Collector) Add(s domain.HeartData) {
	if c.count == 0 {
		c.first = s.Timestamp
	}
	c.count++
	c.last = s.Timestamp

	c.bpmSum += s.BPM
	if s.BPM < c.bpmMin {
		c.bpmMin = s.BPM
	}
	if s.BPM > c.bpmMax {
		c.bpmMax = s.BPM
	}

	c.rrSum += s.RRIntervalMS
	c.rrSqSum += s.RRIntervalMS * s.RRIntervalMS
}

func (c *Collector) Count() int { return c.count }

func (c *Collector) Summary() Summary {
	if c.count == 0 {
		return Summary{}
	}
	n := float64(c.count)
	rrMean := c.rrSum / n
	rrVar := c.rrSqSum/n - rrMean*rrMean
	if rrVar < 0 {
		rrVar = 0
	}
	return Summary{
		Count:    c.count,
		BPMMean:  c.bpmSum / n,
		BPMMin:   c.bpmMin,
		BPMMax:   c.bpmMax,
		RRMean:   rrMean,
		RRStd:    math.Sqrt(rrVar),
		Duration: c.last - c.first,
	}
}

// Render writes the human-readable statistics block for the given scenario.
func (s Summary) Render(w io.Writer, sc domain.ScenarioConfig) {
	line := "============================================================"
	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "SIMULATION STATISTICS")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Scenario: %s\n", sc.Name)
	fmt.Fprintf(w, "Samples collected: %d\n", s.Count)
	fmt.Fprintf(w, "Effective duration: %.2f seconds\n", s.Duration)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "BPM (beats per minute):")
	fmt.Fprintf(w, "  Mean: %.1f BPM\n", s.BPMMean)
	fmt.Fprintf(w, "  Min:  %.1f BPM\n", s.BPMMin)
	fmt.Fprintf(w, "  Max:  %.1f BPM\n", s.BPMMax)
	fmt.Fprintf(w, "  Target: %.1f ±%.1f BPM\n", sc.TargetBPM, sc.BPMVariance)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "RR intervals (HRV):")
	fmt.Fprintf(w, "  Mean: %.0f ms\n", s.RRMean)
	fmt.Fprintf(w, "  Std dev: %.0f ms\n", s.RRStd)
	fmt.Fprintf(w, "  Target: %.0f ±%.0f ms\n", sc.TargetRRMS, sc.RRVariance)
	fmt.Fprintln(w, line)
}
