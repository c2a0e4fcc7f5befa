// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/horizon/bnb"
)

// Namespace and subsystem shared by every collector.
const (
	Namespace = "horizon"
	Subsystem = "search"
)

// Outcome label values.
const (
	OutcomeSolved = "solved"
	OutcomeFailed = "failed"
)

// ErrRegister wraps a collector registration failure.
var ErrRegister = errors.New("metrics: register collector")

// DurationBuckets spans sub-millisecond instances to multi-second runs.
var DurationBuckets = []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60}

// FrontierBuckets covers peak frontier sizes.
var FrontierBuckets = []float64{1, 10, 100, 1000, 10000, 100000, 1000000}

// Recorder turns bnb.Stats into Prometheus samples.
type Recorder struct {
	solves       *prometheus.CounterVec
	expanded     *prometheus.CounterVec
	generated    *prometheus.CounterVec
	pruned       *prometheus.CounterVec
	deduplicated *prometheus.CounterVec
	terminals    *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	frontier     *prometheus.HistogramVec
}

// NewRecorder builds the collectors and registers them on reg. A nil reg
// uses prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      name,
			Help:      help,
		}, labels)
	}

	r := &Recorder{
		solves:       counter("solves_total", "Solved instances by outcome", "domain", "outcome"),
		expanded:     counter("expanded_total", "States passed to Expand", "domain"),
		generated:    counter("generated_total", "Children produced by Expand", "domain"),
		pruned:       counter("pruned_total", "States dropped by the bound", "domain"),
		deduplicated: counter("deduplicated_total", "States dropped by the expanded-set", "domain"),
		terminals:    counter("terminals_total", "Terminal states evaluated", "domain"),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time of one engine run",
			Buckets:   DurationBuckets,
		}, []string{"domain"}),
		frontier: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "peak_frontier_states",
			Help:      "Largest frontier size observed in one run",
			Buckets:   FrontierBuckets,
		}, []string{"domain"}),
	}

	for _, c := range r.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, errors.Join(ErrRegister, err)
		}
	}

	return r, nil
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.solves, r.expanded, r.generated, r.pruned,
		r.deduplicated, r.terminals, r.duration, r.frontier,
	}
}

// Observe records one successful run.
func (r *Recorder) Observe(domain string, st bnb.Stats, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.solves.WithLabelValues(domain, OutcomeSolved).Inc()
	r.expanded.WithLabelValues(domain).Add(float64(st.Expanded))
	r.generated.WithLabelValues(domain).Add(float64(st.Generated))
	r.pruned.WithLabelValues(domain).Add(float64(st.Pruned))
	r.deduplicated.WithLabelValues(domain).Add(float64(st.Deduplicated))
	r.terminals.WithLabelValues(domain).Add(float64(st.Terminals))
	r.duration.WithLabelValues(domain).Observe(elapsed.Seconds())
	r.frontier.WithLabelValues(domain).Observe(float64(st.PeakFrontier))
}

// Failed records a run that returned an error before searching.
func (r *Recorder) Failed(domain string) {
	if r == nil {
		return
	}
	r.solves.WithLabelValues(domain, OutcomeFailed).Inc()
}
