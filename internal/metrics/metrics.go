// Package metrics exports route search activity as Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/elevroute/route"
	"github.com/katalvlaran/elevroute/search"
)

// Recorder implements route.Recorder on top of three collectors.
type Recorder struct {
	// Searches counts finished FindRoute calls.
	Searches *prometheus.CounterVec

	// Duration tracks wall time per algorithm.
	Duration *prometheus.HistogramVec

	// Settled tracks how many nodes a search finalised before returning.
	Settled *prometheus.HistogramVec
}

var _ route.Recorder = (*Recorder)(nil)

// New builds the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elevroute_searches_total",
				Help: "Total number of route searches by algorithm, objective and outcome",
			},
			[]string{"algorithm", "objective", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "elevroute_search_duration_seconds",
				Help:    "Route search wall time",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),
		Settled: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "elevroute_settled_nodes",
				Help:    "Nodes settled (or paths completed) per route search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"algorithm"},
		),
	}
	reg.MustRegister(r.Searches, r.Duration, r.Settled)

	return r
}

// ObserveRoute records one finished search.
func (r *Recorder) ObserveRoute(algorithm string, objective search.Objective, outcome route.Outcome, elapsed time.Duration, stats search.Stats) {
	r.Searches.WithLabelValues(algorithm, objective.String(), string(outcome)).Inc()
	r.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if outcome == route.OutcomeInvalid {
		return
	}
	work := stats.Settled
	if work == 0 {
		work = stats.Candidates
	}
	r.Settled.WithLabelValues(algorithm).Observe(float64(work))
}
