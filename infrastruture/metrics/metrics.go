// Package metrics exposes run statistics to Prometheus.
package metrics

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus records finished runs as Prometheus metrics.
type Prometheus struct {
	runs       *prometheus.CounterVec
	visited    *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
	unreached  *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ i.RunRecorder = &Prometheus{}

// NewPrometheus registers the run metrics with reg.
// Pass prometheus.DefaultRegisterer to expose them through promhttp.Handler.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	cellBuckets := prometheus.ExponentialBuckets(1, 4, 9)

	return &Prometheus{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_runs_total",
			Help: "Total algorithm runs by algorithm",
		}, []string{"algorithm"}),
		visited: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_visited_cells",
			Help:    "Cells visited per run",
			Buckets: cellBuckets,
		}, []string{"algorithm"}),
		pathLength: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_path_cells",
			Help:    "Cells on the reconstructed path per run that reached the finish",
			Buckets: cellBuckets,
		}, []string{"algorithm"}),
		unreached: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_unreached_total",
			Help: "Runs that could not reach the finish",
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_run_duration_seconds",
			Help:    "Time spent searching, excluding animation",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}, []string{"algorithm"}),
	}
}

// ObserveRun implements i.RunRecorder.
func (p *Prometheus) ObserveRun(algorithm string, visited, path int, took time.Duration) {
	p.runs.WithLabelValues(algorithm).Inc()
	p.visited.WithLabelValues(algorithm).Observe(float64(visited))
	p.duration.WithLabelValues(algorithm).Observe(took.Seconds())
	if path == 0 {
		p.unreached.WithLabelValues(algorithm).Inc()
		return
	}
	p.pathLength.WithLabelValues(algorithm).Observe(float64(path))
}
