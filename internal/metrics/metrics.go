package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status labels used by QueriesEvaluated.
const (
	StatusSuccess    = "success"
	StatusNoSolution = "no_solution"
	StatusInvalid    = "invalid"
)

type Metrics struct {
	QueriesEvaluated *prometheus.CounterVec
	NoSolution       *prometheus.CounterVec
	QuerySeconds     *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		QueriesEvaluated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocalc_queries_evaluated_total",
			Help: "Total number of evaluated geodesic queries.",
		}, []string{"operation", "status"}),
		NoSolution: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocalc_no_solution_total",
			Help: "Total number of queries whose geometry has no solution.",
		}, []string{"operation"}),
		QuerySeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geocalc_query_duration_seconds",
			Help:    "Duration of geodesic query evaluation.",
			Buckets: []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2},
		}, []string{"operation"}),
	}
}

// WriteTextfile writes every metric gathered from reg to path in the text
// exposition format read by node_exporter's textfile collector.
func WriteTextfile(reg prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return nil
}
