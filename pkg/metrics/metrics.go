package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Global metric variables.
// 'promauto' registers them with the default registry at init time.

var (
	// UsersTotal tracks the number of users currently indexed.
	UsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_users_total",
			Help: "Number of users in the graph",
		},
	)

	// EdgesTotal tracks the number of follow relationships.
	EdgesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_edges_total",
			Help: "Number of follow relationships in the graph",
		},
	)

	// MutationsTotal counts graph mutations, labeled by operation and outcome
	// ("ok", "rejected" or "error").
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_mutations_total",
			Help: "Total number of graph mutations by operation and result",
		},
		[]string{"op", "result"},
	)

	// QueryDuration measures how long each analytic query takes.
	// Buckets go from microseconds (lookups on small graphs) to seconds (PageRank on large ones).
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialgraph_query_duration_seconds",
			Help:    "Duration of graph queries in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"query"},
	)
)

// Outcome label values for MutationsTotal.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// WriteTextfile dumps the default registry in the Prometheus text format to path.
// It is the only export path: the process never listens on a socket.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
