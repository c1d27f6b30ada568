package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sanonone/socialgraph/pkg/dataset"
	"github.com/sanonone/socialgraph/pkg/metrics"
)

// LoadStats summarises a bulk load.
type LoadStats struct {
	Users          int           // users inserted
	DuplicateUsers int           // records rejected because the username was taken
	Edges          int           // follow pairs that created an edge
	RejectedEdges  int           // self-follows, repeats and pairs naming unknown users
	Duration       time.Duration // wall time of the whole load
}

// Load bulk-inserts records into the identity index and then applies every
// follow pair. Rejected records and pairs are counted, not treated as errors.
// An inconsistency reported by the graph aborts the load.
func (e *Engine) Load(records []dataset.Record, edges []dataset.Edge) (LoadStats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	var stats LoadStats

	for _, r := range records {
		if e.Graph.AddUser(r.Username, r.FirstName, r.LastName) {
			stats.Users++
		} else {
			stats.DuplicateUsers++
			slog.Debug("duplicate user skipped", "user", r.Username)
		}
	}

	for _, edge := range edges {
		ok, err := e.Graph.Follow(edge.Follower, edge.Followee)
		if err != nil {
			recordMutation("follow", false, err, "follower", edge.Follower, "followee", edge.Followee)
			e.refreshGauges()
			return stats, fmt.Errorf("load aborted after %d edges: %w", stats.Edges, err)
		}
		if ok {
			stats.Edges++
		} else {
			stats.RejectedEdges++
		}
	}

	metrics.MutationsTotal.WithLabelValues("add_user", metrics.ResultOK).Add(float64(stats.Users))
	metrics.MutationsTotal.WithLabelValues("add_user", metrics.ResultRejected).Add(float64(stats.DuplicateUsers))
	metrics.MutationsTotal.WithLabelValues("follow", metrics.ResultOK).Add(float64(stats.Edges))
	metrics.MutationsTotal.WithLabelValues("follow", metrics.ResultRejected).Add(float64(stats.RejectedEdges))
	e.refreshGauges()

	stats.Duration = time.Since(start)
	slog.Info("graph loaded",
		"users", stats.Users,
		"duplicate_users", stats.DuplicateUsers,
		"edges", stats.Edges,
		"rejected_edges", stats.RejectedEdges,
		"duration", stats.Duration,
	)
	return stats, nil
}
