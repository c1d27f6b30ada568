// Package engine provides the high-level, embedded interface for socialgraph.
//
// It wraps the in-memory graph (Core) with the analytic queries (degree of
// separation, friend suggestions, top-k rankings, structural analysis),
// bulk loading, structured logging and Prometheus metrics.
//
// Basic usage:
//
//	eng := engine.New()
//	stats, err := eng.Load(records, edges)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	top := eng.MostConnected(10)
package engine

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sanonone/socialgraph/pkg/core"
	"github.com/sanonone/socialgraph/pkg/metrics"
)

// ErrEmptyGraph is returned by statistics that are undefined without users.
var ErrEmptyGraph = errors.New("graph has no users")

// Profile is a caller-owned copy of a user record and its counters.
type Profile struct {
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FollowingCount int    `json:"following_count"`
	FollowerCount  int    `json:"follower_count"`
}

// Ranked is a profile with the integer score it was ranked by.
type Ranked struct {
	Profile
	Score int `json:"score"`
}

// RankedScore is a profile with a real-valued score (e.g. PageRank).
type RankedScore struct {
	Profile
	Score float64 `json:"score"`
}

// Engine is the main entry point for socialgraph.
//
// Every public method takes the engine lock, so an Engine may be shared
// between goroutines even though the graph underneath is single-threaded.
type Engine struct {
	// Graph is the underlying in-memory graph.
	// While exported, it is recommended to use Engine methods so metrics and
	// locking stay correct.
	Graph *core.Graph

	mu sync.RWMutex
}

// New creates an engine over an empty graph.
func New() *Engine {
	return &Engine{Graph: core.NewGraph()}
}

func profileOf(u *core.User) Profile {
	return Profile{
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FollowingCount: u.FollowingCount(),
		FollowerCount:  u.FollowerCount(),
	}
}

// observe starts a timer for the named query; call the result to record it.
func observe(query string) func() {
	start := time.Now()
	return func() {
		metrics.QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	}
}

// refreshGauges recomputes the size gauges from the graph.
// Caller must hold e.mu.
func (e *Engine) refreshGauges() {
	metrics.UsersTotal.Set(float64(e.Graph.Len()))
	metrics.EdgesTotal.Set(float64(e.Graph.EdgeCount()))
}

// recordMutation counts a mutation outcome and logs invariant violations.
func recordMutation(op string, ok bool, err error, attrs ...any) {
	switch {
	case err != nil:
		metrics.MutationsTotal.WithLabelValues(op, metrics.ResultError).Inc()
		slog.Error("graph consistency violation", append([]any{"op", op, "error", err}, attrs...)...)
	case ok:
		metrics.MutationsTotal.WithLabelValues(op, metrics.ResultOK).Inc()
	default:
		metrics.MutationsTotal.WithLabelValues(op, metrics.ResultRejected).Inc()
	}
}

// UserCount returns the number of users.
func (e *Engine) UserCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.Graph.Len()
}

// EdgeCount returns the number of follow relationships.
func (e *Engine) EdgeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.Graph.EdgeCount()
}

// Profile returns a copy of the named user's record.
func (e *Engine) Profile(username string) (Profile, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	u, ok := e.Graph.User(username)
	if !ok {
		return Profile{}, false
	}
	return profileOf(u), true
}

// Profiles returns every user in ascending username order.
func (e *Engine) Profiles() []Profile {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Profile, 0, e.Graph.Len())
	e.Graph.Scan(func(u *core.User) bool {
		out = append(out, profileOf(u))
		return true
	})
	return out
}

// Validate runs the graph's full consistency check.
func (e *Engine) Validate() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.Graph.Validate()
}
