package engine

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/sanonone/socialgraph/pkg/core"
)

// Default PageRank parameters.
const (
	DefaultDamping   = 0.85
	DefaultTolerance = 1e-6
)

// projection copies the follow graph into a gonum directed graph.
// Node IDs are positions in the returned (username ordered) user slice.
// Caller must hold e.mu.
func (e *Engine) projection() (*simple.DirectedGraph, []*core.User) {
	users := e.Graph.Users()
	ids := make(map[string]int64, len(users))

	dg := simple.NewDirectedGraph()
	for i, u := range users {
		ids[u.Username] = int64(i)
		dg.AddNode(simple.Node(i))
	}
	for i, u := range users {
		for _, target := range u.Following().Snapshot() {
			j, ok := ids[target]
			if !ok {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}
	return dg, users
}

// Components returns the k largest strongly connected components, each as a
// sorted list of usernames. Larger components come first; equal sizes are
// ordered by their first username.
func (e *Engine) Components(k int) [][]string {
	defer observe("components")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	if k <= 0 || e.Graph.Len() == 0 {
		return nil
	}

	dg, users := e.projection()
	sccs := topo.TarjanSCC(dg)

	comps := make([][]string, 0, len(sccs))
	for _, scc := range sccs {
		names := make([]string, len(scc))
		for i, n := range scc {
			names[i] = users[n.ID()].Username
		}
		slices.Sort(names)
		comps = append(comps, names)
	}

	slices.SortFunc(comps, func(a, b []string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})
	if len(comps) > k {
		comps = comps[:k]
	}
	return comps
}

// PageRank ranks users by PageRank centrality over the follow graph and
// returns the top k. Non-positive damping or tolerance fall back to the defaults.
func (e *Engine) PageRank(k int, damping, tolerance float64) []RankedScore {
	defer observe("pagerank")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	if k <= 0 || e.Graph.Len() == 0 {
		return nil
	}
	if damping <= 0 || damping >= 1 {
		damping = DefaultDamping
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	dg, users := e.projection()
	ranks := network.PageRank(dg, damping, tolerance)

	top := newTopK[float64](k, len(users))
	for id, score := range ranks {
		top.offer(users[id], score)
	}

	best := top.drain()
	out := make([]RankedScore, len(best))
	for i, c := range best {
		out[i] = RankedScore{Profile: profileOf(c.user), Score: c.score}
	}
	return out
}
