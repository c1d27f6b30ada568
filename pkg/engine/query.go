package engine

import (
	"github.com/sanonone/socialgraph/pkg/core"
)

// Suggest proposes up to k users for src to follow, ranked by how many of
// src's followees already follow them (mutual connections). src itself and
// users src already follows are never suggested. An unknown src yields nil.
func (e *Engine) Suggest(src string, k int) []Ranked {
	defer observe("suggest")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	u, ok := e.Graph.User(src)
	if !ok || k <= 0 {
		return nil
	}

	following := u.Following()
	tally := make(map[string]int)
	for _, friend := range following.Snapshot() {
		f, ok := e.Graph.User(friend)
		if !ok {
			continue
		}
		for _, cand := range f.Following().Snapshot() {
			if cand == src || following.Lookup(cand) {
				continue
			}
			tally[cand]++
		}
	}

	top := newTopK[int](k, len(tally))
	for username, mutuals := range tally {
		c, ok := e.Graph.User(username)
		if !ok {
			continue
		}
		top.offer(c, mutuals)
	}
	return rankedOf(top.drain())
}

// MostConnected returns the k users with the most edges (following plus
// followers), strongest first. k is clamped to the population size.
func (e *Engine) MostConnected(k int) []Ranked {
	defer observe("most_connected")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	top := newTopK[int](k, e.Graph.Len())
	e.Graph.Scan(func(u *core.User) bool {
		top.offer(u, u.FollowingCount()+u.FollowerCount())
		return true
	})
	return rankedOf(top.drain())
}

// MostInfluential returns the k users with the highest influence score:
// the sum of the follower counts of their direct followers. This is a
// weighted in-degree, a second-order popularity proxy rather than a true
// centrality measure; see PageRank for that.
func (e *Engine) MostInfluential(k int) []Ranked {
	defer observe("most_influential")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	top := newTopK[int](k, e.Graph.Len())
	e.Graph.Scan(func(u *core.User) bool {
		top.offer(u, e.influence(u))
		return true
	})
	return rankedOf(top.drain())
}

// influence sums the follower counts of u's followers.
// Caller must hold e.mu.
func (e *Engine) influence(u *core.User) int {
	score := 0
	for _, name := range u.Followers().Snapshot() {
		if f, ok := e.Graph.User(name); ok {
			score += f.FollowerCount()
		}
	}
	return score
}

// AverageConnections returns edges per user. It fails with ErrEmptyGraph
// when there are no users.
func (e *Engine) AverageConnections() (float64, error) {
	defer observe("average_connections")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	n := e.Graph.Len()
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	return float64(e.Graph.EdgeCount()) / float64(n), nil
}
