package engine

import (
	"slices"

	"github.com/sanonone/socialgraph/pkg/core"
)

// PathResult describes the shortest follow chain between two users.
type PathResult struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Path   []string `json:"path"` // Sequence of usernames, Source first
	Degree int      `json:"degree"`
}

// SepDegree returns the degree of separation from src to dst along the
// "following" direction: 0 when src == dst, -1 when dst is unreachable or
// either user does not exist.
func (e *Engine) SepDegree(src, dst string) int {
	defer observe("sep_degree")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, degree := shortestPath(e.Graph, src, dst)
	return degree
}

// ShortestPath returns one shortest follow chain from src to dst.
// Neighbors are expanded in username order, so the chain chosen among equally
// short ones is stable for a given graph.
func (e *Engine) ShortestPath(src, dst string) (*PathResult, bool) {
	defer observe("shortest_path")()
	e.mu.RLock()
	defer e.mu.RUnlock()

	path, degree := shortestPath(e.Graph, src, dst)
	if degree < 0 {
		return nil, false
	}
	return &PathResult{Source: src, Target: dst, Path: path, Degree: degree}, true
}

// shortestPath runs a frontier-by-frontier BFS over following edges.
// The parent map doubles as the visited set, so cycles terminate.
func shortestPath(g *core.Graph, src, dst string) ([]string, int) {
	if _, ok := g.User(src); !ok {
		return nil, -1
	}
	if _, ok := g.User(dst); !ok {
		return nil, -1
	}
	if src == dst {
		return []string{src}, 0
	}

	parent := map[string]string{src: ""}
	frontier := []string{src}

	for depth := 1; len(frontier) > 0; depth++ {
		var next []string
		for _, curr := range frontier {
			u, ok := g.User(curr)
			if !ok {
				// Dangling handle: nothing to expand.
				continue
			}
			for _, neighbor := range u.Following().Snapshot() {
				if _, seen := parent[neighbor]; seen {
					continue
				}
				parent[neighbor] = curr
				if neighbor == dst {
					return tracePath(parent, dst), depth
				}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}
	return nil, -1
}

// tracePath walks parent links back from dst and returns the chain source first.
func tracePath(parent map[string]string, dst string) []string {
	var path []string
	for curr := dst; curr != ""; curr = parent[curr] {
		path = append(path, curr)
	}
	slices.Reverse(path)
	return path
}
