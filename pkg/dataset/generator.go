package dataset

import (
	"math"
	"math/rand/v2"
)

// GenerateEdges draws factor*len(usernames) random follow pairs.
//
// Pairs are drawn uniformly and may repeat or point a user at itself; the
// graph rejects those, so the number of edges that end up in the graph is
// lower than the number drawn. The same seed always yields the same pairs.
// A factor whose product with the user count overflows int yields nil.
func GenerateEdges(usernames []string, factor int, seed uint64) []Edge {
	n := len(usernames)
	if n == 0 || factor <= 0 || factor > math.MaxInt/n {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	edges := make([]Edge, 0, n*factor)
	for i := 0; i < n*factor; i++ {
		edges = append(edges, Edge{
			Follower: usernames[rng.IntN(n)],
			Followee: usernames[rng.IntN(n)],
		})
	}
	return edges
}

// SamplePairs draws n random pairs of distinct users, e.g. for degree of
// separation spot checks. Fewer than two users yields nil.
func SamplePairs(usernames []string, n int, seed uint64) []Edge {
	if len(usernames) < 2 || n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, ^seed))
	pairs := make([]Edge, 0, n)
	for len(pairs) < n {
		i, j := rng.IntN(len(usernames)), rng.IntN(len(usernames))
		if i == j {
			continue
		}
		pairs = append(pairs, Edge{Follower: usernames[i], Followee: usernames[j]})
	}
	return pairs
}
