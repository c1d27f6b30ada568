// This file defines the bounded min-heap used by every top-k query. The heap
// keeps the k best candidates seen so far with the weakest one at the root,
// so a new candidate only has to beat the root to get in.

package engine

import (
	"cmp"
	"container/heap"

	"github.com/sanonone/socialgraph/pkg/core"
)

// candidate pairs a user with the score it is ranked by.
type candidate[S cmp.Ordered] struct {
	user  *core.User
	score S
}

// weaker reports whether a ranks below b: lower score first, then the
// lexically larger username, which keeps results deterministic on ties.
func weaker[S cmp.Ordered](a, b candidate[S]) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.user.Username > b.user.Username
}

// minHeap keeps the weakest candidate at the top.
type minHeap[S cmp.Ordered] []candidate[S]

func (h minHeap[S]) Len() int           { return len(h) }
func (h minHeap[S]) Less(i, j int) bool { return weaker(h[i], h[j]) }
func (h minHeap[S]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap[S]) Push(x any) { *h = append(*h, x.(candidate[S])) }

func (h *minHeap[S]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = candidate[S]{}
	*h = old[0 : n-1]
	return x
}

// topK selects the k strongest candidates offered to it.
type topK[S cmp.Ordered] struct {
	k int
	h minHeap[S]
}

// newTopK sizes the heap for at most population candidates, so k may be
// arbitrarily large.
func newTopK[S cmp.Ordered](k, population int) *topK[S] {
	k = max(0, min(k, population))
	return &topK[S]{k: k, h: make(minHeap[S], 0, k)}
}

func (t *topK[S]) offer(u *core.User, score S) {
	if t.k == 0 {
		return
	}
	c := candidate[S]{user: u, score: score}
	if len(t.h) < t.k {
		heap.Push(&t.h, c)
		return
	}
	if weaker(t.h[0], c) {
		t.h[0] = c
		heap.Fix(&t.h, 0)
	}
}

// drain empties the heap and returns the candidates strongest first.
func (t *topK[S]) drain() []candidate[S] {
	out := make([]candidate[S], len(t.h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&t.h).(candidate[S])
	}
	return out
}

func rankedOf(cs []candidate[int]) []Ranked {
	out := make([]Ranked, len(cs))
	for i, c := range cs {
		out[i] = Ranked{Profile: profileOf(c.user), Score: c.score}
	}
	return out
}
