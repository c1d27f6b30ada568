package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents(t *testing.T) {
	eng := newEngine(t, []string{"a", "b", "c", "d", "e", "f", "g"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"},
		[2]string{"d", "a"},
		[2]string{"f", "g"}, [2]string{"g", "f"},
	)

	got := eng.Components(3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, got[0])
	assert.Equal(t, []string{"f", "g"}, got[1])
	assert.Equal(t, []string{"d"}, got[2])

	all := eng.Components(100)
	assert.Len(t, all, 4, "a-b-c, f-g, d and e")

	assert.Empty(t, eng.Components(0))
	assert.Empty(t, New().Components(5))
}

func TestPageRank(t *testing.T) {
	eng := newEngine(t, []string{"hub", "u1", "u2", "u3", "u4"},
		[2]string{"u1", "hub"}, [2]string{"u2", "hub"},
		[2]string{"u3", "hub"}, [2]string{"u4", "hub"},
		[2]string{"u1", "u2"},
	)

	got := eng.PageRank(3, 0, 0)
	require.Len(t, got, 3)
	assert.Equal(t, "hub", got[0].Username)
	assert.Equal(t, "u2", got[1].Username, "u2 is the only other user with an inbound edge")
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}

	assert.Len(t, eng.PageRank(50, DefaultDamping, DefaultTolerance), 5)
	assert.Empty(t, eng.PageRank(0, DefaultDamping, DefaultTolerance))
	assert.Empty(t, New().PageRank(3, DefaultDamping, DefaultTolerance))
}
