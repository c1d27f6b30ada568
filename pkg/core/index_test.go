package core

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexInsertLookup(t *testing.T) {
	ix := NewIndex()

	require.True(t, ix.Insert(NewUser("bob", "Bob", "Baker")))
	require.True(t, ix.Insert(NewUser("alice", "Alice", "Archer")))

	t.Run("DuplicateRejected", func(t *testing.T) {
		dup := NewUser("bob", "Robert", "Other")
		assert.False(t, ix.Insert(dup))

		u, ok := ix.Get("bob")
		require.True(t, ok)
		assert.Equal(t, "Bob", u.FirstName, "duplicate insert must not replace the stored record")
		assert.Equal(t, 2, ix.Len())
	})

	t.Run("NilRejected", func(t *testing.T) {
		assert.False(t, ix.Insert(nil))
	})

	t.Run("MissingKey", func(t *testing.T) {
		u, ok := ix.Get("ghost")
		assert.False(t, ok)
		assert.Nil(t, u)
	})

	t.Run("OrderedExport", func(t *testing.T) {
		assert.Equal(t, []string{"alice", "bob"}, ix.Keys())
		users := ix.Users()
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)
	})
}

func TestIndexDeleteLastLeavesEmpty(t *testing.T) {
	ix := NewIndex()
	require.True(t, ix.Insert(NewUser("solo", "", "")))

	assert.True(t, ix.Delete("solo"))
	assert.False(t, ix.Delete("solo"))
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Keys())

	_, ok := ix.Get("solo")
	assert.False(t, ok)

	// Still usable after emptying.
	assert.True(t, ix.Insert(NewUser("solo", "", "")))
	assert.Equal(t, 1, ix.Len())
}

func TestIndexInterleavedInsertDelete(t *testing.T) {
	ix := NewIndex()
	rng := rand.New(rand.NewSource(42))
	live := make(map[string]bool)

	for i := 0; i < 5000; i++ {
		key := fmt.Sprintf("user%04d", rng.Intn(800))
		if rng.Intn(3) == 0 {
			assert.Equal(t, live[key], ix.Delete(key), "delete %s", key)
			delete(live, key)
		} else {
			assert.Equal(t, !live[key], ix.Insert(NewUser(key, "", "")), "insert %s", key)
			live[key] = true
		}
	}

	expected := make([]string, 0, len(live))
	for k := range live {
		expected = append(expected, k)
	}
	slices.Sort(expected)

	assert.Equal(t, len(live), ix.Len())
	assert.Equal(t, expected, ix.Keys())
	for _, k := range expected {
		_, ok := ix.Get(k)
		assert.True(t, ok, "lookup %s", k)
	}
}

func TestIndexScanStopsEarly(t *testing.T) {
	ix := NewIndex()
	for _, k := range []string{"c", "a", "d", "b"} {
		ix.Insert(NewUser(k, "", ""))
	}

	var seen []string
	ix.Scan(func(u *User) bool {
		seen = append(seen, u.Username)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}
