package core

import (
	"slices"
)

// Adjacency is one direction of a user's connections (following or followers).
// It stores usernames rather than pointers: the identity index owns the
// records, and a handle that no longer resolves is simply a missing user.
type Adjacency struct {
	owner   string
	members map[string]struct{}
}

// NewAdjacency creates an empty collection belonging to owner.
func NewAdjacency(owner string) *Adjacency {
	return &Adjacency{
		owner:   owner,
		members: make(map[string]struct{}),
	}
}

// Owner returns the username of the user this collection belongs to.
func (a *Adjacency) Owner() string {
	return a.owner
}

// Add inserts username. It fails for the owner itself and for usernames already present.
func (a *Adjacency) Add(username string) bool {
	if username == a.owner {
		return false
	}
	if _, exists := a.members[username]; exists {
		return false
	}
	a.members[username] = struct{}{}
	return true
}

// Remove deletes username, returning false if it was not present.
func (a *Adjacency) Remove(username string) bool {
	if _, exists := a.members[username]; !exists {
		return false
	}
	delete(a.members, username)
	return true
}

// Lookup reports whether username is in the collection. Members are
// handles; callers resolve them to users through Graph.User.
func (a *Adjacency) Lookup(username string) bool {
	_, exists := a.members[username]
	return exists
}

// Len returns the number of members.
func (a *Adjacency) Len() int {
	return len(a.members)
}

// Snapshot returns a sorted copy of the members.
// Callers may mutate the collection while ranging over the snapshot.
func (a *Adjacency) Snapshot() []string {
	out := make([]string, 0, len(a.members))
	for username := range a.members {
		out = append(out, username)
	}
	slices.Sort(out)
	return out
}
