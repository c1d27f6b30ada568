package core

import (
	"errors"
	"fmt"
)

// ErrInconsistentEdge reports an edge recorded on only one side of a pair.
// It is never produced while the graph's invariants hold; seeing it means a bug.
var ErrInconsistentEdge = errors.New("inconsistent edge")

// Graph is the social graph: an identity index plus the relationship
// operations that keep the following and follower collections of every pair
// of users in agreement.
//
// Graph is not safe for concurrent use. Callers that share it must provide
// their own mutual exclusion around every method.
type Graph struct {
	index *Index
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{index: NewIndex()}
}

// AddUser inserts a new user. It returns false if the username is empty or already taken.
func (g *Graph) AddUser(username, firstName, lastName string) bool {
	if username == "" {
		return false
	}
	return g.index.Insert(NewUser(username, firstName, lastName))
}

// User looks up a user by username.
func (g *Graph) User(username string) (*User, bool) {
	return g.index.Get(username)
}

// Len returns the number of users.
func (g *Graph) Len() int {
	return g.index.Len()
}

// Keys returns all usernames in ascending order.
func (g *Graph) Keys() []string {
	return g.index.Keys()
}

// Users returns all users in ascending username order.
func (g *Graph) Users() []*User {
	return g.index.Users()
}

// Scan walks users in ascending username order until iter returns false.
func (g *Graph) Scan(iter func(u *User) bool) {
	g.index.Scan(iter)
}

// EdgeCount returns the number of follow relationships.
func (g *Graph) EdgeCount() int {
	total := 0
	g.index.Scan(func(u *User) bool {
		total += u.FollowingCount()
		return true
	})
	return total
}

// Follow makes follower follow followee.
//
// It returns true only when the edge is new on both sides. Self-follows,
// unknown users and existing edges return false without changing anything.
// If only one side accepts the edge the pair was already inconsistent and
// ErrInconsistentEdge is returned.
func (g *Graph) Follow(follower, followee string) (bool, error) {
	if follower == followee {
		return false, nil
	}
	src, ok := g.index.Get(follower)
	if !ok {
		return false, nil
	}
	dst, ok := g.index.Get(followee)
	if !ok {
		return false, nil
	}

	out := src.following.Add(followee)
	in := dst.followers.Add(follower)

	switch {
	case out && in:
		return true, nil
	case out != in:
		return false, fmt.Errorf("follow %s -> %s: %w", follower, followee, ErrInconsistentEdge)
	default:
		return false, nil
	}
}

// Unfollow removes the edge follower -> followee.
//
// It returns false if follower does not currently follow followee. A missing
// mirror entry on the followee side is reported as ErrInconsistentEdge; the
// follower side is still cleaned up in that case.
func (g *Graph) Unfollow(follower, followee string) (bool, error) {
	src, ok := g.index.Get(follower)
	if !ok || !src.following.Lookup(followee) {
		return false, nil
	}
	src.following.Remove(followee)

	dst, ok := g.index.Get(followee)
	if !ok {
		return false, fmt.Errorf("unfollow %s -> %s: followee missing from index: %w", follower, followee, ErrInconsistentEdge)
	}
	if !dst.followers.Remove(follower) {
		return false, fmt.Errorf("unfollow %s -> %s: follower side missing: %w", follower, followee, ErrInconsistentEdge)
	}
	return true, nil
}

// DeleteUser severs every edge touching username and then removes it from the index.
//
// It returns false if the user does not exist. If an edge cannot be severed
// cleanly the user is left in the index and the error is returned.
func (g *Graph) DeleteUser(username string) (bool, error) {
	u, ok := g.index.Get(username)
	if !ok {
		return false, nil
	}

	// Snapshots first: Unfollow mutates the collections being walked.
	for _, target := range u.following.Snapshot() {
		if _, err := g.Unfollow(username, target); err != nil {
			return false, fmt.Errorf("delete %s: %w", username, err)
		}
	}
	for _, follower := range u.followers.Snapshot() {
		removed, err := g.Unfollow(follower, username)
		if err != nil {
			return false, fmt.Errorf("delete %s: %w", username, err)
		}
		if !removed {
			return false, fmt.Errorf("delete %s: %s listed as follower but not following: %w", username, follower, ErrInconsistentEdge)
		}
	}

	if u.following.Len() != 0 || u.followers.Len() != 0 {
		return false, fmt.Errorf("delete %s: edges left after cleanup: %w", username, ErrInconsistentEdge)
	}
	return g.index.Delete(username), nil
}

// Validate checks that every edge is recorded on both sides and that every
// handle resolves to a live user. It returns all violations joined together.
func (g *Graph) Validate() error {
	var errs []error
	g.index.Scan(func(u *User) bool {
		if u.following.Owner() != u.Username || u.followers.Owner() != u.Username {
			errs = append(errs, fmt.Errorf("%s: collection owned by another user: %w", u.Username, ErrInconsistentEdge))
		}
		for _, target := range u.following.Snapshot() {
			t, ok := g.index.Get(target)
			if !ok {
				errs = append(errs, fmt.Errorf("%s follows unknown user %s: %w", u.Username, target, ErrInconsistentEdge))
				continue
			}
			if !t.followers.Lookup(u.Username) {
				errs = append(errs, fmt.Errorf("%s follows %s but is not among its followers: %w", u.Username, target, ErrInconsistentEdge))
			}
		}
		for _, follower := range u.followers.Snapshot() {
			f, ok := g.index.Get(follower)
			if !ok {
				errs = append(errs, fmt.Errorf("%s followed by unknown user %s: %w", u.Username, follower, ErrInconsistentEdge))
				continue
			}
			if !f.following.Lookup(u.Username) {
				errs = append(errs, fmt.Errorf("%s lists follower %s that does not follow it: %w", u.Username, follower, ErrInconsistentEdge))
			}
		}
		return true
	})
	return errors.Join(errs...)
}
