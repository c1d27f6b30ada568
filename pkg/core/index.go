// Package core provides the fundamental data structures of the social graph.
//
// This file implements the identity index: an ordered map from username to
// user record backed by a B-Tree. The index is the only owner of user
// storage; every other structure refers to users by username.
package core

import (
	"github.com/tidwall/btree"
)

// Index maps usernames to user records in key order.
// The underlying B-Tree rebalances on every insert and delete, so lookups,
// inserts and deletes stay O(log n).
type Index struct {
	tree *btree.BTreeG[*User]
}

// NewIndex creates an empty identity index.
func NewIndex() *Index {
	return &Index{
		tree: btree.NewBTreeG[*User](userLess),
	}
}

// userLess orders users by username only. Display names never take part in ordering.
func userLess(a, b *User) bool {
	return a.Username < b.Username
}

// pivot builds a throwaway key used to probe the tree.
func pivot(username string) *User {
	return &User{Username: username}
}

// Insert adds u to the index.
// It returns false, leaving the index untouched, if the username is already present.
func (ix *Index) Insert(u *User) bool {
	if u == nil {
		return false
	}
	if _, exists := ix.tree.Get(u); exists {
		return false
	}
	ix.tree.Set(u)
	return true
}

// Get retrieves the user stored under username.
func (ix *Index) Get(username string) (*User, bool) {
	return ix.tree.Get(pivot(username))
}

// Delete removes the user stored under username.
// It returns false if no such user exists.
func (ix *Index) Delete(username string) bool {
	_, deleted := ix.tree.Delete(pivot(username))
	return deleted
}

// Len returns the number of indexed users.
func (ix *Index) Len() int {
	return ix.tree.Len()
}

// Scan walks users in ascending username order until iter returns false.
func (ix *Index) Scan(iter func(u *User) bool) {
	ix.tree.Scan(iter)
}

// Keys returns every username in ascending order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, ix.tree.Len())
	ix.tree.Scan(func(u *User) bool {
		keys = append(keys, u.Username)
		return true
	})
	return keys
}

// Users returns every user in ascending username order.
// The slice is freshly allocated; the records it points to are still owned by the index.
func (ix *Index) Users() []*User {
	users := make([]*User, 0, ix.tree.Len())
	ix.tree.Scan(func(u *User) bool {
		users = append(users, u)
		return true
	})
	return users
}
