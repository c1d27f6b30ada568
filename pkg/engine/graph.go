package engine

import (
	"log/slog"

	"github.com/sanonone/socialgraph/pkg/metrics"
)

// AddUser inserts a user. It returns false for empty or duplicate usernames.
func (e *Engine) AddUser(username, firstName, lastName string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok := e.Graph.AddUser(username, firstName, lastName)
	recordMutation("add_user", ok, nil, "user", username)
	if ok {
		metrics.UsersTotal.Inc()
	}
	return ok
}

// Follow creates the edge follower -> followee on both sides.
// A false result with a nil error means the edge was rejected (self-follow,
// unknown user or already following).
func (e *Engine) Follow(follower, followee string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok, err := e.Graph.Follow(follower, followee)
	recordMutation("follow", ok, err, "follower", follower, "followee", followee)
	if ok {
		metrics.EdgesTotal.Inc()
	}
	return ok, err
}

// Unfollow removes the edge follower -> followee from both sides.
func (e *Engine) Unfollow(follower, followee string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok, err := e.Graph.Unfollow(follower, followee)
	recordMutation("unfollow", ok, err, "follower", follower, "followee", followee)
	if ok {
		metrics.EdgesTotal.Dec()
	}
	return ok, err
}

// DeleteUser severs every edge of the user and removes it from the graph.
func (e *Engine) DeleteUser(username string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var severed int
	if u, found := e.Graph.User(username); found {
		severed = u.FollowingCount() + u.FollowerCount()
	}

	ok, err := e.Graph.DeleteUser(username)
	recordMutation("delete_user", ok, err, "user", username)
	if err != nil {
		// Partial cleanup may have happened; recount instead of guessing.
		e.refreshGauges()
		return false, err
	}
	if ok {
		slog.Debug("user deleted", "user", username, "edges_severed", severed)
		metrics.UsersTotal.Dec()
		metrics.EdgesTotal.Sub(float64(severed))
	}
	return ok, nil
}
