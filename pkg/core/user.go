package core

// User is a node of the social graph.
//
// FollowingCount and FollowerCount are derived from the adjacency
// collections, so they always match the live edge sets.
type User struct {
	Username  string
	FirstName string
	LastName  string

	following *Adjacency
	followers *Adjacency
}

// NewUser creates a user with empty following and follower collections.
func NewUser(username, firstName, lastName string) *User {
	return &User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		following: NewAdjacency(username),
		followers: NewAdjacency(username),
	}
}

// Following returns the collection of users this user follows.
func (u *User) Following() *Adjacency {
	return u.following
}

// Followers returns the collection of users following this user.
func (u *User) Followers() *Adjacency {
	return u.followers
}

// FollowingCount returns how many users this user follows.
func (u *User) FollowingCount() int {
	return u.following.Len()
}

// FollowerCount returns how many users follow this user.
func (u *User) FollowerCount() int {
	return u.followers.Len()
}
