// Package queue defines message payloads exchanged over the message broker
// and the publisher that sends them.
package queue

// Queue names for the domain events this service emits.
const (
	FilmLikedQueue   = "film.liked"
	FriendAddedQueue = "friend.added"
)

// FilmLikedEvent is published when a user likes a film. It carries enough
// information for downstream consumers to log or trigger analytics without
// querying the primary database.
type FilmLikedEvent struct {
	FilmID  int64  `json:"film_id"`
	UserID  int64  `json:"user_id"`
	LikedAt string `json:"liked_at"`
}

// FriendAddedEvent is published when a user adds another user as a friend.
type FriendAddedEvent struct {
	UserID   int64  `json:"user_id"`
	FriendID int64  `json:"friend_id"`
	AddedAt  string `json:"added_at"`
}
