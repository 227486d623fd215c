package model

import "sort"

// User represents an application user as stored in the `users` table.
// The Friends map holds the user's side of the friendship graph: it maps a
// friend's user id to the friendship status (true = confirmed, false =
// pending request). Friendships are asymmetric; adding a friend records the
// edge on the initiator's side only, already confirmed. A user's own id
// never appears in its own Friends map.
//
// Fields:
//  ID       – primary key identifier, assigned by the storage on create.
//  Email    – email address, must contain '@'.
//  Login    – login name, must not contain whitespace.
//  Name     – display name; defaults to Login when blank at creation.
//  Birthday – date of birth, must not be in the future.
//  Friends  – friend id -> confirmed status.
type User struct {
	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	Login    string         `json:"login"`
	Name     string         `json:"name"`
	Birthday Date           `json:"birthday"`
	Friends  map[int64]bool `json:"friends"`
}

// AddFriend records friendID on this user's side of the graph, immediately
// confirmed. Adding an existing friend is a no-op beyond re-confirming.
func (u *User) AddFriend(friendID int64) {
	if u.Friends == nil {
		u.Friends = make(map[int64]bool)
	}
	u.Friends[friendID] = true
}

// RemoveFriend drops friendID from this user's side only. Removing an
// absent friend is a no-op.
func (u *User) RemoveFriend(friendID int64) {
	delete(u.Friends, friendID)
}

// FriendIDs returns the ids of all friends sorted ascending, so callers
// resolve friend records in a deterministic order.
func (u *User) FriendIDs() []int64 {
	ids := make([]int64, 0, len(u.Friends))
	for id := range u.Friends {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
