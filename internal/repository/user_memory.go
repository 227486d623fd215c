package repository

import (
	"context"
	"fmt"

	"github.com/iliyamo/filmorate/internal/logger"
	"github.com/iliyamo/filmorate/internal/model"
)

// UserMemory is the volatile backing of UserStorage: a plain in-process
// table keyed by user id with its own identity counter. State is owned by
// the instance (never package-level) and is lost on restart. There is no
// internal locking; the backing assumes one logical request at a time.
type UserMemory struct {
	users  map[int64]*model.User
	nextID int64
}

// NewUserMemory constructs an empty volatile user store. Identity starts at
// 1 and is never reused.
func NewUserMemory() *UserMemory {
	return &UserMemory{users: make(map[int64]*model.User)}
}

// Get returns all users in insertion order. Ids are assigned monotonically
// and users are never deleted, so ascending id order is insertion order.
func (m *UserMemory) Get(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(m.users))
	for _, id := range sortedKeys(m.users) {
		out = append(out, m.users[id])
	}
	logger.Debug("listed users", "count", len(out))
	return out, nil
}

func (m *UserMemory) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if err := model.ValidateUser(u); err != nil {
		return nil, err
	}
	if u.Name == "" {
		u.Name = u.Login
		logger.Info("user name defaulted to login", "login", u.Login)
	}
	m.nextID++
	u.ID = m.nextID
	normalizeFriends(u)
	m.users[u.ID] = u
	logger.Info("user created", "id", u.ID, "login", u.Login)
	return u, nil
}

func (m *UserMemory) Update(ctx context.Context, u *model.User) (*model.User, error) {
	if err := model.ValidateUser(u); err != nil {
		return nil, err
	}
	if _, ok := m.users[u.ID]; !ok {
		return nil, fmt.Errorf("user %d: %w", u.ID, ErrNotFound)
	}
	normalizeFriends(u)
	m.users[u.ID] = u
	logger.Info("user updated", "id", u.ID)
	return u, nil
}

func (m *UserMemory) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return u, nil
}

func (m *UserMemory) AddFriend(ctx context.Context, userID, friendID int64) ([]*model.User, error) {
	if userID == friendID {
		return nil, fmt.Errorf("user %d cannot befriend themselves: %w", userID, model.ErrValidation)
	}
	u, err := m.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := m.GetByID(ctx, friendID); err != nil {
		return nil, err
	}
	u.AddFriend(friendID)
	logger.Info("friend added", "user_id", userID, "friend_id", friendID)
	return m.GetFriends(ctx, userID)
}

func (m *UserMemory) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	u, err := m.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := m.GetByID(ctx, friendID); err != nil {
		return err
	}
	u.RemoveFriend(friendID)
	logger.Info("friend removed", "user_id", userID, "friend_id", friendID)
	return nil
}

func (m *UserMemory) GetFriends(ctx context.Context, userID int64) ([]*model.User, error) {
	u, err := m.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	friends := make([]*model.User, 0, len(u.Friends))
	for _, id := range u.FriendIDs() {
		friend, err := m.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

func (m *UserMemory) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error) {
	u, err := m.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := m.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}
	var common []*model.User
	for _, id := range u.FriendIDs() {
		if !contains(other.Friends, id) {
			continue
		}
		friend, err := m.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		common = append(common, friend)
	}
	return common, nil
}

func contains(set map[int64]bool, id int64) bool {
	_, ok := set[id]
	return ok
}

// normalizeFriends replaces a nil friend set with an empty one and strips a
// self-edge: a user never appears in its own friend relation, even when the
// incoming record carries one. Call only after the user's id is assigned.
func normalizeFriends(u *model.User) {
	if u.Friends == nil {
		u.Friends = make(map[int64]bool)
	}
	delete(u.Friends, u.ID)
}
