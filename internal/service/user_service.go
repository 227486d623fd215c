// Package service holds the thin orchestration layer between HTTP handlers
// and the entity storages: cross-entity existence checks, event publishing
// and delegation. Business rules proper (validation, identity assignment,
// graph maintenance) live with the storages.
package service

import (
	"context"
	"time"

	"github.com/iliyamo/filmorate/internal/model"
	"github.com/iliyamo/filmorate/internal/queue"
	"github.com/iliyamo/filmorate/internal/repository"
)

// EventPublisher publishes a domain event to a named queue. Satisfied by
// *queue.Publisher; nil disables event publishing.
type EventPublisher interface {
	Publish(ctx context.Context, queueName string, event any) error
}

// UserService exposes user CRUD and the friendship graph.
type UserService struct {
	storage repository.UserStorage
	events  EventPublisher
}

// NewUserService wires a UserService to a storage backing. events may be nil.
func NewUserService(storage repository.UserStorage, events EventPublisher) *UserService {
	return &UserService{storage: storage, events: events}
}

func (s *UserService) Get(ctx context.Context) ([]*model.User, error) {
	return s.storage.Get(ctx)
}

func (s *UserService) Create(ctx context.Context, u *model.User) (*model.User, error) {
	return s.storage.Create(ctx, u)
}

func (s *UserService) Update(ctx context.Context, u *model.User) (*model.User, error) {
	return s.storage.Update(ctx, u)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.storage.GetByID(ctx, id)
}

// AddFriend records the friendship on the initiator's side and returns the
// initiator's refreshed friend list. A friend.added event is published
// best-effort after the mutation succeeds.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID int64) ([]*model.User, error) {
	friends, err := s.storage.AddFriend(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		_ = s.events.Publish(ctx, queue.FriendAddedQueue, queue.FriendAddedEvent{
			UserID:   userID,
			FriendID: friendID,
			AddedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}
	return friends, nil
}

func (s *UserService) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	return s.storage.DeleteFriend(ctx, userID, friendID)
}

func (s *UserService) GetFriends(ctx context.Context, userID int64) ([]*model.User, error) {
	return s.storage.GetFriends(ctx, userID)
}

func (s *UserService) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error) {
	return s.storage.GetCommonFriends(ctx, userID, otherID)
}
