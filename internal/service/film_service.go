package service

import (
	"context"
	"time"

	"github.com/iliyamo/filmorate/internal/model"
	"github.com/iliyamo/filmorate/internal/queue"
	"github.com/iliyamo/filmorate/internal/repository"
)

// FilmService exposes film CRUD, the like relation and the popularity
// ranking. Likes reference users, so the service resolves the user through
// UserService before touching the film.
type FilmService struct {
	storage repository.FilmStorage
	users   *UserService
	events  EventPublisher
}

// NewFilmService wires a FilmService to a storage backing. events may be nil.
func NewFilmService(storage repository.FilmStorage, users *UserService, events EventPublisher) *FilmService {
	return &FilmService{storage: storage, users: users, events: events}
}

func (s *FilmService) Get(ctx context.Context) ([]*model.Film, error) {
	return s.storage.Get(ctx)
}

func (s *FilmService) Create(ctx context.Context, f *model.Film) (*model.Film, error) {
	return s.storage.Create(ctx, f)
}

func (s *FilmService) Update(ctx context.Context, f *model.Film) (*model.Film, error) {
	return s.storage.Update(ctx, f)
}

func (s *FilmService) GetByID(ctx context.Context, id int64) (*model.Film, error) {
	return s.storage.GetByID(ctx, id)
}

// AddLike verifies the liking user exists, then records the like. A
// film.liked event is published best-effort after the mutation succeeds.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.storage.AddLike(ctx, filmID, userID); err != nil {
		return err
	}
	if s.events != nil {
		_ = s.events.Publish(ctx, queue.FilmLikedQueue, queue.FilmLikedEvent{
			FilmID:  filmID,
			UserID:  userID,
			LikedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return nil
}

// DeleteLike verifies the user exists, then removes the like; removing an
// absent like is a no-op.
func (s *FilmService) DeleteLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.storage.DeleteLike(ctx, filmID, userID)
}

func (s *FilmService) GetPopular(ctx context.Context, count int) ([]*model.Film, error) {
	return s.storage.GetPopular(ctx, count)
}
