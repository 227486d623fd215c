package service

import (
	"context"

	"github.com/iliyamo/filmorate/internal/model"
	"github.com/iliyamo/filmorate/internal/repository"
)

// GenreService reads genre reference data.
type GenreService struct {
	storage repository.GenreStorage
}

func NewGenreService(storage repository.GenreStorage) *GenreService {
	return &GenreService{storage: storage}
}

func (s *GenreService) FindAll(ctx context.Context) ([]*model.Genre, error) {
	return s.storage.FindAll(ctx)
}

func (s *GenreService) FindByID(ctx context.Context, id int64) (*model.Genre, error) {
	return s.storage.FindByID(ctx, id)
}

// RatingService reads MPA rating reference data.
type RatingService struct {
	storage repository.RatingStorage
}

func NewRatingService(storage repository.RatingStorage) *RatingService {
	return &RatingService{storage: storage}
}

func (s *RatingService) FindAll(ctx context.Context) ([]*model.Rating, error) {
	return s.storage.FindAll(ctx)
}

func (s *RatingService) FindByID(ctx context.Context, id int64) (*model.Rating, error) {
	return s.storage.FindByID(ctx, id)
}
