package repository

import (
	"context"
	"fmt"

	"github.com/iliyamo/filmorate/internal/model"
)

// GenreMemory is the volatile backing of GenreStorage. Reference rows are
// seeded at construction, mirroring what migrations seed into the durable
// backing, and are read-only afterwards.
type GenreMemory struct {
	genres map[int64]*model.Genre
}

// NewGenreMemory seeds the default genre reference data.
func NewGenreMemory() *GenreMemory {
	seed := []model.Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Cartoon"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}
	m := &GenreMemory{genres: make(map[int64]*model.Genre, len(seed))}
	for i := range seed {
		m.genres[seed[i].ID] = &seed[i]
	}
	return m
}

func (m *GenreMemory) FindAll(ctx context.Context) ([]*model.Genre, error) {
	out := make([]*model.Genre, 0, len(m.genres))
	for _, id := range sortedKeys(m.genres) {
		out = append(out, m.genres[id])
	}
	return out, nil
}

func (m *GenreMemory) FindByID(ctx context.Context, id int64) (*model.Genre, error) {
	g, ok := m.genres[id]
	if !ok {
		return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return g, nil
}

// RatingMemory is the volatile backing of RatingStorage, seeded with the
// MPA rating categories.
type RatingMemory struct {
	ratings map[int64]*model.Rating
}

// NewRatingMemory seeds the default MPA rating reference data.
func NewRatingMemory() *RatingMemory {
	seed := []model.Rating{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
	m := &RatingMemory{ratings: make(map[int64]*model.Rating, len(seed))}
	for i := range seed {
		m.ratings[seed[i].ID] = &seed[i]
	}
	return m
}

func (m *RatingMemory) FindAll(ctx context.Context) ([]*model.Rating, error) {
	out := make([]*model.Rating, 0, len(m.ratings))
	for _, id := range sortedKeys(m.ratings) {
		out = append(out, m.ratings[id])
	}
	return out, nil
}

func (m *RatingMemory) FindByID(ctx context.Context, id int64) (*model.Rating, error) {
	r, ok := m.ratings[id]
	if !ok {
		return nil, fmt.Errorf("mpa rating %d: %w", id, ErrNotFound)
	}
	return r, nil
}
