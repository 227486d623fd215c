package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/iliyamo/filmorate/internal/logger"
	"github.com/iliyamo/filmorate/internal/model"
)

// FilmMemory is the volatile backing of FilmStorage. Like UserMemory it is
// an owned in-process table with its own identity counter, no internal
// locking and no persistence.
type FilmMemory struct {
	films  map[int64]*model.Film
	nextID int64
}

// NewFilmMemory constructs an empty volatile film store.
func NewFilmMemory() *FilmMemory {
	return &FilmMemory{films: make(map[int64]*model.Film)}
}

// Get returns all films in insertion order (ascending id, see UserMemory.Get).
func (m *FilmMemory) Get(ctx context.Context) ([]*model.Film, error) {
	out := make([]*model.Film, 0, len(m.films))
	for _, id := range sortedKeys(m.films) {
		out = append(out, m.films[id])
	}
	logger.Debug("listed films", "count", len(out))
	return out, nil
}

func (m *FilmMemory) Create(ctx context.Context, f *model.Film) (*model.Film, error) {
	if err := model.ValidateFilm(f); err != nil {
		return nil, err
	}
	normalizeFilmSets(f)
	m.nextID++
	f.ID = m.nextID
	m.films[f.ID] = f
	logger.Info("film created", "id", f.ID, "name", f.Name)
	return f, nil
}

func (m *FilmMemory) Update(ctx context.Context, f *model.Film) (*model.Film, error) {
	if err := model.ValidateFilm(f); err != nil {
		return nil, err
	}
	if _, ok := m.films[f.ID]; !ok {
		return nil, fmt.Errorf("film %d: %w", f.ID, ErrNotFound)
	}
	normalizeFilmSets(f)
	m.films[f.ID] = f
	logger.Info("film updated", "id", f.ID)
	return f, nil
}

func (m *FilmMemory) GetByID(ctx context.Context, id int64) (*model.Film, error) {
	f, ok := m.films[id]
	if !ok {
		return nil, fmt.Errorf("film %d: %w", id, ErrNotFound)
	}
	return f, nil
}

func (m *FilmMemory) AddLike(ctx context.Context, filmID, userID int64) error {
	f, err := m.GetByID(ctx, filmID)
	if err != nil {
		return err
	}
	f.AddLike(userID)
	logger.Info("like added", "film_id", filmID, "user_id", userID)
	return nil
}

func (m *FilmMemory) DeleteLike(ctx context.Context, filmID, userID int64) error {
	f, err := m.GetByID(ctx, filmID)
	if err != nil {
		return err
	}
	f.RemoveLike(userID)
	logger.Info("like removed", "film_id", filmID, "user_id", userID)
	return nil
}

// GetPopular sorts films by like count descending with a stable sort, so
// films with equal like counts keep their insertion order.
func (m *FilmMemory) GetPopular(ctx context.Context, count int) ([]*model.Film, error) {
	if count <= 0 {
		return []*model.Film{}, nil
	}
	films, err := m.Get(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].LikeCount() > films[j].LikeCount()
	})
	if len(films) > count {
		films = films[:count]
	}
	return films, nil
}

// normalizeFilmSets replaces nil related sets with empty ones so stored
// records always carry concrete (and JSON-friendly) sets.
func normalizeFilmSets(f *model.Film) {
	if f.Likes == nil {
		f.Likes = []int64{}
	}
	if f.Genres == nil {
		f.Genres = []model.Genre{}
	}
}

// sortedKeys returns a map's int64 keys in ascending order. Identity is
// monotonic and records are never deleted, so this is insertion order.
func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
