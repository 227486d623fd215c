package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/filmorate/internal/model"
)

// GenreRepo reads the seeded `genres` reference table.
type GenreRepo struct {
	db *sql.DB
}

// NewGenreRepo constructs a GenreRepo with the provided DB handle.
func NewGenreRepo(db *sql.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

func (r *GenreRepo) FindAll(ctx context.Context) ([]*model.Genre, error) {
	const q = "SELECT id, name FROM genres ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Genre
	for rows.Next() {
		g := new(model.Genre)
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *GenreRepo) FindByID(ctx context.Context, id int64) (*model.Genre, error) {
	const q = "SELECT id, name FROM genres WHERE id = ?"
	g := new(model.Genre)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return g, nil
}

// RatingRepo reads the seeded `ratings` reference table.
type RatingRepo struct {
	db *sql.DB
}

// NewRatingRepo constructs a RatingRepo with the provided DB handle.
func NewRatingRepo(db *sql.DB) *RatingRepo {
	return &RatingRepo{db: db}
}

func (r *RatingRepo) FindAll(ctx context.Context) ([]*model.Rating, error) {
	const q = "SELECT id, name FROM ratings ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Rating
	for rows.Next() {
		rt := new(model.Rating)
		if err := rows.Scan(&rt.ID, &rt.Name); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *RatingRepo) FindByID(ctx context.Context, id int64) (*model.Rating, error) {
	const q = "SELECT id, name FROM ratings WHERE id = ?"
	rt := new(model.Rating)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rt.ID, &rt.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mpa rating %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rt, nil
}
