package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/filmorate/internal/logger"
	"github.com/iliyamo/filmorate/internal/model"
)

// FilmRepo is the durable backing of FilmStorage. Film rows live in the
// `films` table; likes and genre references live in `likes` and
// `film_genres`. Related sets are reconstructed per read and fully
// rewritten (delete-then-reinsert) per update inside a transaction.
type FilmRepo struct {
	db *sql.DB
}

// NewFilmRepo constructs a FilmRepo with the provided DB handle.
func NewFilmRepo(db *sql.DB) *FilmRepo {
	return &FilmRepo{db: db}
}

func (r *FilmRepo) Get(ctx context.Context) ([]*model.Film, error) {
	const q = "SELECT id, name, description, release_date, duration, rating_id FROM films ORDER BY id"
	films, err := r.queryFilms(ctx, q)
	if err != nil {
		return nil, err
	}
	logger.Debug("listed films", "count", len(films))
	return films, nil
}

func (r *FilmRepo) Create(ctx context.Context, f *model.Film) (*model.Film, error) {
	if err := model.ValidateFilm(f); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qInsert = "INSERT INTO films (name, description, release_date, duration, rating_id) VALUES (?, ?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, qInsert, f.Name, f.Description, f.ReleaseDate, f.Duration, ratingID(f))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	f.ID = id
	if err = insertLikes(ctx, tx, f.ID, f.Likes); err != nil {
		return nil, err
	}
	if err = insertGenres(ctx, tx, f.ID, f.Genres); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	logger.Info("film created", "id", f.ID, "name", f.Name)
	// Re-read so genre names and the rating come back resolved.
	return r.GetByID(ctx, f.ID)
}

func (r *FilmRepo) Update(ctx context.Context, f *model.Film) (*model.Film, error) {
	if err := model.ValidateFilm(f); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int64
	if err = tx.QueryRowContext(ctx, "SELECT id FROM films WHERE id = ?", f.ID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("film %d: %w", f.ID, ErrNotFound)
		}
		return nil, err
	}
	const qUpdate = "UPDATE films SET name = ?, description = ?, release_date = ?, duration = ?, rating_id = ? WHERE id = ?"
	if _, err = tx.ExecContext(ctx, qUpdate, f.Name, f.Description, f.ReleaseDate, f.Duration, ratingID(f), f.ID); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM likes WHERE film_id = ?", f.ID); err != nil {
		return nil, err
	}
	if err = insertLikes(ctx, tx, f.ID, f.Likes); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM film_genres WHERE film_id = ?", f.ID); err != nil {
		return nil, err
	}
	if err = insertGenres(ctx, tx, f.ID, f.Genres); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	logger.Info("film updated", "id", f.ID)
	return r.GetByID(ctx, f.ID)
}

func ratingID(f *model.Film) any {
	if f.Mpa == nil {
		return nil
	}
	return f.Mpa.ID
}

func insertLikes(ctx context.Context, tx *sql.Tx, filmID int64, likes []int64) error {
	const q = "INSERT INTO likes (film_id, user_id) VALUES (?, ?)"
	for _, userID := range likes {
		if _, err := tx.ExecContext(ctx, q, filmID, userID); err != nil {
			return err
		}
	}
	return nil
}

func insertGenres(ctx context.Context, tx *sql.Tx, filmID int64, genres []model.Genre) error {
	const q = "INSERT INTO film_genres (film_id, genre_id) VALUES (?, ?)"
	for _, g := range genres {
		if _, err := tx.ExecContext(ctx, q, filmID, g.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *FilmRepo) GetByID(ctx context.Context, id int64) (*model.Film, error) {
	const q = "SELECT id, name, description, release_date, duration, rating_id FROM films WHERE id = ?"
	films, err := r.queryFilms(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, fmt.Errorf("film %d: %w", id, ErrNotFound)
	}
	return films[0], nil
}

func (r *FilmRepo) AddLike(ctx context.Context, filmID, userID int64) error {
	f, err := r.GetByID(ctx, filmID)
	if err != nil {
		return err
	}
	f.AddLike(userID)
	if _, err := r.Update(ctx, f); err != nil {
		return err
	}
	logger.Info("like added", "film_id", filmID, "user_id", userID)
	return nil
}

func (r *FilmRepo) DeleteLike(ctx context.Context, filmID, userID int64) error {
	f, err := r.GetByID(ctx, filmID)
	if err != nil {
		return err
	}
	f.RemoveLike(userID)
	if _, err := r.Update(ctx, f); err != nil {
		return err
	}
	logger.Info("like removed", "film_id", filmID, "user_id", userID)
	return nil
}

// GetPopular orders films by distinct like count descending. No secondary
// sort key is defined; the tie order is whatever the database yields and is
// unspecified beyond the like count.
func (r *FilmRepo) GetPopular(ctx context.Context, count int) ([]*model.Film, error) {
	if count <= 0 {
		return []*model.Film{}, nil
	}
	const q = `SELECT f.id, f.name, f.description, f.release_date, f.duration, f.rating_id
	           FROM films f
	           LEFT JOIN likes l ON l.film_id = f.id
	           GROUP BY f.id
	           ORDER BY COUNT(l.user_id) DESC
	           LIMIT ?`
	return r.queryFilms(ctx, q, count)
}

func (r *FilmRepo) queryFilms(ctx context.Context, q string, args ...any) ([]*model.Film, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Film
	for rows.Next() {
		f := new(model.Film)
		var ratingID sql.NullInt64
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.ReleaseDate, &f.Duration, &ratingID); err != nil {
			return nil, err
		}
		if err := r.loadRelations(ctx, f, ratingID); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// loadRelations reconstructs the like set, genre set and rating reference
// for a single film row.
func (r *FilmRepo) loadRelations(ctx context.Context, f *model.Film, ratingID sql.NullInt64) error {
	const qLikes = "SELECT user_id FROM likes WHERE film_id = ? ORDER BY user_id"
	rows, err := r.db.QueryContext(ctx, qLikes, f.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	f.Likes = []int64{}
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return err
		}
		f.Likes = append(f.Likes, userID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	const qGenres = `SELECT g.id, g.name FROM genres g
	                 JOIN film_genres fg ON fg.genre_id = g.id
	                 WHERE fg.film_id = ? ORDER BY g.id`
	grows, err := r.db.QueryContext(ctx, qGenres, f.ID)
	if err != nil {
		return err
	}
	defer grows.Close()
	f.Genres = []model.Genre{}
	for grows.Next() {
		var g model.Genre
		if err := grows.Scan(&g.ID, &g.Name); err != nil {
			return err
		}
		f.Genres = append(f.Genres, g)
	}
	if err := grows.Err(); err != nil {
		return err
	}

	if ratingID.Valid {
		const qRating = "SELECT id, name FROM ratings WHERE id = ?"
		rating := new(model.Rating)
		if err := r.db.QueryRowContext(ctx, qRating, ratingID.Int64).Scan(&rating.ID, &rating.Name); err != nil {
			return err
		}
		f.Mpa = rating
	}
	return nil
}
