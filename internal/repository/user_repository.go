package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/filmorate/internal/logger"
	"github.com/iliyamo/filmorate/internal/model"
)

// UserRepo is the durable backing of UserStorage. User rows live in the
// `users` table; the friendship graph lives in `friendships` as
// (user_id, friend_id, status) rows. The friend set is reconstructed by a
// lookup per read and fully rewritten (delete-then-reinsert) per update
// inside a transaction, so readers never observe a partially rewritten user.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context) ([]*model.User, error) {
	const q = "SELECT id, email, login, name, birthday FROM users ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		u, err := r.scanUser(ctx, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.Debug("listed users", "count", len(out))
	return out, nil
}

// scanUser reads the base columns from the current row and loads the
// friendship set with a follow-up lookup.
func (r *UserRepo) scanUser(ctx context.Context, rows *sql.Rows) (*model.User, error) {
	u := new(model.User)
	if err := rows.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
		return nil, err
	}
	friends, err := r.loadFriends(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Friends = friends
	return u, nil
}

func (r *UserRepo) loadFriends(ctx context.Context, userID int64) (map[int64]bool, error) {
	const q = "SELECT friend_id, status FROM friendships WHERE user_id = ?"
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friends := make(map[int64]bool)
	for rows.Next() {
		var friendID int64
		var status bool
		if err := rows.Scan(&friendID, &status); err != nil {
			return nil, err
		}
		friends[friendID] = status
	}
	return friends, rows.Err()
}

func (r *UserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if err := model.ValidateUser(u); err != nil {
		return nil, err
	}
	if u.Name == "" {
		u.Name = u.Login
		logger.Info("user name defaulted to login", "login", u.Login)
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

	const qInsert = "INSERT INTO users (email, login, name, birthday) VALUES (?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, qInsert, u.Email, u.Login, u.Name, u.Birthday)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	u.ID = id
	normalizeFriends(u)
	if err = insertFriendships(ctx, tx, u.ID, u.Friends); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	logger.Info("user created", "id", u.ID, "login", u.Login)
	return u, nil
}

func (r *UserRepo) Update(ctx context.Context, u *model.User) (*model.User, error) {
	if err := model.ValidateUser(u); err != nil {
		return nil, err
	}
	normalizeFriends(u)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Existence check up front: RowsAffected cannot distinguish a missing
	// row from an update that changed nothing.
	var exists int64
	if err = tx.QueryRowContext(ctx, "SELECT id FROM users WHERE id = ?", u.ID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("user %d: %w", u.ID, ErrNotFound)
		}
		return nil, err
	}
	const qUpdate = "UPDATE users SET email = ?, login = ?, name = ?, birthday = ? WHERE id = ?"
	if _, err = tx.ExecContext(ctx, qUpdate, u.Email, u.Login, u.Name, u.Birthday, u.ID); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM friendships WHERE user_id = ?", u.ID); err != nil {
		return nil, err
	}
	if err = insertFriendships(ctx, tx, u.ID, u.Friends); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	logger.Info("user updated", "id", u.ID)
	return u, nil
}

func insertFriendships(ctx context.Context, tx *sql.Tx, userID int64, friends map[int64]bool) error {
	const q = "INSERT INTO friendships (user_id, friend_id, status) VALUES (?, ?, ?)"
	for friendID, status := range friends {
		if _, err := tx.ExecContext(ctx, q, userID, friendID, status); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const q = "SELECT id, email, login, name, birthday FROM users WHERE id = ?"
	u := new(model.User)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	friends, err := r.loadFriends(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Friends = friends
	return u, nil
}

func (r *UserRepo) AddFriend(ctx context.Context, userID, friendID int64) ([]*model.User, error) {
	if userID == friendID {
		return nil, fmt.Errorf("user %d cannot befriend themselves: %w", userID, model.ErrValidation)
	}
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := r.GetByID(ctx, friendID); err != nil {
		return nil, err
	}
	u.AddFriend(friendID)
	if _, err := r.Update(ctx, u); err != nil {
		return nil, err
	}
	logger.Info("friend added", "user_id", userID, "friend_id", friendID)
	return r.GetFriends(ctx, userID)
}

func (r *UserRepo) DeleteFriend(ctx context.Context, userID, friendID int64) error {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := r.GetByID(ctx, friendID); err != nil {
		return err
	}
	u.RemoveFriend(friendID)
	if _, err := r.Update(ctx, u); err != nil {
		return err
	}
	logger.Info("friend removed", "user_id", userID, "friend_id", friendID)
	return nil
}

func (r *UserRepo) GetFriends(ctx context.Context, userID int64) ([]*model.User, error) {
	if _, err := r.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	const q = `SELECT id, email, login, name, birthday FROM users
	           WHERE id IN (SELECT friend_id FROM friendships WHERE user_id = ?)
	           ORDER BY id`
	return r.queryUsers(ctx, q, userID)
}

func (r *UserRepo) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error) {
	if _, err := r.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := r.GetByID(ctx, otherID); err != nil {
		return nil, err
	}
	const q = `SELECT id, email, login, name, birthday FROM users
	           WHERE id IN (SELECT f1.friend_id
	                        FROM friendships f1
	                        JOIN friendships f2 ON f1.friend_id = f2.friend_id
	                        WHERE f1.user_id = ? AND f2.user_id = ?)
	           ORDER BY id`
	return r.queryUsers(ctx, q, userID, otherID)
}

func (r *UserRepo) queryUsers(ctx context.Context, q string, args ...any) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		u, err := r.scanUser(ctx, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
