package repository

import (
	"context"

	"github.com/iliyamo/filmorate/internal/model"
)

// UserStorage is the capability contract for the user entity store plus the
// friendship graph carried on user records. Both implementations behave
// identically from the caller's perspective: create validates, defaults a
// blank name to the login and assigns the next identity; update validates
// and full-replaces an existing record or fails with ErrNotFound; every
// friendship operation requires both endpoints to exist and aborts without
// partial mutation otherwise.
type UserStorage interface {
	Get(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// AddFriend records friendID on userID's side only, immediately
	// confirmed, and returns userID's refreshed friend records.
	AddFriend(ctx context.Context, userID, friendID int64) ([]*model.User, error)
	// DeleteFriend removes friendID from userID's side only; removing an
	// absent edge is a no-op. The inverse edge is untouched.
	DeleteFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]*model.User, error)
	// GetCommonFriends intersects the two users' friend id sets and
	// resolves each id to its current record, ordered by id ascending.
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error)
}

// FilmStorage is the capability contract for the film entity store plus the
// like relation carried on film records.
type FilmStorage interface {
	Get(ctx context.Context) ([]*model.Film, error)
	Create(ctx context.Context, f *model.Film) (*model.Film, error)
	Update(ctx context.Context, f *model.Film) (*model.Film, error)
	GetByID(ctx context.Context, id int64) (*model.Film, error)

	// AddLike records a like; a user likes a film at most once.
	AddLike(ctx context.Context, filmID, userID int64) error
	// DeleteLike removes a like; removing an absent like is a no-op.
	DeleteLike(ctx context.Context, filmID, userID int64) error
	// GetPopular returns at most count films ordered by distinct like
	// count descending. Ties keep the backing's iteration order, which is
	// unspecified beyond the like count. A non-positive count yields an
	// empty result.
	GetPopular(ctx context.Context, count int) ([]*model.Film, error)
}

// GenreStorage reads the static genre reference rows.
type GenreStorage interface {
	FindAll(ctx context.Context) ([]*model.Genre, error)
	FindByID(ctx context.Context, id int64) (*model.Genre, error)
}

// RatingStorage reads the static MPA rating reference rows.
type RatingStorage interface {
	FindAll(ctx context.Context) ([]*model.Rating, error)
	FindByID(ctx context.Context, id int64) (*model.Rating, error)
}
