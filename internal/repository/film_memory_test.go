package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/filmorate/internal/model"
)

func newFilm(name string) *model.Film {
	return &model.Film{
		Name:        name,
		Description: "test film",
		ReleaseDate: model.NewDate(1996, time.December, 28),
		Duration:    120,
	}
}

func TestFilmMemory_CreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	store := NewFilmMemory()

	f, err := store.Create(ctx, newFilm("First"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.ID)

	got, err := store.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	_, err = store.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilmMemory_CreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := NewFilmMemory()

	bad := newFilm("Bad")
	bad.Duration = -1
	_, err := store.Create(ctx, bad)
	assert.ErrorIs(t, err, model.ErrValidation)

	all, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFilmMemory_UpdateValidationAndNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewFilmMemory()
	f, err := store.Create(ctx, newFilm("Film"))
	require.NoError(t, err)

	// Scenario from the public contract: valid create, then a -1 duration
	// update must fail validation.
	broken := newFilm("Film")
	broken.ID = f.ID
	broken.Duration = -1
	_, err = store.Update(ctx, broken)
	assert.ErrorIs(t, err, model.ErrValidation)

	stored, err := store.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stored.Duration, "failed update leaves the record untouched")

	ghost := newFilm("Ghost")
	ghost.ID = 77
	_, err = store.Update(ctx, ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilmMemory_LikesAreIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewFilmMemory()
	f, err := store.Create(ctx, newFilm("Film"))
	require.NoError(t, err)

	require.NoError(t, store.AddLike(ctx, f.ID, 5))
	require.NoError(t, store.AddLike(ctx, f.ID, 5))

	got, err := store.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, got.Likes, "liking twice equals liking once")

	// Removing an absent like is a no-op.
	require.NoError(t, store.DeleteLike(ctx, f.ID, 42))
	require.NoError(t, store.DeleteLike(ctx, f.ID, 5))

	got, err = store.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)

	assert.ErrorIs(t, store.AddLike(ctx, 99, 5), ErrNotFound)
}

func TestFilmMemory_GetPopular(t *testing.T) {
	ctx := context.Background()
	store := NewFilmMemory()

	three, _ := store.Create(ctx, newFilm("three likes"))
	one, _ := store.Create(ctx, newFilm("one like"))
	two, _ := store.Create(ctx, newFilm("two likes"))

	for _, userID := range []int64{1, 2, 3} {
		require.NoError(t, store.AddLike(ctx, three.ID, userID))
	}
	require.NoError(t, store.AddLike(ctx, one.ID, 1))
	for _, userID := range []int64{1, 2} {
		require.NoError(t, store.AddLike(ctx, two.ID, userID))
	}

	top, err := store.GetPopular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, three.ID, top[0].ID)
	assert.Equal(t, two.ID, top[1].ID)

	// Rankings reflect likes immediately: drop the leader's likes.
	require.NoError(t, store.DeleteLike(ctx, three.ID, 1))
	require.NoError(t, store.DeleteLike(ctx, three.ID, 2))
	require.NoError(t, store.DeleteLike(ctx, three.ID, 3))
	top, err = store.GetPopular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, two.ID, top[0].ID)
}

func TestFilmMemory_GetPopularBounds(t *testing.T) {
	ctx := context.Background()
	store := NewFilmMemory()
	_, err := store.Create(ctx, newFilm("only"))
	require.NoError(t, err)

	empty, err := store.GetPopular(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	empty, err = store.GetPopular(ctx, -3)
	require.NoError(t, err)
	assert.Empty(t, empty)

	all, err := store.GetPopular(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1, "fewer films than count returns all of them")
}

func TestFilmMemory_GetPopularTiesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewFilmMemory()
	first, _ := store.Create(ctx, newFilm("first"))
	second, _ := store.Create(ctx, newFilm("second"))

	top, err := store.GetPopular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, first.ID, top[0].ID)
	assert.Equal(t, second.ID, top[1].ID)

	// Still tied after each gains a like, in reverse order of insertion:
	// the stable sort keeps insertion order.
	require.NoError(t, store.AddLike(ctx, second.ID, 1))
	require.NoError(t, store.AddLike(ctx, first.ID, 1))

	top, err = store.GetPopular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, first.ID, top[0].ID)
	assert.Equal(t, second.ID, top[1].ID)
}

func TestLookupMemory_Seeds(t *testing.T) {
	ctx := context.Background()

	genres := NewGenreMemory()
	all, err := genres.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "Comedy", all[0].Name)

	g, err := genres.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Drama", g.Name)
	_, err = genres.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	ratings := NewRatingMemory()
	mpa, err := ratings.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, mpa, 5)
	assert.Equal(t, "G", mpa[0].Name)

	r, err := ratings.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "NC-17", r.Name)
	_, err = ratings.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
