package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/filmorate/internal/model"
	"github.com/iliyamo/filmorate/internal/queue"
	"github.com/iliyamo/filmorate/internal/repository"
)

// recordingPublisher captures published events instead of talking to a broker.
type recordingPublisher struct {
	queues []string
	events []any
}

func (p *recordingPublisher) Publish(_ context.Context, queueName string, event any) error {
	p.queues = append(p.queues, queueName)
	p.events = append(p.events, event)
	return nil
}

func newFixture(events EventPublisher) (*UserService, *FilmService) {
	users := NewUserService(repository.NewUserMemory(), events)
	films := NewFilmService(repository.NewFilmMemory(), users, events)
	return users, films
}

func seedUser(t *testing.T, users *UserService, login string) *model.User {
	t.Helper()
	u, err := users.Create(context.Background(), &model.User{
		Email:    login + "@x.com",
		Login:    login,
		Birthday: model.NewDate(1990, time.January, 1),
	})
	require.NoError(t, err)
	return u
}

func seedFilm(t *testing.T, films *FilmService, name string) *model.Film {
	t.Helper()
	f, err := films.Create(context.Background(), &model.Film{
		Name:        name,
		ReleaseDate: model.NewDate(2000, time.June, 1),
		Duration:    90,
	})
	require.NoError(t, err)
	return f
}

func TestFilmService_AddLikeRequiresExistingUser(t *testing.T) {
	ctx := context.Background()
	users, films := newFixture(nil)
	f := seedFilm(t, films, "Film")

	err := films.AddLike(ctx, f.ID, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stored, err := films.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Likes, "like set untouched when the user is missing")

	u := seedUser(t, users, "a")
	require.NoError(t, films.AddLike(ctx, f.ID, u.ID))
	stored, err = films.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u.ID}, stored.Likes)
}

func TestFilmService_DeleteLikeRequiresExistingUser(t *testing.T) {
	ctx := context.Background()
	users, films := newFixture(nil)
	f := seedFilm(t, films, "Film")
	u := seedUser(t, users, "a")

	require.NoError(t, films.AddLike(ctx, f.ID, u.ID))
	assert.ErrorIs(t, films.DeleteLike(ctx, f.ID, 42), repository.ErrNotFound)
	require.NoError(t, films.DeleteLike(ctx, f.ID, u.ID))

	stored, err := films.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Likes)
}

func TestFilmService_AddLikePublishesEvent(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	users, films := newFixture(pub)
	f := seedFilm(t, films, "Film")
	u := seedUser(t, users, "a")

	require.NoError(t, films.AddLike(ctx, f.ID, u.ID))

	require.Len(t, pub.events, 1)
	assert.Equal(t, queue.FilmLikedQueue, pub.queues[0])
	event, ok := pub.events[0].(queue.FilmLikedEvent)
	require.True(t, ok)
	assert.Equal(t, f.ID, event.FilmID)
	assert.Equal(t, u.ID, event.UserID)
}

func TestFilmService_FailedLikePublishesNothing(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	_, films := newFixture(pub)
	f := seedFilm(t, films, "Film")

	require.Error(t, films.AddLike(ctx, f.ID, 42))
	assert.Empty(t, pub.events)
}

func TestUserService_AddFriendPublishesEvent(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	users, _ := newFixture(pub)
	a := seedUser(t, users, "a")
	b := seedUser(t, users, "b")

	friends, err := users.AddFriend(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, b.ID, friends[0].ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, queue.FriendAddedQueue, pub.queues[0])
	event, ok := pub.events[0].(queue.FriendAddedEvent)
	require.True(t, ok)
	assert.Equal(t, a.ID, event.UserID)
	assert.Equal(t, b.ID, event.FriendID)
}
