package model

import "slices"

// Film represents a film record as stored in the `films` table together
// with its related sets (liking users, genres) and its MPA rating.
//
// Fields:
//  ID          – primary key identifier, assigned by the storage on create.
//  Name        – title, must not be empty.
//  Description – free text, at most 200 characters.
//  ReleaseDate – must not precede 1895-12-28, the first public screening.
//  Duration    – running time in minutes, non-negative.
//  Likes       – ids of users who liked the film, sorted ascending.
//  Genres      – genre references attached to the film.
//  Mpa         – MPA rating category reference, may be nil.
type Film struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ReleaseDate Date    `json:"releaseDate"`
	Duration    int64   `json:"duration"`
	Likes       []int64 `json:"likes"`
	Genres      []Genre `json:"genres"`
	Mpa         *Rating `json:"mpa"`
}

// AddLike records a like from userID. A user likes a film at most once, so
// repeated adds are no-ops. The like set stays sorted ascending.
func (f *Film) AddLike(userID int64) {
	if slices.Contains(f.Likes, userID) {
		return
	}
	f.Likes = append(f.Likes, userID)
	slices.Sort(f.Likes)
}

// RemoveLike drops userID's like. Removing an absent like is a no-op.
func (f *Film) RemoveLike(userID int64) {
	i := slices.Index(f.Likes, userID)
	if i < 0 {
		return
	}
	f.Likes = slices.Delete(f.Likes, i, i+1)
}

// LikeCount reports the number of distinct liking users.
func (f *Film) LikeCount() int {
	return len(f.Likes)
}

// Genre is a static reference row: a film category such as Comedy or Drama.
// Rows are seeded by migrations and read-only from the service's perspective.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rating is a static reference row: an MPA rating category such as G or R.
type Rating struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
