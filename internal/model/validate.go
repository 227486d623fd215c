package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ErrValidation is returned when an entity violates a field constraint.
// The wrapping message names the first violated rule; handlers translate
// the error into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// maxDescriptionLen caps a film description at 200 characters.
const maxDescriptionLen = 200

// minReleaseDate is the date of the first public film screening; no film
// can have been released earlier.
var minReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// ValidateFilm checks film field constraints in a fixed order
// (name, description, release date, duration) and reports the first
// violation. It is pure and performs no I/O.
func ValidateFilm(f *Film) error {
	if f.Name == "" {
		return fmt.Errorf("%w: film name must not be empty", ErrValidation)
	}
	if utf8.RuneCountInString(f.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: film description exceeds %d characters", ErrValidation, maxDescriptionLen)
	}
	if f.ReleaseDate.Before(minReleaseDate) {
		return fmt.Errorf("%w: film release date precedes 1895-12-28", ErrValidation)
	}
	if f.Duration < 0 {
		return fmt.Errorf("%w: film duration must not be negative", ErrValidation)
	}
	return nil
}

// ValidateUser checks user field constraints in a fixed order
// (email, login, birthday) and reports the first violation. It is pure and
// performs no I/O.
func ValidateUser(u *User) error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: user email must contain '@'", ErrValidation)
	}
	if u.Login == "" || strings.IndexFunc(u.Login, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: user login must be non-empty without whitespace", ErrValidation)
	}
	if u.Birthday.After(time.Now()) {
		return fmt.Errorf("%w: user birthday must not be in the future", ErrValidation)
	}
	return nil
}
