package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFilm() Film {
	return Film{
		Name:        "Interstellar",
		Description: "A voyage through a wormhole.",
		ReleaseDate: NewDate(2014, time.November, 7),
		Duration:    169,
	}
}

func validUser() User {
	return User{
		Email:    "a@x.com",
		Login:    "a",
		Birthday: NewDate(1990, time.January, 1),
	}
}

func TestValidateFilm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Film)
		wantErr string
	}{
		{
			name:   "valid film",
			mutate: func(f *Film) {},
		},
		{
			name:   "boundary release date is allowed",
			mutate: func(f *Film) { f.ReleaseDate = NewDate(1895, time.December, 28) },
		},
		{
			name:   "zero duration is allowed",
			mutate: func(f *Film) { f.Duration = 0 },
		},
		{
			name:   "description of exactly 200 characters is allowed",
			mutate: func(f *Film) { f.Description = strings.Repeat("x", 200) },
		},
		{
			name:    "empty name",
			mutate:  func(f *Film) { f.Name = "" },
			wantErr: "name",
		},
		{
			name:    "description over 200 characters",
			mutate:  func(f *Film) { f.Description = strings.Repeat("x", 201) },
			wantErr: "description",
		},
		{
			name:    "release date before 1895-12-28",
			mutate:  func(f *Film) { f.ReleaseDate = NewDate(1895, time.December, 27) },
			wantErr: "release date",
		},
		{
			name:    "negative duration",
			mutate:  func(f *Film) { f.Duration = -1 },
			wantErr: "duration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFilm()
			tt.mutate(&f)
			err := ValidateFilm(&f)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateFilm_ShortCircuitOrder(t *testing.T) {
	// Name violation wins over the also-invalid duration.
	f := validFilm()
	f.Name = ""
	f.Duration = -1
	err := ValidateFilm(&f)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr string
	}{
		{
			name:   "valid user",
			mutate: func(u *User) {},
		},
		{
			name:    "email without at sign",
			mutate:  func(u *User) { u.Email = "ax.com" },
			wantErr: "email",
		},
		{
			name:    "empty email",
			mutate:  func(u *User) { u.Email = "" },
			wantErr: "email",
		},
		{
			name:    "login with space",
			mutate:  func(u *User) { u.Login = "a b" },
			wantErr: "login",
		},
		{
			name:    "login with tab",
			mutate:  func(u *User) { u.Login = "a\tb" },
			wantErr: "login",
		},
		{
			name:    "empty login",
			mutate:  func(u *User) { u.Login = "" },
			wantErr: "login",
		},
		{
			name: "birthday in the future",
			mutate: func(u *User) {
				u.Birthday = Date{Time: time.Now().AddDate(1, 0, 0)}
			},
			wantErr: "birthday",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			err := ValidateUser(&u)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
