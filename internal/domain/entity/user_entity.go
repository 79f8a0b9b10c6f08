package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-diary-api/pkg/helpers"
)

// Theme is the UI colour scheme a user picked.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeCyan  Theme = "cyan"
)

// Valid reports whether t is one of the supported themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeCyan:
		return true
	}
	return false
}

// User is the aggregate root for the identity domain.
// PasswordHash only ever holds a bcrypt digest; there is no plaintext field.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string `json:"-"`
	Theme        Theme
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a user ready to be persisted. The plaintext password is hashed
// here and dropped.
func NewUser(username, email, password string) (*User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Theme:        ThemeLight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CheckPassword compares plain against the stored digest.
func (u *User) CheckPassword(plain string) bool {
	return helpers.CompareHashAndPassword(u.PasswordHash, plain)
}

// PublicUser is the only user representation that leaves the server.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Theme    Theme  `json:"theme"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Theme:    u.Theme,
	}
}
