package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate")
)

// UserRepository is the credential store. Implementations must enforce
// uniqueness of username and email themselves.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)
	UpdateTheme(ctx context.Context, id string, theme entity.Theme) (*entity.User, error)
}
