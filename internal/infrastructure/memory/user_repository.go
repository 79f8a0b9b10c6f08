// Package memory holds process-local repositories for tests and
// STORE_DRIVER=memory development runs. Data is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	"github.com/oksasatya/go-diary-api/internal/domain/repository"
)

type UserRepository struct {
	mu         sync.RWMutex
	byID       map[string]*entity.User
	byEmail    map[string]string
	byUsername map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]*entity.User),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

func clone(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	if _, ok := r.byUsername[u.Username]; ok {
		return repository.ErrDuplicate
	}
	if _, ok := r.byID[u.ID]; ok {
		return repository.ErrDuplicate
	}
	r.byID[u.ID] = clone(u)
	r.byEmail[u.Email] = u.ID
	r.byUsername[u.Username] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(u), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	if !ok {
		id, ok = r.byUsername[username]
	}
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) UpdateTheme(_ context.Context, id string, theme entity.Theme) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Theme = theme
	u.UpdatedAt = time.Now().UTC()
	return clone(u), nil
}

// Delete removes a user; the HTTP API has no account deletion, tests use it
// to exercise tokens that outlive their account.
func (r *UserRepository) Delete(_ context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byUsername, u.Username)
		delete(r.byID, id)
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
