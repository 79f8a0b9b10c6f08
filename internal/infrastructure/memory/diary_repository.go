package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	"github.com/oksasatya/go-diary-api/internal/domain/repository"
)

type DiaryRepository struct {
	mu      sync.RWMutex
	entries map[string]*entity.DiaryEntry
}

func NewDiaryRepository() *DiaryRepository {
	return &DiaryRepository{entries: make(map[string]*entity.DiaryEntry)}
}

func cloneEntry(e *entity.DiaryEntry) entity.DiaryEntry {
	cp := *e
	cp.Tags = append([]string{}, e.Tags...)
	return cp
}

func (r *DiaryRepository) ListByUser(_ context.Context, userID string, limit int) ([]entity.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.DiaryEntry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, cloneEntry(e))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *DiaryRepository) GetByIDs(_ context.Context, userID string, ids []string) ([]entity.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.DiaryEntry, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.entries[id]; ok && e.UserID == userID {
			out = append(out, cloneEntry(e))
		}
	}
	return out, nil
}

func (r *DiaryRepository) Get(_ context.Context, userID, id string) (*entity.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := cloneEntry(e)
	return &cp, nil
}

func (r *DiaryRepository) Create(_ context.Context, e *entity.DiaryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[e.ID]; ok {
		return repository.ErrDuplicate
	}
	cp := cloneEntry(e)
	r.entries[e.ID] = &cp
	return nil
}

func (r *DiaryRepository) Update(_ context.Context, userID, id string, patch repository.EntryPatch) (*entity.DiaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Content != nil {
		e.Content = *patch.Content
	}
	if patch.Mood != nil {
		e.Mood = *patch.Mood
	}
	if patch.Tags != nil {
		e.Tags = append([]string{}, (*patch.Tags)...)
	}
	if patch.IsPrivate != nil {
		e.IsPrivate = *patch.IsPrivate
	}
	e.UpdatedAt = time.Now().UTC()
	cp := cloneEntry(e)
	return &cp, nil
}

func (r *DiaryRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

var _ repository.DiaryRepository = (*DiaryRepository)(nil)
