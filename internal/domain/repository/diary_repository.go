package repository

import (
	"context"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
)

// EntryPatch lists the fields of an entry to overwrite; nil means unchanged.
type EntryPatch struct {
	Title     *string
	Content   *string
	Mood      *entity.Mood
	Tags      *[]string
	IsPrivate *bool
}

// DiaryRepository stores diary entries. Every call is scoped to an owner so a
// foreign entry behaves exactly like a missing one.
type DiaryRepository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.DiaryEntry, error)
	GetByIDs(ctx context.Context, userID string, ids []string) ([]entity.DiaryEntry, error)
	Get(ctx context.Context, userID, id string) (*entity.DiaryEntry, error)
	Create(ctx context.Context, e *entity.DiaryEntry) error
	Update(ctx context.Context, userID, id string, patch EntryPatch) (*entity.DiaryEntry, error)
	Delete(ctx context.Context, userID, id string) error
}
