package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	"github.com/oksasatya/go-diary-api/internal/domain/repository"
)

func TestDiaryRepository_ListNewestFirstWithLimit(t *testing.T) {
	repo := NewDiaryRepository()
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.DiaryEntry{
			ID:        fmt.Sprintf("e%d", i),
			UserID:    "u1",
			Title:     fmt.Sprintf("t%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.DiaryEntry{ID: "other", UserID: "u2", CreatedAt: base}))

	got, err := repo.ListByUser(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"e4", "e3", "e2"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestDiaryRepository_OwnerScoping(t *testing.T) {
	repo := NewDiaryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.DiaryEntry{ID: "e1", UserID: "u1", Title: "mine"}))

	_, err := repo.Get(ctx, "u2", "e1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	title := "stolen"
	_, err = repo.Update(ctx, "u2", "e1", repository.EntryPatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "u2", "e1"), repository.ErrNotFound)

	byIDs, err := repo.GetByIDs(ctx, "u2", []string{"e1"})
	require.NoError(t, err)
	assert.Empty(t, byIDs)
}

func TestDiaryRepository_PartialUpdate(t *testing.T) {
	repo := NewDiaryRepository()
	ctx := context.Background()
	created := time.Now().Add(-time.Hour).UTC()
	require.NoError(t, repo.Create(ctx, &entity.DiaryEntry{
		ID: "e1", UserID: "u1", Title: "before", Content: "body", Mood: entity.MoodCalm,
		Tags: []string{"a"}, IsPrivate: true, CreatedAt: created, UpdatedAt: created,
	}))

	mood := entity.MoodHappy
	private := false
	got, err := repo.Update(ctx, "u1", "e1", repository.EntryPatch{Mood: &mood, IsPrivate: &private})
	require.NoError(t, err)

	assert.Equal(t, "before", got.Title)
	assert.Equal(t, "body", got.Content)
	assert.Equal(t, entity.MoodHappy, got.Mood)
	assert.Equal(t, []string{"a"}, got.Tags)
	assert.False(t, got.IsPrivate)
	assert.True(t, got.UpdatedAt.After(created))
}

func TestDiaryRepository_Delete(t *testing.T) {
	repo := NewDiaryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.DiaryEntry{ID: "e1", UserID: "u1"}))

	require.NoError(t, repo.Delete(ctx, "u1", "e1"))
	_, err := repo.Get(ctx, "u1", "e1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
