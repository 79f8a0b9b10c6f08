package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	"github.com/oksasatya/go-diary-api/internal/infrastructure/jamendo"
	"github.com/oksasatya/go-diary-api/pkg/helpers"
)

type fakeCatalog struct {
	lastQuery string
	lastLimit int
	tracks    map[string]entity.Track
	err       error
}

func (f *fakeCatalog) Search(_ context.Context, q string, limit int) ([]entity.Track, error) {
	f.lastQuery, f.lastLimit = q, limit
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Track, 0, len(f.tracks))
	for _, t := range f.tracks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeCatalog) Track(_ context.Context, id string) (*entity.Track, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tracks[id]
	if !ok {
		return nil, jamendo.ErrTrackNotFound
	}
	return &t, nil
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0))
	assert.Equal(t, 10, ClampLimit(-3))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, 50, ClampLimit(500))
}

func TestMusicService_Search(t *testing.T) {
	cat := &fakeCatalog{tracks: map[string]entity.Track{"1": {ID: "1", Name: "Rain"}}}
	svc := NewMusicService(cat, nil, 0, helpers.NewNopLogger())

	tracks, err := svc.Search(context.Background(), "  rain ", 0)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
	assert.Equal(t, "rain", cat.lastQuery)
	assert.Equal(t, 10, cat.lastLimit)

	_, err = svc.Search(context.Background(), "", 5)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Search query required", err.Error())
}

func TestMusicService_Errors(t *testing.T) {
	cat := &fakeCatalog{tracks: map[string]entity.Track{}}
	svc := NewMusicService(cat, nil, 0, nil)

	_, err := svc.Track(context.Background(), "404")
	assert.ErrorIs(t, err, ErrTrackNotFound)

	cat.err = errors.New("upstream exploded")
	_, err = svc.Track(context.Background(), "1")
	assert.ErrorIs(t, err, ErrInternal)
	_, err = svc.Search(context.Background(), "x", 5)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSearchCacheKey(t *testing.T) {
	assert.Equal(t, "music:search:10:lo-fi", searchCacheKey("Lo-Fi", 10))
}
