package application

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	"github.com/oksasatya/go-diary-api/internal/infrastructure/jamendo"
	"github.com/oksasatya/go-diary-api/pkg/helpers"
)

const (
	DefaultMusicLimit = 10
	MaxMusicLimit     = 50
)

// Catalog is the upstream music catalog.
type Catalog interface {
	Search(ctx context.Context, q string, limit int) ([]entity.Track, error)
	Track(ctx context.Context, id string) (*entity.Track, error)
}

type MusicService struct {
	Catalog  Catalog
	Redis    *redis.Client // optional search cache
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewMusicService(catalog Catalog, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *MusicService {
	return &MusicService{Catalog: catalog, Redis: rdb, CacheTTL: ttl, Logger: logger}
}

// ClampLimit applies the default and bounds to a requested page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultMusicLimit
	case limit > MaxMusicLimit:
		return MaxMusicLimit
	}
	return limit
}

func searchCacheKey(q string, limit int) string {
	return "music:search:" + strconv.Itoa(limit) + ":" + strings.ToLower(q)
}

func (s *MusicService) Search(ctx context.Context, q string, limit int) ([]entity.Track, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, invalid("Search query required")
	}
	limit = ClampLimit(limit)
	key := searchCacheKey(q, limit)

	if s.Redis != nil {
		var cached []entity.Track
		hit, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached)
		if err != nil {
			helpers.LogError(s.Logger, "music cache read", err, logrus.Fields{"key": key})
		}
		if hit {
			return cached, nil
		}
	}

	tracks, err := s.Catalog.Search(ctx, q, limit)
	if err != nil {
		return nil, internal("music search", err)
	}
	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, tracks, s.CacheTTL); err != nil {
			helpers.LogError(s.Logger, "music cache write", err, logrus.Fields{"key": key})
		}
	}
	return tracks, nil
}

func (s *MusicService) Track(ctx context.Context, id string) (*entity.Track, error) {
	t, err := s.Catalog.Track(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, jamendo.ErrTrackNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, internal("music track", err)
	}
	return t, nil
}
