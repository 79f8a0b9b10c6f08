package container

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/config"
	"github.com/oksasatya/go-diary-api/internal/application"
	"github.com/oksasatya/go-diary-api/internal/domain/repository"
	"github.com/oksasatya/go-diary-api/internal/infrastructure/jamendo"
	"github.com/oksasatya/go-diary-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-diary-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-diary-api/internal/infrastructure/search"
	"github.com/oksasatya/go-diary-api/pkg/helpers"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Container holds the components shared by the router modules and binaries.
// Optional infrastructure (Redis, Elasticsearch, RabbitMQ) may be nil.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	JWT    *helpers.JWTManager

	PGPool    *pgxpool.Pool
	Redis     *redis.Client
	ES        *elasticsearch.Client
	RabbitPub *helpers.RabbitPublisher

	Users      repository.UserRepository
	Entries    repository.DiaryRepository
	EntryIndex application.EntryIndex
	Catalog    application.Catalog

	Auth  *application.AuthService
	Diary *application.DiaryService
	Music *application.MusicService
}

// New connects the infrastructure named by cfg and wires the services.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	switch cfg.StoreDriver {
	case StorePostgres:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.PGPool = pool
		c.Users = pginfra.NewUserRepository(pool)
		c.Entries = pginfra.NewDiaryRepository(pool)
	case StoreMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		c.Users = memory.NewUserRepository()
		c.Entries = memory.NewDiaryRepository()
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.RedisAddr != "" {
		rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, music cache disabled")
		} else {
			c.Redis = rdb
		}
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := search.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("elasticsearch client: %w", err)
		}
		idx := search.NewDiaryIndex(es, cfg.ESDiaryIndex)
		if err := idx.EnsureIndex(ctx); err != nil {
			logger.WithError(err).Warn("elasticsearch unavailable, diary search disabled")
		} else {
			c.ES = es
			c.EntryIndex = idx
		}
	}

	if cfg.MailSendEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, welcome emails disabled")
		} else {
			c.RabbitPub = pub
		}
	}

	c.Wire()
	return c, nil
}

// Wire builds the JWT manager, catalog client and services from whatever
// stores are set. Tests call it directly with memory repositories.
func (c *Container) Wire() {
	cfg := c.Config
	if c.JWT == nil {
		c.JWT = helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	}
	if c.Catalog == nil {
		c.Catalog = jamendo.NewClient(cfg.JamendoBaseURL, cfg.JamendoClientID, c.Logger)
	}

	c.Auth = application.NewAuthService(c.Users, c.JWT, c.Logger)
	if c.RabbitPub != nil {
		c.Auth.WithWelcomeMail(c.RabbitPub, cfg.AppName, cfg.ClientURL)
	}
	c.Diary = application.NewDiaryService(c.Entries, c.EntryIndex, c.Logger)
	c.Music = application.NewMusicService(c.Catalog, c.Redis, cfg.MusicCacheTTL, c.Logger)
}

func (c *Container) Close() {
	if c.RabbitPub != nil {
		c.RabbitPub.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}
