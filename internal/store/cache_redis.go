package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/logger"
)

const titleKeyPrefix = "signout:title:"

// RedisTitleCache is a [TitleCache] backed by Redis string keys with a TTL.
type RedisTitleCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisTitleCache connects to the Redis server named in cfg and pings it.
func NewRedisTitleCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisTitleCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisTitleCache").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisTitleCache").Msg("connected to redis successfully")

	return newRedisTitleCache(client, cfg.TitleTTL, log), nil
}

func newRedisTitleCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisTitleCache {
	return &RedisTitleCache{client: client, ttl: ttl, logger: log}
}

// GetTitle returns the cached title of code. A miss is reported as found == false with a nil error.
func (c *RedisTitleCache) GetTitle(ctx context.Context, code string) (string, bool, error) {
	title, err := c.client.Get(ctx, titleKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return title, true, nil
}

// SetTitle stores title for code. The first writer wins, so concurrent
// lookups of the same code keep a single cached title.
func (c *RedisTitleCache) SetTitle(ctx context.Context, code, title string) error {
	return c.client.SetNX(ctx, titleKeyPrefix+code, title, c.ttl).Err()
}

func (c *RedisTitleCache) Close() error {
	return c.client.Close()
}

// NopTitleCache is used when no Redis address is configured.
type NopTitleCache struct{}

func (NopTitleCache) GetTitle(context.Context, string) (string, bool, error) {
	return "", false, nil
}

func (NopTitleCache) SetTitle(context.Context, string, string) error {
	return nil
}
