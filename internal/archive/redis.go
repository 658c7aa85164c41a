// Package archive keeps generation results so they can be fetched by id
// after the generating process is gone.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-rando/internal/generator"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 7 * 24 * time.Hour

	keyPrefix = "rando:result:"
)

var ErrNotFound = errors.New("result not found")

// RedisArchive stores results as JSON under rando:result:<id>, each with a TTL.
type RedisArchive struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisArchive connects to the redis server at url and checks it answers.
func NewRedisArchive(ctx context.Context, url string, opts ...RedisArchiveOpt) (*RedisArchive, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	a := &RedisArchive{
		rdb:    redis.NewClient(opt),
		ttl:    DefaultTTL,
		logger: slog.Default(),
	}

	for _, o := range opts {
		o(a)
	}

	if err := a.rdb.Ping(ctx).Err(); err != nil {
		_ = a.rdb.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return a, nil
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Save satisfies generator.Archiver. Saving an id again replaces the
// stored result and restarts its TTL.
func (a *RedisArchive) Save(ctx context.Context, res *generator.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	if err := a.rdb.Set(ctx, key(res.ID), data, a.ttl).Err(); err != nil {
		return fmt.Errorf("storing result %s: %w", res.ID, err)
	}

	a.logger.DebugContext(ctx, "result archived", "seed_id", res.ID.String(), "bytes", len(data))
	return nil
}

// Load returns the stored result, or an error wrapping ErrNotFound.
func (a *RedisArchive) Load(ctx context.Context, id uuid.UUID) (*generator.Result, error) {
	data, err := a.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading result %s: %w", id, err)
	}

	var res generator.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("unmarshalling result %s: %w", id, err)
	}
	return &res, nil
}

func (a *RedisArchive) Delete(ctx context.Context, id uuid.UUID) error {
	if err := a.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("deleting result %s: %w", id, err)
	}
	return nil
}

func (a *RedisArchive) Close() error {
	return a.rdb.Close()
}
