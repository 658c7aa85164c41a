package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rando/internal/archive"
)

const redisConnectTimeout = 10 * time.Second

type RedisConfig struct {
	URL string `json:"url"`
	TTL string `json:"ttl"`
}

func (c *RedisConfig) Validate() error {
	el := errors.NewErrorList()

	if !strings.HasPrefix(c.URL, "redis://") && !strings.HasPrefix(c.URL, "rediss://") {
		el.Add(fmt.Errorf("redis: url must start with redis:// or rediss://"))
	}

	if c.TTL != "" {
		if _, err := time.ParseDuration(c.TTL); err != nil {
			el.Add(fmt.Errorf("redis: parsing ttl: %w", err))
		}
	}

	return el.Err()
}

func (c *RedisConfig) buildArchive(logger *slog.Logger) (*archive.RedisArchive, error) {
	opts := []archive.RedisArchiveOpt{archive.WithLogger(logger)}
	if c.TTL != "" {
		d, err := time.ParseDuration(c.TTL)
		if err != nil {
			return nil, fmt.Errorf("parsing ttl: %w", err)
		}
		opts = append(opts, archive.WithTTL(d))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	return archive.NewRedisArchive(ctx, c.URL, opts...)
}
