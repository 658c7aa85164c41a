package archive

import (
	"log/slog"
	"time"
)

type RedisArchiveOpt func(*RedisArchive)

// WithTTL sets how long results are kept. Zero keeps them forever.
func WithTTL(d time.Duration) RedisArchiveOpt {
	return func(a *RedisArchive) {
		a.ttl = d
	}
}

func WithLogger(l *slog.Logger) RedisArchiveOpt {
	return func(a *RedisArchive) {
		a.logger = l
	}
}
