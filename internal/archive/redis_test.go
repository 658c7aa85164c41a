package archive

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupArchive(t *testing.T, opts ...RedisArchiveOpt) (*RedisArchive, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	opts = append([]RedisArchiveOpt{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)

	a, err := NewRedisArchive(context.Background(), "redis://"+mr.Addr(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a, mr
}

func sampleResult() *generator.Result {
	return &generator.Result{
		ID:     uuid.MustParse("3d9a1f60-2b7c-4e85-a0f4-51c2d8e6b937"),
		Seed:   44,
		Config: config.Default(),
		Worlds: []generator.WorldResult{{
			Id:         0,
			Player:     "Player",
			Medallions: map[string]string{"Turtle Rock": "Quake"},
			Rewards:    map[string]string{"Kraid's Lair": "BossKraid"},
			Placements: []generator.Placement{{Location: "Link's House", Region: "Light World South", Item: "Hookshot"}},
		}},
	}
}

func TestRedisArchive_SaveLoad(t *testing.T) {
	a, mr := setupArchive(t)
	ctx := context.Background()
	res := sampleResult()

	require.NoError(t, a.Save(ctx, res))
	assert.True(t, mr.Exists("rando:result:3d9a1f60-2b7c-4e85-a0f4-51c2d8e6b937"))
	assert.Equal(t, DefaultTTL, mr.TTL("rando:result:3d9a1f60-2b7c-4e85-a0f4-51c2d8e6b937"))

	got, err := a.Load(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestRedisArchive_Load_NotFound(t *testing.T) {
	a, _ := setupArchive(t)

	_, err := a.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisArchive_Expiry(t *testing.T) {
	a, mr := setupArchive(t, WithTTL(time.Hour))
	ctx := context.Background()
	res := sampleResult()

	require.NoError(t, a.Save(ctx, res))
	mr.FastForward(2 * time.Hour)

	_, err := a.Load(ctx, res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisArchive_Delete(t *testing.T) {
	a, _ := setupArchive(t)
	ctx := context.Background()
	res := sampleResult()

	require.NoError(t, a.Save(ctx, res))
	require.NoError(t, a.Delete(ctx, res.ID))

	_, err := a.Load(ctx, res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisArchive_CorruptEntry(t *testing.T) {
	a, mr := setupArchive(t)
	id := uuid.New()
	require.NoError(t, mr.Set(key(id), "{not json"))

	_, err := a.Load(context.Background(), id)
	assert.ErrorContains(t, err, "unmarshalling result")
}

func TestNewRedisArchive_BadURL(t *testing.T) {
	_, err := NewRedisArchive(context.Background(), "http://localhost")
	assert.ErrorContains(t, err, "parsing redis url")
}

func TestNewRedisArchive_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisArchive(ctx, "redis://127.0.0.1:1")
	assert.ErrorContains(t, err, "connecting to redis")
}
