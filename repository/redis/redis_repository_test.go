package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisrepo "github.com/muhammadheryan/package-crud/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (redisrepo.Repository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.NewRepository(client), srv
}

func TestRepository_NextSequence(t *testing.T) {
	repo, srv := newRepo(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.NextSequence(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// sequences are independent
	got, err := repo.NextSequence(ctx, "package")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	val, err := srv.Get("sequence:user")
	require.NoError(t, err)
	assert.Equal(t, "3", val)
}

func TestRepository_NextSequence_Error(t *testing.T) {
	repo, srv := newRepo(t)
	srv.SetError("LOADING")

	_, err := repo.NextSequence(context.Background(), "user")
	assert.Error(t, err)
}

func TestRepository_Session(t *testing.T) {
	repo, srv := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "jti-1", 42, time.Minute))
	assert.True(t, srv.Exists("session:jti-1"))
	assert.Equal(t, time.Minute, srv.TTL("session:jti-1"))

	got, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	require.NoError(t, repo.DeleteSession(ctx, "jti-1"))
	_, err = repo.GetSession(ctx, "jti-1")
	assert.ErrorIs(t, err, goredis.Nil)
}

func TestRepository_SessionExpires(t *testing.T) {
	repo, srv := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "jti-2", 7, time.Second))
	srv.FastForward(2 * time.Second)

	_, err := repo.GetSession(ctx, "jti-2")
	assert.ErrorIs(t, err, goredis.Nil)
}
