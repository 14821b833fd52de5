package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	pingErr error
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func (s *stubClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubClient) Close() error { return nil }

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() {
		redisNewClient = func(o *redis.Options) Cache { return redis.NewClient(o) }
	})

	t.Run("success", func(t *testing.T) {
		var opts *redis.Options
		stub := &stubClient{}
		redisNewClient = func(o *redis.Options) Cache {
			opts = o
			return stub
		}

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Equal(t, Cache(stub), c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
	})

	t.Run("ping fail", func(t *testing.T) {
		redisNewClient = func(o *redis.Options) Cache {
			return &stubClient{pingErr: errors.New("dead")}
		}
		_, err := NewRedisClient("127.0.0.1:6379", "", 0)
		require.Error(t, err)
	})
}

func TestFakeCacheDefaults(t *testing.T) {
	f := &FakeCache{}
	require.NoError(t, f.Ping(context.Background()).Err())
	require.NoError(t, f.Close())
	require.Panics(t, func() { f.Set(context.Background(), "k", "v", 0) })
}
