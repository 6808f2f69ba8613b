package session_test

import (
	"context"
	"testing"

	"fitlog/config"
	"fitlog/infras/session"
	otelMocks "fitlog/infras/otel/mocks"
	"fitlog/shared/cache"
	cacheMocks "fitlog/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) (session.Store, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	conf := &config.Config{}
	conf.Session.TTLSeconds = 3600

	return session.NewStore(redisCache, conf, otelMocks.NewOtel()), redisCache
}

func TestStoreCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		var savedKey string

		redisCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), "42", 3600).
			DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
				savedKey = key

				return nil
			})

		token, err := store.Create(context.Background(), 42)

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "session:"+token, savedKey)
	})

	t.Run("cache error", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		redisCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		token, err := store.Create(context.Background(), 42)

		require.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestStoreResolve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		redisCache.EXPECT().
			Get(gomock.Any(), "session:token-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				ptr, ok := value.(*string)
				require.True(t, ok)
				*ptr = "42"

				return nil
			})

		userID, err := store.Resolve(context.Background(), "token-1")

		require.NoError(t, err)
		assert.Equal(t, 42, userID)
	})

	t.Run("expired token", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		userID, err := store.Resolve(context.Background(), "gone")

		require.ErrorIs(t, err, session.ErrNoSession)
		assert.Zero(t, userID)
	})

	t.Run("corrupt value", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				ptr, ok := value.(*string)
				require.True(t, ok)
				*ptr = "not-a-number"

				return nil
			})

		_, err := store.Resolve(context.Background(), "token-1")

		require.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("cache error", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := store.Resolve(context.Background(), "token-1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, session.ErrNoSession)
	})
}

func TestStoreDestroy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		redisCache.EXPECT().
			Delete(gomock.Any(), "session:token-1").
			Return(nil)

		err := store.Destroy(context.Background(), "token-1")

		require.NoError(t, err)
	})

	t.Run("cache error", func(t *testing.T) {
		store, redisCache := newTestStore(t)

		redisCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		err := store.Destroy(context.Background(), "token-1")

		require.Error(t, err)
	})
}
