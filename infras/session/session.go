package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fitlog/config"
	"fitlog/infras/otel"
	"fitlog/shared"
	"fitlog/shared/cache"
	"fitlog/shared/constant"

	"github.com/google/uuid"
)

const keyPrefix = "session"

// ErrNoSession is returned when a token does not resolve to a live session,
// either because it expired or was never issued.
var ErrNoSession = errors.New("no active session")

// Store issues and resolves opaque session tokens backed by Redis. The token
// is the only thing handed to the client; the user id stays server-side.
type Store interface {
	Create(ctx context.Context, userID int) (string, error)
	Resolve(ctx context.Context, token string) (int, error)
	Destroy(ctx context.Context, token string) error
}

type redisStore struct {
	cache  cache.RedisCache
	config *config.Config
	otel   otel.Otel
}

func NewStore(redisCache cache.RedisCache, conf *config.Config, otl otel.Otel) Store {
	return &redisStore{
		cache:  redisCache,
		config: conf,
		otel:   otl,
	}
}

// Create implements Store.
func (s *redisStore) Create(ctx context.Context, userID int) (string, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Create")
	defer scope.End()

	token := uuid.NewString()

	err := s.cache.Save(ctx, shared.BuildCacheKey(keyPrefix, token), strconv.Itoa(userID), s.config.Session.TTLSeconds)
	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Resolve implements Store.
func (s *redisStore) Resolve(ctx context.Context, token string) (int, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Resolve")
	defer scope.End()

	var raw string

	err := s.cache.Get(ctx, shared.BuildCacheKey(keyPrefix, token), &raw)
	if errors.Is(err, cache.Nil) {
		return 0, ErrNoSession
	}

	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}

	userID, err := strconv.Atoi(raw)
	if err != nil {
		scope.TraceError(err)

		return 0, ErrNoSession
	}

	return userID, nil
}

// Destroy implements Store.
func (s *redisStore) Destroy(ctx context.Context, token string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Destroy")
	defer scope.End()

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(keyPrefix, token)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}
