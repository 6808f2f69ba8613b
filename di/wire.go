//go:build wireinject
// +build wireinject

package di

import (
	"fitlog/config"
	"fitlog/infras/otel"
	"fitlog/infras/postgres"
	"fitlog/infras/redis"
	"fitlog/infras/session"
	"fitlog/shared/cache"
	"fitlog/transport/http"
	"fitlog/transport/http/middleware"
	"fitlog/transport/http/router"

	todoRepository "fitlog/internal/domains/todo/repository"
	todoService "fitlog/internal/domains/todo/service"
	todoHandler "fitlog/internal/handlers/todo"

	userRepository "fitlog/internal/domains/user/repository"

	workoutRepository "fitlog/internal/domains/workout/repository"
	workoutService "fitlog/internal/domains/workout/service"
	workoutHandler "fitlog/internal/handlers/workout"

	authService "fitlog/internal/domains/auth/service"
	authHandler "fitlog/internal/handlers/auth"

	pagesHandler "fitlog/internal/handlers/pages"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	session.NewStore,
)

var middlewares = wire.NewSet(
	middleware.ProvideSessionAuth,
	middleware.ProvideRateLimiter,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var workoutDomain = wire.NewSet(
	workoutRepository.New,
	workoutService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	workoutDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pagesHandler.New,
	authHandler.New,
	todoHandler.New,
	workoutHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
