package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/auth_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"fitlog/infras/otel"
	"fitlog/infras/session"
	"fitlog/internal/domains/auth/model/dto"
	userModel "fitlog/internal/domains/user/model"
	userRepository "fitlog/internal/domains/user/repository"
	"fitlog/shared/constant"
	"fitlog/shared/failure"
	"fitlog/shared/password"
	"fitlog/shared/repository"
)

const (
	MessageEmailTaken = "email already registered"

	// MessageBadCredentials is deliberately identical for unknown emails and
	// wrong passwords, so login failures cannot be used to probe accounts.
	MessageBadCredentials = "invalid email or password"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type serviceImpl struct {
	users    userRepository.User
	sessions session.Store
	otel     otel.Otel
}

func New(users userRepository.User, sessions session.Store, otl otel.Otel) Auth {
	return &serviceImpl{
		users:    users,
		sessions: sessions,
		otel:     otl,
	}
}

// Register implements Auth. The password is hashed before it ever
// reaches the repository.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.auth.Register", constant.OtelServiceScopeName))
	defer scope.End()

	exist, err := s.users.ExistByEmail(ctx, req.Email)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	if exist {
		return failure.Conflict(MessageEmailTaken)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		scope.TraceError(err)

		return failure.InternalError(err)
	}

	user := userModel.User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
	}

	if err = s.users.Create(ctx, user); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

// Login implements Auth.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResult, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.auth.Login", constant.OtelServiceScopeName))
	defer scope.End()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.LoginResult{}, failure.Unauthorized(MessageBadCredentials)
	}

	if err != nil {
		scope.TraceError(err)

		return dto.LoginResult{}, err
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return dto.LoginResult{}, failure.Unauthorized(MessageBadCredentials)
		}

		scope.TraceError(err)

		return dto.LoginResult{}, failure.InternalError(err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		scope.TraceError(err)

		return dto.LoginResult{}, err
	}

	return dto.LoginResult{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// Logout implements Auth. Logging out with no live session is not an
// error; the end state is the same.
func (s *serviceImpl) Logout(ctx context.Context, token string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.auth.Logout", constant.OtelServiceScopeName))
	defer scope.End()

	if token == "" {
		return nil
	}

	if err := s.sessions.Destroy(ctx, token); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}
