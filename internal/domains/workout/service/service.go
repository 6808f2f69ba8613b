package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/workout_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"fitlog/infras/otel"
	userRepository "fitlog/internal/domains/user/repository"
	"fitlog/internal/domains/workout/model"
	"fitlog/internal/domains/workout/model/dto"
	"fitlog/internal/domains/workout/repository"
	"fitlog/shared/constant"
	"fitlog/shared/failure"
	sharedRepository "fitlog/shared/repository"
	"fitlog/shared/timezone"
)

const (
	MessageWorkoutNotFound = "workout not found"
	MessageNoUser          = "no authenticated user"
)

type Workout interface {
	Create(ctx context.Context, req dto.CreateWorkoutRequest) error
	List(ctx context.Context, page int) (dto.WorkoutsPageResponse, error)
	Detail(ctx context.Context, id int) (dto.WorkoutResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateWorkoutRequest) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repository repository.Workout
	users      userRepository.User
	otel       otel.Otel
}

func New(repo repository.Workout, users userRepository.User, otl otel.Otel) Workout {
	return &serviceImpl{
		repository: repo,
		users:      users,
		otel:       otl,
	}
}

// Create implements Workout. The posting time is stamped server-side
// in the application timezone.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWorkoutRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.workout.Create", constant.OtelServiceScopeName))
	defer scope.End()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	workout := model.Workout{
		Pushups:    req.Pushups,
		DatePosted: timezone.Now(),
		Comment:    req.Comment,
		UserID:     userID,
	}

	if err = s.repository.Create(ctx, workout); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

// List implements Workout. The owner is re-resolved from the session
// email rather than trusted from a client-supplied parameter.
func (s *serviceImpl) List(ctx context.Context, page int) (dto.WorkoutsPageResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.workout.List", constant.OtelServiceScopeName))
	defer scope.End()

	email, ok := ctx.Value(constant.ContextKeyUserEmail).(string)
	if !ok || email == "" {
		return dto.WorkoutsPageResponse{}, failure.Unauthorized(MessageNoUser)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, sharedRepository.ErrNotFound) {
		return dto.WorkoutsPageResponse{}, failure.Unauthorized(MessageNoUser)
	}

	if err != nil {
		scope.TraceError(err)

		return dto.WorkoutsPageResponse{}, err
	}

	workouts, err := s.repository.GetPage(ctx, user.ID, page, constant.WorkoutsPerPage)
	if err != nil {
		scope.TraceError(err)

		return dto.WorkoutsPageResponse{}, err
	}

	total, err := s.repository.CountByUser(ctx, user.ID)
	if err != nil {
		scope.TraceError(err)

		return dto.WorkoutsPageResponse{}, err
	}

	return dto.NewWorkoutsPageResponse(workouts, page, total), nil
}

// Detail implements Workout.
func (s *serviceImpl) Detail(ctx context.Context, id int) (dto.WorkoutResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.workout.Detail", constant.OtelServiceScopeName))
	defer scope.End()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return dto.WorkoutResponse{}, err
	}

	workout, err := s.repository.GetOwned(ctx, id, userID)
	if errors.Is(err, sharedRepository.ErrNotFound) {
		return dto.WorkoutResponse{}, failure.NotFound(MessageWorkoutNotFound)
	}

	if err != nil {
		scope.TraceError(err)

		return dto.WorkoutResponse{}, err
	}

	return dto.NewWorkoutResponse(workout), nil
}

// Update implements Workout. Both editable fields are overwritten;
// an edit is a full replacement, not a merge.
func (s *serviceImpl) Update(ctx context.Context, id int, req dto.UpdateWorkoutRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.workout.Update", constant.OtelServiceScopeName))
	defer scope.End()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err = s.repository.GetOwned(ctx, id, userID); err != nil {
		if errors.Is(err, sharedRepository.ErrNotFound) {
			return failure.NotFound(MessageWorkoutNotFound)
		}

		scope.TraceError(err)

		return err
	}

	fields := map[string]any{
		"pushups": req.Pushups,
		"comment": req.Comment,
	}

	if err = s.repository.Update(ctx, id, userID, fields); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

// Delete implements Workout.
func (s *serviceImpl) Delete(ctx context.Context, id int) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.workout.Delete", constant.OtelServiceScopeName))
	defer scope.End()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err = s.repository.GetOwned(ctx, id, userID); err != nil {
		if errors.Is(err, sharedRepository.ErrNotFound) {
			return failure.NotFound(MessageWorkoutNotFound)
		}

		scope.TraceError(err)

		return err
	}

	if err = s.repository.Delete(ctx, id, userID); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

func userIDFromContext(ctx context.Context) (int, error) {
	userID, ok := ctx.Value(constant.ContextKeyUserID).(int)
	if !ok || userID == 0 {
		return 0, failure.Unauthorized(MessageNoUser)
	}

	return userID, nil
}
