package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/todo_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"fitlog/infras/otel"
	"fitlog/internal/domains/todo/model/dto"
	"fitlog/internal/domains/todo/repository"
	"fitlog/shared"
	"fitlog/shared/constant"
	"fitlog/shared/failure"
	sharedRepository "fitlog/shared/repository"
)

const (
	// MessageTaskNotFound and MessageTaskExists are part of the public API
	// contract; clients match on them.
	MessageTaskNotFound = "Task not found"
	MessageTaskExists   = "Task already exists"
)

type Todo interface {
	Get(ctx context.Context, id int) (dto.TodoResponse, error)
	Create(ctx context.Context, id int, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int) error
	ListAll(ctx context.Context) (dto.AllTodosResponse, error)
}

type serviceImpl struct {
	repository repository.Todo
	otel       otel.Otel
}

func New(repo repository.Todo, otl otel.Otel) Todo {
	return &serviceImpl{
		repository: repo,
		otel:       otl,
	}
}

// Get implements Todo.
func (s *serviceImpl) Get(ctx context.Context, id int) (dto.TodoResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.todo.Get", constant.OtelServiceScopeName))
	defer scope.End()

	todo, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, sharedRepository.ErrNotFound) {
		return dto.TodoResponse{}, failure.NotFound(MessageTaskNotFound)
	}

	if err != nil {
		scope.TraceError(err)

		return dto.TodoResponse{}, err
	}

	return dto.NewTodoResponse(todo), nil
}

// Create implements Todo.
func (s *serviceImpl) Create(ctx context.Context, id int, req dto.CreateTodoRequest) (dto.TodoResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.todo.Create", constant.OtelServiceScopeName))
	defer scope.End()

	exist, err := s.repository.ExistByID(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return dto.TodoResponse{}, err
	}

	if exist {
		return dto.TodoResponse{}, failure.Conflict(MessageTaskExists)
	}

	todo := req.ToModel(id)

	if err = s.repository.Create(ctx, todo); err != nil {
		scope.TraceError(err)

		return dto.TodoResponse{}, err
	}

	return dto.NewTodoResponse(todo), nil
}

// Update implements Todo. Only the fields supplied in the request are
// written; the rest keep their stored values.
func (s *serviceImpl) Update(ctx context.Context, id int, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.todo.Update", constant.OtelServiceScopeName))
	defer scope.End()

	todo, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, sharedRepository.ErrNotFound) {
		return dto.TodoResponse{}, failure.NotFound(MessageTaskNotFound)
	}

	if err != nil {
		scope.TraceError(err)

		return dto.TodoResponse{}, err
	}

	fields := shared.TransformFields(req)
	if len(fields) > 0 {
		if err = s.repository.Update(ctx, id, fields); err != nil {
			scope.TraceError(err)

			return dto.TodoResponse{}, err
		}
	}

	if req.Task != "" {
		todo.Task = req.Task
	}

	if req.Summary != "" {
		todo.Summary = req.Summary
	}

	return dto.NewTodoResponse(todo), nil
}

// Delete implements Todo.
func (s *serviceImpl) Delete(ctx context.Context, id int) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.todo.Delete", constant.OtelServiceScopeName))
	defer scope.End()

	exist, err := s.repository.ExistByID(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	if !exist {
		return failure.NotFound(MessageTaskNotFound)
	}

	if err = s.repository.Delete(ctx, id); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

// ListAll implements Todo.
func (s *serviceImpl) ListAll(ctx context.Context) (dto.AllTodosResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.todo.ListAll", constant.OtelServiceScopeName))
	defer scope.End()

	todos, err := s.repository.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return dto.NewAllTodosResponse(todos), nil
}
