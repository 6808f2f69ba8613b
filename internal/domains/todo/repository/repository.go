package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/todo_mock.go -package=mocks

import (
	"context"

	"fitlog/infras/otel"
	"fitlog/infras/postgres"
	"fitlog/internal/domains/todo/model"
	"fitlog/shared"
	"fitlog/shared/dto"
	"fitlog/shared/repository"
)

type Todo interface {
	Create(ctx context.Context, todo model.Todo) error
	ExistByID(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (model.Todo, error)
	GetAll(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, id int, fields map[string]any) error
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	repository.Repository[model.Todo]
}

func New(db *postgres.Connection, otl otel.Otel) Todo {
	return &repositoryImpl{
		Repository: repository.NewRepository[model.Todo](model.EntityName, model.TableName, model.PrimaryColumn, db, otl),
	}
}

// Create implements Todo.
func (repo *repositoryImpl) Create(ctx context.Context, todo model.Todo) error {
	return repo.Insert(ctx, todo)
}

// ExistByID implements Todo.
func (repo *repositoryImpl) ExistByID(ctx context.Context, id int) (bool, error) {
	return repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

// GetByID implements Todo.
func (repo *repositoryImpl) GetByID(ctx context.Context, id int) (model.Todo, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

// GetAll implements Todo.
func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Todo, error) {
	params := dto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: dto.SortDirAsc,
	}

	return repo.Repository.GetAll(ctx, params, dto.FilterGroup{})
}

// Update implements Todo.
func (repo *repositoryImpl) Update(ctx context.Context, id int, fields map[string]any) error {
	return repo.Repository.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
}

// Delete implements Todo.
func (repo *repositoryImpl) Delete(ctx context.Context, id int) error {
	return repo.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}
