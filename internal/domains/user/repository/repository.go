package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/user_mock.go -package=mocks

import (
	"context"

	"fitlog/infras/otel"
	"fitlog/infras/postgres"
	"fitlog/internal/domains/user/model"
	"fitlog/shared"
	"fitlog/shared/dto"
	"fitlog/shared/repository"
)

type User interface {
	Create(ctx context.Context, user model.User) error
	ExistByEmail(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id int) (model.User, error)
}

type repositoryImpl struct {
	repository.Repository[model.User]
}

func New(db *postgres.Connection, otl otel.Otel) User {
	return &repositoryImpl{
		Repository: repository.NewRepository[model.User](model.EntityName, model.TableName, model.PrimaryColumn, db, otl),
	}
}

// Create implements User.
func (repo *repositoryImpl) Create(ctx context.Context, user model.User) error {
	return repo.Insert(ctx, user)
}

// ExistByEmail implements User.
func (repo *repositoryImpl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	return repo.Exist(ctx, filterByEmail(email))
}

// GetByEmail implements User.
func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return repo.Get(ctx, filterByEmail(email))
}

// GetByID implements User.
func (repo *repositoryImpl) GetByID(ctx context.Context, id int) (model.User, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func filterByEmail(email string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    model.FieldEmail,
				Value:    email,
				Operator: dto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
