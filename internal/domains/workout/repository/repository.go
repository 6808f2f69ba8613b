package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/workout_mock.go -package=mocks

import (
	"context"

	"fitlog/infras/otel"
	"fitlog/infras/postgres"
	"fitlog/internal/domains/workout/model"
	"fitlog/shared/dto"
	"fitlog/shared/repository"
)

type Workout interface {
	Create(ctx context.Context, workout model.Workout) error
	GetPage(ctx context.Context, userID, page, limit int) ([]model.Workout, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	GetOwned(ctx context.Context, id, userID int) (model.Workout, error)
	Update(ctx context.Context, id, userID int, fields map[string]any) error
	Delete(ctx context.Context, id, userID int) error
}

type repositoryImpl struct {
	repository.Repository[model.Workout]
}

func New(db *postgres.Connection, otl otel.Otel) Workout {
	return &repositoryImpl{
		Repository: repository.NewRepository[model.Workout](model.EntityName, model.TableName, model.PrimaryColumn, db, otl),
	}
}

// Create implements Workout.
func (repo *repositoryImpl) Create(ctx context.Context, workout model.Workout) error {
	return repo.Insert(ctx, workout)
}

// GetPage implements Workout. Rows come back oldest first so page
// boundaries stay stable as new workouts are appended.
func (repo *repositoryImpl) GetPage(ctx context.Context, userID, page, limit int) ([]model.Workout, error) {
	params := dto.QueryParams{
		Page:    page,
		Limit:   limit,
		SortBy:  model.FieldID,
		SortDir: dto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, filterByUser(userID))
}

// CountByUser implements Workout.
func (repo *repositoryImpl) CountByUser(ctx context.Context, userID int) (int, error) {
	return repo.Count(ctx, filterByUser(userID))
}

// GetOwned implements Workout. The user id is part of the lookup,
// so other users' rows are indistinguishable from missing ones.
func (repo *repositoryImpl) GetOwned(ctx context.Context, id, userID int) (model.Workout, error) {
	return repo.Get(ctx, filterOwned(id, userID))
}

// Update implements Workout.
func (repo *repositoryImpl) Update(ctx context.Context, id, userID int, fields map[string]any) error {
	return repo.Repository.Update(ctx, fields, filterOwned(id, userID))
}

// Delete implements Workout.
func (repo *repositoryImpl) Delete(ctx context.Context, id, userID int) error {
	return repo.Repository.Delete(ctx, filterOwned(id, userID))
}

func filterByUser(userID int) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: dto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func filterOwned(id, userID int) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    model.TableName,
			},
			dto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: dto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
