package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"gymhub/infras/otel"
	"gymhub/infras/postgres"
	"gymhub/internal/domains/activity/model"
	gDto "gymhub/shared/dto"
	gRepo "gymhub/shared/repository"
)

type Activity interface {
	Insert(ctx context.Context, model model.Activity) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Activity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Activity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup, modifiedBy string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Activity]
}

func New(db *postgres.Connection, otel otel.Otel) Activity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Activity](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
