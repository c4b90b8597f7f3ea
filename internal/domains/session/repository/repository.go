package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"gymhub/infras/otel"
	"gymhub/infras/postgres"
	"gymhub/internal/domains/session/model"
	gDto "gymhub/shared/dto"
	gRepo "gymhub/shared/repository"
)

type Session interface {
	Insert(ctx context.Context, model model.Session) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Session, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Session, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup, modifiedBy string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Session]
}

func New(db *postgres.Connection, otel otel.Otel) Session {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Session](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
