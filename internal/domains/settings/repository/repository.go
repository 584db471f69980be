package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/settings/model"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"
)

type Settings interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Setting, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Setting, error)
	Upsert(ctx context.Context, setting model.Setting) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Setting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Setting](model.EntityName, model.TableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts the setting or overwrites its value when the key exists.
func (repo *repositoryImpl) Upsert(ctx context.Context, setting model.Setting) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		INSERT INTO settings (key, value, created_at, modified_at, created_by, modified_by)
		VALUES (:key, :value, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.NamedExecContext(ctx, query, setting)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}
