package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/table/model"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"
)

type Table interface {
	Insert(ctx context.Context, model model.DiningTable) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DiningTable, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DiningTable, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetAllWithDue(ctx context.Context) ([]model.TableWithDue, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DiningTable]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Table {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DiningTable](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllWithDue lists every table with the summed total of its open orders.
func (repo *repositoryImpl) GetAllWithDue(ctx context.Context) (res []model.TableWithDue, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAllWithDue")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT dining_tables.id, dining_tables.table_number, dining_tables.status,
		       dining_tables.created_at, dining_tables.modified_at, dining_tables.created_by, dining_tables.modified_by,
		       COALESCE(SUM(orders.total_amount), 0) AS total_due
		FROM dining_tables
		LEFT JOIN orders ON orders.table_id = dining_tables.id AND orders.status = $1
		GROUP BY dining_tables.id
		ORDER BY dining_tables.table_number ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, constant.OrderStatusOpen)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get tables with due: %w", err)
	}

	return res, nil
}
