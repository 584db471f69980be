package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/table/model"
	"hotelpos/internal/domains/table/model/dto"
	"hotelpos/internal/domains/table/repository"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
)

type Table interface {
	GetAll(ctx context.Context) (dto.GetTablesResponse, error)
	Create(ctx context.Context, req dto.CreateTableRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Table
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Table, cfg *config.Config, otel otel.Otel) Table {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// GetAll lists tables with their current due. Deliberately uncached: the due
// amount changes on every order save.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllTables")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAllWithDue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create table")

		return failure.ConflictOnDuplicate(fmt.Errorf("failed to create table: %w", err), "table number already exists") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	table, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == constant.Empty {
		return failure.NotFound("table not found") //nolint:wrapcheck
	}

	if table.Status == constant.SlotStatusOccupied {
		return failure.Conflict("table has an open order") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete table")

		return fmt.Errorf("failed to delete table: %w", err)
	}

	return nil
}

// FilterByNumber builds a filter matching a table by its number.
func FilterByNumber(number int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTableNumber,
				Value:    number,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
