package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/domains/hall/model"
	"hotelpos/internal/domains/hall/model/dto"
	"hotelpos/internal/domains/hall/repository"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/timezone"
)

type Hall interface {
	GetAll(ctx context.Context) (dto.GetHallsResponse, error)
	Create(ctx context.Context, req dto.CreateHallRequest, user string) (dto.HallResponse, error)
	Delete(ctx context.Context, id string) error
	Book(ctx context.Context, req dto.BookHallRequest, user string) (dto.HallBookingResponse, error)
	GetBookings(ctx context.Context, from, to string) (dto.GetHallBookingsResponse, error)
	CancelBooking(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Hall
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Hall, cfg *config.Config, otel otel.Otel) Hall {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetHallsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHalls")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.HallTableName + "." + model.HallFieldName, SortDir: gDto.SortDirAsc}

	halls, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get halls")

		return res, fmt.Errorf("failed to get halls: %w", err)
	}

	res.FromModels(halls)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHallRequest, user string) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHall")
	defer scope.End()
	defer scope.TraceIfError(err)

	hall := req.ToModel(user)

	if err = s.repo.Insert(ctx, hall); err != nil {
		log.Error().Err(err).Msg("failed to create hall")

		return res, failure.ConflictOnDuplicate(err, "hall name already exists")
	}

	res.FromModel(hall)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHall")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.HallFieldID, model.HallTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hall")

		return fmt.Errorf("failed to check hall: %w", err)
	}

	if !exists {
		return failure.NotFound(model.HallEntityName)
	}

	booked, err := s.repo.ExistBooking(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.BookingFieldHallID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.BookingTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check hall bookings")

		return fmt.Errorf("failed to check hall bookings: %w", err)
	}

	if booked {
		return failure.Conflict("hall has bookings")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.HallFieldID, model.HallTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete hall")

		return fmt.Errorf("failed to delete hall: %w", err)
	}

	return nil
}

// Book reserves a hall for one event date. The total is the hall's day price
// plus the configured charge for each requested extra. A hall can hold one
// booking per date, enforced by the database.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookHallRequest, user string) (res dto.HallBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookHall")
	defer scope.End()
	defer scope.TraceIfError(err)

	hall, err := s.repo.Get(ctx, shared.FilterByID(req.HallID, model.HallFieldID, model.HallTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall")

		return res, fmt.Errorf("failed to get hall: %w", err)
	}

	if hall.ID == "" {
		return res, failure.NotFound(model.HallEntityName)
	}

	total := hall.PricePerDay

	if req.DJ {
		total += s.cfg.POS.HallServiceCharges.DJ
	}

	if req.Decoration {
		total += s.cfg.POS.HallServiceCharges.Decoration
	}

	booking := req.ToModel(total, user)

	if err = s.repo.InsertBooking(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to book hall")

		return res, failure.ConflictOnDuplicate(err, "hall is already booked for that date")
	}

	booking.HallName = hall.Name
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetBookings(ctx context.Context, from, to string) (res dto.GetHallBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHallBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{}

	if from != "" {
		fromT, err := timezone.Parse(constant.DateOnlyFormat, from)
		if err != nil {
			return res, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD")
		}

		filters = append(filters, gDto.Filter{
			Field:    model.BookingFieldEventDate,
			Value:    fromT,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.BookingTableName,
		})
	}

	if to != "" {
		toT, err := timezone.Parse(constant.DateOnlyFormat, to)
		if err != nil {
			return res, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD")
		}

		filters = append(filters, gDto.Filter{
			Field:    model.BookingFieldEventDate,
			Value:    toT,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.BookingTableName,
		})
	}

	params := gDto.QueryParams{SortBy: model.BookingTableName + "." + model.BookingFieldEventDate, SortDir: gDto.SortDirAsc}

	bookings, err := s.repo.GetBookings(ctx, params, gDto.FilterGroup{Filters: filters})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall bookings")

		return res, fmt.Errorf("failed to get hall bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) CancelBooking(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelHallBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetBooking(ctx, shared.FilterByID(id, model.BookingFieldID, model.BookingTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall booking")

		return fmt.Errorf("failed to get hall booking: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound(model.BookingEntityName)
	}

	if err = s.repo.DeleteBooking(ctx, shared.FilterByID(id, model.BookingFieldID, model.BookingTableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel hall booking")

		return fmt.Errorf("failed to cancel hall booking: %w", err)
	}

	return nil
}
