package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/hall/model"
	gDto "hotelpos/shared/dto"
	gRepo "hotelpos/shared/repository"
)

type Hall interface {
	Insert(ctx context.Context, model model.Hall) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hall, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hall, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertBooking(ctx context.Context, booking model.HallBooking) error
	GetBooking(ctx context.Context, filter gDto.FilterGroup) (model.HallBooking, error)
	GetBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.HallBooking, error)
	ExistBooking(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	DeleteBooking(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hall]
	bookings gRepo.Repository[model.HallBooking]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hall {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hall](model.HallEntityName, model.HallTableName, model.HallFieldID, db, otel),
		bookings:   gRepo.NewRepository[model.HallBooking](model.BookingEntityName, model.BookingTableName, model.BookingFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertBooking(ctx context.Context, booking model.HallBooking) error {
	return repo.bookings.Insert(ctx, booking) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBooking(ctx context.Context, filter gDto.FilterGroup) (model.HallBooking, error) {
	return repo.bookings.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.HallBooking, error) {
	return repo.bookings.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistBooking(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.bookings.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteBooking(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.bookings.Delete(ctx, filter) //nolint:wrapcheck
}
