package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/internal/domains/room/model"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/logger"
	gRepo "hotelpos/shared/repository"
	"hotelpos/shared/timezone"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	GetBooking(ctx context.Context, filter gDto.FilterGroup) (model.RoomBooking, error)
	GetBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RoomBooking, error)
	CheckIn(ctx context.Context, booking model.RoomBooking) error
	CheckOut(ctx context.Context, bookingID, roomID string, checkOut time.Time, user string, settle func(*sqlx.Tx) error) error
	RevenueForDay(ctx context.Context, from, to time.Time) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	bookings gRepo.Repository[model.RoomBooking]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.RoomEntityName, model.RoomTableName, model.RoomFieldID, db, otel),
		bookings:   gRepo.NewRepository[model.RoomBooking](model.BookingEntityName, model.BookingTableName, model.BookingFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetBooking(ctx context.Context, filter gDto.FilterGroup) (model.RoomBooking, error) {
	return repo.bookings.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RoomBooking, error) {
	return repo.bookings.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// CheckIn opens the booking and occupies the room in one transaction.
func (repo *repositoryImpl) CheckIn(ctx context.Context, booking model.RoomBooking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.BookingEntityName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.Transact(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if err := repo.bookings.InsertTx(ctx, tx, booking); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE rooms SET status = $1, modified_at = $2 WHERE id = $3",
			constant.SlotStatusOccupied, timezone.Now(), booking.RoomID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to occupy room: %w", err)
		}

		return nil
	})
}

// CheckOut closes the booking and frees the room in one transaction. The
// settle closure runs first inside the same transaction, so the caller can
// fold extra writes (closing the room's orders) into the check-out atomically.
func (repo *repositoryImpl) CheckOut(ctx context.Context, bookingID, roomID string, checkOut time.Time, user string, settle func(*sqlx.Tx) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.BookingEntityName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.Transact(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if settle != nil {
			if err := settle(tx); err != nil {
				return err
			}
		}

		updated := map[string]any{
			model.BookingFieldStatus:       constant.BookingStatusCheckedOut,
			model.BookingFieldCheckOutDate: checkOut,
			constant.FieldModifiedAt:       timezone.Now(),
			constant.FieldModifiedBy:       user,
		}

		bookingFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.BookingFieldID,
					Value:    bookingID,
					Operator: gDto.FilterOperatorEq,
					Table:    model.BookingTableName,
				},
			},
		}

		if err := repo.bookings.UpdateTx(ctx, tx, updated, bookingFilter); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE rooms SET status = $1, modified_at = $2 WHERE id = $3",
			constant.SlotStatusAvailable, timezone.Now(), roomID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to free room: %w", err)
		}

		return nil
	})
}

// RevenueForDay sums the nightly rate of every room checked in during the
// window, for the daily revenue report.
func (repo *repositoryImpl) RevenueForDay(ctx context.Context, from, to time.Time) (res float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.BookingEntityName+".RevenueForDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT COALESCE(SUM(rooms.nightly_rate), 0)
		FROM room_bookings
		JOIN rooms ON rooms.id = room_bookings.room_id
		WHERE room_bookings.check_in_date >= $1 AND room_bookings.check_in_date < $2`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, from, to)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get room revenue: %w", err)
	}

	return res, nil
}
