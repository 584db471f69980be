package service_test

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelpos/config"
	"hotelpos/infras/otel/mocks"
	hallMocks "hotelpos/internal/domains/hall/mocks"
	"hotelpos/internal/domains/hall/model"
	"hotelpos/internal/domains/hall/model/dto"
	"hotelpos/internal/domains/hall/service"
	"hotelpos/shared/failure"
)

func newHallService(ctrl *gomock.Controller) (service.Hall, *hallMocks.MockHall) {
	mockRepo := hallMocks.NewMockHall(ctrl)

	cfg := &config.Config{}
	cfg.POS.HallServiceCharges.DJ = 5000
	cfg.POS.HallServiceCharges.Decoration = 2000

	return service.New(mockRepo, cfg, mocks.NewOtel()), mockRepo
}

func TestHallService_CreateDuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newHallService(ctrl)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: "23505"})

	_, err := svc.Create(context.Background(), dto.CreateHallRequest{
		Name:        "Grand Ballroom",
		Capacity:    500,
		PricePerDay: 50000,
	}, "user-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestHallService_Book(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		dj         bool
		decoration bool
		wantTotal  float64
	}{
		{name: "base price only", wantTotal: 25000},
		{name: "with dj", dj: true, wantTotal: 30000},
		{name: "with decoration", decoration: true, wantTotal: 27000},
		{name: "with both extras", dj: true, decoration: true, wantTotal: 32000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newHallService(ctrl)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Hall{ID: "hall-1", Name: "Banquet Hall A", PricePerDay: 25000}, nil)

			mockRepo.EXPECT().
				InsertBooking(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, booking model.HallBooking) error {
					assert.Equal(t, tt.wantTotal, booking.TotalAmount)

					return nil
				})

			res, err := svc.Book(context.Background(), dto.BookHallRequest{
				HallID:       "hall-1",
				CustomerName: "Meena",
				EventDate:    "2026-09-12",
				EventType:    "Wedding",
				DJ:           tt.dj,
				Decoration:   tt.decoration,
			}, "user-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalAmount)
			assert.Equal(t, "Banquet Hall A", res.HallName)
		})
	}
}

func TestHallService_BookUnknownHall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newHallService(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Hall{}, nil)

	_, err := svc.Book(context.Background(), dto.BookHallRequest{
		HallID:       "missing",
		CustomerName: "Meena",
		EventDate:    "2026-09-12",
	}, "user-1")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestHallService_BookTakenDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newHallService(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Hall{ID: "hall-1", Name: "Banquet Hall A", PricePerDay: 25000}, nil)

	mockRepo.EXPECT().
		InsertBooking(gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: "23505"})

	_, err := svc.Book(context.Background(), dto.BookHallRequest{
		HallID:       "hall-1",
		CustomerName: "Meena",
		EventDate:    "2026-09-12",
	}, "user-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestHallService_DeleteBookedHall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newHallService(ctrl)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().ExistBooking(gomock.Any(), gomock.Any()).Return(true, nil)

	err := svc.Delete(context.Background(), "hall-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestHallService_GetBookingsBadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newHallService(ctrl)

	_, err := svc.GetBookings(context.Background(), "12-09-2026", "")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestHallService_CancelUnknownBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newHallService(ctrl)

	mockRepo.EXPECT().
		GetBooking(gomock.Any(), gomock.Any()).
		Return(model.HallBooking{}, nil)

	err := svc.CancelBooking(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
