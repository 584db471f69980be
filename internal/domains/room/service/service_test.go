package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelpos/config"
	"hotelpos/infras/otel/mocks"
	"hotelpos/internal/documents"
	documentMocks "hotelpos/internal/documents/mocks"
	orderMocks "hotelpos/internal/domains/order/mocks"
	orderModel "hotelpos/internal/domains/order/model"
	roomMocks "hotelpos/internal/domains/room/mocks"
	"hotelpos/internal/domains/room/model"
	"hotelpos/internal/domains/room/model/dto"
	"hotelpos/internal/domains/room/service"
	settingsModel "hotelpos/internal/domains/settings/model"
	settingsServiceMocks "hotelpos/internal/domains/settings/service/mocks"
	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
	"hotelpos/shared/timezone"
)

type roomServiceMocks struct {
	repo      *roomMocks.MockRoom
	orderRepo *orderMocks.MockOrder
	settings  *settingsServiceMocks.MockSettings
	docs      *documentMocks.MockGenerator
}

func newRoomService(ctrl *gomock.Controller) (service.Room, roomServiceMocks) {
	m := roomServiceMocks{
		repo:      roomMocks.NewMockRoom(ctrl),
		orderRepo: orderMocks.NewMockOrder(ctrl),
		settings:  settingsServiceMocks.NewMockSettings(ctrl),
		docs:      documentMocks.NewMockGenerator(ctrl),
	}

	cfg := &config.Config{}
	cfg.POS.GSTSplitPercent = 9

	svc := service.New(m.repo, m.orderRepo, m.settings, m.docs, cfg, mocks.NewOtel())

	return svc, m
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room model.Room) error {
			assert.Equal(t, 101, room.RoomNumber)
			assert.Equal(t, constant.SlotStatusAvailable, room.Status)
			assert.NotEmpty(t, room.ID)

			return nil
		})

	res, err := svc.Create(context.Background(), dto.CreateRoomRequest{
		RoomNumber:  101,
		RoomType:    "Deluxe",
		NightlyRate: 2500,
	}, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 101, res.RoomNumber)
}

func TestRoomService_DeleteOccupiedRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", Status: constant.SlotStatusOccupied}, nil)

	err := svc.Delete(context.Background(), "room-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestRoomService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", RoomNumber: 101, Status: constant.SlotStatusAvailable}, nil)

	m.repo.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.RoomBooking) error {
			assert.Equal(t, "room-1", booking.RoomID)
			assert.Equal(t, "Ravi Kumar", booking.GuestName)
			assert.Equal(t, constant.BookingStatusActive, booking.Status)

			return nil
		})

	res, err := svc.CheckIn(context.Background(), "room-1", dto.CheckInRequest{
		GuestName:  "Ravi Kumar",
		GuestPhone: "9876543210",
	}, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", res.GuestName)
}

func TestRoomService_CheckInOccupiedRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", Status: constant.SlotStatusOccupied}, nil)

	_, err := svc.CheckIn(context.Background(), "room-1", dto.CheckInRequest{GuestName: "Ravi"}, "user-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestRoomService_Folio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	checkIn := timezone.Now().Add(-30 * time.Hour)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", RoomNumber: 101, NightlyRate: 2000, Status: constant.SlotStatusOccupied}, nil)

	m.repo.EXPECT().
		GetBooking(gomock.Any(), gomock.Any()).
		Return(model.RoomBooking{
			ID:          "booking-1",
			RoomID:      "room-1",
			GuestName:   "Ravi Kumar",
			CheckInDate: checkIn,
			Status:      constant.BookingStatusActive,
		}, nil)

	m.orderRepo.EXPECT().
		ServiceLines(gomock.Any(), "room-1", checkIn).
		Return([]orderModel.ServiceLine{
			{ItemName: "Masala Chai", Quantity: 2, TotalPrice: 80},
			{ItemName: "Samosa Plate", Quantity: 1, TotalPrice: 80},
		}, nil)

	res, err := svc.Folio(context.Background(), "room-1")

	assert.NoError(t, err)
	// 30 hours is two nights.
	assert.Equal(t, 2, res.Nights)
	assert.InDelta(t, 4000.0, res.RoomCharge, 0.001)
	assert.InDelta(t, 160.0, res.ServiceTotal, 0.001)
	assert.InDelta(t, 374.4, res.CGST, 0.001)
	assert.InDelta(t, 374.4, res.SGST, 0.001)
	assert.InDelta(t, 4908.8, res.GrandTotal, 0.001)
	assert.Len(t, res.ServiceLines, 2)
}

func TestRoomService_FolioWithoutBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", Status: constant.SlotStatusAvailable}, nil)

	m.repo.EXPECT().
		GetBooking(gomock.Any(), gomock.Any()).
		Return(model.RoomBooking{}, nil)

	_, err := svc.Folio(context.Background(), "room-1")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestRoomService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	checkIn := timezone.Now().Add(-10 * time.Hour)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", RoomNumber: 101, NightlyRate: 2000, Status: constant.SlotStatusOccupied}, nil)

	m.repo.EXPECT().
		GetBooking(gomock.Any(), gomock.Any()).
		Return(model.RoomBooking{
			ID:          "booking-1",
			RoomID:      "room-1",
			GuestName:   "Ravi Kumar",
			CheckInDate: checkIn,
			Status:      constant.BookingStatusActive,
		}, nil)

	m.orderRepo.EXPECT().
		ServiceLines(gomock.Any(), "room-1", checkIn).
		Return(nil, nil)

	m.settings.EXPECT().
		GetHotelProfile(gomock.Any()).
		Return(settingsModel.HotelProfile{Name: "Hotel Sunrise"}, nil)

	m.docs.EXPECT().
		RoomInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data documents.RoomInvoiceData) (documents.DocumentRef, error) {
			assert.Equal(t, "Ravi Kumar", data.GuestName)
			assert.Equal(t, 1, data.Nights)
			assert.InDelta(t, 2360.0, data.GrandTotal, 0.001)

			return documents.DocumentRef{Path: "documents/invoices/invoice.pdf"}, nil
		})

	m.orderRepo.EXPECT().
		CloseOpenRoomOrdersTx(gomock.Any(), gomock.Nil(), "room-1").
		Return(nil)

	m.repo.EXPECT().
		CheckOut(gomock.Any(), "booking-1", "room-1", gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ time.Time, _ string, settle func(*sqlx.Tx) error) error {
			return settle(nil)
		})

	res, err := svc.CheckOut(context.Background(), "room-1", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", res.BookingID)
	assert.InDelta(t, 2360.0, res.GrandTotal, 0.001)
	assert.Equal(t, "documents/invoices/invoice.pdf", res.DocumentPath)
}

func TestRoomService_CheckOutOrderCloseFailureAbortsCheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	checkIn := timezone.Now().Add(-10 * time.Hour)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", RoomNumber: 101, NightlyRate: 2000, Status: constant.SlotStatusOccupied}, nil)

	m.repo.EXPECT().
		GetBooking(gomock.Any(), gomock.Any()).
		Return(model.RoomBooking{ID: "booking-1", RoomID: "room-1", CheckInDate: checkIn, Status: constant.BookingStatusActive}, nil)

	m.orderRepo.EXPECT().ServiceLines(gomock.Any(), "room-1", checkIn).Return(nil, nil)
	m.settings.EXPECT().GetHotelProfile(gomock.Any()).Return(settingsModel.HotelProfile{}, nil)

	m.docs.EXPECT().
		RoomInvoice(gomock.Any(), gomock.Any()).
		Return(documents.DocumentRef{Path: "documents/invoices/invoice.pdf"}, nil)

	m.orderRepo.EXPECT().
		CloseOpenRoomOrdersTx(gomock.Any(), gomock.Nil(), "room-1").
		Return(errors.New("connection reset"))

	// The order close runs inside the check-out transaction, so its failure
	// surfaces as the transaction's failure and nothing is committed.
	m.repo.EXPECT().
		CheckOut(gomock.Any(), "booking-1", "room-1", gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ time.Time, _ string, settle func(*sqlx.Tx) error) error {
			return settle(nil)
		})

	_, err := svc.CheckOut(context.Background(), "room-1", "user-1")

	assert.Error(t, err)
}

func TestRoomService_CheckOutInvoiceFailureLeavesStayOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	checkIn := timezone.Now().Add(-10 * time.Hour)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "room-1", RoomNumber: 101, NightlyRate: 2000, Status: constant.SlotStatusOccupied}, nil)

	m.repo.EXPECT().
		GetBooking(gomock.Any(), gomock.Any()).
		Return(model.RoomBooking{ID: "booking-1", RoomID: "room-1", CheckInDate: checkIn, Status: constant.BookingStatusActive}, nil)

	m.orderRepo.EXPECT().ServiceLines(gomock.Any(), "room-1", checkIn).Return(nil, nil)
	m.settings.EXPECT().GetHotelProfile(gomock.Any()).Return(settingsModel.HotelProfile{}, nil)

	m.docs.EXPECT().
		RoomInvoice(gomock.Any(), gomock.Any()).
		Return(documents.DocumentRef{}, errors.New("disk full"))

	// Neither the orders nor the booking move when the invoice failed.
	_, err := svc.CheckOut(context.Background(), "room-1", "user-1")

	assert.Error(t, err)
}
