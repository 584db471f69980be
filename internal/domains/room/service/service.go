package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/internal/documents"
	orderModel "hotelpos/internal/domains/order/model"
	orderRepository "hotelpos/internal/domains/order/repository"
	"hotelpos/internal/domains/room/model"
	"hotelpos/internal/domains/room/model/dto"
	"hotelpos/internal/domains/room/repository"
	settingsService "hotelpos/internal/domains/settings/service"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	"hotelpos/shared/timezone"
)

type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest, user string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	CheckIn(ctx context.Context, roomID string, req dto.CheckInRequest, user string) (dto.BookingResponse, error)
	Folio(ctx context.Context, roomID string) (dto.FolioResponse, error)
	CheckOut(ctx context.Context, roomID, user string) (dto.CheckOutResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	orderRepo orderRepository.Order
	settings  settingsService.Settings
	docs      documents.Generator
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Room,
	orderRepo orderRepository.Order,
	settings settingsService.Settings,
	docs documents.Generator,
	cfg *config.Config,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		repo:      repo,
		orderRepo: orderRepo,
		settings:  settings,
		docs:      docs,
		cfg:       cfg,
		otel:      otel,
	}
}

func activeBookingFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.BookingFieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.BookingTableName,
			},
			gDto.Filter{
				Field:    model.BookingFieldStatus,
				Value:    constant.BookingStatusActive,
				Operator: gDto.FilterOperatorEq,
				Table:    model.BookingTableName,
			},
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.RoomTableName + "." + model.RoomFieldRoomNumber, SortDir: gDto.SortDirAsc}

	rooms, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest, user string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	room := req.ToModel(user)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, failure.ConflictOnDuplicate(err, "room number already exists")
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	if room.Status == constant.SlotStatusOccupied {
		return failure.Conflict("room has an active booking")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.RoomFieldID, model.RoomTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.RoomFieldID, model.RoomTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return room, failure.NotFound(model.RoomEntityName)
	}

	return room, nil
}

func (s *serviceImpl) getActiveBooking(ctx context.Context, roomID string) (model.RoomBooking, error) {
	booking, err := s.repo.GetBooking(ctx, activeBookingFilter(roomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound(model.BookingEntityName)
	}

	return booking, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, roomID string, req dto.CheckInRequest, user string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	if room.Status == constant.SlotStatusOccupied {
		return res, failure.Conflict("room is already occupied")
	}

	booking := req.ToModel(roomID, user)

	if err = s.repo.CheckIn(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to check in")

		return res, fmt.Errorf("failed to check in: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// folio totals a stay up to the given moment: room nights plus every room
// service order placed since check-in, with GST split evenly between the
// central and state halves.
type folio struct {
	booking      model.RoomBooking
	room         model.Room
	nights       int
	roomCharge   float64
	serviceLines []orderModel.ServiceLine
	serviceTotal float64
	cgst         float64
	sgst         float64
	grandTotal   float64
}

func (s *serviceImpl) buildFolio(ctx context.Context, roomID string) (folio, error) {
	var f folio

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return f, err
	}

	booking, err := s.getActiveBooking(ctx, roomID)
	if err != nil {
		return f, err
	}

	now := timezone.Now()

	f.room = room
	f.booking = booking
	f.nights = booking.Nights(now)
	f.roomCharge = float64(f.nights) * room.NightlyRate

	f.serviceLines, err = s.orderRepo.ServiceLines(ctx, roomID, booking.CheckInDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room service lines")

		return f, fmt.Errorf("failed to get room service lines: %w", err)
	}

	for _, line := range f.serviceLines {
		f.serviceTotal += line.TotalPrice
	}

	taxable := f.roomCharge + f.serviceTotal
	f.cgst = taxable * s.cfg.POS.GSTSplitPercent / 100
	f.sgst = taxable * s.cfg.POS.GSTSplitPercent / 100
	f.grandTotal = taxable + f.cgst + f.sgst

	return f, nil
}

func (s *serviceImpl) Folio(ctx context.Context, roomID string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Folio")
	defer scope.End()
	defer scope.TraceIfError(err)

	f, err := s.buildFolio(ctx, roomID)
	if err != nil {
		return res, err
	}

	res.Booking.FromModel(f.booking)
	res.Nights = f.nights
	res.NightlyRate = f.room.NightlyRate
	res.RoomCharge = f.roomCharge
	res.ServiceTotal = f.serviceTotal
	res.CGST = f.cgst
	res.SGST = f.sgst
	res.GrandTotal = f.grandTotal

	res.ServiceLines = make([]dto.FolioLineResponse, len(f.serviceLines))
	for i, line := range f.serviceLines {
		res.ServiceLines[i] = dto.FolioLineResponse{
			ItemName:   line.ItemName,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
		}
	}

	return res, nil
}

// CheckOut settles the stay: the invoice renders first, and only then are the
// room service orders closed, the booking ended, and the room freed, all in
// one transaction. An invoice that fails to render leaves the stay untouched.
func (s *serviceImpl) CheckOut(ctx context.Context, roomID, user string) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	f, err := s.buildFolio(ctx, roomID)
	if err != nil {
		return res, err
	}

	profile, err := s.settings.GetHotelProfile(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to get hotel profile, billing without it")
	}

	now := timezone.Now()
	invoiceNumber := fmt.Sprintf("INV-%s-%d", now.Format("20060102150405"), f.room.RoomNumber)

	ref, err := s.docs.RoomInvoice(ctx, documents.RoomInvoiceData{
		Profile:       profile,
		InvoiceNumber: invoiceNumber,
		GuestName:     f.booking.GuestName,
		GuestPhone:    f.booking.GuestPhone,
		RoomNumber:    f.room.RoomNumber,
		CheckIn:       f.booking.CheckInDate,
		CheckOut:      now,
		Nights:        f.nights,
		NightlyRate:   f.room.NightlyRate,
		RoomCharge:    f.roomCharge,
		ServiceLines:  f.serviceLines,
		ServiceTotal:  f.serviceTotal,
		GSTPercent:    s.cfg.POS.GSTSplitPercent,
		CGST:          f.cgst,
		SGST:          f.sgst,
		GrandTotal:    f.grandTotal,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to render room invoice")

		return res, fmt.Errorf("failed to render room invoice: %w", err)
	}

	if err = s.repo.CheckOut(ctx, f.booking.ID, roomID, now, user, func(tx *sqlx.Tx) error {
		return s.orderRepo.CloseOpenRoomOrdersTx(ctx, tx, roomID)
	}); err != nil {
		log.Error().Err(err).Msg("failed to check out")

		return res, fmt.Errorf("failed to check out: %w", err)
	}

	res.BookingID = f.booking.ID
	res.GrandTotal = f.grandTotal
	res.DocumentPath = ref.Path
	res.DocumentURL = ref.URL

	return res, nil
}
