package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotelpos/config"
	"hotelpos/infras/kafka"
	"hotelpos/infras/otel"
	"hotelpos/internal/documents"
	catalogModel "hotelpos/internal/domains/catalog/model"
	catalogRepository "hotelpos/internal/domains/catalog/repository"
	"hotelpos/internal/domains/order/model"
	"hotelpos/internal/domains/order/model/dto"
	"hotelpos/internal/domains/order/repository"
	roomModel "hotelpos/internal/domains/room/model"
	roomRepository "hotelpos/internal/domains/room/repository"
	settingsService "hotelpos/internal/domains/settings/service"
	tableModel "hotelpos/internal/domains/table/model"
	tableRepository "hotelpos/internal/domains/table/repository"
	"hotelpos/shared"
	"hotelpos/shared/constant"
	gDto "hotelpos/shared/dto"
	"hotelpos/shared/failure"
	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

type Order interface {
	SaveOrder(ctx context.Context, req dto.SaveOrderRequest, user string) (dto.OrderResponse, error)
	GetActiveOrder(ctx context.Context, tableID, roomID string) (dto.OrderResponse, error)
	SendKOT(ctx context.Context, tableID, roomID string) (dto.DocumentResponse, error)
	CheckoutTable(ctx context.Context, tableID, user string) (dto.CheckoutTableResponse, error)
	SaveTakeoutOrder(ctx context.Context, req dto.TakeoutOrderRequest, user string) (dto.CheckoutTableResponse, error)
	SaveDeliveryOrder(ctx context.Context, req dto.DeliveryOrderRequest, user string) (dto.CheckoutTableResponse, error)
	SalesHistory(ctx context.Context, from, to string) (dto.GetSalesHistoryResponse, error)
	DailyReport(ctx context.Context, date string) (dto.GetDailyReportResponse, error)
}

type serviceImpl struct {
	repo      repository.Order
	itemRepo  catalogRepository.Item
	tableRepo tableRepository.Table
	roomRepo  roomRepository.Room
	settings  settingsService.Settings
	docs      documents.Generator
	kafka     kafka.Client
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Order,
	itemRepo catalogRepository.Item,
	tableRepo tableRepository.Table,
	roomRepo roomRepository.Room,
	settings settingsService.Settings,
	docs documents.Generator,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Order {
	return &serviceImpl{
		repo:      repo,
		itemRepo:  itemRepo,
		tableRepo: tableRepo,
		roomRepo:  roomRepo,
		settings:  settings,
		docs:      docs,
		kafka:     kafkaClient,
		cfg:       cfg,
		otel:      otel,
	}
}

func openOrderFilter(tableID, roomID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.OrderFieldStatus,
			Value:    constant.OrderStatusOpen,
			Operator: gDto.FilterOperatorEq,
			Table:    model.OrderTableName,
		},
	}

	if tableID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.OrderFieldTableID,
			Value:    tableID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.OrderTableName,
		})
	} else {
		filters = append(filters, gDto.Filter{
			Field:    model.OrderFieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.OrderTableName,
		})
	}

	return gDto.FilterGroup{Filters: filters}
}

// snapshotLookup prices a cart line from the menu at the moment it enters the
// cart. Lines already in the cart never go through here, so later menu price
// changes leave open orders untouched.
func (s *serviceImpl) snapshotLookup(ctx context.Context, priceMode string) func(itemID string) (model.ItemSnapshot, error) {
	return func(itemID string) (model.ItemSnapshot, error) {
		item, err := s.itemRepo.Get(ctx, shared.FilterByID(itemID, catalogModel.ItemFieldID, catalogModel.ItemTableName))
		if err != nil {
			return model.ItemSnapshot{}, fmt.Errorf("failed to get menu item: %w", err)
		}

		if item.ID == "" {
			return model.ItemSnapshot{}, failure.NotFound("menu item")
		}

		return model.ItemSnapshot{
			Name:      item.Name,
			UnitPrice: item.PriceFor(priceMode),
			TaxRate:   item.EffectiveTaxRate(),
		}, nil
	}
}

func mapCartError(err error) error {
	if errors.Is(err, model.ErrLinePrinted) {
		return failure.Conflict(model.ErrLinePrinted.Error())
	}

	if errors.Is(err, model.ErrLineNotFound) {
		return failure.NotFound("order line")
	}

	return err
}

func (s *serviceImpl) getTable(ctx context.Context, tableID string) (tableModel.DiningTable, error) {
	table, err := s.tableRepo.Get(ctx, shared.FilterByID(tableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		return table, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == "" {
		return table, failure.NotFound("dining table")
	}

	return table, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.RoomFieldID, roomModel.RoomTableName))
	if err != nil {
		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return room, failure.NotFound("room")
	}

	return room, nil
}

// orderReference names an order the way it is shouted in a kitchen.
func (s *serviceImpl) orderReference(ctx context.Context, order model.Order) string {
	switch {
	case order.TableID != nil:
		table, err := s.getTable(ctx, *order.TableID)
		if err != nil {
			return "Table"
		}

		return fmt.Sprintf("Table %d", table.TableNumber)
	case order.RoomID != nil:
		room, err := s.getRoom(ctx, *order.RoomID)
		if err != nil {
			return "Room"
		}

		return fmt.Sprintf("Room %d", room.RoomNumber)
	case order.CustomerName != "":
		return order.OrderType + " - " + order.CustomerName
	default:
		return order.OrderType
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic, key string, value any) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: key, Value: value}); err != nil {
			log.Warn().Err(err).Str("topic", topic).Msg("failed to publish event")
		}
	}()
}

// SaveOrder replaces the open order of a table or room with the requested
// cart state, opening a new order when none exists. Existing lines keep the
// prices they were added at, and lines already sent to the kitchen cannot
// shrink or disappear.
func (s *serviceImpl) SaveOrder(ctx context.Context, req dto.SaveOrderRequest, user string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	orderType := constant.OrderTypeDineIn
	if req.RoomID != "" {
		orderType = constant.OrderTypeRoomService
	}

	if req.TableID != "" {
		if _, err = s.getTable(ctx, req.TableID); err != nil {
			return res, err
		}
	} else {
		if _, err = s.getRoom(ctx, req.RoomID); err != nil {
			return res, err
		}
	}

	order, err := s.repo.Get(ctx, openOrderFilter(req.TableID, req.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get open order")

		return res, fmt.Errorf("failed to get open order: %w", err)
	}

	isNew := order.ID == ""
	cart := model.Cart{}

	if !isNew {
		items, err := s.repo.GetItems(ctx, order.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get order items")

			return res, fmt.Errorf("failed to get order items: %w", err)
		}

		cart.FromOrderItems(items, order.DiscountPercent)
	}

	cart.DiscountPercent = req.DiscountPercent

	if err = cart.Reconcile(dto.ToRequestedLines(req.Lines), s.snapshotLookup(ctx, constant.PriceModeDineIn)); err != nil {
		return res, mapCartError(err)
	}

	totals := cart.Totals()
	now := timezone.Now()

	if isNew {
		order = model.Order{
			ID:        uuid.NewString(),
			OrderType: orderType,
			Status:    constant.OrderStatusOpen,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if req.TableID != "" {
			order.TableID = &req.TableID
		} else {
			order.RoomID = &req.RoomID
		}
	} else {
		order.ModifiedAt = now
		order.ModifiedBy = user
	}

	order.Subtotal = totals.Subtotal
	order.TaxAmount = totals.Tax
	order.DiscountPercent = cart.DiscountPercent
	order.DiscountAmount = totals.Discount
	order.TotalAmount = totals.Total

	items := cart.ToOrderItems(order.ID, user)

	if err = s.repo.SaveOrder(ctx, order, items, isNew); err != nil {
		log.Error().Err(err).Msg("failed to save order")

		return res, fmt.Errorf("failed to save order: %w", err)
	}

	res.FromModel(order, items)

	return res, nil
}

func (s *serviceImpl) GetActiveOrder(ctx context.Context, tableID, roomID string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActiveOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, openOrderFilter(tableID, roomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get open order")

		return res, fmt.Errorf("failed to get open order: %w", err)
	}

	if order.ID == "" {
		return res, failure.NotFound(model.OrderEntityName)
	}

	items, err := s.repo.GetItems(ctx, order.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModel(order, items)

	return res, nil
}

// SendKOT prints the lines not yet sent to the kitchen and stamps them as
// printed. The printed quantities only move once the ticket rendered.
func (s *serviceImpl) SendKOT(ctx context.Context, tableID, roomID string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendKOT")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, openOrderFilter(tableID, roomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get open order")

		return res, fmt.Errorf("failed to get open order: %w", err)
	}

	if order.ID == "" {
		return res, failure.NotFound(model.OrderEntityName)
	}

	items, err := s.repo.GetItems(ctx, order.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	cart := model.Cart{}
	cart.FromOrderItems(items, order.DiscountPercent)

	lines := cart.UnprintedLines()
	if len(lines) == 0 {
		return res, failure.BadRequestFromString("no new items to send to the kitchen")
	}

	ref, err := s.docs.KitchenTicket(ctx, documents.KOTData{
		OrderID:   order.ID,
		Reference: s.orderReference(ctx, order),
		Lines:     lines,
		PrintedAt: timezone.Now(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to render kitchen ticket")

		return res, fmt.Errorf("failed to render kitchen ticket: %w", err)
	}

	if err = s.repo.MarkItemsPrinted(ctx, order.ID); err != nil {
		log.Error().Err(err).Msg("failed to mark items printed")

		return res, fmt.Errorf("failed to mark items printed: %w", err)
	}

	s.publishEvent(ctx, constant.KafkaTopicKitchenTickets, order.ID, lines)

	res.DocumentPath = ref.Path
	res.DocumentURL = ref.URL

	return res, nil
}

// CheckoutTable renders the bill, closes the order, and frees the table. A
// bill that fails to render keeps the order open. Checking out a table with
// no open order just makes sure the table is available again.
func (s *serviceImpl) CheckoutTable(ctx context.Context, tableID, user string) (res dto.CheckoutTableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckoutTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.getTable(ctx, tableID)
	if err != nil {
		return res, err
	}

	order, err := s.repo.Get(ctx, openOrderFilter(tableID, ""))
	if err != nil {
		log.Error().Err(err).Msg("failed to get open order")

		return res, fmt.Errorf("failed to get open order: %w", err)
	}

	if order.ID == "" {
		freed := map[string]any{
			tableModel.FieldStatus:   constant.SlotStatusAvailable,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.tableRepo.Update(ctx, freed, shared.FilterByID(tableID, tableModel.FieldID, tableModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to free table")

			return res, fmt.Errorf("failed to free table: %w", err)
		}

		return res, nil
	}

	items, err := s.repo.GetItems(ctx, order.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	ref, err := s.renderBill(ctx, order, items, fmt.Sprintf("Table %d", table.TableNumber))
	if err != nil {
		return res, err
	}

	if err = s.repo.CloseOrder(ctx, order.ID, order.TableID); err != nil {
		log.Error().Err(err).Msg("failed to close order")

		return res, fmt.Errorf("failed to close order: %w", err)
	}

	s.publishEvent(ctx, constant.KafkaTopicOrdersClosed, order.ID, order)

	res.OrderID = order.ID
	res.TotalAmount = order.TotalAmount
	res.DocumentPath = ref.Path
	res.DocumentURL = ref.URL

	return res, nil
}

func (s *serviceImpl) renderBill(ctx context.Context, order model.Order, items []model.OrderItem, reference string) (documents.DocumentRef, error) {
	profile, err := s.settings.GetHotelProfile(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to get hotel profile, billing without it")
	}

	cart := model.Cart{}
	cart.FromOrderItems(items, order.DiscountPercent)

	lines := make([]documents.BillLine, len(items))
	for i, item := range items {
		lines[i] = documents.BillLine{
			Name:      item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.TotalPrice,
		}
	}

	ref, err := s.docs.Bill(ctx, documents.BillData{
		Profile:   profile,
		OrderID:   order.ID,
		Reference: reference,
		OrderType: order.OrderType,
		Lines:     lines,
		Totals:    cart.Totals(),
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to render bill")

		return ref, fmt.Errorf("failed to render bill: %w", err)
	}

	return ref, nil
}

func (s *serviceImpl) SaveTakeoutOrder(ctx context.Context, req dto.TakeoutOrderRequest, user string) (res dto.CheckoutTableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveTakeoutOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order := model.Order{
		OrderType:    constant.OrderTypeTakeout,
		CustomerName: req.CustomerName,
	}

	return s.saveCounterOrder(ctx, order, dto.ToRequestedLines(req.Lines), req.DiscountPercent, constant.PriceModeDineIn, user)
}

func (s *serviceImpl) SaveDeliveryOrder(ctx context.Context, req dto.DeliveryOrderRequest, user string) (res dto.CheckoutTableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveDeliveryOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order := model.Order{
		OrderType:       constant.OrderTypeDelivery,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
	}

	return s.saveCounterOrder(ctx, order, dto.ToRequestedLines(req.Lines), req.DiscountPercent, constant.PriceModeDelivery, user)
}

// saveCounterOrder settles a takeout or delivery order in one shot: the order
// is created already closed and the bill renders before anything persists.
func (s *serviceImpl) saveCounterOrder(ctx context.Context, order model.Order, requested []model.RequestedLine, discountPercent float64, priceMode, user string) (res dto.CheckoutTableResponse, err error) {
	cart := model.Cart{DiscountPercent: discountPercent}

	if err = cart.Reconcile(requested, s.snapshotLookup(ctx, priceMode)); err != nil {
		return res, mapCartError(err)
	}

	totals := cart.Totals()
	now := timezone.Now()

	order.ID = uuid.NewString()
	order.Status = constant.OrderStatusClosed
	order.Subtotal = totals.Subtotal
	order.TaxAmount = totals.Tax
	order.DiscountPercent = discountPercent
	order.DiscountAmount = totals.Discount
	order.TotalAmount = totals.Total
	order.Metadata = gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	items := cart.ToOrderItems(order.ID, user)

	reference := order.OrderType
	if order.CustomerName != "" {
		reference += " - " + order.CustomerName
	}

	ref, err := s.renderBill(ctx, order, items, reference)
	if err != nil {
		return res, err
	}

	if err = s.repo.SaveOrder(ctx, order, items, true); err != nil {
		log.Error().Err(err).Msg("failed to save order")

		return res, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishEvent(ctx, constant.KafkaTopicOrdersClosed, order.ID, order)

	res.OrderID = order.ID
	res.TotalAmount = order.TotalAmount
	res.DocumentPath = ref.Path
	res.DocumentURL = ref.URL

	return res, nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	fromT, err := timezone.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD")
	}

	toT, err := timezone.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD")
	}

	if toT.Before(fromT) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("to date is before from date")
	}

	// The upper bound is exclusive, so the to date itself is included.
	return fromT, toT.AddDate(0, 0, 1), nil
}

func (s *serviceImpl) SalesHistory(ctx context.Context, from, to string) (res dto.GetSalesHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SalesHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromT, toT, err := parseDateRange(from, to)
	if err != nil {
		return res, err
	}

	rows, err := s.repo.SalesHistory(ctx, fromT, toT)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sales history")

		return res, fmt.Errorf("failed to get sales history: %w", err)
	}

	res.FromModels(rows)

	return res, nil
}

func (s *serviceImpl) DailyReport(ctx context.Context, date string) (res dto.GetDailyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailyReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromT, toT, err := parseDateRange(date, date)
	if err != nil {
		return res, err
	}

	rows, err := s.repo.DailyReport(ctx, fromT, toT)
	if err != nil {
		log.Error().Err(err).Msg("failed to get daily report")

		return res, fmt.Errorf("failed to get daily report: %w", err)
	}

	roomRevenue, err := s.roomRepo.RevenueForDay(ctx, fromT, toT)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room revenue")

		return res, fmt.Errorf("failed to get room revenue: %w", err)
	}

	res.FromModels(date, rows, roomRevenue)

	return res, nil
}
