package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelpos/config"
	"hotelpos/infras/otel/mocks"
	"hotelpos/internal/documents"
	documentMocks "hotelpos/internal/documents/mocks"
	catalogMocks "hotelpos/internal/domains/catalog/mocks"
	catalogModel "hotelpos/internal/domains/catalog/model"
	orderMocks "hotelpos/internal/domains/order/mocks"
	"hotelpos/internal/domains/order/model"
	"hotelpos/internal/domains/order/model/dto"
	"hotelpos/internal/domains/order/service"
	roomMocks "hotelpos/internal/domains/room/mocks"
	roomModel "hotelpos/internal/domains/room/model"
	settingsModel "hotelpos/internal/domains/settings/model"
	settingsServiceMocks "hotelpos/internal/domains/settings/service/mocks"
	tableMocks "hotelpos/internal/domains/table/mocks"
	tableModel "hotelpos/internal/domains/table/model"
	"hotelpos/shared/constant"
	"hotelpos/shared/failure"
)

type orderServiceMocks struct {
	repo      *orderMocks.MockOrder
	itemRepo  *catalogMocks.MockItem
	tableRepo *tableMocks.MockTable
	roomRepo  *roomMocks.MockRoom
	settings  *settingsServiceMocks.MockSettings
	docs      *documentMocks.MockGenerator
}

func newOrderService(ctrl *gomock.Controller) (service.Order, orderServiceMocks) {
	m := orderServiceMocks{
		repo:      orderMocks.NewMockOrder(ctrl),
		itemRepo:  catalogMocks.NewMockItem(ctrl),
		tableRepo: tableMocks.NewMockTable(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		settings:  settingsServiceMocks.NewMockSettings(ctrl),
		docs:      documentMocks.NewMockGenerator(ctrl),
	}

	cfg := &config.Config{}

	svc := service.New(m.repo, m.itemRepo, m.tableRepo, m.roomRepo, m.settings, m.docs, nil, cfg, mocks.NewOtel())

	return svc, m
}

func strPtr(s string) *string {
	return &s
}

func TestOrderService_SaveOrderNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)
	ctx := context.Background()

	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{ID: "table-1", TableNumber: 4}, nil)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Order{}, nil)

	m.itemRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(catalogModel.Item{
			ID:      "item-1",
			Name:    "Butter Chicken",
			Price:   320,
			CategoryTax: 5,
		}, nil)

	m.repo.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, order model.Order, items []model.OrderItem, _ bool) error {
			assert.Equal(t, constant.OrderTypeDineIn, order.OrderType)
			assert.Equal(t, constant.OrderStatusOpen, order.Status)
			assert.Equal(t, "table-1", *order.TableID)
			assert.InDelta(t, 640.0, order.Subtotal, 0.001)
			assert.InDelta(t, 32.0, order.TaxAmount, 0.001)
			assert.Len(t, items, 1)
			assert.Equal(t, 2, items[0].Quantity)

			return nil
		})

	res, err := svc.SaveOrder(ctx, dto.SaveOrderRequest{
		TableID: "table-1",
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-1", Quantity: 2},
		},
	}, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "table-1", res.TableID)
	assert.InDelta(t, 672.0, res.TotalAmount, 0.001)
}

func TestOrderService_SaveOrderExistingKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)
	ctx := context.Background()

	existing := model.Order{
		ID:        "order-1",
		OrderType: constant.OrderTypeDineIn,
		Status:    constant.OrderStatusOpen,
		TableID:   strPtr("table-1"),
	}

	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{ID: "table-1", TableNumber: 4}, nil)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(existing, nil)

	m.repo.EXPECT().
		GetItems(gomock.Any(), "order-1").
		Return([]model.OrderItem{
			{ID: "line-1", OrderID: "order-1", ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 1, UnitPrice: 300, TaxRate: 5},
		}, nil)

	// No item lookup: the existing line keeps its snapshot.
	m.repo.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any(), gomock.Any(), false).
		DoAndReturn(func(_ context.Context, order model.Order, items []model.OrderItem, _ bool) error {
			assert.Equal(t, "order-1", order.ID)
			assert.Len(t, items, 1)
			assert.Equal(t, 3, items[0].Quantity)
			assert.Equal(t, 300.0, items[0].UnitPrice)

			return nil
		})

	_, err := svc.SaveOrder(ctx, dto.SaveOrderRequest{
		TableID: "table-1",
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-1", Quantity: 3},
		},
	}, "user-1")

	assert.NoError(t, err)
}

func TestOrderService_SaveOrderUnknownTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{}, nil)

	_, err := svc.SaveOrder(context.Background(), dto.SaveOrderRequest{
		TableID: "missing",
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-1", Quantity: 1},
		},
	}, "user-1")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestOrderService_GetActiveOrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Order{}, nil)

	_, err := svc.GetActiveOrder(context.Background(), "table-1", "")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestOrderService_SendKOT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)
	ctx := context.Background()

	order := model.Order{
		ID:        "order-1",
		OrderType: constant.OrderTypeDineIn,
		Status:    constant.OrderStatusOpen,
		TableID:   strPtr("table-1"),
	}

	items := []model.OrderItem{
		{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 2, PrintedQty: 1},
	}

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)
	m.repo.EXPECT().GetItems(gomock.Any(), "order-1").Return(items, nil)
	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{ID: "table-1", TableNumber: 4}, nil)

	m.docs.EXPECT().
		KitchenTicket(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data documents.KOTData) (documents.DocumentRef, error) {
			assert.Equal(t, "Table 4", data.Reference)
			assert.Len(t, data.Lines, 1)
			assert.Equal(t, 1, data.Lines[0].Quantity)

			return documents.DocumentRef{Path: "documents/kot/ticket.pdf"}, nil
		})

	m.repo.EXPECT().MarkItemsPrinted(gomock.Any(), "order-1").Return(nil)

	res, err := svc.SendKOT(ctx, "table-1", "")

	assert.NoError(t, err)
	assert.Equal(t, "documents/kot/ticket.pdf", res.DocumentPath)
}

func TestOrderService_SendKOTNothingToPrint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	order := model.Order{ID: "order-1", Status: constant.OrderStatusOpen, TableID: strPtr("table-1")}

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)
	m.repo.EXPECT().GetItems(gomock.Any(), "order-1").Return([]model.OrderItem{
		{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 2, PrintedQty: 2},
	}, nil)

	_, err := svc.SendKOT(context.Background(), "table-1", "")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestOrderService_SendKOTRenderFailureKeepsItemsUnprinted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	order := model.Order{ID: "order-1", OrderType: constant.OrderTypeDineIn, Status: constant.OrderStatusOpen, TableID: strPtr("table-1")}

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)
	m.repo.EXPECT().GetItems(gomock.Any(), "order-1").Return([]model.OrderItem{
		{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 1},
	}, nil)
	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{ID: "table-1", TableNumber: 4}, nil)

	m.docs.EXPECT().
		KitchenTicket(gomock.Any(), gomock.Any()).
		Return(documents.DocumentRef{}, errors.New("printer on fire"))

	// MarkItemsPrinted must not be called when the ticket failed to render.
	_, err := svc.SendKOT(context.Background(), "table-1", "")

	assert.Error(t, err)
}

func TestOrderService_CheckoutTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	order := model.Order{
		ID:          "order-1",
		OrderType:   constant.OrderTypeDineIn,
		Status:      constant.OrderStatusOpen,
		TableID:     strPtr("table-1"),
		TotalAmount: 672,
	}

	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{ID: "table-1", TableNumber: 4}, nil)
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)
	m.repo.EXPECT().GetItems(gomock.Any(), "order-1").Return([]model.OrderItem{
		{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 2, UnitPrice: 320, TaxRate: 5, TotalPrice: 640},
	}, nil)

	m.settings.EXPECT().
		GetHotelProfile(gomock.Any()).
		Return(settingsModel.HotelProfile{Name: "Hotel Sunrise"}, nil)

	m.docs.EXPECT().
		Bill(gomock.Any(), gomock.Any()).
		Return(documents.DocumentRef{Path: "documents/bills/bill.pdf"}, nil)

	m.repo.EXPECT().CloseOrder(gomock.Any(), "order-1", order.TableID).Return(nil)

	res, err := svc.CheckoutTable(context.Background(), "table-1", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "order-1", res.OrderID)
	assert.Equal(t, 672.0, res.TotalAmount)
	assert.Equal(t, "documents/bills/bill.pdf", res.DocumentPath)
}

func TestOrderService_CheckoutTableNoOrderFreesTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{ID: "table-1", TableNumber: 4, Status: constant.SlotStatusOccupied}, nil)
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

	m.tableRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, constant.SlotStatusAvailable, req[tableModel.FieldStatus])

			return nil
		})

	res, err := svc.CheckoutTable(context.Background(), "table-1", "user-1")

	assert.NoError(t, err)
	assert.Empty(t, res.OrderID)
}

func TestOrderService_CheckoutTableBillFailureKeepsOrderOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	order := model.Order{ID: "order-1", OrderType: constant.OrderTypeDineIn, Status: constant.OrderStatusOpen, TableID: strPtr("table-1")}

	m.tableRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(tableModel.DiningTable{ID: "table-1", TableNumber: 4}, nil)
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order, nil)
	m.repo.EXPECT().GetItems(gomock.Any(), "order-1").Return(nil, nil)
	m.settings.EXPECT().GetHotelProfile(gomock.Any()).Return(settingsModel.HotelProfile{}, nil)

	m.docs.EXPECT().
		Bill(gomock.Any(), gomock.Any()).
		Return(documents.DocumentRef{}, errors.New("disk full"))

	// CloseOrder must not be called when the bill failed to render.
	_, err := svc.CheckoutTable(context.Background(), "table-1", "user-1")

	assert.Error(t, err)
}

func TestOrderService_SaveTakeoutOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.itemRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(catalogModel.Item{ID: "item-1", Name: "Samosa Plate", Price: 80, CategoryTax: 5}, nil)

	m.settings.EXPECT().GetHotelProfile(gomock.Any()).Return(settingsModel.HotelProfile{}, nil)

	m.docs.EXPECT().
		Bill(gomock.Any(), gomock.Any()).
		Return(documents.DocumentRef{Path: "documents/bills/bill.pdf"}, nil)

	m.repo.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, order model.Order, items []model.OrderItem, _ bool) error {
			assert.Equal(t, constant.OrderTypeTakeout, order.OrderType)
			assert.Equal(t, constant.OrderStatusClosed, order.Status)
			assert.Nil(t, order.TableID)
			assert.Len(t, items, 1)

			return nil
		})

	res, err := svc.SaveTakeoutOrder(context.Background(), dto.TakeoutOrderRequest{
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-1", Quantity: 1},
		},
	}, "user-1")

	assert.NoError(t, err)
	assert.InDelta(t, 84.0, res.TotalAmount, 0.001)
}

func TestOrderService_SaveDeliveryOrderUsesDeliveryPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.itemRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(catalogModel.Item{ID: "item-1", Name: "Veg Biryani", Price: 240, DeliveryPrice: 260, CategoryTax: 5}, nil)

	m.settings.EXPECT().GetHotelProfile(gomock.Any()).Return(settingsModel.HotelProfile{}, nil)
	m.docs.EXPECT().Bill(gomock.Any(), gomock.Any()).Return(documents.DocumentRef{}, nil)

	m.repo.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, order model.Order, items []model.OrderItem, _ bool) error {
			assert.Equal(t, constant.OrderTypeDelivery, order.OrderType)
			assert.Equal(t, "Asha", order.CustomerName)
			assert.Equal(t, 260.0, items[0].UnitPrice)

			return nil
		})

	_, err := svc.SaveDeliveryOrder(context.Background(), dto.DeliveryOrderRequest{
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-1", Quantity: 1},
		},
		CustomerName:    "Asha",
		CustomerPhone:   "9876543210",
		CustomerAddress: "12 MG Road",
	}, "user-1")

	assert.NoError(t, err)
}

func TestOrderService_SalesHistoryBadRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newOrderService(ctrl)

	_, err := svc.SalesHistory(context.Background(), "2026-02-10", "2026-02-01")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestOrderService_DailyReportIncludesRoomRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.repo.EXPECT().
		DailyReport(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ReportRow{
			{OrderType: constant.OrderTypeDineIn, OrderCount: 3, TotalAmount: 1500},
			{OrderType: constant.OrderTypeTakeout, OrderCount: 1, TotalAmount: 250},
		}, nil)

	m.roomRepo.EXPECT().
		RevenueForDay(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(4000.0, nil)

	res, err := svc.DailyReport(context.Background(), "2026-08-01")

	assert.NoError(t, err)
	assert.Len(t, res.Rows, 2)
	assert.InDelta(t, 1750.0, res.FoodTotal, 0.001)
	assert.InDelta(t, 4000.0, res.RoomTotal, 0.001)
	assert.InDelta(t, 5750.0, res.GrandTotal, 0.001)
}

func TestOrderService_DailyReportRoomRevenueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.repo.EXPECT().
		DailyReport(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ReportRow{}, nil)

	m.roomRepo.EXPECT().
		RevenueForDay(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("connection reset"))

	_, err := svc.DailyReport(context.Background(), "2026-08-01")

	assert.Error(t, err)
}

func TestOrderService_RoomServiceOrderTargetsRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	m.roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "room-1", RoomNumber: 101, Status: constant.SlotStatusOccupied}, nil)

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

	m.itemRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(catalogModel.Item{ID: "item-1", Name: "Masala Chai", Price: 40, CategoryTax: 12}, nil)

	m.repo.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, order model.Order, _ []model.OrderItem, _ bool) error {
			assert.Equal(t, constant.OrderTypeRoomService, order.OrderType)
			assert.Equal(t, "room-1", *order.RoomID)
			assert.Nil(t, order.TableID)

			return nil
		})

	_, err := svc.SaveOrder(context.Background(), dto.SaveOrderRequest{
		RoomID: "room-1",
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-1", Quantity: 1},
		},
	}, "user-1")

	assert.NoError(t, err)
}
