package dto

import (
	"hotelpos/internal/domains/order/model"
	"hotelpos/shared/constant"
	"hotelpos/shared/timezone"
)

type OrderLineRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Note     string `json:"note"     validate:"omitempty,max=200"`
}

func ToRequestedLines(lines []OrderLineRequest) []model.RequestedLine {
	requested := make([]model.RequestedLine, len(lines))
	for i, line := range lines {
		requested[i] = model.RequestedLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Note:     line.Note,
		}
	}

	return requested
}

// SaveOrderRequest replaces the open order of a table or room with the given
// cart state, creating the order when none is open yet.
type SaveOrderRequest struct {
	TableID         string             `json:"table_id" validate:"required_without=RoomID,excluded_with=RoomID"`
	RoomID          string             `json:"room_id"  validate:"required_without=TableID"`
	Lines           []OrderLineRequest `json:"lines"    validate:"required,min=1,dive"`
	DiscountPercent float64            `json:"discount_percent" validate:"gte=0,lte=100"`
}

type TakeoutOrderRequest struct {
	Lines           []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
	DiscountPercent float64            `json:"discount_percent" validate:"gte=0,lte=100"`
	CustomerName    string             `json:"customer_name" validate:"omitempty,max=100"`
}

type DeliveryOrderRequest struct {
	Lines           []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
	DiscountPercent float64            `json:"discount_percent" validate:"gte=0,lte=100"`
	CustomerName    string             `json:"customer_name"    validate:"required,max=100"`
	CustomerPhone   string             `json:"customer_phone"   validate:"required,max=20"`
	CustomerAddress string             `json:"customer_address" validate:"required,max=300"`
}

type OrderLineResponse struct {
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	PrintedQty int     `json:"printed_qty"`
	UnitPrice  float64 `json:"unit_price"`
	TaxRate    float64 `json:"tax_rate"`
	Note       string  `json:"note"`
	TotalPrice float64 `json:"total_price"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderType       string              `json:"order_type"`
	Status          string              `json:"status"`
	TableID         string              `json:"table_id,omitempty"`
	RoomID          string              `json:"room_id,omitempty"`
	CustomerName    string              `json:"customer_name,omitempty"`
	CustomerPhone   string              `json:"customer_phone,omitempty"`
	CustomerAddress string              `json:"customer_address,omitempty"`
	Lines           []OrderLineResponse `json:"lines"`
	Subtotal        float64             `json:"subtotal"`
	TaxAmount       float64             `json:"tax_amount"`
	DiscountPercent float64             `json:"discount_percent"`
	DiscountAmount  float64             `json:"discount_amount"`
	TotalAmount     float64             `json:"total_amount"`
	CreatedAt       string              `json:"created_at"`
}

func (r *OrderResponse) FromModel(order model.Order, items []model.OrderItem) {
	r.ID = order.ID
	r.OrderType = order.OrderType
	r.Status = order.Status

	if order.TableID != nil {
		r.TableID = *order.TableID
	}

	if order.RoomID != nil {
		r.RoomID = *order.RoomID
	}

	r.CustomerName = order.CustomerName
	r.CustomerPhone = order.CustomerPhone
	r.CustomerAddress = order.CustomerAddress
	r.Subtotal = order.Subtotal
	r.TaxAmount = order.TaxAmount
	r.DiscountPercent = order.DiscountPercent
	r.DiscountAmount = order.DiscountAmount
	r.TotalAmount = order.TotalAmount
	r.CreatedAt = timezone.Format(order.CreatedAt, constant.DateFormat)

	r.Lines = make([]OrderLineResponse, len(items))
	for i, item := range items {
		r.Lines[i] = OrderLineResponse{
			ItemID:     item.ItemID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			PrintedQty: item.PrintedQty,
			UnitPrice:  item.UnitPrice,
			TaxRate:    item.TaxRate,
			Note:       item.Note,
			TotalPrice: item.TotalPrice,
		}
	}
}

type DocumentResponse struct {
	DocumentPath string `json:"document_path"`
	DocumentURL  string `json:"document_url,omitempty"`
}

type CheckoutTableResponse struct {
	OrderID     string  `json:"order_id,omitempty"`
	TotalAmount float64 `json:"total_amount"`
	DocumentResponse
}

type SalesRowResponse struct {
	ID           string  `json:"id"`
	OrderType    string  `json:"order_type"`
	CustomerName string  `json:"customer_name,omitempty"`
	TotalAmount  float64 `json:"total_amount"`
	CreatedAt    string  `json:"created_at"`
	ItemSummary  string  `json:"item_summary"`
}

type GetSalesHistoryResponse struct {
	Sales      []SalesRowResponse `json:"sales"`
	GrandTotal float64            `json:"grand_total"`
}

func (r *GetSalesHistoryResponse) FromModels(rows []model.SalesRow) {
	r.Sales = make([]SalesRowResponse, len(rows))

	for i, row := range rows {
		r.Sales[i] = SalesRowResponse{
			ID:           row.ID,
			OrderType:    row.OrderType,
			CustomerName: row.CustomerName,
			TotalAmount:  row.TotalAmount,
			CreatedAt:    timezone.Format(row.CreatedAt, constant.DateFormat),
			ItemSummary:  row.ItemSummary,
		}
	}

	for _, row := range rows {
		r.GrandTotal += row.TotalAmount
	}
}

type ReportRowResponse struct {
	OrderType   string  `json:"order_type"`
	OrderCount  int     `json:"order_count"`
	TotalAmount float64 `json:"total_amount"`
}

type GetDailyReportResponse struct {
	Date       string              `json:"date"`
	Rows       []ReportRowResponse `json:"rows"`
	FoodTotal  float64             `json:"food_total"`
	RoomTotal  float64             `json:"room_total"`
	GrandTotal float64             `json:"grand_total"`
}

func (r *GetDailyReportResponse) FromModels(date string, rows []model.ReportRow, roomRevenue float64) {
	r.Date = date
	r.Rows = make([]ReportRowResponse, len(rows))

	for i, row := range rows {
		r.Rows[i] = ReportRowResponse{
			OrderType:   row.OrderType,
			OrderCount:  row.OrderCount,
			TotalAmount: row.TotalAmount,
		}
		r.FoodTotal += row.TotalAmount
	}

	r.RoomTotal = roomRevenue
	r.GrandTotal = r.FoodTotal + r.RoomTotal
}
