package model

import (
	"time"

	"hotelpos/shared/model"
)

const (
	OrderTableName  = "orders"
	OrderEntityName = "order"

	OrderFieldID              = "id"
	OrderFieldOrderType       = "order_type"
	OrderFieldStatus          = "status"
	OrderFieldTableID         = "table_id"
	OrderFieldRoomID          = "room_id"
	OrderFieldCustomerName    = "customer_name"
	OrderFieldCustomerPhone   = "customer_phone"
	OrderFieldCustomerAddress = "customer_address"
	OrderFieldSubtotal        = "subtotal"
	OrderFieldTaxAmount       = "tax_amount"
	OrderFieldDiscountPercent = "discount_percent"
	OrderFieldDiscountAmount  = "discount_amount"
	OrderFieldTotalAmount     = "total_amount"
	OrderFieldCreatedAt       = "created_at"
)

const (
	ItemTableName  = "order_items"
	ItemEntityName = "order_item"

	ItemFieldID         = "id"
	ItemFieldOrderID    = "order_id"
	ItemFieldItemID     = "item_id"
	ItemFieldItemName   = "item_name"
	ItemFieldQuantity   = "quantity"
	ItemFieldPrintedQty = "printed_qty"
	ItemFieldUnitPrice  = "unit_price"
	ItemFieldTaxRate    = "tax_rate"
	ItemFieldNote       = "note"
	ItemFieldTotalPrice = "total_price"
)

type Order struct {
	ID              string  `db:"id"`
	OrderType       string  `db:"order_type"`
	Status          string  `db:"status"`
	TableID         *string `db:"table_id"`
	RoomID          *string `db:"room_id"`
	CustomerName    string  `db:"customer_name"`
	CustomerPhone   string  `db:"customer_phone"`
	CustomerAddress string  `db:"customer_address"`
	Subtotal        float64 `db:"subtotal"`
	TaxAmount       float64 `db:"tax_amount"`
	DiscountPercent float64 `db:"discount_percent"`
	DiscountAmount  float64 `db:"discount_amount"`
	TotalAmount     float64 `db:"total_amount"`
	model.Metadata
}

type OrderItem struct {
	ID         string  `db:"id"`
	OrderID    string  `db:"order_id"`
	ItemID     string  `db:"item_id"`
	ItemName   string  `db:"item_name"`
	Quantity   int     `db:"quantity"`
	PrintedQty int     `db:"printed_qty"`
	UnitPrice  float64 `db:"unit_price"`
	TaxRate    float64 `db:"tax_rate"`
	Note       string  `db:"note"`
	TotalPrice float64 `db:"total_price"`
	model.Metadata
}

// SalesRow is one closed order in the sales history listing, with its lines
// collapsed into a summary string.
type SalesRow struct {
	ID           string    `db:"id"`
	OrderType    string    `db:"order_type"`
	CustomerName string    `db:"customer_name"`
	TotalAmount  float64   `db:"total_amount"`
	CreatedAt    time.Time `db:"created_at"`
	ItemSummary  string    `db:"item_summary"`
}

// ReportRow is a per-day aggregate of closed orders.
type ReportRow struct {
	OrderType   string  `db:"order_type"`
	OrderCount  int     `db:"order_count"`
	TotalAmount float64 `db:"total_amount"`
}

// ServiceLine is a room-service charge grouped by item name.
type ServiceLine struct {
	ItemName   string  `db:"item_name"`
	Quantity   int     `db:"quantity"`
	TotalPrice float64 `db:"total_price"`
}
