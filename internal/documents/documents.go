package documents

//go:generate go run go.uber.org/mock/mockgen -source=./documents.go -destination=./mocks/documents_mock.go -package=mocks

import (
	"context"
	"time"

	orderModel "hotelpos/internal/domains/order/model"
	settingsModel "hotelpos/internal/domains/settings/model"
)

// DocumentRef points at a rendered document: the local path always, the
// object storage URL when archiving is enabled.
type DocumentRef struct {
	Path string
	URL  string
}

// KOTData is everything printed on a kitchen order ticket.
type KOTData struct {
	OrderID   string
	Reference string
	Lines     []orderModel.KOTLine
	PrintedAt time.Time
}

type BillLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// BillData is everything printed on a customer bill.
type BillData struct {
	Profile   settingsModel.HotelProfile
	OrderID   string
	Reference string
	OrderType string
	Lines     []BillLine
	Totals    orderModel.Totals
	CreatedAt time.Time
}

// RoomInvoiceData is everything printed on a room checkout invoice.
type RoomInvoiceData struct {
	Profile       settingsModel.HotelProfile
	InvoiceNumber string
	GuestName     string
	GuestPhone    string
	RoomNumber    int
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	NightlyRate   float64
	RoomCharge    float64
	ServiceLines  []orderModel.ServiceLine
	ServiceTotal  float64
	GSTPercent    float64
	CGST          float64
	SGST          float64
	GrandTotal    float64
}

// Generator renders printable documents. Rendering failures must abort the
// business operation that requested the document.
type Generator interface {
	KitchenTicket(ctx context.Context, data KOTData) (DocumentRef, error)
	Bill(ctx context.Context, data BillData) (DocumentRef, error)
	RoomInvoice(ctx context.Context, data RoomInvoiceData) (DocumentRef, error)
}
