package model

import (
	"time"

	"hotelpos/shared/model"
)

const (
	HallTableName  = "halls"
	HallEntityName = "hall"

	HallFieldID          = "id"
	HallFieldName        = "name"
	HallFieldCapacity    = "capacity"
	HallFieldPricePerDay = "price_per_day"
)

const (
	BookingTableName  = "hall_bookings"
	BookingEntityName = "hall_booking"

	BookingFieldID            = "id"
	BookingFieldHallID        = "hall_id"
	BookingFieldCustomerName  = "customer_name"
	BookingFieldCustomerPhone = "customer_phone"
	BookingFieldEventDate     = "event_date"
	BookingFieldEventType     = "event_type"
	BookingFieldDJ            = "dj"
	BookingFieldDecoration    = "decoration"
	BookingFieldTotalAmount   = "total_amount"
	BookingFieldStatus        = "status"
)

type Hall struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Capacity    int     `db:"capacity"`
	PricePerDay float64 `db:"price_per_day"`
	model.Metadata
}

// HallBooking reserves a banquet hall for a whole day. A hall holds at most
// one booking per event date.
type HallBooking struct {
	ID            string    `db:"id"`
	HallID        string    `db:"hall_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerPhone string    `db:"customer_phone"`
	EventDate     time.Time `db:"event_date"`
	EventType     string    `db:"event_type"`
	DJ            bool      `db:"dj"`
	Decoration    bool      `db:"decoration"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`

	// Filled through the bookings join, never written.
	HallName string `db:"hall_name" table:"halls" column:"name"`

	model.Metadata
}

func (b HallBooking) GetJoinQuery() string {
	return "LEFT JOIN halls ON halls.id = hall_bookings.hall_id"
}
