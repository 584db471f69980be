package model

import (
	"time"

	"hotelpos/shared/model"
)

const (
	RoomTableName  = "rooms"
	RoomEntityName = "room"

	RoomFieldID          = "id"
	RoomFieldRoomNumber  = "room_number"
	RoomFieldRoomType    = "room_type"
	RoomFieldNightlyRate = "nightly_rate"
	RoomFieldStatus      = "status"
)

const (
	BookingTableName  = "room_bookings"
	BookingEntityName = "room_booking"

	BookingFieldID           = "id"
	BookingFieldRoomID       = "room_id"
	BookingFieldGuestName    = "guest_name"
	BookingFieldGuestPhone   = "guest_phone"
	BookingFieldCheckInDate  = "check_in_date"
	BookingFieldCheckOutDate = "check_out_date"
	BookingFieldStatus       = "status"
)

type Room struct {
	ID          string  `db:"id"`
	RoomNumber  int     `db:"room_number"`
	RoomType    string  `db:"room_type"`
	NightlyRate float64 `db:"nightly_rate"`
	Status      string  `db:"status"`
	model.Metadata
}

type RoomBooking struct {
	ID           string     `db:"id"`
	RoomID       string     `db:"room_id"`
	GuestName    string     `db:"guest_name"`
	GuestPhone   string     `db:"guest_phone"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	Status       string     `db:"status"`
	model.Metadata
}

// Nights bills the stay: part days round up, and a same-day checkout still
// counts as one night.
func (b *RoomBooking) Nights(checkOut time.Time) int {
	hours := checkOut.Sub(b.CheckInDate).Hours()
	nights := int(hours / 24)

	if float64(nights*24) < hours {
		nights++
	}

	if nights < 1 {
		nights = 1
	}

	return nights
}
