package dto

import (
	"github.com/google/uuid"

	"hotelpos/internal/domains/room/model"
	"hotelpos/shared/constant"
	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  int     `json:"room_number"  validate:"required,gte=1"`
	RoomType    string  `json:"room_type"    validate:"required,max=50"`
	NightlyRate float64 `json:"nightly_rate" validate:"required,gt=0"`
}

func (r *CreateRoomRequest) ToModel(user string) model.Room {
	now := timezone.Now()

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  r.RoomNumber,
		RoomType:    r.RoomType,
		NightlyRate: r.NightlyRate,
		Status:      constant.SlotStatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomNumber  int     `json:"room_number"`
	RoomType    string  `json:"room_type"`
	NightlyRate float64 `json:"nightly_rate"`
	Status      string  `json:"status"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomNumber = room.RoomNumber
	r.RoomType = room.RoomType
	r.NightlyRate = room.NightlyRate
	r.Status = room.Status
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room) {
	r.Rooms = make([]RoomResponse, len(rooms))

	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}

type CheckInRequest struct {
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	GuestPhone string `json:"guest_phone" validate:"omitempty,max=20"`
}

func (r *CheckInRequest) ToModel(roomID, user string) model.RoomBooking {
	now := timezone.Now()

	return model.RoomBooking{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		GuestName:   r.GuestName,
		GuestPhone:  r.GuestPhone,
		CheckInDate: now,
		Status:      constant.BookingStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	GuestName    string `json:"guest_name"`
	GuestPhone   string `json:"guest_phone,omitempty"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	Status       string `json:"status"`
}

func (r *BookingResponse) FromModel(booking model.RoomBooking) {
	r.ID = booking.ID
	r.RoomID = booking.RoomID
	r.GuestName = booking.GuestName
	r.GuestPhone = booking.GuestPhone
	r.CheckInDate = timezone.Format(booking.CheckInDate, constant.DateFormat)
	r.Status = booking.Status

	if booking.CheckOutDate != nil {
		r.CheckOutDate = timezone.Format(*booking.CheckOutDate, constant.DateFormat)
	}
}

type FolioLineResponse struct {
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// FolioResponse is the running bill of an occupied room.
type FolioResponse struct {
	Booking      BookingResponse     `json:"booking"`
	Nights       int                 `json:"nights"`
	NightlyRate  float64             `json:"nightly_rate"`
	RoomCharge   float64             `json:"room_charge"`
	ServiceLines []FolioLineResponse `json:"service_lines"`
	ServiceTotal float64             `json:"service_total"`
	CGST         float64             `json:"cgst"`
	SGST         float64             `json:"sgst"`
	GrandTotal   float64             `json:"grand_total"`
}

type CheckOutResponse struct {
	BookingID    string  `json:"booking_id"`
	GrandTotal   float64 `json:"grand_total"`
	DocumentPath string  `json:"document_path"`
	DocumentURL  string  `json:"document_url,omitempty"`
}
