package dto

import (
	"github.com/google/uuid"

	"hotelpos/internal/domains/hall/model"
	"hotelpos/shared/constant"
	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

type CreateHallRequest struct {
	Name        string  `json:"name"          validate:"required,max=100"`
	Capacity    int     `json:"capacity"      validate:"required,gte=1"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
}

func (r *CreateHallRequest) ToModel(user string) model.Hall {
	now := timezone.Now()

	return model.Hall{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type HallResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	PricePerDay float64 `json:"price_per_day"`
}

func (r *HallResponse) FromModel(hall model.Hall) {
	r.ID = hall.ID
	r.Name = hall.Name
	r.Capacity = hall.Capacity
	r.PricePerDay = hall.PricePerDay
}

type GetHallsResponse struct {
	Halls []HallResponse `json:"halls"`
}

func (r *GetHallsResponse) FromModels(halls []model.Hall) {
	r.Halls = make([]HallResponse, len(halls))

	for i, hall := range halls {
		r.Halls[i].FromModel(hall)
	}
}

type BookHallRequest struct {
	HallID        string `json:"hall_id"        validate:"required"`
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=20"`
	EventDate     string `json:"event_date"     validate:"required,datetime=2006-01-02"`
	EventType     string `json:"event_type"     validate:"omitempty,max=50"`
	DJ            bool   `json:"dj"`
	Decoration    bool   `json:"decoration"`
}

func (r *BookHallRequest) ToModel(totalAmount float64, user string) model.HallBooking {
	now := timezone.Now()
	eventDate, _ := timezone.Parse(constant.DateOnlyFormat, r.EventDate)

	return model.HallBooking{
		ID:            uuid.NewString(),
		HallID:        r.HallID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		EventDate:     eventDate,
		EventType:     r.EventType,
		DJ:            r.DJ,
		Decoration:    r.Decoration,
		TotalAmount:   totalAmount,
		Status:        constant.BookingStatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type HallBookingResponse struct {
	ID            string  `json:"id"`
	HallID        string  `json:"hall_id"`
	HallName      string  `json:"hall_name,omitempty"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	EventDate     string  `json:"event_date"`
	EventType     string  `json:"event_type,omitempty"`
	DJ            bool    `json:"dj"`
	Decoration    bool    `json:"decoration"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
}

func (r *HallBookingResponse) FromModel(booking model.HallBooking) {
	r.ID = booking.ID
	r.HallID = booking.HallID
	r.HallName = booking.HallName
	r.CustomerName = booking.CustomerName
	r.CustomerPhone = booking.CustomerPhone
	r.EventDate = timezone.Format(booking.EventDate, constant.DateOnlyFormat)
	r.EventType = booking.EventType
	r.DJ = booking.DJ
	r.Decoration = booking.Decoration
	r.TotalAmount = booking.TotalAmount
	r.Status = booking.Status
}

type GetHallBookingsResponse struct {
	Bookings []HallBookingResponse `json:"bookings"`
}

func (r *GetHallBookingsResponse) FromModels(bookings []model.HallBooking) {
	r.Bookings = make([]HallBookingResponse, len(bookings))

	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}
