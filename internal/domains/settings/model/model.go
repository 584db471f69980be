package model

import (
	"hotelpos/shared/model"
)

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey   = "key"
	FieldValue = "value"
)

// Well-known setting keys.
const (
	KeyHotelName    = "hotel_name"
	KeyHotelAddress = "hotel_address"
	KeyHotelGST     = "hotel_gst"
	KeyHotelPhone   = "hotel_phone"
)

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}

// HotelProfile is the subset of settings stamped onto printed documents.
type HotelProfile struct {
	Name    string
	Address string
	GSTIN   string
	Phone   string
}

func ProfileFromSettings(settings []Setting) HotelProfile {
	profile := HotelProfile{}

	for _, setting := range settings {
		switch setting.Key {
		case KeyHotelName:
			profile.Name = setting.Value
		case KeyHotelAddress:
			profile.Address = setting.Value
		case KeyHotelGST:
			profile.GSTIN = setting.Value
		case KeyHotelPhone:
			profile.Phone = setting.Value
		}
	}

	return profile
}
