package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelpos/internal/domains/room/model"
)

func TestRoomBooking_Nights(t *testing.T) {
	checkIn := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     int
	}{
		{
			name:     "same day checkout still counts one night",
			checkOut: time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "exactly 24 hours is one night",
			checkOut: time.Date(2026, 2, 11, 14, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "part of a second day rounds up",
			checkOut: time.Date(2026, 2, 11, 15, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "three full days",
			checkOut: time.Date(2026, 2, 13, 14, 0, 0, 0, time.UTC),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &model.RoomBooking{CheckInDate: checkIn}

			assert.Equal(t, tt.want, booking.Nights(tt.checkOut))
		})
	}
}
