package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{
			name:   "zero",
			amount: 0,
			want:   "Zero Rupees Only",
		},
		{
			name:   "teens",
			amount: 14,
			want:   "Fourteen Rupees Only",
		},
		{
			name:   "round hundred",
			amount: 500,
			want:   "Five Hundred Rupees Only",
		},
		{
			name:   "hundreds with tens and ones",
			amount: 672,
			want:   "Six Hundred Seventy Two Rupees Only",
		},
		{
			name:   "thousands",
			amount: 2360,
			want:   "Two Thousand Three Hundred Sixty Rupees Only",
		},
		{
			name:   "lakhs with paise",
			amount: 125000.50,
			want:   "One Lakh Twenty Five Thousand Rupees and Fifty Paise Only",
		},
		{
			name:   "crores",
			amount: 10000000,
			want:   "One Crore Rupees Only",
		},
		{
			name:   "paise rounding carries into rupees",
			amount: 99.999,
			want:   "One Hundred Rupees Only",
		},
		{
			name:   "small paise",
			amount: 0.25,
			want:   "Zero Rupees and Twenty Five Paise Only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, amountInWords(tt.amount))
		})
	}
}
