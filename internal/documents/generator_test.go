package documents

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{
			name: "shorter than limit",
			in:   "Masala Chai",
			max:  16,
			want: "Masala Chai",
		},
		{
			name: "exactly at limit",
			in:   "Paneer Tikka 123",
			max:  16,
			want: "Paneer Tikka 123",
		},
		{
			name: "ascii over limit",
			in:   "Hyderabadi Chicken Biryani",
			max:  16,
			want: "Hyderabadi Chick",
		},
		{
			name: "multi-byte name cut on a character boundary",
			in:   "पनीर बटर मसाला स्पेशल",
			max:  16,
			want: "पनीर बटर मसाला स",
		},
		{
			name: "empty",
			in:   "",
			max:  16,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateName(tt.in, tt.max)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
