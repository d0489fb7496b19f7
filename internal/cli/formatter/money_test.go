package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		places int32
		want   string
	}{
		{"zero", 0, AmountPlaces, "RM0.00"},
		{"simple", 12.5, AmountPlaces, "RM12.50"},
		{"rounds half up", 0.125, AmountPlaces, "RM0.13"},
		{"per second rate", 2600.0 / 748800.0, RatePlaces, "RM0.0035"},
		{"thousands", 1234567.891, AmountPlaces, "RM1,234,567.89"},
		{"exactly thousand", 1000, AmountPlaces, "RM1,000.00"},
		{"negative", -42.1, AmountPlaces, "-RM42.10"},
		{"negative rounds to zero", -0.001, AmountPlaces, "RM0.00"},
		{"no places", 7.6, 0, "RM8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money("RM", tt.amount, tt.places))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1", groupThousands("1"))
	assert.Equal(t, "123", groupThousands("123"))
	assert.Equal(t, "1,234", groupThousands("1234"))
	assert.Equal(t, "123,456", groupThousands("123456"))
	assert.Equal(t, "12,345,678", groupThousands("12345678"))
}
