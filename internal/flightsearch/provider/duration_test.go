package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT2H30M", "2h 30m"},
		{"PT45M", "45m"},
		{"PT5H", "5h"},
		{"PT12H05M", "12h 05m"},
		{"ABC", "ABC"},
		{"", ""},
		{"PT", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 150, DurationMinutes("PT2H30M"))
	assert.Equal(t, 45, DurationMinutes("PT45M"))
	assert.Equal(t, 300, DurationMinutes("PT5H"))
	assert.Equal(t, 0, DurationMinutes("ABC"))
}
