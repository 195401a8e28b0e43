package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCedula(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"standard ten digits", "1712345678", "17XXXXXXX8"},
		{"four characters", "1234", "12X4"},
		{"three characters pass through", "123", "123"},
		{"two characters pass through", "12", "12"},
		{"empty", "", ""},
		{"padded input is trimmed first", "  1712345678  ", "17XXXXXXX8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCedula(tt.input))
		})
	}
}

func TestMaskCedulaPreservesLength(t *testing.T) {
	for _, input := range []string{"1234", "0912345678", "123456789012345"} {
		assert.Len(t, MaskCedula(input), len(input))
	}
}
