package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "$0.00"},
		{"sub-dollar", 50, "$0.50"},
		{"whole dollars", 10000, "$100.00"},
		{"dollars and cents", 4250, "$42.50"},
		{"hundreds", 66600, "$666.00"},
		{"grouping separators", 123456789, "$1,234,567.89"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCurrency(tc.cents))
		})
	}
}
