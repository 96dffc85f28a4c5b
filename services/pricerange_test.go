package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  PriceRange
	}{
		{"less than 1만원", "1만원 미만", PriceRange{Min: 0, Max: 9999, Valid: true}},
		{"or more", "2만원 이상", PriceRange{Min: 20000, Unbounded: true, Valid: true}},
		{"range with mixed units", "1~2만원", PriceRange{Min: 1000, Max: 19999, Valid: true}},
		{"bare number is a point", "8,000", PriceRange{Min: 8000000, Max: 8000000, Valid: true}},
		{"empty is unfiltered", "", PriceRange{Min: 0, Unbounded: true, Valid: true}},
		{"text without digits is unfiltered", "시가", PriceRange{Min: 0, Unbounded: true, Valid: true}},
		{"malformed digits fail closed", "만원 미만", PriceRange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePriceRange(tt.label))
		})
	}
}

func TestWithinContainment(t *testing.T) {
	filter := ParsePriceRange("10,000 미만")

	assert.True(t, ParsePriceRange("8,000").Within(filter))
	assert.False(t, ParsePriceRange("12,000").Within(filter))
}

func TestWithinUnboundedSides(t *testing.T) {
	all := PriceRange{Min: 0, Unbounded: true, Valid: true}
	capped := ParsePriceRange("1만원 미만")

	// an unbounded item never fits a capped filter
	assert.False(t, all.Within(capped))
	// everything fits an unbounded filter
	assert.True(t, capped.Within(all))
}

func TestWithinInvalidNeverMatches(t *testing.T) {
	invalid := PriceRange{}
	open := PriceRange{Min: 0, Unbounded: true, Valid: true}

	assert.False(t, invalid.Within(open))
	assert.False(t, open.Within(invalid))
}
