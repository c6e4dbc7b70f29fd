package postgresql

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentScaleConversion(t *testing.T) {
	tests := []struct {
		fraction string
		whole    string
	}{
		{"0.35", "35"},
		{"0.75", "75"},
		{"1.10", "110"},
		{"0", "0"},
		{"1.50", "150"},
	}

	for _, tt := range tests {
		fraction := decimal.RequireFromString(tt.fraction)
		whole := decimal.RequireFromString(tt.whole)

		assert.True(t, pctToDB(fraction).Equal(whole), "toDB(%s)", tt.fraction)
		assert.True(t, pctFromDB(whole).Equal(fraction), "fromDB(%s)", tt.whole)
		assert.True(t, pctFromDB(pctToDB(fraction)).Equal(fraction), "round trip %s", tt.fraction)
	}
}
