package payments

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAmounts(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		wantTeacher float64
		wantFee     float64
	}{
		{"zero", 0, 0, 0},
		{"round hundred", 100, 90, 10},
		{"spec example", 49.99, 44.99, 5.00},
		{"sub-cent fee rounds away", 0.01, 0.01, 0},
		{"typical hourly rate", 45, 40.50, 4.50},
		{"fee rounds up", 10.05, 9.04, 1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teacher, fee := SplitAmounts(tt.amount)
			assert.InDelta(t, tt.wantTeacher, teacher, 1e-9)
			assert.InDelta(t, tt.wantFee, fee, 1e-9)
		})
	}
}

func TestSplitAmountsConserveTotal(t *testing.T) {
	for amount := 0.0; amount < 500; amount += 0.07 {
		teacher, fee := SplitAmounts(amount)

		assert.InDelta(t, math.Round(amount*PlatformFeeRate*100)/100, fee, 1e-9)
		// split parts must reassemble the rounded total
		assert.InDelta(t, math.Round(amount*100)/100, teacher+fee, 1e-9)
		assert.GreaterOrEqual(t, teacher, 0.0)
		assert.GreaterOrEqual(t, fee, 0.0)
	}
}
