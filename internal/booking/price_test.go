package booking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeScenarioC(t *testing.T) {
	got := Summarize(Draft{Amount: 30000, Fireworks: true, FireworksAmount: 5000, AdvancePayment: 10000})
	assert.Equal(t, Summary{
		BaseAmount:      30000,
		FireworksAmount: 5000,
		TotalAmount:     35000,
		AdvancePayment:  10000,
		RemainingAmount: 25000,
	}, got)
}

func TestSummarizeScenarioDNegativeRemaining(t *testing.T) {
	got := Summarize(Draft{Amount: 20000, AdvancePayment: 25000, Fireworks: false, FireworksAmount: 7000})
	assert.Equal(t, int64(20000), got.TotalAmount)
	assert.Equal(t, int64(-5000), got.RemainingAmount)
	assert.Zero(t, got.FireworksAmount)
}

func TestSummarizeDerivation(t *testing.T) {
	amounts := []int64{0, 1, 999, 25000, 1500000}
	for _, base := range amounts {
		for _, fw := range amounts {
			for _, adv := range amounts {
				for _, on := range []bool{true, false} {
					s := Summarize(Draft{Amount: base, Fireworks: on, FireworksAmount: fw, AdvancePayment: adv})
					want := base
					if on {
						want += fw
					}
					assert.Equal(t, want, s.TotalAmount)
					assert.Equal(t, want-adv, s.RemainingAmount)
				}
			}
		}
	}
}

func TestSummarizeClampsOversizedAmounts(t *testing.T) {
	got := Summarize(Draft{Amount: math.MaxInt64, Fireworks: true, FireworksAmount: math.MaxInt64, AdvancePayment: math.MinInt64})
	assert.Equal(t, MaxAmount, got.BaseAmount)
	assert.Equal(t, 2*MaxAmount, got.TotalAmount)
	assert.Equal(t, -MaxAmount, got.AdvancePayment)
	assert.Equal(t, 3*MaxAmount, got.RemainingAmount)

	got = Summarize(Draft{Amount: MaxAmount, Fireworks: true, FireworksAmount: MaxAmount, AdvancePayment: 1})
	assert.Equal(t, 2*MaxAmount, got.TotalAmount)
	assert.Equal(t, 2*MaxAmount-1, got.RemainingAmount)
}
