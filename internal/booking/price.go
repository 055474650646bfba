package booking

// Summary is the price breakdown shown on the payment step, the confirmation,
// the success view, the lookup tool and the booking slip.
type Summary struct {
	BaseAmount      int64 `json:"baseAmount"`
	FireworksAmount int64 `json:"fireworksAmount"`
	TotalAmount     int64 `json:"totalAmount"`
	AdvancePayment  int64 `json:"advancePayment"`
	RemainingAmount int64 `json:"remainingAmount"`
}

// MaxAmount caps every rupee field; the draft's lte tags carry the same value.
const MaxAmount int64 = 1_000_000_000_000

// Summarize derives the totals. Remaining may be negative when the advance exceeds the total.
// Inputs are clamped to MaxAmount in magnitude so records that skipped validation cannot overflow.
func Summarize(d Draft) Summary {
	base := clampAmount(d.Amount)
	advance := clampAmount(d.AdvancePayment)
	var fireworks int64
	if d.Fireworks {
		fireworks = clampAmount(d.FireworksAmount)
	}
	total := base + fireworks
	return Summary{
		BaseAmount:      base,
		FireworksAmount: fireworks,
		TotalAmount:     total,
		AdvancePayment:  advance,
		RemainingAmount: total - advance,
	}
}

func clampAmount(v int64) int64 {
	switch {
	case v > MaxAmount:
		return MaxAmount
	case v < -MaxAmount:
		return -MaxAmount
	}
	return v
}
