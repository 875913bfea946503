package services

import "github.com/shopspring/decimal"

// round2 rounds a money figure to 2 decimal places. Decimal arithmetic keeps
// figures like ceil(4.35)-4.35 at exactly 0.65 instead of 0.6500000000000004.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// roundUpAmount returns the round-up investment for a card transaction: the
// smallest non-negative value that brings amount to the next whole unit,
// rounded to 2 decimals. Whole-unit amounts round up by a full 1.0 so that
// every transaction invests something.
func roundUpAmount(amount float64) (roundUp, roundedTo float64) {
	d := decimal.NewFromFloat(amount)
	ceiling := d.Ceil()
	r := ceiling.Sub(d).Round(2)
	if r.IsZero() {
		r = decimal.NewFromInt(1)
	}
	roundUp, _ = r.Float64()
	roundedTo, _ = ceiling.Float64()
	return roundUp, roundedTo
}
