// Package money holds the amount formats the payment provider expects and the
// platform fee schedule.
package money

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Format2DP rounds half-up to two places and renders a fixed-point string,
// e.g. "1000.00". Charge amounts are sent this way.
func Format2DP(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// Number quantizes to two places with banker's rounding and returns an
// int64 when the result is whole, else a float64. Payout and bank-transfer
// amounts are sent as JSON numbers in this shape.
func Number(d decimal.Decimal) interface{} {
	q := d.RoundBank(2)
	if q.Equal(q.Truncate(0)) {
		return q.IntPart()
	}
	f, _ := q.Float64()
	return f
}

// Parse reads a provider amount that may arrive as a JSON string or number.
// It reports false for anything that is not a finite decimal.
func Parse(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case decimal.Decimal:
		return t, true
	}
	return decimal.Zero, false
}

// FeeSchedule is the process-wide platform fee: a flat amount plus a
// percentage of the base total.
type FeeSchedule struct {
	Flat    decimal.Decimal
	Percent decimal.Decimal
}

// Fee returns the platform fee for base, rounded to two places
func (f FeeSchedule) Fee(base decimal.Decimal) decimal.Decimal {
	fee := f.Flat
	if f.Percent.IsPositive() {
		fee = fee.Add(base.Mul(f.Percent).Div(hundred))
	}
	return fee.Round(2)
}

// Charge returns what the payer is charged: base plus fee
func (f FeeSchedule) Charge(base decimal.Decimal) decimal.Decimal {
	return base.Add(f.Fee(base)).Round(2)
}

// Payout returns what the association receives. Fees are never paid out.
func (f FeeSchedule) Payout(base decimal.Decimal) decimal.Decimal {
	return base.Round(2)
}

// Sum adds amounts
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
