package report

import (
	"math"

	"github.com/shopspring/decimal"
)

// formatFixed renders v rounded to places decimals. Non-finite values come
// from zero denominators in the summary and are shown as NaN, +Inf or -Inf.
func formatFixed(v float64, places int32) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func formatMoney(v float64) string {
	return formatFixed(v, 2)
}

func formatPercent(v float64) string {
	s := formatFixed(v, 2)
	if isFinite(v) {
		s += "%"
	}
	return s
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
