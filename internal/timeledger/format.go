package timeledger

import (
	"github.com/shopspring/decimal"
)

var msPerHour = decimal.NewFromInt(3_600_000)

// Hours converts integer milliseconds to hours rounded to two decimals.
// Internal totals stay in milliseconds; hours exist only for display, so
// rounding error never compounds across aggregation levels.
func Hours(ms int64) decimal.Decimal {
	return decimal.NewFromInt(ms).DivRound(msPerHour, 2)
}

// FormatHours renders milliseconds as a fixed two-decimal hour string.
func FormatHours(ms int64) string {
	return Hours(ms).StringFixed(2)
}
