package analytics

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idr = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount the way the dashboard shows money:
// id-ID digit grouping, Rp prefix, no fractional digits. Rounds half
// away from zero; reimplementations must keep that exact rounding.
func FormatIDR(amount float64) string {
	rounded := int64(math.Round(amount))
	return idr.Sprintf("Rp %v", number.Decimal(rounded))
}
