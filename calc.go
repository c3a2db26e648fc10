package proposalgen

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults for the sales estimation parameters when a case study leaves them
// blank or unparseable.
const (
	DefaultAvgSpend       = 5500
	DefaultConversionRate = 0.01
	DefaultAvgGroupSize   = 2
)

var jaPrinter = message.NewPrinter(language.Japanese)

// EstimateSales derives the sales estimate for one case study. The group
// count is the only rounding step; visitors and sales follow exactly.
func EstimateSales(saves, conversionRate, avgGroupSize, avgSpend float64) (groups int, visitors, sales float64) {
	groups = int(math.Round(saves * conversionRate))
	visitors = float64(groups) * avgGroupSize
	sales = visitors * avgSpend
	return groups, visitors, sales
}

// FormatNumber formats a numeric-as-text value with ja-JP digit grouping.
// Unparseable input formats as "0".
func FormatNumber(value string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "0"
	}
	return groupNumber(v)
}

// FormatCurrency formats a JPY amount with ja-JP digit grouping.
func FormatCurrency(v float64) string {
	return "¥" + groupNumber(v)
}

// OtherRegionPercent returns the share not covered by the named regions,
// clamped at zero.
func OtherRegionPercent(regions []Region) float64 {
	var total float64
	for _, r := range regions {
		total += r.Percentage
	}
	return math.Max(0, 100-total)
}

func groupNumber(v float64) string {
	return jaPrinter.Sprintf("%v", number.Decimal(v))
}

// plainFloat renders a float the shortest way, e.g. 58.5 and 2, matching the
// raw form values echoed into the Markdown.
func plainFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// numberOr parses a numeric-as-text field, substituting def when the value is
// missing, unparseable, or zero.
func numberOr(value string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || v == 0 {
		return def
	}
	return v
}
