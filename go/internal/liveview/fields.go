package liveview

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMinutes renders played minutes as the whole-minute figure box
// scores use.
func FormatMinutes(minutes float64) string {
	return strconv.Itoa(int(math.Round(minutes)))
}

// FormatPlusMinus renders a plus/minus value with an explicit sign on
// positive numbers. Negative values already carry their sign; appending
// one would render "+-2".
func FormatPlusMinus(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return strconv.Itoa(v)
}

// FormatPct renders a shooting percentage with one decimal.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
