package adaptive

import (
	"fmt"
	"math"
)

// FormatRatio renders an aspect ratio with two decimals. A window without
// height has an infinite ratio and renders as "inf".
func FormatRatio(r float64) string {
	if math.IsInf(r, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", r)
}

// YesNo renders a flag for the detail panel, the CLI and the exports.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
