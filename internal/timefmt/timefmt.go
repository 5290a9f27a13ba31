// Package timefmt renders second offsets as human display strings for table
// and documentation output.
package timefmt

import (
	"fmt"
	"math"
	"strings"
)

// Clock formats seconds as H:MM:SS when at least an hour, M:SS otherwise.
// A non-zero fractional part is appended with trailing zeros stripped;
// whole-second values carry no suffix. Negative input renders as zero.
func Clock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	whole := math.Floor(seconds)
	millis := int(math.Round((seconds - whole) * 1000))
	if millis == 1000 {
		whole++
		millis = 0
	}

	total := int(whole)
	var base string
	if total >= 3600 {
		base = fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	} else {
		base = fmt.Sprintf("%d:%02d", total/60, total%60)
	}

	if millis > 0 {
		base += "." + strings.TrimRight(fmt.Sprintf("%03d", millis), "0")
	}
	return base
}
