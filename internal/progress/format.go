package progress

import (
	"fmt"
	"math"
	"time"
)

// FormatTime renders seconds as M:SS, flooring fractions. Negative and
// non-finite values render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Label renders "cur / total · -remaining". An unknown duration counts as zero.
func Label(position, duration time.Duration, known bool) string {
	cur := position.Seconds()
	total := 0.0
	if known {
		total = duration.Seconds()
	}
	return fmt.Sprintf("%s / %s · -%s", FormatTime(cur), FormatTime(total), FormatTime(total-cur))
}

// Percent returns position as a percentage of duration in [0, 100]. ok is false
// when the duration is not a positive finite value.
func Percent(position, duration time.Duration, known bool) (pct float64, ok bool) {
	if !known || duration <= 0 {
		return 0, false
	}
	pct = float64(position) / float64(duration) * 100
	return max(0, min(pct, 100)), true
}
