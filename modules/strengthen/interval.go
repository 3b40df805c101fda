package strengthen

import (
	"fmt"
	"math"
	"time"
)

// FormatInterval renders d as MM:SS, or H:MM:SS once it reaches an hour.
// Fractional seconds are truncated.
func FormatInterval(d time.Duration) string {
	return formatWholeSeconds(int64(d / time.Second))
}

// FormatSeconds is FormatInterval for a duration expressed in seconds. It
// does not go through time.Duration, so estimates far beyond ~292 years
// still format correctly.
func FormatSeconds(secs float64) string {
	switch {
	case !(secs > 0):
		return formatWholeSeconds(0)
	case secs >= math.MaxInt64:
		return formatWholeSeconds(math.MaxInt64)
	}
	return formatWholeSeconds(int64(secs))
}

func formatWholeSeconds(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	mins, s := secs/60, secs%60
	h, m := mins/60, mins%60
	if h != 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
