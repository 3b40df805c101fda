// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/antgroup/meter/modules/strengthen"
)

const (
	barWidth = 10
	unknown  = "?"
)

// Total is an optional element count. The zero value is unknown.
type Total struct {
	N     int
	Valid bool
}

// KnownTotal returns a valid Total of n.
func KnownTotal(n int) Total {
	return Total{N: n, Valid: true}
}

func (t Total) String() string {
	if !t.Valid {
		return unknown
	}
	return strconv.Itoa(t.N)
}

// FormatMeter renders the status line for n completed iterations.
//
// A total smaller than n is treated as unknown, and so is a total of zero.
func FormatMeter(n int, total Total, elapsed time.Duration) string {
	if total.Valid && n > total.N {
		total = Total{}
	}
	elapsedStr := strengthen.FormatInterval(elapsed)
	rate := unknown
	if elapsed > 0 {
		rate = fmt.Sprintf("%5.2f", float64(n)/elapsed.Seconds())
	}
	if !total.Valid || total.N == 0 {
		return fmt.Sprintf("%d [elapsed: %s, %s iters/sec]", n, elapsedStr, rate)
	}
	frac := float64(n) / float64(total.N)
	filled := int(frac * barWidth)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)
	left := unknown
	if n > 0 {
		left = strengthen.FormatSeconds(elapsed.Seconds() / float64(n) * float64(total.N-n))
	}
	return fmt.Sprintf("|%s| %d/%d %3d%% [elapsed: %s left: %s, %s iters/sec]",
		bar, n, total.N, int(frac*100), elapsedStr, left, rate)
}
