package trace

import (
	"fmt"
	"strings"
	"time"
)

// Tracker reports the time spent between steps through a Debuger.
type Tracker struct {
	dbg  Debuger
	last time.Time
}

func NewTracker(dbg Debuger) *Tracker {
	return &Tracker{dbg: dbg, last: time.Now()}
}

func (t *Tracker) StepNext(format string, a ...any) {
	now := time.Now()
	t.dbg.DbgPrint("%s use time: %v", strings.Trim(fmt.Sprintf(format, a...), "\n"), now.Sub(t.last))
	t.last = now
}
