// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/meter/modules/term"
)

type flusher interface {
	Flush() error
}

// StatusPrinter rewrites a single terminal line in place.
type StatusPrinter struct {
	w       io.Writer
	lastLen int
}

func NewStatusPrinter(w io.Writer) *StatusPrinter {
	if w == nil {
		w = os.Stderr
	}
	return &StatusPrinter{w: w}
}

// PrintStatus returns the cursor to column zero, writes s and blanks out
// whatever a longer previous line left behind.
//
// Line length is measured in terminal cells (term.StringWidth), not bytes.
// For ASCII lines, which is all FormatMeter produces, the two agree. A
// description holding wide or combining runes is padded by what it actually
// covers on screen, so a CJK rune counts 2 and a combining mark 0.
func (p *StatusPrinter) PrintStatus(s string) error {
	width := term.StringWidth(s)
	var b strings.Builder
	b.Grow(1 + len(s) + max(p.lastLen-width, 0))
	_ = b.WriteByte('\r')
	_, _ = b.WriteString(s)
	_, _ = b.WriteString(strings.Repeat(" ", max(p.lastLen-width, 0)))
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	if err := flush(p.w); err != nil {
		return fmt.Errorf("flush status: %w", err)
	}
	p.lastLen = width
	return nil
}

// Write passes raw bytes to the underlying sink and flushes it.
func (p *StatusPrinter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if err != nil {
		return n, err
	}
	return n, flush(p.w)
}

// flush drains buffered sinks. *os.File writes go straight to the
// descriptor and need nothing.
func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
