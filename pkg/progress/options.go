// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"io"
	"os"
	"time"
)

const (
	DefaultMinInterval = 500 * time.Millisecond
	DefaultMinIters    = 1
)

type options struct {
	description string
	total       Total
	leave       bool
	writer      io.Writer
	minInterval time.Duration
	minIters    int
	now         func() time.Time
}

// Option configures a Progress.
type Option func(o *options)

func newOptions(opts []Option) options {
	o := options{
		writer:      os.Stderr,
		minInterval: DefaultMinInterval,
		minIters:    DefaultMinIters,
		now:         time.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.writer == nil {
		o.writer = os.Stderr
	}
	if o.minIters < 1 {
		o.minIters = 1
	}
	if o.minInterval < 0 {
		o.minInterval = 0
	}
	return o
}

// OptionSetDescription sets the label printed in front of the meter.
func OptionSetDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// OptionSetTotal sets the expected number of elements, overriding any
// length the source reports.
func OptionSetTotal(total int) Option {
	return func(o *options) {
		o.total = KnownTotal(total)
	}
}

// OptionSetLeave keeps the final meter on screen instead of clearing it.
func OptionSetLeave(leave bool) Option {
	return func(o *options) {
		o.leave = leave
	}
}

// OptionSetWriter sets the sink for the meter, os.Stderr by default.
func OptionSetWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// OptionSetMinInterval sets the minimum wall-clock time between renders.
func OptionSetMinInterval(d time.Duration) Option {
	return func(o *options) {
		o.minInterval = d
	}
}

// OptionSetMinIters sets the minimum number of elements between renders.
func OptionSetMinIters(n int) Option {
	return func(o *options) {
		o.minIters = n
	}
}
