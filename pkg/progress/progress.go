// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/antgroup/meter/modules/strengthen"
)

var (
	ErrAlreadyIterated = errors.New("progress: sequence already iterated")
)

// Collection is a sequence that knows its length up front.
type Collection[T any] interface {
	All() iter.Seq[T]
	Len() int
}

// Progress passes the elements of a sequence through unchanged while
// rendering a meter to its writer.
type Progress[T any] struct {
	seq    iter.Seq[T]
	opts   options
	total  Total
	prefix string
	sp     *StatusPrinter

	n          int
	lastPrintN int
	start      time.Time
	lastPrint  time.Time

	started bool
	closed  bool
	err     error
}

func New[T any](seq iter.Seq[T], opts ...Option) *Progress[T] {
	return newProgress(seq, newOptions(opts))
}

// NewCollection uses c.Len() as the total unless OptionSetTotal is given.
func NewCollection[T any](c Collection[T], opts ...Option) *Progress[T] {
	o := newOptions(opts)
	if !o.total.Valid {
		o.total = KnownTotal(c.Len())
	}
	return newProgress(c.All(), o)
}

func NewSlice[T any](s []T, opts ...Option) *Progress[T] {
	o := newOptions(opts)
	if !o.total.Valid {
		o.total = KnownTotal(len(s))
	}
	return newProgress(slices.Values(s), o)
}

// Wrap is New(seq, opts...).Iter() for callers that do not check sink errors.
func Wrap[T any](seq iter.Seq[T], opts ...Option) iter.Seq[T] {
	return New(seq, opts...).Iter()
}

func newProgress[T any](seq iter.Seq[T], o options) *Progress[T] {
	p := &Progress[T]{
		seq:   seq,
		opts:  o,
		total: o.total,
		sp:    NewStatusPrinter(o.writer),
	}
	if len(o.description) != 0 {
		p.prefix = strengthen.StrCat(o.description, ": ")
	}
	return p
}

// N returns the number of elements the consumer has finished with.
func (p *Progress[T]) N() int {
	return p.n
}

func (p *Progress[T]) Total() Total {
	return p.total
}

// Err returns the first error hit while writing the meter.
func (p *Progress[T]) Err() error {
	return p.err
}

// Iter returns the pass-through sequence. The counter moves, and a render
// may happen, only after the consumer's loop body has returned for an
// element. Breaking out of the loop early skips the final clear/newline;
// call Close for that.
func (p *Progress[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if p.started {
			if p.err == nil {
				p.err = ErrAlreadyIterated
			}
			return
		}
		p.started = true
		if err := p.sp.PrintStatus(p.prefix + FormatMeter(0, p.total, 0)); err != nil {
			p.err = err
			return
		}
		p.start = p.opts.now()
		p.lastPrint = p.start
		for v := range p.seq {
			if !yield(v) {
				return
			}
			p.n++
			// the counter check keeps the clock out of the hot path
			if p.n-p.lastPrintN < p.opts.minIters {
				continue
			}
			now := p.opts.now()
			if now.Sub(p.lastPrint) < p.opts.minInterval {
				continue
			}
			if err := p.render(now); err != nil {
				p.err = err
				return
			}
		}
		p.err = p.finish()
	}
}

// Close finishes the display of a sequence the consumer stopped early.
// It does nothing for a sequence that ran to completion or never started.
func (p *Progress[T]) Close() error {
	if !p.started || p.closed || p.err != nil {
		p.closed = true
		return p.err
	}
	p.err = p.finish()
	return p.err
}

func (p *Progress[T]) render(now time.Time) error {
	if err := p.sp.PrintStatus(p.prefix + FormatMeter(p.n, p.total, now.Sub(p.start))); err != nil {
		return err
	}
	p.lastPrintN = p.n
	p.lastPrint = now
	return nil
}

func (p *Progress[T]) finish() error {
	p.closed = true
	if !p.opts.leave {
		if err := p.sp.PrintStatus(""); err != nil {
			return err
		}
		if _, err := p.sp.Write([]byte{'\r'}); err != nil {
			return fmt.Errorf("write status: %w", err)
		}
		return nil
	}
	if p.lastPrintN < p.n {
		if err := p.render(p.opts.now()); err != nil {
			return err
		}
	}
	if _, err := p.sp.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}
