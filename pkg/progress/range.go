// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"errors"
	"iter"
	"math"
)

var (
	ErrZeroStep     = errors.New("progress: range step must not be zero")
	ErrRangeArgs    = errors.New("progress: range expects 1 to 3 arguments")
	ErrRangeTooLong = errors.New("progress: range length overflows int")
)

// IntRange is the half-open integer sequence start, start+step, ... up to
// but excluding stop.
type IntRange struct {
	Start, Stop, Step int
}

// NewIntRange accepts (stop), (start, stop) or (start, stop, step).
func NewIntRange(args ...int) (IntRange, error) {
	var r IntRange
	switch len(args) {
	case 1:
		r = IntRange{Stop: args[0], Step: 1}
	case 2:
		r = IntRange{Start: args[0], Stop: args[1], Step: 1}
	case 3:
		if args[2] == 0 {
			return IntRange{}, ErrZeroStep
		}
		r = IntRange{Start: args[0], Stop: args[1], Step: args[2]}
	default:
		return IntRange{}, ErrRangeArgs
	}
	if r.length() > math.MaxInt {
		return IntRange{}, ErrRangeTooLong
	}
	return r, nil
}

// length counts the elements in unsigned space; start and stop may be a
// full int apart.
func (r IntRange) length() uint64 {
	var span, step uint64
	switch {
	case r.Step > 0 && r.Start < r.Stop:
		span, step = uint64(r.Stop)-uint64(r.Start), uint64(r.Step)
	case r.Step < 0 && r.Start > r.Stop:
		span, step = uint64(r.Start)-uint64(r.Stop), -uint64(r.Step)
	default:
		return 0
	}
	return (span-1)/step + 1
}

// Len saturates at math.MaxInt for ranges NewIntRange would reject.
func (r IntRange) Len() int {
	return int(min(r.length(), math.MaxInt))
}

func (r IntRange) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := r.Len()
		v := r.Start
		for i := 0; i < n; i++ {
			// step only between elements: past the last one it may overflow
			if i != 0 {
				v += r.Step
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Range builds the integer range described by args and wraps it, passing
// opts through unchanged.
func Range(args []int, opts ...Option) (*Progress[int], error) {
	r, err := NewIntRange(args...)
	if err != nil {
		return nil, err
	}
	return NewCollection[int](r, opts...), nil
}
