// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress prints a single-line progress meter while a caller ranges
// over a sequence. Elements pass through untouched; the meter is rewritten
// in place with a carriage return.
//
//	p := progress.NewSlice(files, progress.OptionSetDescription("upload"))
//	for f := range p.Iter() {
//	    upload(f)
//	}
//	if err := p.Err(); err != nil {
//	    return err
//	}
//
// With a known total the line reads
//
//	upload: |######----| 30/50  60% [elapsed: 00:03 left: 00:02,  9.77 iters/sec]
//
// and without one
//
//	upload: 5 [elapsed: 00:10,  0.50 iters/sec]
//
// Rendering happens synchronously between elements, at most once per
// OptionSetMinIters elements and once per OptionSetMinInterval.
package progress
