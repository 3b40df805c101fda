// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/antgroup/meter/modules/trace"
	"github.com/antgroup/meter/pkg/progress"
)

type Pipe struct {
	MeterFlags
	Null bool `short:"0" name:"null" help:"Records are separated by NUL instead of newline"`
}

// records splits r on delim, keeping the delimiter. Read errors other than
// io.EOF end the sequence and are stored in errp.
func records(r *bufio.Reader, delim byte, errp *error) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			line, err := r.ReadBytes(delim)
			if len(line) != 0 && !yield(line) {
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					*errp = err
				}
				return
			}
		}
	}
}

func (c *Pipe) pipe(in io.Reader, out io.Writer, status io.Writer, dbg trace.Debuger) error {
	dbg.DbgPrint("pipe: desc=%q total=%d leave=%v mininterval=%v miniters=%d null=%v",
		c.Desc, c.Total, c.Leave, c.MinInterval, c.MinIters, c.Null)
	delim := byte('\n')
	if c.Null {
		delim = 0
	}
	var readErr, writeErr error
	w := bufio.NewWriter(out)
	p := progress.New(records(bufio.NewReader(in), delim, &readErr), c.Options(status)...)
	for record := range p.Iter() {
		if _, writeErr = w.Write(record); writeErr != nil {
			break
		}
	}
	dbg.DbgPrint("pipe: %d records", p.N())
	if writeErr != nil {
		_ = p.Close()
		return fmt.Errorf("write output: %w", writeErr)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if readErr != nil {
		return fmt.Errorf("read input: %w", readErr)
	}
	return p.Err()
}

func (c *Pipe) Run(g *Globals) error {
	return c.pipe(os.Stdin, os.Stdout, os.Stderr, g.Debuger())
}
