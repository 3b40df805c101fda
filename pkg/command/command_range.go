// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/antgroup/meter/modules/trace"
	"github.com/antgroup/meter/pkg/progress"
)

type Range struct {
	MeterFlags
	Args  []int         `arg:"" name:"args" help:"[start] stop [step]; put -- before negative numbers"`
	Delay time.Duration `name:"delay" type:"interval" help:"Time spent on each element" default:"0"`
	Print bool          `short:"p" name:"print" help:"Print each value on stdout"`
}

func (c *Range) run(out io.Writer, status io.Writer, sleep func(time.Duration), dbg trace.Debuger) error {
	tracker := trace.NewTracker(dbg)
	p, err := progress.Range(c.Args, c.Options(status)...)
	if err != nil {
		return err
	}
	tracker.StepNext("build range %v, total %v", c.Args, p.Total())
	w := bufio.NewWriter(out)
	for i := range p.Iter() {
		if c.Delay > 0 {
			sleep(c.Delay)
		}
		if c.Print {
			fmt.Fprintln(w, i)
		}
	}
	tracker.StepNext("iterate %d elements", p.N())
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return p.Err()
}

func (c *Range) Run(g *Globals) error {
	return c.run(os.Stdout, os.Stderr, time.Sleep, g.Debuger())
}
