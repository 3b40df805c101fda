// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/meter/pkg/progress"
)

// MeterFlags are shared by every command that draws a meter.
type MeterFlags struct {
	Desc        string        `short:"d" name:"desc" help:"Text shown in front of the meter"`
	Total       int           `name:"total" help:"Expected number of elements, 0 if unknown" default:"0"`
	Leave       bool          `name:"leave" negatable:"" help:"Keep the final meter on screen" default:"${leave}"`
	MinInterval time.Duration `name:"mininterval" type:"interval" help:"Minimum time between updates, seconds or a duration" default:"${mininterval}"`
	MinIters    int           `name:"miniters" help:"Minimum number of elements between updates" default:"${miniters}"`
}

func (m *MeterFlags) Options(w io.Writer) []progress.Option {
	opts := []progress.Option{
		progress.OptionSetWriter(w),
		progress.OptionSetDescription(m.Desc),
		progress.OptionSetLeave(m.Leave),
		progress.OptionSetMinInterval(m.MinInterval),
		progress.OptionSetMinIters(m.MinIters),
	}
	if m.Total > 0 {
		opts = append(opts, progress.OptionSetTotal(m.Total))
	}
	return opts
}

// parseInterval accepts plain seconds ("0.5") as well as Go durations ("500ms").
func parseInterval(text string) (time.Duration, error) {
	text = strings.TrimSpace(text)
	if secs, err := strconv.ParseFloat(text, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("negative interval %q", text)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, fmt.Errorf("bad interval %q", text)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative interval %q", text)
	}
	return d, nil
}

func IntervalDecoder() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		t, err := ctx.Scan.PopValue("interval")
		if err != nil {
			return err
		}
		var sv string
		switch v := t.Value.(type) {
		case string:
			sv = v
		default:
			return fmt.Errorf("expected a string value but got %q (%T)", t, t.Value)
		}
		d, err := parseInterval(sv)
		if err != nil {
			return err
		}
		if target.Kind() != reflect.Int64 {
			return fmt.Errorf("internal error: type 'interval' only works with fields of type time.Duration; got %s", target.Type())
		}
		target.SetInt(int64(d))
		return nil
	}
}
