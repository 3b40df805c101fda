// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/antgroup/meter/modules/trace"
	"github.com/antgroup/meter/pkg/version"
)

type Globals struct {
	Verbose bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
}

// Debuger prints diagnostics on stderr under --verbose.
func (g *Globals) Debuger() trace.Debuger {
	return trace.NewDebuger(g.Verbose)
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Fprintln(app.Stdout, version.GetVersionString())
	app.Exit(0)
	return nil
}

// App is the meter command line.
type App struct {
	Globals
	Pipe    Pipe    `cmd:"pipe" default:"1" help:"Copy stdin to stdout, metering records on stderr"`
	Range   Range   `cmd:"range" help:"Iterate over an integer range with a meter"`
	Version Version `cmd:"version" help:"Display version information"`
	Debug   bool    `name:"debug" help:"Enable debug mode; write a CPU profile"`
}
