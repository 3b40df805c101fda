// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/meter/modules/strengthen"
	"github.com/antgroup/meter/pkg/command"
	"github.com/antgroup/meter/pkg/version"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := command.ConfigPath()
	cfg, err := command.LoadConfig(configPath)
	if err != nil {
		logrus.Errorf("meter: %v", err)
		os.Exit(1)
	}
	vars := kong.Vars(cfg.Vars())
	vars["version"] = version.GetVersionString()
	var app command.App
	ctx := kong.Parse(&app,
		kong.NamedMapper("interval", command.IntervalDecoder()),
		kong.Name("meter"),
		kong.Description("Show a progress meter for records flowing through a pipe"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		vars,
	)
	now := time.Now()
	var m *strengthen.Measurer
	if app.Debug {
		if m, err = strengthen.StartMeasurer(strengthen.ProfilePath(os.TempDir(), "meter"), os.Stderr); err != nil {
			logrus.Warnf("meter: %v", err)
		}
	}
	dbg := app.Debuger()
	dbg.DbgPrint("config: %s", configPath)
	err = ctx.Run(&app.Globals)
	if cerr := m.Close(); cerr != nil {
		logrus.Warnf("meter: %v", cerr)
	}
	dbg.DbgPrint("time spent: %v", time.Since(now))
	if err != nil {
		logrus.Errorf("meter %s: %v", ctx.Command(), err)
		os.Exit(1)
	}
}
