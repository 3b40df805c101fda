// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/meter/modules/strengthen"
	"github.com/antgroup/meter/pkg/progress"
)

const (
	ENV_METER_CONFIG = "METER_CONFIG"
)

// Config holds the defaults for meter flags. Command line flags win.
type Config struct {
	Leave       bool                `toml:"leave"`
	MinInterval strengthen.Duration `toml:"mininterval,omitempty"`
	MinIters    int                 `toml:"miniters,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		MinInterval: strengthen.Duration{Duration: progress.DefaultMinInterval},
		MinIters:    progress.DefaultMinIters,
	}
}

// ConfigPath returns $METER_CONFIG, or meter/config.toml under the user
// config directory.
func ConfigPath() string {
	if p, ok := os.LookupEnv(ENV_METER_CONFIG); ok {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "meter", "config.toml")
}

// LoadConfig decodes file over the defaults. A missing file is not an error.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()
	if len(file) == 0 {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(file, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", file, err)
	}
	if cfg.MinIters < 1 {
		cfg.MinIters = progress.DefaultMinIters
	}
	return cfg, nil
}

// Vars exposes the config as kong interpolation variables for flag defaults.
func (c *Config) Vars() map[string]string {
	return map[string]string{
		"leave":       strconv.FormatBool(c.Leave),
		"mininterval": c.MinInterval.Duration.String(),
		"miniters":    strconv.Itoa(c.MinIters),
	}
}
