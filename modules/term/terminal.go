package term

import (
	"os"
	"strings"

	"github.com/antgroup/meter/modules/strengthen"
	"github.com/mattn/go-isatty"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

type Level int

const (
	LevelNone Level = iota
	Level256
	Level16M
)

var (
	StderrLevel Level
)

func detectColorLevel(getenv func(string) string) Level {
	if strengthen.SimpleAtob(getenv("METER_FORCE_TRUECOLOR"), false) {
		return Level16M
	}
	if len(getenv("NO_COLOR")) != 0 {
		return LevelNone
	}
	if len(getenv("WT_SESSION")) != 0 {
		return Level16M
	}
	colorTermEnv := getenv("COLORTERM")
	termEnv := getenv("TERM")
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTermEnv, "24bit") ||
		strings.Contains(colorTermEnv, "truecolor") {
		return Level16M
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTermEnv, "256") {
		return Level256
	}
	return LevelNone
}

func init() {
	if IsTerminal(os.Stderr.Fd()) {
		StderrLevel = detectColorLevel(os.Getenv)
	}
}

func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// StringWidth returns the number of terminal cells s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
