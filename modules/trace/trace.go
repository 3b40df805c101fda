package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/meter/modules/term"
)

var (
	dbgOutput io.Writer = os.Stderr
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

// NewDebuger returns a Debuger that writes to stderr when verbose is set and
// discards everything otherwise.
func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose}
}

type debuger struct {
	verbose bool
}

func formatDbg(level term.Level, message string) []byte {
	var buffer bytes.Buffer
	for _, s := range strings.Split(strings.TrimSuffix(message, "\n"), "\n") {
		_, _ = buffer.WriteString(level.Yellow("* " + s))
		_ = buffer.WriteByte('\n')
	}
	return buffer.Bytes()
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	_, _ = dbgOutput.Write(formatDbg(term.StderrLevel, fmt.Sprintf(format, args...)))
}

var (
	_ Debuger = &debuger{}
)
