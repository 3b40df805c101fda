package strengthen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"
)

// Measurer is a running CPU profile. The zero of *Measurer (nil) is a
// disabled measurer: Close on it does nothing.
type Measurer struct {
	fd    *os.File
	w     io.Writer
	start time.Time
}

// ProfilePath names the profile of the current process inside dir.
func ProfilePath(dir, name string) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%d.pprof", name, os.Getpid()))
}

// StartMeasurer creates path and starts CPU profiling into it. Close tells w
// where the profile went.
func StartMeasurer(path string, w io.Writer) (*Measurer, error) {
	fd, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		_ = fd.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	return &Measurer{fd: fd, w: w, start: time.Now()}, nil
}

// Close stops profiling. Calling it more than once is harmless.
func (m *Measurer) Close() error {
	if m == nil || m.fd == nil {
		return nil
	}
	pprof.StopCPUProfile()
	fd := m.fd
	m.fd = nil
	if err := fd.Close(); err != nil {
		return fmt.Errorf("close profile: %w", err)
	}
	fmt.Fprintf(m.w, "cpu profile (%v) written to %s\ninspect: go tool pprof -http=:8080 %s\n",
		time.Since(m.start).Round(time.Millisecond), fd.Name(), fd.Name())
	return nil
}
