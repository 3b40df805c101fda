package command

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/meter/modules/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cfg *Config, app *App) *kong.Kong {
	parser, err := kong.New(app,
		kong.NamedMapper("interval", IntervalDecoder()),
		kong.Name("meter"),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.Vars(cfg.Vars()),
	)
	require.NoError(t, err)
	return parser
}

func TestParseDefaults(t *testing.T) {
	var app App
	parser := newParser(t, DefaultConfig(), &app)
	ctx, err := parser.Parse([]string{"pipe"})
	require.NoError(t, err)
	assert.Equal(t, "pipe", ctx.Command())
	assert.False(t, app.Pipe.Leave)
	assert.Equal(t, 500*time.Millisecond, app.Pipe.MinInterval)
	assert.Equal(t, 1, app.Pipe.MinIters)
	assert.Equal(t, 0, app.Pipe.Total)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Leave = true
	cfg.MinInterval.Duration = 2 * time.Second
	cfg.MinIters = 5

	var app App
	_, err := newParser(t, cfg, &app).Parse([]string{"pipe"})
	require.NoError(t, err)
	assert.True(t, app.Pipe.Leave)
	assert.Equal(t, 2*time.Second, app.Pipe.MinInterval)
	assert.Equal(t, 5, app.Pipe.MinIters)

	app = App{}
	_, err = newParser(t, cfg, &app).Parse([]string{"pipe", "--no-leave", "--mininterval", "0.25", "--miniters", "3"})
	require.NoError(t, err)
	assert.False(t, app.Pipe.Leave)
	assert.Equal(t, 250*time.Millisecond, app.Pipe.MinInterval)
	assert.Equal(t, 3, app.Pipe.MinIters)
}

func TestParseRange(t *testing.T) {
	var app App
	ctx, err := newParser(t, DefaultConfig(), &app).Parse([]string{"range", "--desc", "trange", "--delay", "100ms", "1", "100", "2"})
	require.NoError(t, err)
	assert.Equal(t, "range <args>", ctx.Command())
	assert.Equal(t, []int{1, 100, 2}, app.Range.Args)
	assert.Equal(t, "trange", app.Range.Desc)
	assert.Equal(t, 100*time.Millisecond, app.Range.Delay)
}

func TestParseInterval(t *testing.T) {
	cases := map[string]time.Duration{
		"0":     0,
		"0.5":   500 * time.Millisecond,
		"2":     2 * time.Second,
		"250ms": 250 * time.Millisecond,
		" 1m ":  time.Minute,
	}
	for text, want := range cases {
		d, err := parseInterval(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, d, text)
	}
	for _, text := range []string{"-1", "-2s", "soon", ""} {
		_, err := parseInterval(text)
		assert.Error(t, err, text)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("leave = true\nmininterval = \"1.5s\"\nminiters = 10\n"), 0644))
	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.True(t, cfg.Leave)
	assert.Equal(t, 1500*time.Millisecond, cfg.MinInterval.Duration)
	assert.Equal(t, 10, cfg.MinIters)
	assert.Equal(t, map[string]string{"leave": "true", "mininterval": "1.5s", "miniters": "10"}, cfg.Vars())
}

func TestLoadConfigPartial(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("miniters = 0\n"), 0644))
	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("mininterval = \"later\"\n"), 0644))
	_, err := LoadConfig(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), file)
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv(ENV_METER_CONFIG, "/tmp/meter.toml")
	assert.Equal(t, "/tmp/meter.toml", ConfigPath())
}

type debugLines []string

func (d *debugLines) DbgPrint(format string, args ...any) {
	*d = append(*d, fmt.Sprintf(format, args...))
}

func TestPipe(t *testing.T) {
	input := "alpha\nbeta\ngamma"
	var out, status bytes.Buffer
	c := &Pipe{MeterFlags: MeterFlags{Desc: "lines", Leave: true, MinIters: 1}}
	var dbg debugLines
	require.NoError(t, c.pipe(strings.NewReader(input), &out, &status, &dbg))
	assert.Equal(t, input, out.String())
	assert.Equal(t, debugLines{
		`pipe: desc="lines" total=0 leave=true mininterval=0s miniters=1 null=false`,
		"pipe: 3 records",
	}, dbg)
	assert.True(t, strings.HasPrefix(status.String(), "\rlines: 0 [elapsed: 00:00, ? iters/sec]"))
	assert.Contains(t, status.String(), "lines: 3 [elapsed: ")
	assert.True(t, strings.HasSuffix(status.String(), "\n"))
}

func TestPipeNull(t *testing.T) {
	input := "a\x00b\nc\x00"
	var out, status bytes.Buffer
	c := &Pipe{MeterFlags: MeterFlags{Total: 2, Leave: true, MinIters: 1}, Null: true}
	require.NoError(t, c.pipe(strings.NewReader(input), &out, &status, trace.NewDebuger(false)))
	assert.Equal(t, input, out.String())
	assert.Contains(t, status.String(), "|##########| 2/2 100%")
}

var errRead = errors.New("read failed")

type brokenReader struct{ data string }

func (r *brokenReader) Read(b []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errRead
	}
	n := copy(b, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestPipeReadError(t *testing.T) {
	var out, status bytes.Buffer
	c := &Pipe{MeterFlags: MeterFlags{MinIters: 1}}
	err := c.pipe(&brokenReader{data: "one\ntwo"}, &out, &status, trace.NewDebuger(false))
	require.ErrorIs(t, err, errRead)
	assert.Equal(t, "one\ntwo", out.String())
}

func TestRangeRun(t *testing.T) {
	var out, status bytes.Buffer
	var slept time.Duration
	c := &Range{
		MeterFlags: MeterFlags{Desc: "trange", Leave: true, MinIters: 1},
		Args:       []int{10, 0, -3},
		Delay:      time.Millisecond,
		Print:      true,
	}
	var dbg debugLines
	err := c.run(&out, &status, func(d time.Duration) { slept += d }, &dbg)
	require.NoError(t, err)
	require.Len(t, dbg, 2)
	assert.True(t, strings.HasPrefix(dbg[0], "build range [10 0 -3], total 4 use time: "), dbg[0])
	assert.True(t, strings.HasPrefix(dbg[1], "iterate 4 elements use time: "), dbg[1])
	assert.Equal(t, "10\n7\n4\n1\n", out.String())
	assert.Equal(t, 4*time.Millisecond, slept)
	assert.Contains(t, status.String(), "trange: |##########| 4/4 100%")
}

func TestRangeRunBadArgs(t *testing.T) {
	c := &Range{Args: []int{1, 5, 0}}
	err := c.run(&bytes.Buffer{}, &bytes.Buffer{}, time.Sleep, trace.NewDebuger(false))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Version{}).write(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "meter dev"))

	buf.Reset()
	require.NoError(t, (&Version{JSON: true}).write(&buf))
	assert.Contains(t, buf.String(), `"version":"dev"`)
}
