package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svgpath"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	out, _, err := run(t, "commands", "M10 20 l.5-1.5 3 4z")
	require.NoError(t, err)
	assert.Equal(t, "M10,20\nl.5,-1.5\nl3,4\nZ\n", out)
}

func TestCommandsKeepInvalid(t *testing.T) {
	out, stderr, err := run(t, "commands", "--keep-invalid", "M1 2 L3")
	require.NoError(t, err)
	assert.Equal(t, "M1,2\ninvalid L: expected 2 arguments, got 1\n", out)
	assert.Contains(t, stderr, "kind=bad-arguments")
}

func TestDraw(t *testing.T) {
	out, _, err := run(t, "draw", "M1 1 h2 v2 z m1 1 l1 0")
	require.NoError(t, err)
	assert.Equal(t, "M1,1\nL3,1\nL3,3\nZ\nM2,2\nL3,2\n", out)
}

func TestDrawStrict(t *testing.T) {
	out, stderr, err := run(t, "draw", "--strict", "M1 1 a1 1 0 0 0 1 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, svgpath.ErrUnhandledCommand)
	assert.Equal(t, "M1,1\n", out)
	assert.Contains(t, stderr, "kind=unhandled-command")

	_, _, err = run(t, "draw", "M1 1 a1 1 0 0 0 1 1")
	assert.NoError(t, err)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "icon.svg")
	doc := `<svg><path id="tick" d="M0 0 L1 1"/><g><path d="M2 2 H4"/></g></svg>`
	require.NoError(t, os.WriteFile(fn, []byte(doc), 0o644))

	out, _, err := run(t, "file", fn)
	require.NoError(t, err)
	assert.Equal(t, "# tick\nM0,0\nL1,1\n# path 2\nM2,2\nL4,2\n", out)

	_, _, err = run(t, "file", filepath.Join(dir, "missing.svg"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "svgpath.toml")
	cfg := "precision = 3\nkeep_invalid = true\nerror_mode = \"ignore\"\nlog_level = \"debug\"\n"
	require.NoError(t, os.WriteFile(fn, []byte(cfg), 0o644))

	c, err := loadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, config{Precision: 3, KeepInvalid: true, ErrorMode: svgpath.IgnoreErrorMode, LogLevel: slog.LevelDebug}, c)

	out, stderr, err := run(t, "commands", "--config", fn, "L1.25 2 3")
	require.NoError(t, err)
	assert.Equal(t, "L1.25,2\ninvalid L: expected 2 arguments, got 1\n", out)
	assert.NotContains(t, stderr, "bad-arguments")

	// flags win over the file
	out, _, err = run(t, "commands", "--config", fn, "--keep-invalid=false", "L1.25 2 3")
	require.NoError(t, err)
	assert.Equal(t, "L1.25,2\n", out)
}

func TestConfigErrors(t *testing.T) {
	var c config
	err := decodeConfig(strings.NewReader("colour = \"red\"\n"), &c)
	assert.Error(t, err)

	err = decodeConfig(strings.NewReader("error_mode = \"loud\"\n"), &c)
	assert.Error(t, err)

	c, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), c)

	_, _, err = run(t, "draw", "--log-level", "chatty", "M0 0")
	assert.Error(t, err)
}
