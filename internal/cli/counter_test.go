package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args against a temp session.
func runCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	full := append([]string{args[0],
		"--db", filepath.Join(dir, "tally.db"),
		"--config", filepath.Join(dir, "tally.cue"),
	}, args[1:]...)
	cmd.SetArgs(full)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func writeTestConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tally.cue"), []byte(content), 0o644))
}

func TestIncrCommand_PersistsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	runCommand(t, dir, "incr")
	runCommand(t, dir, "incr")
	out := runCommand(t, dir, "incr")

	assert.Contains(t, out, "value: 3", "value survives between processes via the store")
}

func TestDecrCommand_GatedAtMinimum(t *testing.T) {
	dir := t.TempDir()

	out := runCommand(t, dir, "decr")

	assert.Contains(t, out, "value: 0")
	assert.Contains(t, out, "decrement suppressed")
}

func TestIncrCommand_GatedAtMaximum(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "maxValue: 2\n")

	runCommand(t, dir, "incr")
	runCommand(t, dir, "incr")
	out := runCommand(t, dir, "incr")

	assert.Contains(t, out, "value: 2")
	assert.Contains(t, out, "increment suppressed")
}

func TestSetCommand_ClampsAndWarns(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "maxValue: 10\n")

	out := runCommand(t, dir, "set", "99")

	assert.Contains(t, out, "value: 10")
	assert.Contains(t, out, "clamped")
}

func TestSetCommand_RejectsNonNumeric(t *testing.T) {
	dir := t.TempDir()
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"set", "abc",
		"--db", filepath.Join(dir, "tally.db"),
		"--config", filepath.Join(dir, "absent.cue"),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestResetCommand_TargetsConfiguredInitial(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "initialValue: 5\nmaxValue: 10\n")

	runCommand(t, dir, "incr")
	out := runCommand(t, dir, "reset")

	assert.Contains(t, out, "value: 5")
}

func TestStatusCommand_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	runCommand(t, dir, "incr")

	out := runCommand(t, dir, "status", "--format", "json")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["value"])
	assert.Equal(t, "light", data["theme"])
}

func TestThemeCommand_SetAndShow(t *testing.T) {
	dir := t.TempDir()

	out := runCommand(t, dir, "theme", "dark")
	assert.Contains(t, out, "theme: dark (stored: dark")

	// The preference persists into the next invocation.
	out = runCommand(t, dir, "theme")
	assert.Contains(t, out, "stored: dark")
}

func TestThemeCommand_Toggle(t *testing.T) {
	dir := t.TempDir()

	runCommand(t, dir, "theme", "dark")
	out := runCommand(t, dir, "theme", "toggle")

	assert.Contains(t, out, "theme: light (stored: light")
}

func TestThemeCommand_RejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"theme", "neon",
		"--db", filepath.Join(dir, "tally.db"),
		"--config", filepath.Join(dir, "absent.cue"),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHistoryCommand_SessionScoped(t *testing.T) {
	dir := t.TempDir()
	runCommand(t, dir, "incr")

	out := runCommand(t, dir, "history")

	assert.Contains(t, out, "no transitions this session",
		"history is session state, not persisted across processes")
}
