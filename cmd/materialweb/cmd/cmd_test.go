package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/materialweb/cmd/materialweb/internal/config"
	"github.com/go-drift/materialweb/pkg/bootstrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestRun_Version(t *testing.T) {
	out := captureStdout(t)
	require.NoError(t, run([]string{"--version"}))
	assert.Contains(t, out.String(), Version)
}

func TestRun_UnknownCommand(t *testing.T) {
	captureStdout(t)
	assert.Error(t, run([]string{"frobnicate"}))
}

func TestInit_WritesLoadableDefaults(t *testing.T) {
	dir := t.TempDir()
	path, err := writeDefaultConfig(dir)
	require.NoError(t, err)

	r, err := config.Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultToolkitVersion, r.ToolkitVersion)
	assert.Equal(t, bootstrap.DefaultRules, r.Rules)

	_, err = writeDefaultConfig(dir)
	assert.Error(t, err, "an existing %s is kept", path)
}

func TestScan_ListsWidgets(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte(`<html><body>
<button id="save" class="mdc-button">Save</button>
<div data-mdc-auto-init="false"><button class="mdc-button">Skip</button></div>
<div class="mdc-data-table"></div>
</body></html>`), 0o644))

	out := captureStdout(t)
	require.NoError(t, run([]string{"scan", page}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines[0], "button#save.mdc-button")
	assert.Contains(t, out.String(), "div.mdc-data-table")
	assert.Contains(t, out.String(), "2 widgets, 1 skipped, 0 failed")
	assert.Nil(t, bootstrap.Current())
}

func TestScan_ToolkitGate(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte(`<html><body></body></html>`), 0o644))

	captureStdout(t)
	assert.Error(t, run([]string{"scan", "--toolkit", "v13.0.0", page}))
	assert.NoError(t, run([]string{"scan", "--toolkit=v14.1.0", page}))
	assert.Error(t, run([]string{"scan"}))
}

func TestStatus(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("autoInit:\n  disabled: true\n"), 0o644))

	out := captureStdout(t)
	require.NoError(t, run([]string{"status"}))
	assert.Contains(t, out.String(), "(no go.mod)")
	assert.Contains(t, out.String(), "Auto-init: disabled")
}
