package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f9-o/preflight/pkg/errs"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Source)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDiscoversProjectFileInParent(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ProjectFile), "output:\n  format: json\n")

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	chdir(t, nested)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, filepath.Join(dir, ProjectFile), cfg.Source)
}

func TestLoadGlobalThenProject(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(Home(), "config.yaml"), "log:\n  level: info\noutput:\n  format: yaml\n")
	writeFile(t, filepath.Join(dir, ProjectFile), "output:\n  format: markdown\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "markdown", cfg.Output.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ProjectFile), "output:\n  format: json\n")
	t.Setenv("PREFLIGHT_OUTPUT_FORMAT", "pretty")
	t.Setenv("PREFLIGHT_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pretty", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "log:\n  format: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errs.IsCode(err, errs.ErrConfig))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"format": "output:\n  format: xml\n",
		"level":  "log:\n  level: chatty\n",
		"logfmt": "log:\n  format: logfmt\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, ProjectFile), body)

			_, err := Load("")
			require.Error(t, err)
			assert.True(t, errs.IsCode(err, errs.ErrConfig))
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
