package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 24.0, cfg.CanvasSize)
	assert.Equal(t, 3, cfg.FloatPrecision)
	assert.Equal(t, 5, cfg.MaxFloatPrecision)
	assert.Equal(t, 0.001, cfg.Tolerance)
	assert.Equal(t, ".svglint-ignored.json", cfg.Ledger.File)
	assert.False(t, cfg.Ledger.Regenerate)
}

func TestLoad(t *testing.T) {
	t.Setenv(UpdateIgnoreEnv, "")

	path := filepath.Join(t.TempDir(), "iconlint.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
canvas_size = 32.0
tolerance = 0.01
log_level = "debug"

[ledger]
file = "known.json"
required = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32.0, cfg.CanvasSize)
	assert.Equal(t, 0.01, cfg.Tolerance)
	assert.Equal(t, 3, cfg.FloatPrecision, "unset keys keep their defaults")
	assert.Equal(t, "known.json", cfg.Ledger.File)
	assert.True(t, cfg.Ledger.Required)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv(UpdateIgnoreEnv, "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Ledger.Regenerate)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("canvas_size = ["), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("canvas_size = 0.0\ntolerance = -1.0\n"), 0o644))
	_, err = Load(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canvas_size")
	assert.Contains(t, err.Error(), "tolerance")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(string) string { return "false" })
	assert.False(t, cfg.Ledger.Regenerate)

	cfg.ApplyEnv(func(k string) string {
		if k == UpdateIgnoreEnv {
			return "true"
		}
		return ""
	})
	assert.True(t, cfg.Ledger.Regenerate)
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Setenv(UpdateIgnoreEnv, "")

	data, err := Default().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "iconlint.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
