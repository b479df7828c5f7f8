package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/j2py/pkg/config"
)

func TestLoadConfig_NoFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "    ", cfg.Translate.Indent)
	assert.Equal(t, "3.10", cfg.Translate.TargetPython)
	assert.True(t, cfg.Translate.EmitTypeHints)
	assert.False(t, cfg.Translate.StrictSchema)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FromFile_Overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `
translate:
  indent: "  "
  emit_type_hints: false
server:
  port: 9000
  host: "127.0.0.1"
logging:
  level: "debug"
  json: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "  ", cfg.Translate.Indent)
	assert.False(t, cfg.Translate.EmitTypeHints)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("J2PY_SERVER_PORT", "9090")
	t.Setenv("J2PY_TRANSLATE_TARGET_PYTHON", "3.10")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "3.10", cfg.Translate.TargetPython)
}

func TestLoadConfig_InvalidPort_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server:\n  port: 70000\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, config.ErrInvalidPort)
}

func TestLoadConfig_UnsupportedTargetPython_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("translate:\n  target_python: \"2.7\"\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, config.ErrInvalidTargetPython)
}

func TestLoadConfig_MalformedYAML_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server:\n  port: [invalid\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_ExplicitPath_NotFound_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDefaultConfig_MatchesLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	loaded, err := config.LoadConfig("")
	require.NoError(t, err)

	def := config.DefaultConfig()
	assert.Equal(t, *loaded, def)
}

func TestWriteDefault_RoundTripsThroughLoadConfig(t *testing.T) {
	t.Parallel()

	out, err := config.WriteDefault()
	require.NoError(t, err)
	assert.Contains(t, string(out), "target_python:")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, out, 0o600))

	cfg, loadErr := config.LoadConfig(cfgPath)
	require.NoError(t, loadErr)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}
