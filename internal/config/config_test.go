package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Positive(t, cfg.Workers)
	assert.Empty(t, cfg.Definitions)
	assert.Equal(t, fhirjson.Strict(), cfg.Policy())
}

func TestPrecedence(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "bind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strict: false
workers: 2
log-level: warn
modifiers:
  - http://example.org/fhir/modifier
`), 0o644))
	t.Setenv("FHIRBIND_LOG_LEVEL", "debug")
	t.Setenv("FHIRBIND_LOG_FORMAT", "json")

	cfg, err := Load(newFlags(t, "--config", path, "--workers", "5"))
	require.NoError(t, err)

	assert.False(t, cfg.Strict)
	assert.Equal(t, fhirjson.Lenient(), cfg.Policy())
	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"http://example.org/fhir/modifier"}, cfg.Modifiers)
}

func TestWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte("check-modifiers: true\n"), 0o644))

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.True(t, cfg.CheckModifiers)
}

func TestInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(newFlags(t, "--workers", "0"))
	assert.Error(t, err)

	_, err = Load(newFlags(t, "--log-format", "xml"))
	assert.Error(t, err)

	_, err = Load(newFlags(t, "--log-level", "loud"))
	assert.Error(t, err)

	_, err = Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	log := cfg.Logger(&buf)

	log.Info().Msg("hidden")
	log.Warn().Str("document", "a.json").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"document":"a.json"`)
}

func TestRegistry(t *testing.T) {
	reg, err := (&Config{}).Registry()
	require.NoError(t, err)
	_, ok := reg.Resource("VisionPrescription")
	assert.True(t, ok)

	_, err = (&Config{Definitions: []string{filepath.Join(t.TempDir(), "missing.json")}}).Registry()
	assert.Error(t, err)
}
