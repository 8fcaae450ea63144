package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyapi/internal/config"
	"pyapi/internal/extract"
)

const manifest = `
[defaults]
visibility = "all"
docstrings = false

[run]
jobs = 4
cache = false

[files]
exclude = ["*_test.py", "build/*"]
`

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, config.ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))
	return path
}

func TestDiscoverFromNestedDir(t *testing.T) {
	root := t.TempDir()
	manifestPath := writeManifest(t, root)
	nested := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, path, err := config.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, manifestPath, path)
	assert.Equal(t, "all", cfg.Defaults.Visibility)
	assert.Equal(t, 4, cfg.Run.Jobs)
}

func TestDiscoverWithoutManifest(t *testing.T) {
	cfg, path, err := config.Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "", cfg.Defaults.Visibility)
	assert.True(t, cfg.DocstringsOr(true))
	assert.True(t, cfg.CacheOr(true))
}

func TestLoadValues(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(writeManifest(t, dir))
	require.NoError(t, err)

	assert.False(t, cfg.DocstringsOr(true))
	assert.False(t, cfg.CacheOr(true))

	globs, err := cfg.CompileExcludes()
	require.NoError(t, err)
	require.Len(t, globs, 2)
	assert.True(t, globs[0].Match("foo_test.py"))
	assert.False(t, globs[0].Match("foo.py"))
}

func TestParseVisibility(t *testing.T) {
	v, err := config.ParseVisibility("private", extract.Public)
	require.NoError(t, err)
	assert.Equal(t, extract.Private, v)

	v, err = config.ParseVisibility("", extract.Public)
	require.NoError(t, err)
	assert.Equal(t, extract.Public, v)

	_, err = config.ParseVisibility("everything", extract.Public)
	require.Error(t, err)
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ManifestName)
	require.NoError(t, os.WriteFile(path, []byte("[defaults\nvisibility="), 0o644))
	_, err := config.Load(path)
	require.Error(t, err)
}
