package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renum/internal/config"
	serr "renum/internal/errors"
)

func TestDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, ".", cfg.Scan.Directory)
	assert.Equal(t, 1, cfg.Scan.Level)
	assert.Empty(t, cfg.Scan.Blacklist)
	assert.Empty(t, cfg.Scan.Whitelist)
	assert.Equal(t, "./output", cfg.Rename.Output)
	assert.Equal(t, 1, cfg.Rename.StartNumber)
	assert.False(t, cfg.Rename.Verify)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Scan.Level)
	assert.Equal(t, "./output", cfg.Rename.Output)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
scan:
  directory: /srv/photos
  level: 3
  blacklist: [".PNG", "gif"]
  ignore: ["*.tmp"]
rename:
  output: /srv/sorted
  start_number: 100
  template: "img_{number}.jpg"
  verify: true
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/photos", cfg.Scan.Directory)
	assert.Equal(t, 3, cfg.Scan.Level)
	// Extensions are normalized on load
	assert.Equal(t, []string{"png", "gif"}, cfg.Scan.Blacklist)
	assert.Equal(t, []string{"*.tmp"}, cfg.Scan.Ignore)
	assert.Equal(t, "/srv/sorted", cfg.Rename.Output)
	assert.Equal(t, 100, cfg.Rename.StartNumber)
	assert.Equal(t, "img_{number}.jpg", cfg.Rename.Template)
	assert.True(t, cfg.Rename.Verify)
	assert.True(t, cfg.Debug)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan:\n  level: 4\n"), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Scan.Level)
	assert.Equal(t, ".", cfg.Scan.Directory)
	assert.Equal(t, "./output", cfg.Rename.Output)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan: ["), 0644))

	_, err := config.LoadConfigFile(path)
	require.Error(t, err)
	assert.True(t, serr.IsInvalidConfig(err))
}

func TestValidate(t *testing.T) {
	t.Run("negative level", func(t *testing.T) {
		cfg := config.New()
		cfg.Scan.Level = -1
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, serr.IsInvalidConfig(err))
	})

	t.Run("negative start number", func(t *testing.T) {
		cfg := config.New()
		cfg.Rename.StartNumber = -5
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty output", func(t *testing.T) {
		cfg := config.New()
		cfg.Rename.Output = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestNormalizeExtensions(t *testing.T) {
	got := config.NormalizeExtensions([]string{".JPG", "png", " .Gif ", "", "."})
	assert.Equal(t, []string{"jpg", "png", "gif"}, got)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.Scan.Level = 2
	cfg.Rename.Template = "file_{number}.dat"
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Scan.Level)
	assert.Equal(t, "file_{number}.dat", loaded.Rename.Template)
}
