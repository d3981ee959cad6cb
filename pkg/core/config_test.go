package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.ProjectDir)
	assert.Equal(t, "x64-windows", cfg.Triplet)
	assert.Equal(t, "wheels", cfg.WheelDir)
	assert.NotEmpty(t, cfg.VcpkgRoot)
	assert.False(t, cfg.Debug)
}

func TestDefaultConfigHonorsVcpkgRootEnv(t *testing.T) {
	t.Setenv("VCPKG_ROOT", "/opt/vcpkg")

	cfg := DefaultConfig()
	assert.Equal(t, "/opt/vcpkg", cfg.VcpkgRoot)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
vcpkg_root: D:\tools\vcpkg
triplet: x64-windows-static
wheel_dir: dist
fortran_flags:
  - -ff2c
  - -fdefault-integer-8
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, `D:\tools\vcpkg`, cfg.VcpkgRoot)
	assert.Equal(t, "x64-windows-static", cfg.Triplet)
	assert.Equal(t, "dist", cfg.WheelDir)
	assert.Equal(t, []string{"-ff2c", "-fdefault-integer-8"}, cfg.FortranFlags)
	assert.True(t, cfg.Debug)

	// Unset fields keep their defaults
	assert.Equal(t, ".", cfg.ProjectDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Triplet, cfg.Triplet)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("triplet: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigDurationString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 90s\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Timeout.Duration())
}

func TestLoadConfigDurationNanoseconds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 5000000000\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Duration())
}

func TestLoadConfigDurationInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing duration")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Triplet = "x64-windows-static"
	cfg.KeepWheelhouse = true

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "x64-windows-static", loaded.Triplet)
	assert.True(t, loaded.KeepWheelhouse)
}
