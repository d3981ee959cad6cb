// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds slybuild configuration
type Config struct {
	// ProjectDir is the Slycot source checkout the build runs in.
	// Defaults to the current directory.
	ProjectDir string `yaml:"project_dir"`

	// VcpkgRoot is the vcpkg installation root (VCPKG_ROOT).
	VcpkgRoot string `yaml:"vcpkg_root"`

	// Triplet is the vcpkg target triplet.
	Triplet string `yaml:"triplet"`

	// PythonVersion pins the interpreter used for the virtual
	// environment (e.g. "3.11"). Empty means uv's default.
	PythonVersion string `yaml:"python_version"`

	// WheelDir is where built wheels are collected.
	WheelDir string `yaml:"wheel_dir"`

	// FortranFlags are extra flags passed to gfortran through CMake
	// (e.g. -ff2c -fdefault-integer-8 -fdefault-real-8).
	FortranFlags []string `yaml:"fortran_flags"`

	// KeepWheelhouse keeps the repaired wheelhouse/ directory after a
	// full install run.
	KeepWheelhouse bool `yaml:"keep_wheelhouse"`

	// Timeout for tool probes and short-lived commands. Builds run
	// without a deadline. Accepts duration strings in yaml ("2m").
	Timeout Duration `yaml:"timeout"`

	// Debug enables debug logging
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ProjectDir: ".",
		VcpkgRoot:  defaultVcpkgRoot(),
		Triplet:    "x64-windows",
		WheelDir:   "wheels",
		Timeout:    Duration(2 * time.Minute),
		Debug:      false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "slybuild", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "slybuild", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func defaultVcpkgRoot() string {
	if root := os.Getenv("VCPKG_ROOT"); root != "" {
		return root
	}
	return `C:\vcpkg`
}
