// pkg/uv/manager.go
package uv

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Manager handles virtual environment setup and build dependencies
type Manager struct {
	client *Client
	config *Config
	logger *log.Logger
}

// NewManager creates a new uv manager
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = "."
	}
	if cfg.VenvDir == "" {
		cfg.VenvDir = DefaultVenvDir
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[UV] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	client, err := NewClient(cfg.ProjectDir, cfg.Timeout, logger)
	if err != nil {
		return nil, err
	}

	return &Manager{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// Client returns the underlying uv client
func (m *Manager) Client() *Client {
	return m.client
}

// VenvPath returns the absolute virtual environment directory
func (m *Manager) VenvPath() string {
	return filepath.Join(m.config.ProjectDir, m.config.VenvDir)
}

// Python returns the venv interpreter path
func (m *Manager) Python() string {
	return VenvPython(m.VenvPath())
}

// VenvExists reports whether the virtual environment is already set up
func (m *Manager) VenvExists() bool {
	_, err := os.Stat(m.Python())
	return err == nil
}

// EnsureVenv creates the virtual environment if it does not exist.
// Idempotent: an existing venv is left untouched.
func (m *Manager) EnsureVenv(ctx context.Context) (created bool, err error) {
	if m.VenvExists() {
		m.logger.Printf("Virtual environment already exists at %s", m.VenvPath())
		return false, nil
	}

	m.logger.Printf("Creating virtual environment at %s", m.VenvPath())
	if err := m.client.CreateVenv(ctx, m.config.VenvDir, m.config.PythonVersion); err != nil {
		return false, err
	}

	// The interpreter must exist after creation, otherwise something
	// went wrong that uv did not report as an error.
	if !m.VenvExists() {
		return false, fmt.Errorf("venv created but interpreter missing at %s", m.Python())
	}

	return true, nil
}

// InstallBuildDeps installs the Python packages the build needs
func (m *Manager) InstallBuildDeps(ctx context.Context, env []string) error {
	m.logger.Printf("Installing build dependencies: %v", BuildPackages)

	if err := m.client.PipInstall(ctx, env, BuildPackages...); err != nil {
		return fmt.Errorf("installing build dependencies: %w", err)
	}
	return nil
}

// MissingBuildDeps returns which build packages are not yet installed
func (m *Manager) MissingBuildDeps(ctx context.Context) ([]string, error) {
	installed, err := m.client.PipList(ctx)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, spec := range BuildPackages {
		if !HasPackage(installed, baseName(spec)) {
			missing = append(missing, spec)
		}
	}
	return missing, nil
}

// PackageDir asks the venv interpreter where a package is installed
func (m *Manager) PackageDir(ctx context.Context, pkg string) (string, error) {
	code := fmt.Sprintf("import os, %s; print(os.path.dirname(%s.__file__))", pkg, pkg)
	out, err := m.client.PythonCommand(ctx, nil, code)
	if err != nil {
		return "", fmt.Errorf("locating package %s: %w", pkg, err)
	}

	dir := trimOutput(out)
	if dir == "" {
		return "", fmt.Errorf("package %s reported an empty location", pkg)
	}
	return dir, nil
}
