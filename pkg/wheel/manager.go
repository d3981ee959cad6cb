// pkg/wheel/manager.go
package wheel

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/slycot-tools/slybuild/pkg/buildenv"
	"github.com/slycot-tools/slybuild/pkg/uv"
)

// Manager builds, repairs and installs the Slycot wheel
type Manager struct {
	uv     *uv.Manager
	config *Config
	logger *log.Logger
}

// NewManager creates a new wheel manager on top of an uv manager
func NewManager(uvManager *uv.Manager, cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = "."
	}
	if cfg.WheelDir == "" {
		cfg.WheelDir = DefaultWheelDir
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[WHEEL] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Manager{
		uv:     uvManager,
		config: cfg,
		logger: logger,
	}
}

// WheelDir returns the absolute wheel output directory
func (m *Manager) WheelDir() string {
	return filepath.Join(m.config.ProjectDir, m.config.WheelDir)
}

// Wheelhouse returns the absolute repaired-wheel directory
func (m *Manager) Wheelhouse() string {
	return filepath.Join(m.config.ProjectDir, WheelhouseDir)
}

// Build builds the Slycot wheel from source under the given build
// environment and returns the path to the produced wheel.
func (m *Manager) Build(ctx context.Context, env *buildenv.Environment, opts *BuildOptions) (string, error) {
	if opts == nil {
		opts = &BuildOptions{}
	}

	m.logger.Printf("Starting wheel build for %s", PackageName)
	m.logger.Printf("  WheelDir: %s", m.WheelDir())
	m.logger.Printf("  Toolchain: %s", env.Toolchain.BinDir)
	m.logger.Printf("  Vcpkg: %s (%s)", env.VcpkgRoot, env.Triplet)

	if err := os.MkdirAll(m.WheelDir(), 0755); err != nil {
		return "", fmt.Errorf("creating wheel directory: %w", err)
	}

	if len(opts.FortranFlags) > 0 {
		env.FortranFlags = opts.FortranFlags
	}
	vars := env.Compose()

	// pip wheel builds only the requested package; its Python deps
	// are already in the venv, pulling them again just slows the
	// build down.
	args := []string{
		"pip", "wheel", ".",
		"--wheel-dir=" + m.config.WheelDir,
		"--no-deps",
	}
	if opts.NoBuildIsolation {
		args = append(args, "--no-build-isolation")
	}
	if len(env.FortranFlags) > 0 {
		args = append(args, "--config-settings=cmake.define.CMAKE_Fortran_FLAGS="+strings.Join(env.FortranFlags, " "))
	}

	m.logger.Printf("Step 1: Building from source...")
	if err := m.uv.Client().Run(ctx, vars, args...); err != nil {
		return "", fmt.Errorf("building wheel: %w", err)
	}

	m.logger.Printf("Step 2: Locating built wheel...")
	wheelPath, err := FindWheel(m.WheelDir(), PackageName)
	if err != nil {
		return "", err
	}
	m.logger.Printf("  ✓ Wheel built: %s", wheelPath)

	return wheelPath, nil
}

// Install installs a wheel file into the venv
func (m *Manager) Install(ctx context.Context, wheelPath string) error {
	m.logger.Printf("Installing wheel: %s", wheelPath)

	if _, err := os.Stat(wheelPath); err != nil {
		return fmt.Errorf("wheel not found: %w", err)
	}

	if err := m.uv.Client().PipInstall(ctx, nil, "--force-reinstall", "--no-deps", wheelPath); err != nil {
		return fmt.Errorf("installing wheel: %w", err)
	}
	return nil
}

// Clean removes the intermediate build directories. The repaired
// wheelhouse survives when KeepWheelhouse is set.
func (m *Manager) Clean() error {
	dirs := []string{m.WheelDir()}
	if !m.config.KeepWheelhouse {
		dirs = append(dirs, m.Wheelhouse())
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		m.logger.Printf("Removing %s", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}
