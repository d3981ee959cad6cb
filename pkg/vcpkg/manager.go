// pkg/vcpkg/manager.go
package vcpkg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Manager wraps the vcpkg executable and its installed tree
type Manager struct {
	config *Config
	logger *log.Logger
}

// NewManager creates a new vcpkg manager
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.Root == "" {
		if root := os.Getenv("VCPKG_ROOT"); root != "" {
			cfg.Root = root
		} else {
			cfg.Root = DefaultRoot
		}
	}
	if cfg.Triplet == "" {
		cfg.Triplet = DefaultTriplet
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[VCPKG] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	m := &Manager{
		config: cfg,
		logger: logger,
	}

	if cfg.Debug {
		m.logger.Printf("Initialized vcpkg manager")
		m.logger.Printf("  Root: %s", cfg.Root)
		m.logger.Printf("  Triplet: %s", cfg.Triplet)
	}

	return m
}

// Name returns the tool name
func (m *Manager) Name() string {
	return Executable
}

// Path returns the vcpkg executable path if present, or "" otherwise
func (m *Manager) Path() string {
	exe := m.Exe()
	if _, err := os.Stat(exe); err == nil {
		return exe
	}
	if path, err := exec.LookPath(Executable); err == nil {
		return path
	}
	return ""
}

// IsAvailable checks if vcpkg is installed
func (m *Manager) IsAvailable() bool {
	return m.Path() != ""
}

// Version queries `vcpkg version`
func (m *Manager) Version(ctx context.Context) (string, error) {
	out, err := m.run(ctx, "version")
	if err != nil {
		return "", err
	}
	return ParseVersion(out)
}

// Triplet returns the configured target triplet
func (m *Manager) Triplet() string {
	return m.config.Triplet
}

// Root returns the configured vcpkg root
func (m *Manager) Root() string {
	return m.config.Root
}

// List returns the installed ports
func (m *Manager) List(ctx context.Context) ([]Port, error) {
	out, err := m.run(ctx, "list")
	if err != nil {
		return nil, fmt.Errorf("listing ports: %w", err)
	}
	return ParseList(out), nil
}

// Install installs the given ports for the configured triplet,
// skipping ports that `vcpkg list` already reports as installed.
func (m *Manager) Install(ctx context.Context, ports []string) error {
	if len(ports) == 0 {
		ports = DefaultPorts
	}

	installed, err := m.List(ctx)
	if err != nil {
		return err
	}

	var pending []string
	for _, name := range ports {
		if FindPort(installed, name, m.config.Triplet) != nil {
			m.logger.Printf("Port %s:%s already installed", name, m.config.Triplet)
			continue
		}
		pending = append(pending, fmt.Sprintf("%s:%s", name, m.config.Triplet))
	}

	if len(pending) == 0 {
		return nil
	}

	m.logger.Printf("Installing ports: %v", pending)

	// Port installs compile from source; stream the output and run
	// without a deadline.
	args := append([]string{"install"}, pending...)
	cmd := exec.CommandContext(ctx, m.Path(), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("vcpkg install %v: %w", pending, err)
	}
	return nil
}

// CheckDLLs verifies the BLAS/LAPACK runtime libraries exist in the
// triplet bin directory. Returns the missing file names.
func (m *Manager) CheckDLLs() (missing []string) {
	binDir := m.BinDir()
	for _, dll := range BlasDLLs {
		if _, err := os.Stat(filepath.Join(binDir, dll)); err != nil {
			missing = append(missing, dll)
		}
	}
	return missing
}

// run executes vcpkg with a probe timeout and captured output
func (m *Manager) run(ctx context.Context, args ...string) (string, error) {
	exe := m.Path()
	if exe == "" {
		return "", fmt.Errorf("vcpkg not found at %s or in PATH", m.Exe())
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	m.logger.Printf("[vcpkg] %v", args)

	cmd := exec.CommandContext(ctx, exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("vcpkg %v: %w\n%s", args, err, stderr.String())
	}

	return stdout.String(), nil
}
