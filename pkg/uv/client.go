// pkg/uv/client.go
package uv

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// Client wraps the uv executable
type Client struct {
	exe     string
	dir     string
	timeout time.Duration
	logger  *log.Logger
}

// NewClient creates a uv client. A missing uv binary is not an error
// here so prerequisite checks can still report it; invocations fail
// instead. The timeout bounds short captured commands (probes,
// listing); streamed commands run without a deadline.
func NewClient(projectDir string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	exe, _ := exec.LookPath(Executable)

	return &Client{
		exe:     exe,
		dir:     projectDir,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Name returns the tool name
func (c *Client) Name() string {
	return Executable
}

// Path returns the resolved uv executable path
func (c *Client) Path() string {
	return c.exe
}

// IsAvailable checks if uv was found on PATH
func (c *Client) IsAvailable() bool {
	return c.exe != ""
}

// Version queries `uv --version`
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.capture(ctx, nil, "--version")
	if err != nil {
		return "", err
	}
	return ParseVersion(out.Stdout)
}

// CreateVenv creates the virtual environment. pythonVersion may be
// empty to use uv's default interpreter. Streamed without a deadline:
// uv may have to download the pinned interpreter first.
func (c *Client) CreateVenv(ctx context.Context, venvDir, pythonVersion string) error {
	args := []string{"venv", venvDir}
	if pythonVersion != "" {
		args = append(args, "-p", pythonVersion)
	}

	if err := c.stream(ctx, nil, args...); err != nil {
		return fmt.Errorf("creating virtual environment: %w", err)
	}
	return nil
}

// PipInstall installs packages into the active venv via `uv pip install`
func (c *Client) PipInstall(ctx context.Context, env []string, args ...string) error {
	cmdArgs := append([]string{"pip", "install"}, args...)
	return c.stream(ctx, env, cmdArgs...)
}

// PipList returns the packages installed in the venv
func (c *Client) PipList(ctx context.Context) ([]InstalledPackage, error) {
	out, err := c.capture(ctx, nil, "pip", "list")
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	return ParsePipList(out.Stdout), nil
}

// Run executes a command inside the venv via `uv run`, streaming
// output to the console. Used for pip wheel and delvewheel invocations
// whose output the user needs to see.
func (c *Client) Run(ctx context.Context, env []string, args ...string) error {
	cmdArgs := append([]string{"run"}, args...)
	return c.stream(ctx, env, cmdArgs...)
}

// PythonCommand runs a short python -c snippet inside the venv and
// returns its stdout.
func (c *Client) PythonCommand(ctx context.Context, env []string, code string) (string, error) {
	out, err := c.capture(ctx, env, "run", "python", "-c", code)
	if err != nil {
		return "", err
	}
	return out.Stdout, nil
}

// VenvPython returns the interpreter path inside a venv directory
func VenvPython(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python")
}

// capture runs uv with a probe timeout and collects stdout/stderr
func (c *Client) capture(ctx context.Context, env []string, args ...string) (*RunResult, error) {
	if c.exe == "" {
		return nil, fmt.Errorf("'uv' not found in PATH")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	c.logger.Printf("[uv] %v", args)

	cmd := exec.CommandContext(ctx, c.exe, args...)
	cmd.Dir = c.dir
	if env != nil {
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("uv %v: %w\n%s", args, err, stderr.String())
	}

	return &RunResult{Stdout: stdout.String(), Stderr: stderr.String()}, nil
}

// stream runs uv with output wired to the console
func (c *Client) stream(ctx context.Context, env []string, args ...string) error {
	if c.exe == "" {
		return fmt.Errorf("'uv' not found in PATH")
	}
	c.logger.Printf("[uv] %v", args)

	cmd := exec.CommandContext(ctx, c.exe, args...)
	cmd.Dir = c.dir
	if env != nil {
		cmd.Env = env
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("uv %v: %w", args, err)
	}
	return nil
}
