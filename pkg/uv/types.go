// pkg/uv/types.go
package uv

import (
	"log"
	"time"
)

// Config holds uv wrapper configuration
type Config struct {
	// ProjectDir is the directory uv commands run in
	ProjectDir string

	// VenvDir is the virtual environment directory relative to ProjectDir
	VenvDir string

	// PythonVersion pins the interpreter for venv creation (optional)
	PythonVersion string

	// Timeout for short commands (probes, listing). Installs and
	// builds run without a deadline.
	Timeout time.Duration

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger
}

// InstalledPackage is one row of `uv pip list` output
type InstalledPackage struct {
	Name    string
	Version string
}

// RunResult captures the output of a finished child process
type RunResult struct {
	Stdout string
	Stderr string
}
