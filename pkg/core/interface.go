// pkg/core/interface.go
package core

import "context"

// Tool defines the common interface for all external tool wrappers
type Tool interface {
	// Name returns the tool name (e.g., "uv", "gfortran", "vcpkg")
	Name() string

	// Path returns the resolved executable path, or "" if not found
	Path() string

	// IsAvailable checks if the tool is present on this system
	IsAvailable() bool

	// Version queries the installed tool version
	Version(ctx context.Context) (string, error)
}

// Probe is the result of checking a single prerequisite
type Probe struct {
	Name    string // Tool or file name
	Path    string // Resolved path if found
	Version string // Version string if queried
	Found   bool   // Whether the prerequisite is satisfied
	Hint    string // Remediation hint when not found
}
