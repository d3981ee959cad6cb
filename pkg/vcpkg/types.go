// pkg/vcpkg/types.go
package vcpkg

import (
	"log"
	"time"
)

// Config holds vcpkg wrapper configuration
type Config struct {
	// Root is the vcpkg installation root (VCPKG_ROOT)
	Root string

	// Triplet is the target triplet for installs and DLL lookups
	Triplet string

	// Timeout for list/probe commands. Port installs build from
	// source and run without a deadline.
	Timeout time.Duration

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger
}

// Port is one row of `vcpkg list` output
type Port struct {
	Name        string // Port name (e.g., "openblas")
	Triplet     string // Triplet the port is installed for
	Version     string // Installed version (e.g., "0.3.26#1")
	Description string // Port description, possibly truncated
}
