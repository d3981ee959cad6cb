// errors.go
package slybuild

import (
	"errors"
	"fmt"
)

var (
	// ErrToolNotFound indicates a required build tool is missing from PATH
	ErrToolNotFound = errors.New("tool not found")

	// ErrPlatformNotSupported indicates the platform is not supported
	ErrPlatformNotSupported = errors.New("platform not supported")

	// ErrDLLNotFound indicates a required runtime DLL is missing
	ErrDLLNotFound = errors.New("dll not found")

	// ErrWheelNotFound indicates no wheel was produced by the build
	ErrWheelNotFound = errors.New("wheel not found")

	// ErrSmokeTestFailed indicates the post-install check failed
	ErrSmokeTestFailed = errors.New("smoke test failed")

	// ErrHashMismatch indicates a checksum verification failure
	ErrHashMismatch = errors.New("hash mismatch")
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Pipeline step that failed
	Tool string // External tool involved, if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Tool, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
