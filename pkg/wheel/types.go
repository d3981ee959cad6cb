// pkg/wheel/types.go
package wheel

import (
	"log"
)

// Config holds wheel build configuration
type Config struct {
	// ProjectDir is the Slycot source checkout
	ProjectDir string

	// WheelDir collects wheels relative to ProjectDir
	WheelDir string

	// KeepWheelhouse keeps the repaired wheelhouse/ after cleanup
	KeepWheelhouse bool

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger
}

// BuildOptions configures a single wheel build
type BuildOptions struct {
	// FortranFlags are extra CMake Fortran flags
	FortranFlags []string

	// NoBuildIsolation reuses the venv's scikit-build instead of a
	// throwaway build environment
	NoBuildIsolation bool
}
