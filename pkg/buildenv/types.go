// pkg/buildenv/types.go
package buildenv

import (
	"github.com/slycot-tools/slybuild/pkg/mingw"
)

// Environment describes a fully resolved build environment
type Environment struct {
	Toolchain    *mingw.Toolchain // Resolved MinGW compilers
	VcpkgRoot    string           // vcpkg installation root
	Triplet      string           // vcpkg target triplet
	FortranFlags []string         // Extra CMake Fortran flags
}

// DLL is a dynamic library resolved to an absolute path
type DLL struct {
	Name string // File name (e.g., "openblas.dll")
	Path string // Absolute path
	Size int64  // File size in bytes
}
