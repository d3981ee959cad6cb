// pkg/mingw/constants.go
package mingw

import "time"

// Compiler executable names from a MinGW-w64 distribution
const (
	FortranCompiler = "gfortran"
	CCompiler       = "gcc"
	CXXCompiler     = "g++"
)

// probeTimeout bounds `--version` queries so a wedged compiler cannot
// hang a prerequisite check
const probeTimeout = 2 * time.Minute

// RuntimeDLLs are the MinGW runtime libraries a gfortran-built
// extension module loads at runtime. They live in the toolchain's bin
// directory and must ship next to the extension on machines without
// MinGW installed.
var RuntimeDLLs = []string{
	"libgfortran-5.dll",
	"libgcc_s_seh-1.dll",
	"libwinpthread-1.dll",
	"libquadmath-0.dll",
	"libstdc++-6.dll",
}
