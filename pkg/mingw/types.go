// pkg/mingw/types.go
package mingw

// Toolchain holds the resolved MinGW-w64 compiler paths
type Toolchain struct {
	Fortran string // Absolute path to gfortran
	C       string // Absolute path to gcc
	CXX     string // Absolute path to g++
	BinDir  string // Directory containing the compilers and runtime DLLs
}

// Compiler is a single resolved compiler executable
type Compiler struct {
	name string
	path string
}
