// pkg/mingw/detect.go
package mingw

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Detect resolves the MinGW-w64 toolchain from PATH. All three
// compilers must come from the same bin directory; a mixed setup
// (e.g. MSYS2 gcc with a stray gfortran) produces link errors that
// are much harder to diagnose later.
func Detect() (*Toolchain, error) {
	fortran, err := exec.LookPath(FortranCompiler)
	if err != nil {
		return nil, fmt.Errorf("'%s' not found in PATH: %w", FortranCompiler, err)
	}

	cc, err := exec.LookPath(CCompiler)
	if err != nil {
		return nil, fmt.Errorf("'%s' not found in PATH: %w", CCompiler, err)
	}

	cxx, err := exec.LookPath(CXXCompiler)
	if err != nil {
		return nil, fmt.Errorf("'%s' not found in PATH: %w", CXXCompiler, err)
	}

	binDir := filepath.Dir(fortran)
	if filepath.Dir(cc) != binDir {
		return nil, fmt.Errorf("gcc (%s) and gfortran (%s) come from different toolchains", cc, fortran)
	}
	if filepath.Dir(cxx) != binDir {
		return nil, fmt.Errorf("g++ (%s) and gfortran (%s) come from different toolchains", cxx, fortran)
	}

	return &Toolchain{
		Fortran: fortran,
		C:       cc,
		CXX:     cxx,
		BinDir:  binDir,
	}, nil
}

// NewCompiler resolves a single compiler by name
func NewCompiler(name string) *Compiler {
	path, _ := exec.LookPath(name)
	return &Compiler{name: name, path: path}
}

// Name returns the compiler executable name
func (c *Compiler) Name() string {
	return c.name
}

// Path returns the resolved path, or "" if the compiler is missing
func (c *Compiler) Path() string {
	return c.path
}

// IsAvailable checks if the compiler was found on PATH
func (c *Compiler) IsAvailable() bool {
	return c.path != ""
}

// Version queries `<compiler> --version` and extracts the release number
func (c *Compiler) Version(ctx context.Context) (string, error) {
	if c.path == "" {
		return "", fmt.Errorf("%s not found", c.name)
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.path, "--version")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s --version: %w", c.name, err)
	}

	return ParseGCCVersion(stdout.String())
}
