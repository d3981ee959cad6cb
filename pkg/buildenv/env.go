// pkg/buildenv/env.go
package buildenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slycot-tools/slybuild/pkg/mingw"
)

// New creates a build environment from resolved components
func New(toolchain *mingw.Toolchain, vcpkgRoot, triplet string) *Environment {
	return &Environment{
		Toolchain: toolchain,
		VcpkgRoot: vcpkgRoot,
		Triplet:   triplet,
	}
}

// VcpkgBinDir returns the directory the BLAS/LAPACK DLLs live in
func (e *Environment) VcpkgBinDir() string {
	return filepath.Join(e.VcpkgRoot, "installed", e.Triplet, "bin")
}

// ToolchainFile returns the vcpkg CMake toolchain file path
func (e *Environment) ToolchainFile() string {
	return filepath.Join(e.VcpkgRoot, "scripts", "buildsystems", "vcpkg.cmake")
}

// Compose returns the full environment variable set for a build
// process: the current process environment plus the compiler and
// CMake settings, with the DLL directories prepended to PATH.
func (e *Environment) Compose() []string {
	// Bare compiler names, not absolute paths: the bin directory is
	// prepended to PATH below and CMake handles short names more
	// gracefully than backslashed paths.
	vars := setEnv(os.Environ(), map[string]string{
		EnvFortranCompiler: mingw.FortranCompiler,
		EnvCCompiler:       mingw.CCompiler,
		EnvCXXCompiler:     mingw.CXXCompiler,
		EnvCMakeGenerator:  CMakeGenerator,
		EnvToolchainFile:   e.ToolchainFile(),
		EnvVcpkgRoot:       e.VcpkgRoot,
	})

	if len(e.FortranFlags) > 0 {
		vars = setEnv(vars, map[string]string{
			EnvCMakeFortranFlag: strings.Join(e.FortranFlags, " "),
		})
	}

	return prependPath(vars, e.VcpkgBinDir(), e.Toolchain.BinDir)
}

// DLLSearchPaths returns the directories searched for runtime DLLs,
// in priority order
func (e *Environment) DLLSearchPaths() []string {
	return []string{e.VcpkgBinDir(), e.Toolchain.BinDir}
}

// setEnv overrides or appends KEY=VALUE pairs in an environ slice
func setEnv(environ []string, vars map[string]string) []string {
	result := make([]string, 0, len(environ)+len(vars))
	seen := make(map[string]bool, len(vars))

	for _, kv := range environ {
		key, _, ok := strings.Cut(kv, "=")
		if !ok {
			result = append(result, kv)
			continue
		}
		if value, override := vars[key]; override {
			result = append(result, key+"="+value)
			seen[key] = true
			continue
		}
		result = append(result, kv)
	}

	for key, value := range vars {
		if !seen[key] {
			result = append(result, key+"="+value)
		}
	}

	return result
}

// prependPath puts dirs in front of PATH, skipping dirs already present
func prependPath(environ []string, dirs ...string) []string {
	sep := string(os.PathListSeparator)

	for i, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.EqualFold(key, EnvPath) {
			continue
		}

		parts := strings.Split(value, sep)
		var prefix []string
		for _, dir := range dirs {
			if dir == "" || containsDir(parts, dir) {
				continue
			}
			prefix = append(prefix, dir)
		}

		if len(prefix) > 0 {
			environ[i] = fmt.Sprintf("%s=%s%s%s", key, strings.Join(prefix, sep), sep, value)
		}
		return environ
	}

	// No PATH in the environment at all; synthesize one
	return append(environ, EnvPath+"="+strings.Join(dirs, sep))
}

func containsDir(parts []string, dir string) bool {
	for _, p := range parts {
		if strings.EqualFold(filepath.Clean(p), filepath.Clean(dir)) {
			return true
		}
	}
	return false
}
