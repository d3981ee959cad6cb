package buildenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slycot-tools/slybuild/pkg/mingw"
)

func testToolchain(binDir string) *mingw.Toolchain {
	return &mingw.Toolchain{
		Fortran: filepath.Join(binDir, "gfortran"),
		C:       filepath.Join(binDir, "gcc"),
		CXX:     filepath.Join(binDir, "g++"),
		BinDir:  binDir,
	}
}

func lookupEnv(environ []string, key string) (string, bool) {
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

func TestComposeSetsCompilerVars(t *testing.T) {
	env := New(testToolchain(t.TempDir()), `C:\vcpkg`, "x64-windows")
	vars := env.Compose()

	fc, ok := lookupEnv(vars, EnvFortranCompiler)
	require.True(t, ok)
	assert.Equal(t, "gfortran", fc)

	cc, _ := lookupEnv(vars, EnvCCompiler)
	assert.Equal(t, "gcc", cc)

	cxx, _ := lookupEnv(vars, EnvCXXCompiler)
	assert.Equal(t, "g++", cxx)

	generator, _ := lookupEnv(vars, EnvCMakeGenerator)
	assert.Equal(t, "MinGW Makefiles", generator)

	toolchainFile, _ := lookupEnv(vars, EnvToolchainFile)
	assert.Equal(t, env.ToolchainFile(), toolchainFile)

	root, _ := lookupEnv(vars, EnvVcpkgRoot)
	assert.Equal(t, `C:\vcpkg`, root)
}

func TestComposeFortranFlags(t *testing.T) {
	env := New(testToolchain(t.TempDir()), `C:\vcpkg`, "x64-windows")

	vars := env.Compose()
	_, ok := lookupEnv(vars, EnvCMakeFortranFlag)
	assert.False(t, ok, "no Fortran flags set, variable should be absent")

	env.FortranFlags = []string{"-ff2c", "-fdefault-integer-8"}
	vars = env.Compose()
	flags, ok := lookupEnv(vars, EnvCMakeFortranFlag)
	require.True(t, ok)
	assert.Equal(t, "-ff2c -fdefault-integer-8", flags)
}

func TestComposePrependsPath(t *testing.T) {
	binDir := t.TempDir()
	env := New(testToolchain(binDir), `C:\vcpkg`, "x64-windows")

	vars := env.Compose()
	path, ok := lookupEnv(vars, EnvPath)
	require.True(t, ok)

	sep := string(os.PathListSeparator)
	parts := strings.Split(path, sep)
	require.GreaterOrEqual(t, len(parts), 2)
	assert.Equal(t, env.VcpkgBinDir(), parts[0])
	assert.Equal(t, binDir, parts[1])
}

func TestComposePathIdempotent(t *testing.T) {
	binDir := t.TempDir()
	env := New(testToolchain(binDir), `C:\vcpkg`, "x64-windows")

	// Dirs already on PATH are not prepended a second time
	t.Setenv("PATH", env.VcpkgBinDir()+string(os.PathListSeparator)+binDir)

	vars := env.Compose()
	path, _ := lookupEnv(vars, EnvPath)

	assert.Equal(t, 1, strings.Count(path, env.VcpkgBinDir()))
	assert.Equal(t, 1, strings.Count(path, binDir))
}

func TestDLLSearchPathOrder(t *testing.T) {
	binDir := t.TempDir()
	env := New(testToolchain(binDir), `C:\vcpkg`, "x64-windows")

	paths := env.DLLSearchPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, env.VcpkgBinDir(), paths[0])
	assert.Equal(t, binDir, paths[1])
}

func TestFindDLL(t *testing.T) {
	vcpkgRoot := t.TempDir()
	mingwBin := t.TempDir()

	env := New(testToolchain(mingwBin), vcpkgRoot, "x64-windows")

	vcpkgBin := env.VcpkgBinDir()
	require.NoError(t, os.MkdirAll(vcpkgBin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(vcpkgBin, "openblas.dll"), []byte("blas"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(mingwBin, "libgfortran-5.dll"), []byte("fortran"), 0644))

	blas := env.FindDLL("openblas.dll")
	require.NotNil(t, blas)
	assert.Equal(t, filepath.Join(vcpkgBin, "openblas.dll"), blas.Path)
	assert.EqualValues(t, 4, blas.Size)

	fortran := env.FindDLL("libgfortran-5.dll")
	require.NotNil(t, fortran)
	assert.Equal(t, mingwBin, filepath.Dir(fortran.Path))

	assert.Nil(t, env.FindDLL("liblapack.dll"))
}

func TestFindDLLs(t *testing.T) {
	vcpkgRoot := t.TempDir()
	mingwBin := t.TempDir()

	env := New(testToolchain(mingwBin), vcpkgRoot, "x64-windows")

	vcpkgBin := env.VcpkgBinDir()
	require.NoError(t, os.MkdirAll(vcpkgBin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(vcpkgBin, "openblas.dll"), []byte("x"), 0644))

	found, missing := env.FindDLLs([]string{"openblas.dll", "liblapack.dll"})
	require.Len(t, found, 1)
	assert.Equal(t, "openblas.dll", found[0].Name)
	assert.Equal(t, []string{"liblapack.dll"}, missing)
}
