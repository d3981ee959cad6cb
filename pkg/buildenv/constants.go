// pkg/buildenv/constants.go
package buildenv

// Environment variable names the build pipeline sets
const (
	EnvFortranCompiler  = "FC"
	EnvCCompiler        = "CC"
	EnvCXXCompiler      = "CXX"
	EnvCMakeGenerator   = "CMAKE_GENERATOR"
	EnvToolchainFile    = "CMAKE_TOOLCHAIN_FILE"
	EnvVcpkgRoot        = "VCPKG_ROOT"
	EnvCMakeFortranFlag = "CMAKE_Fortran_FLAGS"
	EnvPath             = "PATH"
)

// CMakeGenerator forces CMake away from Visual Studio. The Fortran
// sources only build with the MinGW make flow.
const CMakeGenerator = "MinGW Makefiles"
