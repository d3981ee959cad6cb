// pkg/vcpkg/constants.go
package vcpkg

// DefaultRoot is the conventional vcpkg checkout location on Windows
const DefaultRoot = `C:\vcpkg`

// DefaultTriplet targets 64-bit dynamic-linking Windows builds
const DefaultTriplet = "x64-windows"

// Executable is the vcpkg binary name
const Executable = "vcpkg"

// DefaultPorts are the linear algebra ports a Slycot build links against
var DefaultPorts = []string{
	"openblas",
	"lapack-reference",
}

// BlasDLLs are the shared libraries the installed ports provide. Their
// presence in the triplet bin directory is how we verify the ports are
// actually usable, not just claimed by `vcpkg list`.
var BlasDLLs = []string{
	"openblas.dll",
	"liblapack.dll",
}
