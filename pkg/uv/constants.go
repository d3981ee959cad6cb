// pkg/uv/constants.go
package uv

// Executable is the uv binary name resolved through PATH
const Executable = "uv"

// DefaultVenvDir is the project-relative virtual environment directory
const DefaultVenvDir = ".venv"

// BuildPackages are the Python packages the Slycot build itself needs.
// NumPy is pinned below 2.0: Slycot wheels built against 1.x ABI crash
// when imported under NumPy 2.x.
var BuildPackages = []string{
	"numpy<2.0",
	"scipy",
	"scikit-build",
	"wheel",
	"pytest",
	"delvewheel",
}
