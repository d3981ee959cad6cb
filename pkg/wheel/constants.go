// pkg/wheel/constants.go
package wheel

import (
	"github.com/slycot-tools/slybuild/pkg/mingw"
	"github.com/slycot-tools/slybuild/pkg/vcpkg"
)

// PackageName is the Python distribution this pipeline builds
const PackageName = "slycot"

// DefaultWheelDir collects wheels produced by `pip wheel`
const DefaultWheelDir = "wheels"

// WheelhouseDir is where delvewheel writes repaired wheels
const WheelhouseDir = "wheelhouse"

// RequiredDLLs returns every native library the installed extension
// loads at runtime: BLAS/LAPACK from vcpkg plus the MinGW runtime.
func RequiredDLLs() []string {
	dlls := make([]string, 0, len(vcpkg.BlasDLLs)+len(mingw.RuntimeDLLs))
	dlls = append(dlls, vcpkg.BlasDLLs...)
	dlls = append(dlls, mingw.RuntimeDLLs...)
	return dlls
}
