// pkg/vcpkg/platform.go
package vcpkg

import (
	"fmt"
	"runtime"
)

// DetectPlatform checks if we're on Windows. The DLL layout this
// package assumes (installed/<triplet>/bin) is Windows-specific.
func DetectPlatform() error {
	if runtime.GOOS != "windows" {
		return fmt.Errorf("the vcpkg DLL layout only supports Windows, got: %s", runtime.GOOS)
	}
	return nil
}
