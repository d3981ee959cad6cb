// pkg/mingw/platform.go
package mingw

import (
	"fmt"
	"runtime"
)

// DetectPlatform checks if we're on Windows
func DetectPlatform() error {
	if runtime.GOOS != "windows" {
		return fmt.Errorf("the MinGW-w64 toolchain setup only supports Windows, got: %s", runtime.GOOS)
	}
	return nil
}
