// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64
	Available []string // Build tools found on PATH
	Missing   []string // Build tools not found
}

// buildTools are the executables a full Slycot build needs on PATH.
var buildTools = []string{"uv", "gfortran", "gcc", "g++", "vcpkg"}

// Detect detects the current platform and which build tools are available
func Detect() (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
		Missing:   []string{},
	}

	for _, tool := range buildTools {
		if commandExists(tool) {
			p.Available = append(p.Available, tool)
		} else {
			p.Missing = append(p.Missing, tool)
		}
	}

	return p, nil
}

// RequireWindows returns an error unless running on Windows.
// The MinGW cross-compiler setup this tool drives only exists there.
func (p *Platform) RequireWindows() error {
	if p.OS != "windows" {
		return fmt.Errorf("this tool automates a Windows build, got: %s", p.OS)
	}
	return nil
}

// Complete reports whether every required build tool was found
func (p *Platform) Complete() bool {
	return len(p.Missing) == 0
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, missing: %v)",
		p.OS, p.Arch, p.Available, p.Missing)
}
