// pkg/wheel/glob.go
package wheel

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindWheel locates the wheel for a package in dir. If several builds
// accumulated, the most recently modified one wins. A successful build
// that produced no wheel is an error.
func FindWheel(dir, pkg string) (string, error) {
	pattern := filepath.Join(dir, pkg+"-*.whl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("globbing %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no %s wheel found in %s", pkg, dir)
	}

	newest := matches[0]
	var newestTime int64
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); mod > newestTime {
			newestTime = mod
			newest = match
		}
	}

	return newest, nil
}
