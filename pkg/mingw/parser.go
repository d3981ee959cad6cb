// pkg/mingw/parser.go
package mingw

import (
	"fmt"
	"strings"
)

// ParseGCCVersion extracts the release number from GCC-style
// `--version` output. The first line looks like:
//
//	gcc (MinGW-W64 x86_64-ucrt-posix-seh, built by Brecht Sanders) 13.2.0
//	GNU Fortran (Rev6, Built by MSYS2 project) 13.2.0
//
// The version is the last whitespace-separated field of that line.
func ParseGCCVersion(output string) (string, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
	if line == "" {
		return "", fmt.Errorf("empty compiler version output")
	}

	fields := strings.Fields(line)
	version := fields[len(fields)-1]

	// The field after the parenthesized vendor blurb must look like a
	// dotted release number.
	if !strings.Contains(version, ".") {
		return "", fmt.Errorf("unexpected compiler version line: %q", line)
	}

	return version, nil
}
