// pkg/uv/parser.go
package uv

import (
	"fmt"
	"strings"
)

// ParseVersion extracts the version number from `uv --version` output,
// e.g. "uv 0.4.18 (hash 2024-10-01)" -> "0.4.18"
func ParseVersion(output string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 2 || fields[0] != "uv" {
		return "", fmt.Errorf("unexpected uv version output: %q", output)
	}
	return fields[1], nil
}

// ParsePipList parses `uv pip list` tabular output:
//
//	Package Version
//	------- -------
//	numpy   1.26.4
func ParsePipList(output string) []InstalledPackage {
	var packages []InstalledPackage

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		// Skip the header and separator rows
		if strings.EqualFold(fields[0], "package") || strings.HasPrefix(fields[0], "---") {
			continue
		}

		packages = append(packages, InstalledPackage{
			Name:    fields[0],
			Version: fields[1],
		})
	}

	return packages
}

// baseName strips a version constraint from a requirement spec,
// e.g. "numpy<2.0" -> "numpy"
func baseName(spec string) string {
	for i, r := range spec {
		switch r {
		case '<', '>', '=', '!', '~', '[', ' ':
			return spec[:i]
		}
	}
	return spec
}

// trimOutput normalizes captured interpreter output to a single line
func trimOutput(out string) string {
	return strings.TrimSpace(strings.ReplaceAll(out, "\r", ""))
}

// HasPackage reports whether the list contains the named package.
// Matching is case-insensitive since pip normalizes names.
func HasPackage(packages []InstalledPackage, name string) bool {
	for _, pkg := range packages {
		if strings.EqualFold(pkg.Name, name) {
			return true
		}
	}
	return false
}
