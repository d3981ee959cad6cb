// pkg/vcpkg/parser.go
package vcpkg

import (
	"fmt"
	"strings"
)

// ParseVersion extracts the version stamp from `vcpkg version` output:
//
//	vcpkg package management program version 2024-01-11-710a3116...
func ParseVersion(output string) (string, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty vcpkg version output")
	}

	for i, f := range fields {
		if f == "version" && i+1 < len(fields) {
			return fields[i+1], nil
		}
	}
	return "", fmt.Errorf("unexpected vcpkg version output: %q", line)
}

// ParseList parses `vcpkg list` output. Each line looks like:
//
//	openblas:x64-windows          0.3.26#1    OpenBLAS is an optimized BLAS library...
//	lapack-reference:x64-windows  3.11.0#3    LAPACK linear algebra library...
//
// Feature lines (openblas[threads]:x64-windows) are folded into their
// parent port.
func ParseList(output string) []Port {
	var ports []Port

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		name, triplet, ok := strings.Cut(fields[0], ":")
		if !ok {
			continue
		}

		// Feature entries carry no version of their own
		if idx := strings.IndexByte(name, '['); idx >= 0 {
			continue
		}

		port := Port{
			Name:    name,
			Triplet: triplet,
			Version: fields[1],
		}
		if len(fields) > 2 {
			port.Description = strings.Join(fields[2:], " ")
		}

		ports = append(ports, port)
	}

	return ports
}

// FindPort returns the installed port matching name and triplet, or nil
func FindPort(ports []Port, name, triplet string) *Port {
	for i := range ports {
		if ports[i].Name == name && ports[i].Triplet == triplet {
			return &ports[i]
		}
	}
	return nil
}
