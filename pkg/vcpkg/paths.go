// pkg/vcpkg/paths.go
package vcpkg

import (
	"path/filepath"
)

// BinDir returns the directory holding the installed ports' DLLs
func (m *Manager) BinDir() string {
	return filepath.Join(m.config.Root, "installed", m.config.Triplet, "bin")
}

// LibDir returns the directory holding the installed ports' import libraries
func (m *Manager) LibDir() string {
	return filepath.Join(m.config.Root, "installed", m.config.Triplet, "lib")
}

// ToolchainFile returns the CMake toolchain file CMake builds must use
// so find_package resolves vcpkg-installed libraries
func (m *Manager) ToolchainFile() string {
	return filepath.Join(m.config.Root, "scripts", "buildsystems", "vcpkg.cmake")
}

// Exe returns the vcpkg executable path inside the root
func (m *Manager) Exe() string {
	return filepath.Join(m.config.Root, "vcpkg.exe")
}
