// pkg/buildenv/library.go
package buildenv

import (
	"os"
	"path/filepath"
)

// FindDLL searches the DLL search paths for a file by exact name.
// Returns the first match found, or nil.
func (e *Environment) FindDLL(name string) *DLL {
	for _, dir := range e.DLLSearchPaths() {
		fullPath := filepath.Join(dir, name)

		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}

		return &DLL{
			Name: name,
			Path: fullPath,
			Size: info.Size(),
		}
	}

	return nil
}

// FindDLLs resolves a list of DLL names. Found libraries come back in
// input order; names with no match are returned separately.
func (e *Environment) FindDLLs(names []string) (found []DLL, missing []string) {
	for _, name := range names {
		dll := e.FindDLL(name)
		if dll == nil {
			missing = append(missing, name)
			continue
		}
		found = append(found, *dll)
	}
	return found, missing
}
