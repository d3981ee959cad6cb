// pkg/buildenv/doc.go
package buildenv

/*
Package buildenv composes the environment a MinGW/CMake Slycot build
runs under.

It handles:
  - Selecting the Fortran/C/C++ compilers (FC, CC, CXX)
  - Pointing CMake at the vcpkg toolchain file and MinGW generator
  - Prepending the vcpkg and MinGW bin directories to PATH so the
    build and delvewheel can resolve native DLLs
  - Finding individual DLLs across those directories

Basic Usage:

    import "github.com/slycot-tools/slybuild/pkg/buildenv"

    env := buildenv.New(toolchain, vcpkgRoot, triplet)

    // Full environment for a child build process
    vars := env.Compose()

    // Find a DLL the built extension will need
    dll := env.FindDLL("openblas.dll")
    if dll != nil {
        fmt.Printf("Found: %s at %s\n", dll.Name, dll.Path)
    }

The PATH prepend matters: delvewheel scans PATH to resolve the DLLs it
bundles into the repaired wheel, so the vcpkg bin directory has to come
before any system copy of the same libraries.
*/
