package vcpkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	output := `lapack-reference:x64-windows                       3.11.0#3         LAPACK linear algebra library implemented in refe...
openblas:x64-windows                               0.3.26#1         OpenBLAS is an optimized BLAS library based on Go...
vcpkg-cmake:x64-windows                            2024-04-18
`

	ports := ParseList(output)
	require.Len(t, ports, 3)

	assert.Equal(t, "lapack-reference", ports[0].Name)
	assert.Equal(t, "x64-windows", ports[0].Triplet)
	assert.Equal(t, "3.11.0#3", ports[0].Version)
	assert.Contains(t, ports[0].Description, "LAPACK linear algebra")

	assert.Equal(t, "openblas", ports[1].Name)
	assert.Equal(t, "0.3.26#1", ports[1].Version)

	// No description column
	assert.Equal(t, "vcpkg-cmake", ports[2].Name)
	assert.Empty(t, ports[2].Description)
}

func TestParseListSkipsFeatures(t *testing.T) {
	output := `openblas:x64-windows          0.3.26#1    OpenBLAS
openblas[threads]:x64-windows               run multithreaded
`

	ports := ParseList(output)
	require.Len(t, ports, 1)
	assert.Equal(t, "openblas", ports[0].Name)
}

func TestParseListEmpty(t *testing.T) {
	assert.Empty(t, ParseList(""))
	assert.Empty(t, ParseList("\r\n\r\n"))
}

func TestFindPort(t *testing.T) {
	ports := []Port{
		{Name: "openblas", Triplet: "x64-windows", Version: "0.3.26#1"},
		{Name: "openblas", Triplet: "x86-windows", Version: "0.3.26#1"},
	}

	port := FindPort(ports, "openblas", "x64-windows")
	require.NotNil(t, port)
	assert.Equal(t, "x64-windows", port.Triplet)

	assert.Nil(t, FindPort(ports, "openblas", "arm64-windows"))
	assert.Nil(t, FindPort(ports, "lapack-reference", "x64-windows"))
}

func TestParseVersion(t *testing.T) {
	output := `vcpkg package management program version 2024-01-11-710a3116bbd615864eef5f9010af178034cb9b44

See LICENSE.txt for license information.
`
	version, err := ParseVersion(output)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11-710a3116bbd615864eef5f9010af178034cb9b44", version)
}

func TestParseVersionGarbage(t *testing.T) {
	_, err := ParseVersion("")
	assert.Error(t, err)

	_, err = ParseVersion("unexpected output")
	assert.Error(t, err)
}
