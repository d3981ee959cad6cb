package uv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	version, err := ParseVersion("uv 0.4.18 (42f9f70c1 2024-10-01)\n")
	require.NoError(t, err)
	assert.Equal(t, "0.4.18", version)
}

func TestParseVersionPlain(t *testing.T) {
	version, err := ParseVersion("uv 0.1.24")
	require.NoError(t, err)
	assert.Equal(t, "0.1.24", version)
}

func TestParseVersionGarbage(t *testing.T) {
	_, err := ParseVersion("command not found")
	assert.Error(t, err)

	_, err = ParseVersion("")
	assert.Error(t, err)
}

func TestParsePipList(t *testing.T) {
	output := `Package      Version
------------ -------
numpy        1.26.4
scikit-build 0.17.6
scipy        1.11.4
`

	packages := ParsePipList(output)
	require.Len(t, packages, 3)

	assert.Equal(t, InstalledPackage{Name: "numpy", Version: "1.26.4"}, packages[0])
	assert.Equal(t, InstalledPackage{Name: "scikit-build", Version: "0.17.6"}, packages[1])
	assert.Equal(t, InstalledPackage{Name: "scipy", Version: "1.11.4"}, packages[2])
}

func TestParsePipListWindowsLineEndings(t *testing.T) {
	output := "Package Version\r\n------- -------\r\ndelvewheel 1.5.4\r\n"

	packages := ParsePipList(output)
	require.Len(t, packages, 1)
	assert.Equal(t, "delvewheel", packages[0].Name)
}

func TestParsePipListEmpty(t *testing.T) {
	assert.Empty(t, ParsePipList(""))
	assert.Empty(t, ParsePipList("Package Version\n------- -------\n"))
}

func TestHasPackage(t *testing.T) {
	packages := []InstalledPackage{
		{Name: "NumPy", Version: "1.26.4"},
		{Name: "pytest", Version: "8.0.0"},
	}

	assert.True(t, HasPackage(packages, "numpy"))
	assert.True(t, HasPackage(packages, "pytest"))
	assert.False(t, HasPackage(packages, "scipy"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "numpy", baseName("numpy<2.0"))
	assert.Equal(t, "scipy", baseName("scipy"))
	assert.Equal(t, "scikit-build", baseName("scikit-build>=0.17"))
	assert.Equal(t, "pytest", baseName("pytest==8.0.0"))
	assert.Equal(t, "foo", baseName("foo[extra]"))
}
