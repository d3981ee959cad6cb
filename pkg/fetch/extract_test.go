package fetch

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "archive.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func writeTarGz(t *testing.T, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0755,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "archive.tar.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestExtractZip(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"mingw64/bin/gfortran.exe": "fortran",
		"mingw64/bin/gcc.exe":      "c",
		"mingw64/version.txt":      "13.2.0",
	})

	dest := filepath.Join(t.TempDir(), "toolchain")
	require.NoError(t, ExtractArchive(archive, "archive.zip", dest, 0))

	data, err := os.ReadFile(filepath.Join(dest, "mingw64", "bin", "gfortran.exe"))
	require.NoError(t, err)
	assert.Equal(t, "fortran", string(data))
}

func TestExtractZipStrip(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"mingw64/bin/gcc.exe": "c",
		"mingw64/version.txt": "13.2.0",
	})

	dest := filepath.Join(t.TempDir(), "toolchain")
	require.NoError(t, ExtractArchive(archive, "archive.zip", dest, 1))

	// The mingw64/ prefix is gone
	data, err := os.ReadFile(filepath.Join(dest, "bin", "gcc.exe"))
	require.NoError(t, err)
	assert.Equal(t, "c", string(data))

	_, err = os.Stat(filepath.Join(dest, "mingw64"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractTarGz(t *testing.T) {
	archive := writeTarGz(t, map[string]string{
		"mingw64/bin/gfortran": "fortran",
	})

	dest := filepath.Join(t.TempDir(), "toolchain")
	require.NoError(t, ExtractArchive(archive, "archive.tar.gz", dest, 1))

	data, err := os.ReadFile(filepath.Join(dest, "bin", "gfortran"))
	require.NoError(t, err)
	assert.Equal(t, "fortran", string(data))
}

func TestExtractUnsupportedFormat(t *testing.T) {
	err := ExtractArchive("whatever.rar", "whatever.rar", t.TempDir(), 0)
	assert.ErrorContains(t, err, "unsupported archive format")
}

func TestStrippedPath(t *testing.T) {
	dest := filepath.Join("out")

	path, ok := strippedPath(dest, "mingw64/bin/gcc.exe", 1)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("out", "bin", "gcc.exe"), path)

	// Entry consumed entirely by stripping
	_, ok = strippedPath(dest, "mingw64", 1)
	assert.False(t, ok)

	// Path traversal is rejected
	_, ok = strippedPath(dest, "../../etc/passwd", 0)
	assert.False(t, ok)
}
