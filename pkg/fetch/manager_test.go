package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchains.yaml")
	content := `
mingw64:
  url: https://example.com/winlibs-x86_64.zip
  sha256: 0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef
  dest: toolchains/mingw64
  strip: 1
  ifOS: windows
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	spec, err := LoadSpec(path)
	require.NoError(t, err)
	require.Contains(t, spec, "mingw64")

	entry := spec["mingw64"]
	assert.Equal(t, "https://example.com/winlibs-x86_64.zip", entry.URL)
	assert.Equal(t, 1, entry.Strip)
	assert.Equal(t, "windows", entry.IfOS)
}

func TestLoadSpecRejectsMissingChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchains.yaml")
	require.NoError(t, os.WriteFile(path, []byte("broken:\n  url: https://example.com/x.zip\n"), 0644))

	_, err := LoadSpec(path)
	assert.ErrorContains(t, err, "no sha256")
}

func TestLoadSpecRejectsMissingURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchains.yaml")
	require.NoError(t, os.WriteFile(path, []byte("broken:\n  sha256: abc\n"), 0644))

	_, err := LoadSpec(path)
	assert.ErrorContains(t, err, "no url")
}

// serveZip starts a test server delivering a zip with one file and
// returns the server plus the archive's checksum.
func serveZip(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("bin/tool.exe")
	require.NoError(t, err)
	_, err = f.Write([]byte("tool"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	sum := sha256.Sum256(buf.Bytes())

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Write(buf.Bytes())
	}))
	t.Cleanup(server.Close)

	return server, hex.EncodeToString(sum[:])
}

func TestFetch(t *testing.T) {
	server, digest := serveZip(t)
	destRoot := t.TempDir()

	spec := Spec{
		"tool": {
			URL:    server.URL + "/tool.zip",
			Sha256: digest,
			Dest:   "tools/tool",
		},
	}

	manager := NewManager(&Config{DestRoot: destRoot})
	require.NoError(t, manager.Fetch(context.Background(), spec, false))

	data, err := os.ReadFile(filepath.Join(destRoot, "tools", "tool", "bin", "tool.exe"))
	require.NoError(t, err)
	assert.Equal(t, "tool", string(data))

	// Stamp recorded
	stamps, err := LoadStamps(filepath.Join(destRoot, ".toolchains.stamps"))
	require.NoError(t, err)
	assert.Equal(t, spec["tool"].Token(), stamps["tool"])
}

func TestFetchChecksumMismatch(t *testing.T) {
	server, _ := serveZip(t)
	destRoot := t.TempDir()

	spec := Spec{
		"tool": {
			URL:    server.URL + "/tool.zip",
			Sha256: "0000000000000000000000000000000000000000000000000000000000000000",
			Dest:   "tools/tool",
		},
	}

	manager := NewManager(&Config{DestRoot: destRoot})
	err := manager.Fetch(context.Background(), spec, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")

	// Nothing extracted
	_, statErr := os.Stat(filepath.Join(destRoot, "tools"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchSkipsUnchanged(t *testing.T) {
	server, digest := serveZip(t)
	destRoot := t.TempDir()

	spec := Spec{
		"tool": {
			URL:    server.URL + "/tool.zip",
			Sha256: digest,
			Dest:   "tools/tool",
		},
	}

	manager := NewManager(&Config{DestRoot: destRoot})
	require.NoError(t, manager.Fetch(context.Background(), spec, false))

	// Poison the extracted file; an unchanged stamp means no re-extract
	marker := filepath.Join(destRoot, "tools", "tool", "bin", "tool.exe")
	require.NoError(t, os.WriteFile(marker, []byte("modified"), 0644))

	require.NoError(t, manager.Fetch(context.Background(), spec, false))
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "modified", string(data))

	// force re-fetches and restores the original content
	require.NoError(t, manager.Fetch(context.Background(), spec, true))
	data, err = os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "tool", string(data))
}

func TestFetchSkipsOtherOS(t *testing.T) {
	destRoot := t.TempDir()

	// URL is unreachable on purpose; the entry must be skipped before
	// any download happens.
	spec := Spec{
		"other": {
			URL:    "http://127.0.0.1:1/never.zip",
			Sha256: "00",
			Dest:   "tools/other",
			IfOS:   "plan9",
		},
	}

	manager := NewManager(&Config{DestRoot: destRoot})
	require.NoError(t, manager.Fetch(context.Background(), spec, false))
}
