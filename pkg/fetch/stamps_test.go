package fetch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stamps.json")

	stamps := Stamps{
		"mingw64": "https://example.com/mingw.zip#abc123",
	}
	require.NoError(t, SaveStamps(path, stamps))

	loaded, err := LoadStamps(path)
	require.NoError(t, err)
	assert.Equal(t, stamps, loaded)
}

func TestLoadStampsMissingFile(t *testing.T) {
	stamps, err := LoadStamps(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, stamps)
}

func TestEntryToken(t *testing.T) {
	entry := Entry{URL: "https://example.com/a.zip", Sha256: "deadbeef"}
	assert.Equal(t, "https://example.com/a.zip#deadbeef", entry.Token())
}
