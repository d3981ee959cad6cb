package mingw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGCCVersion(t *testing.T) {
	output := `gcc (MinGW-W64 x86_64-ucrt-posix-seh, built by Brecht Sanders) 13.2.0
Copyright (C) 2023 Free Software Foundation, Inc.
This is free software; see the source for copying conditions.
`
	version, err := ParseGCCVersion(output)
	require.NoError(t, err)
	assert.Equal(t, "13.2.0", version)
}

func TestParseGCCVersionGfortran(t *testing.T) {
	output := "GNU Fortran (Rev6, Built by MSYS2 project) 13.2.0\r\nCopyright (C) 2023\r\n"

	version, err := ParseGCCVersion(output)
	require.NoError(t, err)
	assert.Equal(t, "13.2.0", version)
}

func TestParseGCCVersionGarbage(t *testing.T) {
	_, err := ParseGCCVersion("")
	assert.Error(t, err)

	_, err = ParseGCCVersion("gfortran: command not found")
	assert.Error(t, err)
}
