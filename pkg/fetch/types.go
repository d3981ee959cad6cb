// pkg/fetch/types.go
package fetch

import (
	"log"
	"time"
)

// Entry describes one downloadable toolchain archive
type Entry struct {
	// URL of the archive (.zip, .tar.gz or .tar.xz)
	URL string `yaml:"url"`

	// Sha256 is the expected archive checksum
	Sha256 string `yaml:"sha256"`

	// Dest is the extraction directory, relative to the destination root
	Dest string `yaml:"dest"`

	// Strip removes this many leading path elements while extracting
	Strip int `yaml:"strip"`

	// IfOS limits the entry to one GOOS value (empty = all)
	IfOS string `yaml:"ifOS,omitempty"`
}

// Spec is the parsed toolchains.yaml: entry name -> archive description
type Spec map[string]Entry

// Config holds fetch configuration
type Config struct {
	// DestRoot is the directory Dest paths are resolved against
	DestRoot string

	// StampPath records which entries were already fetched
	StampPath string

	// Timeout for the whole download of one archive
	Timeout time.Duration

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger
}
