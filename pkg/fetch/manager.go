// pkg/fetch/manager.go
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/slycot-tools/slybuild/pkg/console"
)

// Manager downloads, verifies and extracts toolchain archives
type Manager struct {
	client *http.Client
	config *Config
	logger *log.Logger
}

// NewManager creates a new fetch manager
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.DestRoot == "" {
		cfg.DestRoot = "."
	}
	if cfg.StampPath == "" {
		cfg.StampPath = filepath.Join(cfg.DestRoot, ".toolchains.stamps")
	}
	if cfg.Timeout == 0 {
		// Toolchain archives run into the hundreds of megabytes
		cfg.Timeout = 30 * time.Minute
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[FETCH] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Manager{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
		logger: logger,
	}
}

// LoadSpec parses a toolchains.yaml file
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec %s: %w", path, err)
	}

	for name, entry := range spec {
		if entry.URL == "" {
			return nil, fmt.Errorf("entry %s has no url", name)
		}
		if entry.Sha256 == "" {
			return nil, fmt.Errorf("entry %s has no sha256 checksum", name)
		}
	}

	return spec, nil
}

// Fetch downloads and extracts every applicable spec entry. Entries
// whose stamp token is unchanged and whose destination still exists
// are skipped unless force is set.
func (m *Manager) Fetch(ctx context.Context, spec Spec, force bool) error {
	stamps, err := LoadStamps(m.config.StampPath)
	if err != nil {
		return err
	}

	for name, entry := range spec {
		if entry.IfOS != "" && entry.IfOS != runtime.GOOS {
			m.logger.Printf("Skipping %s (needs %s)", name, entry.IfOS)
			continue
		}

		destPath := filepath.Join(m.config.DestRoot, entry.Dest)
		_, statErr := os.Stat(destPath)
		destExists := statErr == nil

		if !force && destExists && stamps[name] == entry.Token() {
			console.PrintSubtask(fmt.Sprintf("%s: up to date", name))
			continue
		}

		console.PrintSubtask(fmt.Sprintf("%s: %s", name, entry.URL))
		if err := m.fetchOne(ctx, name, entry, destPath); err != nil {
			return fmt.Errorf("fetching %s: %w", name, err)
		}

		stamps[name] = entry.Token()
		if err := SaveStamps(m.config.StampPath, stamps); err != nil {
			return err
		}
	}

	return nil
}

// fetchOne downloads a single archive to a temp file, verifies its
// checksum and extracts it over the destination.
func (m *Manager) fetchOne(ctx context.Context, name string, entry Entry, destPath string) error {
	tmp, err := os.CreateTemp(m.config.DestRoot, "fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	digest, err := m.download(ctx, entry.URL, tmp)
	if err != nil {
		return err
	}

	if digest != entry.Sha256 {
		return fmt.Errorf("checksum mismatch for %s: got %s, want %s", entry.URL, digest, entry.Sha256)
	}

	// Replace a stale destination wholesale; partially overwritten
	// toolchains are worse than missing ones.
	if err := os.RemoveAll(destPath); err != nil {
		return fmt.Errorf("removing old destination: %w", err)
	}

	m.logger.Printf("Extracting %s to %s", name, destPath)
	if err := ExtractArchive(tmp.Name(), entry.URL, destPath, entry.Strip); err != nil {
		return err
	}

	return nil
}

// download streams url into w and returns the hex sha256 digest
func (m *Manager) download(ctx context.Context, url string, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed: %d", resp.StatusCode)
	}

	hash := sha256.New()
	bar := console.ProgressBar(resp.ContentLength, "     download")
	defer bar.Finish()

	if _, err := io.Copy(io.MultiWriter(w, hash, bar), resp.Body); err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
