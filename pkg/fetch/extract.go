// pkg/fetch/extract.go
package fetch

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// ExtractArchive unpacks an archive into dest, stripping the given
// number of leading path elements. The format is picked from the name
// suffix: .zip, .tar.gz, .tgz or .tar.xz.
func ExtractArchive(archivePath, name, dest string, strip int) error {
	switch {
	case strings.HasSuffix(name, ".zip"):
		return extractZip(archivePath, dest, strip)
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return extractTarball(archivePath, dest, strip, func(r io.Reader) (io.Reader, error) {
			gz, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			return gz, nil
		})
	case strings.HasSuffix(name, ".tar.xz"):
		return extractTarball(archivePath, dest, strip, func(r io.Reader) (io.Reader, error) {
			return xz.NewReader(r)
		})
	default:
		return fmt.Errorf("unsupported archive format: %s", name)
	}
}

func extractZip(archivePath, dest string, strip int) error {
	archive, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening zip: %w", err)
	}
	defer archive.Close()

	for _, item := range archive.File {
		if item.FileInfo().IsDir() {
			continue
		}

		target, ok := strippedPath(dest, item.Name, strip)
		if !ok {
			continue
		}

		src, err := item.Open()
		if err != nil {
			return fmt.Errorf("opening archive entry %s: %w", item.Name, err)
		}

		err = writeEntry(target, src, item.Mode())
		src.Close()
		if err != nil {
			return fmt.Errorf("extracting %s: %w", item.Name, err)
		}
	}

	return nil
}

func extractTarball(archivePath, dest string, strip int, decompress func(io.Reader) (io.Reader, error)) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	raw, err := decompress(f)
	if err != nil {
		return fmt.Errorf("decompressing archive: %w", err)
	}
	if closer, ok := raw.(io.Closer); ok {
		defer closer.Close()
	}

	reader := tar.NewReader(raw)
	for {
		header, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar: %w", err)
		}

		if header.Typeflag != tar.TypeReg {
			continue
		}

		target, ok := strippedPath(dest, header.Name, strip)
		if !ok {
			continue
		}

		if err := writeEntry(target, reader, os.FileMode(header.Mode)); err != nil {
			return fmt.Errorf("extracting %s: %w", header.Name, err)
		}
	}

	return nil
}

// strippedPath resolves an archive entry name to a destination path,
// dropping strip leading elements. Entries that escape the
// destination (../) or vanish entirely after stripping are skipped.
func strippedPath(dest, name string, strip int) (string, bool) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", false
	}

	parts := strings.Split(clean, string(filepath.Separator))
	if len(parts) <= strip {
		return "", false
	}

	return filepath.Join(dest, filepath.Join(parts[strip:]...)), true
}

func writeEntry(target string, src io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	if mode.Perm() == 0 {
		mode = 0644
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	_, err = io.Copy(out, src)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}
