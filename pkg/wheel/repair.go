// pkg/wheel/repair.go
package wheel

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/slycot-tools/slybuild/pkg/buildenv"
	"github.com/slycot-tools/slybuild/pkg/console"
)

// Repair bundles the native DLLs into the wheel with delvewheel and
// returns the repaired wheel path. delvewheel resolves DLLs through
// PATH, so the composed build environment must be passed along.
func (m *Manager) Repair(ctx context.Context, env *buildenv.Environment, wheelPath string) (string, error) {
	m.logger.Printf("Repairing wheel with delvewheel: %s", wheelPath)

	vars := env.Compose()

	// delvewheel writes to ./wheelhouse by default; keep that so the
	// rest of the pipeline knows where to look.
	if err := m.uv.Client().Run(ctx, vars, "delvewheel", "repair", wheelPath); err != nil {
		return "", fmt.Errorf("delvewheel repair: %w", err)
	}

	repaired, err := FindWheel(m.Wheelhouse(), PackageName)
	if err != nil {
		return "", fmt.Errorf("repair produced no wheel: %w", err)
	}

	m.logger.Printf("  ✓ Repaired wheel: %s", repaired)
	return repaired, nil
}

// CopyDLLs is the manual fallback to delvewheel: copy every required
// native DLL straight into the installed package directory. Each
// source file must exist before any copy starts so a half-copied
// install never happens silently.
func (m *Manager) CopyDLLs(env *buildenv.Environment, destDir string) error {
	m.logger.Printf("Copying runtime DLLs into %s", destDir)

	found, missing := env.FindDLLs(RequiredDLLs())
	if len(missing) > 0 {
		return fmt.Errorf("missing DLLs %v (searched %v)", missing, env.DLLSearchPaths())
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	var total int64
	for _, dll := range found {
		total += dll.Size
	}
	bar := console.ProgressBar(total, "Copying DLLs")
	defer bar.Finish()

	for _, dll := range found {
		dest := filepath.Join(destDir, dll.Name)
		if err := copyFile(dll.Path, dest, bar); err != nil {
			return fmt.Errorf("copying %s: %w", dll.Name, err)
		}
		m.logger.Printf("  ✓ %s -> %s", dll.Name, dest)
	}

	return nil
}

func copyFile(src, dest string, progress io.Writer) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	_, err = io.Copy(io.MultiWriter(out, progress), in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}
