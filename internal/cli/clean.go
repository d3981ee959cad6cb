// internal/cli/clean.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild"
	"github.com/slycot-tools/slybuild/pkg/console"
	"github.com/slycot-tools/slybuild/pkg/uv"
)

var cleanVenv bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts",
	Long: `Remove the wheels/ and wheelhouse/ directories. With --venv
the virtual environment is removed as well.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanVenv, "venv", false, "also remove the virtual environment")
}

func runClean(cmd *cobra.Command, args []string) error {
	pipeline, err := slybuild.NewPipeline(config)
	if err != nil {
		return err
	}

	console.PrintTask("Cleaning build artifacts")
	if err := pipeline.Clean(); err != nil {
		return err
	}
	console.PrintSubtask("Removed wheels/ and wheelhouse/")

	if cleanVenv {
		venvDir := filepath.Join(config.ProjectDir, uv.DefaultVenvDir)
		if err := os.RemoveAll(venvDir); err != nil {
			return fmt.Errorf("removing %s: %w", venvDir, err)
		}
		console.PrintSubtask("Removed " + venvDir)
	}

	return nil
}
