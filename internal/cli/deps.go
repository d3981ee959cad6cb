// internal/cli/deps.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild/pkg/console"
	"github.com/slycot-tools/slybuild/pkg/uv"
)

var depsOnlyMissing bool

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Install Python build dependencies",
	Long: `Install the Python packages the Slycot build needs into the
virtual environment: ` + strings.Join(uv.BuildPackages, ", ") + `.`,
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().BoolVar(&depsOnlyMissing, "only-missing", false, "skip packages that are already installed")
}

func runDeps(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	manager, err := uv.NewManager(&uv.Config{
		ProjectDir:    config.ProjectDir,
		PythonVersion: config.PythonVersion,
		Timeout:       config.Timeout.Duration(),
		Debug:         config.Debug,
	})
	if err != nil {
		return err
	}

	if !manager.VenvExists() {
		return fmt.Errorf("no virtual environment at %s, run 'slybuild venv' first", manager.VenvPath())
	}

	console.PrintTask("Installing build dependencies")

	if depsOnlyMissing {
		missing, err := manager.MissingBuildDeps(ctx)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			console.PrintSubtask("All build dependencies already installed")
			return nil
		}
		console.PrintSubtask("Missing: " + strings.Join(missing, ", "))
		if err := manager.Client().PipInstall(ctx, nil, missing...); err != nil {
			return err
		}
		console.PrintSubtask("Build dependencies installed")
		return nil
	}

	if err := manager.InstallBuildDeps(ctx, nil); err != nil {
		return err
	}

	console.PrintSubtask("Build dependencies installed")
	return nil
}
