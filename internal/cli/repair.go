// internal/cli/repair.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild"
	"github.com/slycot-tools/slybuild/pkg/console"
	"github.com/slycot-tools/slybuild/pkg/wheel"
)

var (
	repairCopyDLLs bool
	repairDestDir  string
)

var repairCmd = &cobra.Command{
	Use:   "repair [wheel]",
	Short: "Bundle native DLLs into the built wheel",
	Long: `Bundle the BLAS/LAPACK and MinGW runtime DLLs into the wheel
with delvewheel. Without an argument, the newest wheel in wheels/ is
repaired.

With --copy-dlls the DLLs are instead copied straight into the
installed package directory. Use this when delvewheel is unavailable
or an already-installed package needs fixing in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairCopyDLLs, "copy-dlls", false, "copy DLLs into the installed package instead of running delvewheel")
	repairCmd.Flags().StringVar(&repairDestDir, "dest", "", "destination directory for --copy-dlls (default is the installed slycot package)")
}

func runRepair(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pipeline, err := slybuild.NewPipeline(config)
	if err != nil {
		return err
	}

	if repairCopyDLLs {
		return runCopyDLLs(ctx, pipeline)
	}

	wheelPath := ""
	if len(args) > 0 {
		wheelPath = args[0]
	} else {
		wheelPath, err = wheel.FindWheel(pipeline.Wheel().WheelDir(), wheel.PackageName)
		if err != nil {
			return err
		}
	}

	console.PrintTask("Repairing wheel with delvewheel")
	repaired, err := pipeline.Repair(ctx, wheelPath)
	if err != nil {
		return err
	}

	console.PrintSubtask("Repaired wheel: " + repaired)
	return nil
}

func runCopyDLLs(ctx context.Context, pipeline *slybuild.Pipeline) error {
	destDir := repairDestDir
	if destDir == "" {
		dir, err := pipeline.Uv().PackageDir(ctx, wheel.PackageName)
		if err != nil {
			return fmt.Errorf("cannot locate installed package, pass --dest: %w", err)
		}
		destDir = dir
	}

	env, err := pipeline.Environment()
	if err != nil {
		return err
	}

	console.PrintTask("Copying runtime DLLs")
	if err := pipeline.Wheel().CopyDLLs(env, destDir); err != nil {
		return err
	}

	console.PrintSubtask("DLLs copied to " + destDir)
	return nil
}
