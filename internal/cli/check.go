// internal/cli/check.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild"
	"github.com/slycot-tools/slybuild/pkg/console"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check build prerequisites",
	Long: `Verify that every tool a Slycot build needs is present:
uv, the MinGW-w64 compilers (gfortran, gcc, g++), vcpkg and the
BLAS/LAPACK DLLs vcpkg should have installed.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pipeline, err := slybuild.NewPipeline(config)
	if err != nil {
		return err
	}

	console.PrintTask("Checking prerequisites")
	probes, checkErr := pipeline.Check(ctx)

	for _, probe := range probes {
		if probe.Found {
			line := probe.Name
			if probe.Version != "" {
				line += " " + probe.Version
			}
			if probe.Path != "" {
				line += fmt.Sprintf(" (%s)", probe.Path)
			}
			console.PrintSubtask("✓ " + line)
		} else {
			console.PrintError(fmt.Sprintf("✗ %s missing: %s", probe.Name, probe.Hint))
		}
	}

	if checkErr != nil {
		return fmt.Errorf("prerequisites not met")
	}

	console.PrintTask("All prerequisites are met")
	return nil
}
