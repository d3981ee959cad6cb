// internal/cli/wheel.go
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild"
	"github.com/slycot-tools/slybuild/pkg/console"
)

var wheelFortranFlags string

var wheelCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Build the Slycot wheel from source",
	Long: `Build the Slycot wheel with the MinGW toolchain and the vcpkg
CMake toolchain file. The wheel lands in the wheels/ directory.

Examples:
  slybuild wheel
  slybuild wheel --fortran-flags="-ff2c -fdefault-integer-8 -fdefault-real-8"`,
	RunE: runWheel,
}

func init() {
	wheelCmd.Flags().StringVar(&wheelFortranFlags, "fortran-flags", "", "extra CMake Fortran flags")
}

func runWheel(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if wheelFortranFlags != "" {
		config.FortranFlags = strings.Fields(wheelFortranFlags)
	}

	pipeline, err := slybuild.NewPipeline(config)
	if err != nil {
		return err
	}

	console.PrintTask("Building Slycot wheel")
	wheelPath, err := pipeline.Build(ctx)
	if err != nil {
		return err
	}

	console.PrintSubtask("Wheel built: " + wheelPath)
	return nil
}
