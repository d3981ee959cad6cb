// internal/cli/vcpkg.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild/pkg/console"
	"github.com/slycot-tools/slybuild/pkg/vcpkg"
)

var vcpkgCmd = &cobra.Command{
	Use:   "vcpkg [port...]",
	Short: "Install native linear algebra ports",
	Long: `Install the BLAS/LAPACK ports the Slycot build links against
via vcpkg. Without arguments, installs ` + strings.Join(vcpkg.DefaultPorts, " and ") + `.

Examples:
  slybuild vcpkg
  slybuild vcpkg openblas
  slybuild vcpkg --triplet=x64-windows-static openblas lapack-reference`,
	RunE: runVcpkg,
}

func runVcpkg(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	manager := vcpkg.NewManager(&vcpkg.Config{
		Root:    config.VcpkgRoot,
		Triplet: config.Triplet,
		Timeout: config.Timeout.Duration(),
		Debug:   config.Debug,
	})

	if !manager.IsAvailable() {
		return fmt.Errorf("vcpkg not found at %s or in PATH", manager.Exe())
	}

	console.PrintTask("Installing vcpkg ports")
	if err := manager.Install(ctx, args); err != nil {
		return err
	}

	if missing := manager.CheckDLLs(); len(missing) > 0 {
		console.PrintWarning(fmt.Sprintf("installed, but DLLs still missing from %s: %v", manager.BinDir(), missing))
	} else {
		console.PrintSubtask("BLAS/LAPACK DLLs present in " + manager.BinDir())
	}

	return nil
}
