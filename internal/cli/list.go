// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild/pkg/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List detected build tools",
	Long:  `List which of the required build tools are present on this system.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	// Detect platform
	plat, err := platform.Detect()
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	fmt.Printf("Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Printf("Available tools:\n")
	for _, tool := range plat.Available {
		fmt.Printf("  ✓ %s (%s)\n", tool, platform.LookPath(tool))
	}

	if len(plat.Missing) > 0 {
		fmt.Printf("\nMissing tools:\n")
		for _, tool := range plat.Missing {
			fmt.Printf("  ✗ %s\n", tool)
		}
	}

	if plat.Complete() {
		fmt.Printf("\nAll build tools present.\n")
	}

	return nil
}
