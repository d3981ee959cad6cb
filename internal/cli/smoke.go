// internal/cli/smoke.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild"
	"github.com/slycot-tools/slybuild/pkg/console"
)

var smokeSkipTests bool

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run the post-install smoke test",
	Long: `Import the installed slycot package (which catches missing
DLLs immediately) and run its own test suite.`,
	RunE: runSmoke,
}

func init() {
	smokeCmd.Flags().BoolVar(&smokeSkipTests, "skip-tests", false, "only check the import, skip the test suite")
}

func runSmoke(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pipeline, err := slybuild.NewPipeline(config)
	if err != nil {
		return err
	}

	console.PrintTask("Running smoke test")
	result, err := pipeline.Smoke(ctx, !smokeSkipTests)
	if err != nil {
		return err
	}

	console.PrintSubtask("Imported slycot " + result.Version)
	if result.TestSuiteOK {
		console.PrintSubtask("Test suite passed")
	}

	return nil
}
