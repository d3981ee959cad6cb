// internal/cli/venv.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild/pkg/console"
	"github.com/slycot-tools/slybuild/pkg/uv"
)

var venvPython string

var venvCmd = &cobra.Command{
	Use:   "venv",
	Short: "Create the virtual environment",
	Long: `Create the .venv virtual environment with uv if it does not
exist yet. An existing environment is reused as-is.`,
	RunE: runVenv,
}

func init() {
	venvCmd.Flags().StringVar(&venvPython, "python", "", "interpreter version to pin (e.g. 3.11)")
}

func runVenv(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if venvPython != "" {
		config.PythonVersion = venvPython
	}

	manager, err := uv.NewManager(&uv.Config{
		ProjectDir:    config.ProjectDir,
		PythonVersion: config.PythonVersion,
		Timeout:       config.Timeout.Duration(),
		Debug:         config.Debug,
	})
	if err != nil {
		return err
	}

	console.PrintTask("Setting up virtual environment")
	created, err := manager.EnsureVenv(ctx)
	if err != nil {
		return err
	}

	if created {
		console.PrintSubtask("Created " + manager.VenvPath())
	} else {
		console.PrintSubtask("Reusing " + manager.VenvPath())
	}
	console.PrintSubtask("Interpreter: " + manager.Python())

	return nil
}
