// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild/pkg/core"
)

var (
	cfgFile    string
	projectDir string
	vcpkgRoot  string
	triplet    string
	debug      bool
	config     *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slybuild",
	Short: "Slycot build automation for Windows",
	Long: `slybuild - Slycot build automation for Windows

Automates building the Slycot control library from source with a
MinGW-w64 Fortran toolchain and vcpkg-provided BLAS/LAPACK: virtual
environment setup, wheel build, DLL bundling and smoke testing.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/slybuild/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "Slycot source checkout to build (default is the current directory)")
	rootCmd.PersistentFlags().StringVar(&vcpkgRoot, "vcpkg-root", "", "vcpkg installation root (default is VCPKG_ROOT or C:\\vcpkg)")
	rootCmd.PersistentFlags().StringVar(&triplet, "triplet", "", "vcpkg target triplet (default is x64-windows)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(venvCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(vcpkgCmd)
	rootCmd.AddCommand(wheelCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(smokeCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(fetchToolchainCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if projectDir != "" {
		config.ProjectDir = projectDir
	}
	if vcpkgRoot != "" {
		config.VcpkgRoot = vcpkgRoot
	}
	if triplet != "" {
		config.Triplet = triplet
	}
	if debug {
		config.Debug = true
	}
}
