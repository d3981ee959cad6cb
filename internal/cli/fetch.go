// internal/cli/fetch.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/slycot-tools/slybuild/pkg/console"
	"github.com/slycot-tools/slybuild/pkg/fetch"
)

var (
	fetchSpecPath string
	fetchDest     string
	fetchForce    bool
)

var fetchToolchainCmd = &cobra.Command{
	Use:   "fetch-toolchain",
	Short: "Download and unpack a MinGW-w64 toolchain",
	Long: `Download the toolchain archives listed in toolchains.yaml,
verify their checksums and unpack them. Entries whose checksum and
destination are unchanged since the last run are skipped.

A minimal toolchains.yaml looks like:

  mingw64:
    url: https://github.com/brechtsanders/winlibs_mingw/releases/download/.../winlibs-x86_64.zip
    sha256: <hex digest of the archive>
    dest: toolchains/mingw64
    strip: 1
    ifOS: windows`,
	RunE: runFetchToolchain,
}

func init() {
	fetchToolchainCmd.Flags().StringVar(&fetchSpecPath, "spec", "toolchains.yaml", "toolchain spec file")
	fetchToolchainCmd.Flags().StringVar(&fetchDest, "dest-root", ".", "directory dest paths are resolved against")
	fetchToolchainCmd.Flags().BoolVar(&fetchForce, "force", false, "re-download even if the stamp is unchanged")
}

func runFetchToolchain(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	console.PrintTask("Loading toolchain spec")
	spec, err := fetch.LoadSpec(fetchSpecPath)
	if err != nil {
		return err
	}

	manager := fetch.NewManager(&fetch.Config{
		DestRoot: fetchDest,
		Debug:    config.Debug,
	})

	console.PrintTask("Downloading toolchains")
	if err := manager.Fetch(ctx, spec, fetchForce); err != nil {
		return err
	}

	console.PrintTask("Done")
	return nil
}
