// cmd/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/slycot-tools/slybuild"
)

func main() {
	var (
		step         = flag.String("step", "install", "Pipeline step to run (check, setup, wheel, install, smoke, clean)")
		projectDir   = flag.String("project-dir", ".", "Slycot source checkout to build")
		vcpkgRoot    = flag.String("vcpkg-root", "", "vcpkg installation root")
		fortranFlags = flag.String("fortran-flags", "", "Extra CMake Fortran flags")
		debug        = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	// Create configuration
	config := slybuild.DefaultConfig()
	config.ProjectDir = *projectDir
	config.Debug = *debug
	if *vcpkgRoot != "" {
		config.VcpkgRoot = *vcpkgRoot
	}
	if *fortranFlags != "" {
		config.FortranFlags = strings.Fields(*fortranFlags)
	}

	// Create pipeline
	pipeline, err := slybuild.NewPipeline(config)
	if err != nil {
		fmt.Printf("Error initializing pipeline: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch *step {
	case "check":
		probes, err := pipeline.Check(ctx)
		for _, probe := range probes {
			mark := "✓"
			if !probe.Found {
				mark = "✗"
			}
			fmt.Printf("  %s %s %s\n", mark, probe.Name, probe.Version)
		}
		if err != nil {
			fmt.Printf("Prerequisites not met: %v\n", err)
			os.Exit(1)
		}

	case "setup":
		if err := pipeline.Setup(ctx); err != nil {
			fmt.Printf("Error setting up environment: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Virtual environment ready")

	case "wheel":
		wheelPath, err := pipeline.Build(ctx)
		if err != nil {
			fmt.Printf("Error building wheel: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Wheel built: %s\n", wheelPath)

	case "install":
		result, err := pipeline.Install(ctx)
		if err != nil {
			fmt.Printf("Error installing: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Slycot %s installed and tested successfully\n", result.Version)

	case "smoke":
		result, err := pipeline.Smoke(ctx, true)
		if err != nil {
			fmt.Printf("Smoke test failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Slycot %s works\n", result.Version)

	case "clean":
		if err := pipeline.Clean(); err != nil {
			fmt.Printf("Error cleaning: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Build artifacts removed")

	default:
		fmt.Printf("Unknown step: %s\n", *step)
		flag.PrintDefaults()
		os.Exit(1)
	}
}
