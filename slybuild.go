// slybuild.go
package slybuild

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/slycot-tools/slybuild/pkg/buildenv"
	"github.com/slycot-tools/slybuild/pkg/core"
	"github.com/slycot-tools/slybuild/pkg/mingw"
	"github.com/slycot-tools/slybuild/pkg/uv"
	"github.com/slycot-tools/slybuild/pkg/vcpkg"
	"github.com/slycot-tools/slybuild/pkg/wheel"
)

// Re-export core types for convenience
type (
	Config      = core.Config
	Probe       = core.Probe
	SmokeResult = wheel.SmokeResult
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Pipeline drives the full Slycot build and install sequence
type Pipeline struct {
	config *core.Config
	uv     *uv.Manager
	vcpkg  *vcpkg.Manager
	wheel  *wheel.Manager
	logger *log.Logger
}

// NewPipeline creates the build pipeline from a configuration
func NewPipeline(config *core.Config) (*Pipeline, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stdout, "[slybuild] ", log.LstdFlags)
	}

	uvManager, err := uv.NewManager(&uv.Config{
		ProjectDir:    config.ProjectDir,
		PythonVersion: config.PythonVersion,
		Timeout:       config.Timeout.Duration(),
		Debug:         config.Debug,
		Logger:        logger,
	})
	if err != nil {
		return nil, &Error{Op: "init", Tool: "uv", Err: err}
	}

	vcpkgManager := vcpkg.NewManager(&vcpkg.Config{
		Root:    config.VcpkgRoot,
		Triplet: config.Triplet,
		Timeout: config.Timeout.Duration(),
		Debug:   config.Debug,
		Logger:  logger,
	})

	wheelManager := wheel.NewManager(uvManager, &wheel.Config{
		ProjectDir:     config.ProjectDir,
		WheelDir:       config.WheelDir,
		KeepWheelhouse: config.KeepWheelhouse,
		Debug:          config.Debug,
		Logger:         logger,
	})

	return &Pipeline{
		config: config,
		uv:     uvManager,
		vcpkg:  vcpkgManager,
		wheel:  wheelManager,
		logger: logger,
	}, nil
}

// Environment resolves the MinGW toolchain and returns the composed
// build environment
func (p *Pipeline) Environment() (*buildenv.Environment, error) {
	toolchain, err := mingw.Detect()
	if err != nil {
		return nil, &Error{Op: "detect", Tool: "mingw", Err: err}
	}

	env := buildenv.New(toolchain, p.config.VcpkgRoot, p.config.Triplet)
	env.FortranFlags = p.config.FortranFlags
	return env, nil
}

// Check verifies every prerequisite and returns the probe results.
// The returned error is non-nil if any prerequisite is missing.
func (p *Pipeline) Check(ctx context.Context) ([]core.Probe, error) {
	probes := []core.Probe{}
	failed := false

	if err := mingw.DetectPlatform(); err != nil {
		return nil, &Error{Op: "check", Err: fmt.Errorf("%w: %v", ErrPlatformNotSupported, err)}
	}

	// uv
	probe := probeTool(ctx, p.uv.Client(), "install uv from https://github.com/astral-sh/uv")
	failed = failed || !probe.Found
	probes = append(probes, probe)

	// MinGW compilers
	for _, name := range []string{mingw.FortranCompiler, mingw.CCompiler, mingw.CXXCompiler} {
		probe := probeTool(ctx, mingw.NewCompiler(name),
			"install a MinGW-w64 toolchain (e.g. via MSYS2) and add its bin directory to PATH")
		failed = failed || !probe.Found
		probes = append(probes, probe)
	}

	// vcpkg + the BLAS/LAPACK DLLs it should have installed
	probe = probeTool(ctx, p.vcpkg,
		fmt.Sprintf("install vcpkg to %s or set VCPKG_ROOT", vcpkg.DefaultRoot))
	failed = failed || !probe.Found
	probes = append(probes, probe)

	missingDLLs := p.vcpkg.CheckDLLs()
	for _, dll := range vcpkg.BlasDLLs {
		probe := core.Probe{
			Name: dll,
			Hint: fmt.Sprintf("run 'vcpkg install openblas:%s lapack-reference:%s' (looked in %s)",
				p.vcpkg.Triplet(), p.vcpkg.Triplet(), p.vcpkg.BinDir()),
		}
		if !contains(missingDLLs, dll) {
			probe.Found = true
			probe.Path = p.vcpkg.BinDir()
		} else {
			failed = true
		}
		probes = append(probes, probe)
	}

	if failed {
		return probes, &Error{Op: "check", Err: ErrToolNotFound}
	}
	return probes, nil
}

// Setup creates the virtual environment and installs build dependencies
func (p *Pipeline) Setup(ctx context.Context) error {
	if _, err := p.uv.EnsureVenv(ctx); err != nil {
		return &Error{Op: "venv", Tool: "uv", Err: err}
	}

	if err := p.uv.InstallBuildDeps(ctx, nil); err != nil {
		return &Error{Op: "deps", Tool: "uv", Err: err}
	}
	return nil
}

// Build compiles the wheel and returns its path
func (p *Pipeline) Build(ctx context.Context) (string, error) {
	env, err := p.Environment()
	if err != nil {
		return "", err
	}

	wheelPath, err := p.wheel.Build(ctx, env, &wheel.BuildOptions{
		FortranFlags:     p.config.FortranFlags,
		NoBuildIsolation: true,
	})
	if err != nil {
		return "", &Error{Op: "build", Tool: "pip", Err: err}
	}
	return wheelPath, nil
}

// Repair bundles the runtime DLLs into the built wheel
func (p *Pipeline) Repair(ctx context.Context, wheelPath string) (string, error) {
	if _, err := os.Stat(wheelPath); err != nil {
		return "", &Error{Op: "repair", Err: fmt.Errorf("%w: %s", ErrWheelNotFound, wheelPath)}
	}

	env, err := p.Environment()
	if err != nil {
		return "", err
	}

	repaired, err := p.wheel.Repair(ctx, env, wheelPath)
	if err != nil {
		return "", &Error{Op: "repair", Tool: "delvewheel", Err: err}
	}
	return repaired, nil
}

// Install runs the whole pipeline: check, venv, deps, build, repair,
// install, smoke test. Intermediate directories are cleaned up even
// when a step fails.
func (p *Pipeline) Install(ctx context.Context) (result *SmokeResult, err error) {
	defer func() {
		if cleanErr := p.wheel.Clean(); cleanErr != nil && err == nil {
			err = &Error{Op: "clean", Err: cleanErr}
		}
	}()

	if _, err = p.Check(ctx); err != nil {
		return nil, err
	}

	if err = p.Setup(ctx); err != nil {
		return nil, err
	}

	wheelPath, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}

	repaired, err := p.Repair(ctx, wheelPath)
	if err != nil {
		return nil, err
	}

	if err = p.wheel.Install(ctx, repaired); err != nil {
		return nil, &Error{Op: "install", Tool: "uv", Err: err}
	}

	result, err = p.Smoke(ctx, true)
	if err != nil {
		return result, err
	}
	return result, nil
}

// Smoke runs the post-install import check and, optionally, the
// package's own test suite
func (p *Pipeline) Smoke(ctx context.Context, runTests bool) (*SmokeResult, error) {
	result, err := p.wheel.Smoke(ctx, runTests)
	if err != nil {
		return result, &Error{Op: "smoke", Tool: "python", Err: fmt.Errorf("%w: %v", ErrSmokeTestFailed, err)}
	}
	return result, nil
}

// Clean removes intermediate build artifacts
func (p *Pipeline) Clean() error {
	if err := p.wheel.Clean(); err != nil {
		return &Error{Op: "clean", Err: err}
	}
	return nil
}

// Vcpkg returns the vcpkg manager for port installs
func (p *Pipeline) Vcpkg() *vcpkg.Manager {
	return p.vcpkg
}

// Uv returns the uv manager for venv inspection
func (p *Pipeline) Uv() *uv.Manager {
	return p.uv
}

// Wheel returns the wheel manager
func (p *Pipeline) Wheel() *wheel.Manager {
	return p.wheel
}

func probeTool(ctx context.Context, tool core.Tool, hint string) core.Probe {
	probe := core.Probe{Name: tool.Name(), Hint: hint}
	if !tool.IsAvailable() {
		return probe
	}

	probe.Found = true
	probe.Path = tool.Path()
	if version, err := tool.Version(ctx); err == nil {
		probe.Version = version
	}
	return probe
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
