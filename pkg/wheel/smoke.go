// pkg/wheel/smoke.go
package wheel

import (
	"context"
	"fmt"
	"strings"
)

// SmokeResult reports the outcome of the post-install checks
type SmokeResult struct {
	Version     string // Installed slycot version
	ImportOK    bool   // import slycot succeeded
	TestSuiteOK bool   // slycot.test() succeeded
}

// Smoke verifies the installed package actually works: first a bare
// import (catches missing DLLs immediately), then the package's own
// test suite.
func (m *Manager) Smoke(ctx context.Context, runTests bool) (*SmokeResult, error) {
	result := &SmokeResult{}

	m.logger.Printf("Smoke test: importing %s", PackageName)
	code := fmt.Sprintf("import %s; print(%s.__version__)", PackageName, PackageName)
	out, err := m.uv.Client().PythonCommand(ctx, nil, code)
	if err != nil {
		return result, fmt.Errorf("importing %s: %w", PackageName, err)
	}
	result.ImportOK = true
	result.Version = strings.TrimSpace(out)
	m.logger.Printf("  ✓ Imported %s %s", PackageName, result.Version)

	if !runTests {
		return result, nil
	}

	// Streamed and without a deadline: the suite takes minutes and the
	// pytest output is worth watching.
	m.logger.Printf("Smoke test: running %s test suite", PackageName)
	testCode := fmt.Sprintf("import %s; %s.test()", PackageName, PackageName)
	if err := m.uv.Client().Run(ctx, nil, "python", "-c", testCode); err != nil {
		return result, fmt.Errorf("%s test suite failed: %w", PackageName, err)
	}
	result.TestSuiteOK = true
	m.logger.Printf("  ✓ Test suite passed")

	return result, nil
}
