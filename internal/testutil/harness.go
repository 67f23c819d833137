// Package testutil holds helpers shared by package and integration tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/buildgrid/internal/app"
)

// HarnessResult holds the outcome of a harness run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunPlanTest writes files to a temporary directory and runs the app over it
// with debug logging, rendering results in format.
func RunPlanTest(t *testing.T, files map[string]string, format string) *HarnessResult {
	t.Helper()
	return RunPlanTestWithContext(context.Background(), t, files, format)
}

// RunPlanTestWithContext is RunPlanTest with a caller-provided context.
func RunPlanTestWithContext(ctx context.Context, t *testing.T, files map[string]string, format string) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)

	cfg, err := app.NewConfig(app.Config{
		PlanPath:  root,
		Format:    format,
		LogLevel:  "debug",
		LogFormat: "text",
	})
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	runErr := app.NewApp(out, logs, cfg).Run(ctx)

	if os.Getenv("BUILDGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
