package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildgrid/internal/app"
)

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_NoArgumentsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	_, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Recipes: basic, custom")
}

func TestParse_PlanPath(t *testing.T) {
	cases := map[string][]string{
		"positional": {"plans/"},
		"long flag":  {"-plan", "plans/"},
		"short flag": {"-p", "plans/"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, "plans/", cfg.PlanPath)
			assert.Equal(t, app.FormConfig{}, cfg.Form)
			assert.Equal(t, "text", cfg.Format)
		})
	}
}

func TestParse_FormMode(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{"-floors", "4", "-color", "Red", "-format", "YAML"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, app.FormConfig{Kind: "Residential", Floors: "4", Color: "Red"}, cfg.Form)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestParse_EnvDefaults(t *testing.T) {
	t.Setenv("BUILDGRID_KIND", "Commercial")
	t.Setenv("BUILDGRID_LOG_LEVEL", "debug")

	cfg, _, err := Parse([]string{"-recipe", "basic"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "Commercial", cfg.Form.Kind)
	assert.Equal(t, "basic", cfg.Form.Recipe)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":      {"--this-is-not-a-valid-flag"},
		"bad log format":    {"-log-format", "xml", "plan.hcl"},
		"bad log level":     {"-log-level", "loud", "plan.hcl"},
		"bad output format": {"-format", "csv", "plan.hcl"},
		"plan and form mix": {"-floors", "2", "plan.hcl"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
