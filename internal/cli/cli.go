package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/vk/buildgrid/internal/app"
	"github.com/vk/buildgrid/internal/building"
	"github.com/vk/buildgrid/internal/form"
	"github.com/vk/buildgrid/internal/render"
)

// envPrefix prefixes every environment variable read by Parse.
const envPrefix = "BUILDGRID"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults are flag defaults that can be overridden from the environment,
// e.g. BUILDGRID_LOG_LEVEL=debug.
type envDefaults struct {
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	Format    string `envconfig:"FORMAT" default:"text"`
	Kind      string `envconfig:"KIND" default:"Residential"`
}

// formFlags are the flags that select single-building mode.
var formFlags = map[string]bool{"kind": true, "floors": true, "color": true, "recipe": true}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var env envDefaults
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("buildgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
buildgrid - assemble buildings step by step.

Usage:
  buildgrid [options] [PLAN_PATH]
  buildgrid -kind Commercial -floors 12 -color Grey

Arguments:
  PLAN_PATH
    Path to a single .hcl/.yaml plan file or a directory of plan files.

Kinds: %s
Recipes: %s

Options:
`, strings.Join(form.Kinds, ", "), recipeNames())
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.String("plan", "", "Path to the plan file or directory.")
	pFlag := flagSet.String("p", "", "Path to the plan file or directory (shorthand).")
	kindFlag := flagSet.String("kind", env.Kind, "Building kind for a single build.")
	floorsFlag := flagSet.String("floors", "", "Number of floors for a single build.")
	colorFlag := flagSet.String("color", "", "Building color for a single build.")
	recipeFlag := flagSet.String("recipe", "", "Director recipe to apply before floors and color.")
	formatFlag := flagSet.String("format", env.Format, "Result format. Options: "+strings.Join(render.Formats, ", ")+".")
	logFormatFlag := flagSet.String("log-format", env.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *planFlag != "" {
		path = *planFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	formMode := false
	flagSet.Visit(func(f *flag.Flag) {
		if formFlags[f.Name] {
			formMode = true
		}
	})

	if path == "" && !formMode {
		slog.Debug("No plan path or form flags provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		PlanPath:  path,
		Format:    strings.ToLower(*formatFlag),
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}
	if formMode {
		cfg.Form = app.FormConfig{
			Kind:   *kindFlag,
			Floors: *floorsFlag,
			Color:  *colorFlag,
			Recipe: *recipeFlag,
		}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func recipeNames() string {
	names := make([]string, 0, len(building.Recipes))
	for _, r := range building.Recipes {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
