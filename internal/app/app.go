package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/buildgrid/internal/plan"
	"github.com/vk/buildgrid/internal/plan/hclplan"
	"github.com/vk/buildgrid/internal/plan/yamlplan"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []plan.Loader
}

// NewApp returns an App that writes results to outW and logs to logW. With
// no loaders given it reads HCL and YAML plans.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...plan.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = []plan.Loader{hclplan.NewLoader(), yamlplan.NewLoader()}
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
	}
}
