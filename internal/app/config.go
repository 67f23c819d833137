package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/buildgrid/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PlanPath is a plan file or a directory of plan files. When empty the
	// app builds the single building described by Form.
	PlanPath string
	Form     FormConfig

	Format    string
	LogFormat string
	LogLevel  string
}

// FormConfig holds the raw form fields for single-building mode.
type FormConfig struct {
	Kind   string
	Floors string
	Color  string
	Recipe string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if !render.ValidFormat(cfg.Format) {
		return nil, fmt.Errorf("invalid format %q: must be one of %s", cfg.Format, strings.Join(render.Formats, ", "))
	}
	if cfg.PlanPath != "" && cfg.Form != (FormConfig{}) {
		return nil, errors.New("a plan path and form fields cannot be combined")
	}
	return &cfg, nil
}
