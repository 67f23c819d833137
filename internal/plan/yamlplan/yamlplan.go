// Package yamlplan loads build plans written in YAML:
//
//	buildings:
//	  - name: home
//	    kind: Residential
//	    recipe: basic
//	    floors: 4
//	    color: Red
package yamlplan

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/vk/buildgrid/internal/ctxlog"
	"github.com/vk/buildgrid/internal/plan"
)

// ErrMissingName is returned for an entry without a name.
var ErrMissingName = errors.New("building entry has no name")

type document struct {
	Buildings []entry `yaml:"buildings"`
}

type entry struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Recipe string `yaml:"recipe"`
	// Floors is kept loose so both 4 and "4" are accepted.
	Floors any    `yaml:"floors"`
	Color  string `yaml:"color"`
}

// Loader implements plan.Loader for .yaml and .yml files.
type Loader struct{}

// NewLoader creates a new YAML plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements the plan.Loader interface.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load implements the plan.Loader interface.
func (l *Loader) Load(ctx context.Context, paths ...string) (*plan.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	p := &plan.Plan{}
	for _, path := range paths {
		logger.Debug("Decoding plan file.", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}

		var doc document
		if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}

		file := &plan.Plan{}
		for i, e := range doc.Buildings {
			if e.Name == "" {
				return nil, fmt.Errorf("%s: entry %d: %w", path, i, ErrMissingName)
			}
			file.Orders = append(file.Orders, &plan.Order{
				Name:   e.Name,
				Kind:   e.Kind,
				Recipe: e.Recipe,
				Floors: rawText(e.Floors),
				Color:  e.Color,
				Source: path,
			})
		}
		if err := p.Merge(file); err != nil {
			return nil, err
		}
		logger.Debug("Successfully decoded plan file.", "path", path, "orders_found", len(file.Orders))
	}
	return p, nil
}

func rawText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
