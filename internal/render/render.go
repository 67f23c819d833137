// Package render writes built buildings in the output formats the CLI offers.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/vk/buildgrid/internal/building"
	"github.com/vk/buildgrid/internal/form"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "yaml", "toml"}

// Result pairs an order name with the building built for it.
type Result struct {
	Name     string
	Building *building.Building
}

// record is the structured form of a Result. Absent fields are omitted.
type record struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Type   string  `json:"type" yaml:"type" toml:"type"`
	Floors *int    `json:"floors,omitempty" yaml:"floors,omitempty" toml:"floors,omitempty"`
	Color  *string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

type document struct {
	Buildings []record `json:"buildings" yaml:"buildings" toml:"buildings"`
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results []Result) error {
	if format == "text" {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, form.Summary(r.Building)); err != nil {
				return err
			}
		}
		return nil
	}

	doc := document{Buildings: make([]record, 0, len(results))}
	for _, r := range results {
		doc.Buildings = append(doc.Buildings, record{
			Name:   r.Name,
			Type:   r.Building.Type(),
			Floors: r.Building.Floors,
			Color:  r.Building.Color,
		})
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}
