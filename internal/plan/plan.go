package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/buildgrid/internal/ctxlog"
	"github.com/vk/buildgrid/internal/fsutil"
)

var (
	// ErrNoPlanFiles is returned when a path holds no file any loader accepts.
	ErrNoPlanFiles = errors.New("no plan files found")
	// ErrDuplicateOrder is returned when two orders share a name.
	ErrDuplicateOrder = errors.New("duplicate order name")
)

// Order is one building request. Floors and Color are kept as raw text;
// deciding what to do with them is the form's job.
type Order struct {
	Name   string
	Kind   string
	Recipe string
	Floors string
	Color  string
	// Source is the file the order was read from, for messages.
	Source string
}

// Plan is an ordered collection of orders.
type Plan struct {
	Orders []*Order
}

// Loader reads plan files of one format.
type Loader interface {
	// Extensions lists the file suffixes the loader accepts, e.g. ".hcl".
	Extensions() []string
	// Load parses the given files into a single plan.
	Load(ctx context.Context, paths ...string) (*Plan, error)
}

// Load collects plan files under root for every loader, loads them, and
// merges the results in loader order.
func Load(ctx context.Context, root string, loaders ...Loader) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	merged := &Plan{}
	found := 0
	for _, loader := range loaders {
		files, err := fsutil.FindFiles(root, loader.Extensions()...)
		if err != nil {
			return nil, fmt.Errorf("failed to search %s for plan files: %w", root, err)
		}
		if len(files) == 0 {
			continue
		}
		found += len(files)
		logger.Debug("Plan files found.", "extensions", loader.Extensions(), "count", len(files))

		p, err := loader.Load(ctx, files...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(p); err != nil {
			return nil, err
		}
	}

	if found == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPlanFiles, root)
	}

	logger.Debug("Plan loaded.", "files", found, "orders", len(merged.Orders))
	return merged, nil
}

// Merge appends the orders of other to p, rejecting names p already has.
func (p *Plan) Merge(other *Plan) error {
	seen := make(map[string]*Order, len(p.Orders))
	for _, o := range p.Orders {
		seen[o.Name] = o
	}
	for _, o := range other.Orders {
		if prev, ok := seen[o.Name]; ok {
			return fmt.Errorf("%w: %q in %s, first declared in %s", ErrDuplicateOrder, o.Name, o.Source, prev.Source)
		}
		seen[o.Name] = o
		p.Orders = append(p.Orders, o)
	}
	return nil
}
