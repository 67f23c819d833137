package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/buildgrid/internal/building"
	"github.com/vk/buildgrid/internal/ctxlog"
)

// ErrUnknownKind is returned when Input.Kind is not one of Kinds.
var ErrUnknownKind = errors.New("unknown building kind")

const (
	KindResidential = "Residential"
	KindCommercial  = "Commercial"

	// DefaultKind is the picker's initial selection.
	DefaultKind = KindResidential
)

// Kinds are the options offered by the type picker.
var Kinds = []string{KindResidential, KindCommercial}

// Input holds the form fields exactly as entered.
type Input struct {
	Kind   string
	Floors string
	Color  string
	// Recipe, when set, is replayed by the director before the manual fields.
	Recipe string
}

// ValidKind reports whether kind is one of the picker options.
func ValidKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Submit performs the build action. The setters are only called when Floors
// parses as an integer; color travels with floors, so an unparsable floor
// count leaves both fields untouched.
func Submit(ctx context.Context, in Input) (*building.Building, error) {
	logger := ctxlog.FromContext(ctx)

	kind := in.Kind
	if kind == "" {
		kind = DefaultKind
	}
	if !ValidKind(kind) {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, kind, strings.Join(Kinds, ", "))
	}

	builder := building.NewConcreteBuilder(kind)
	director := building.NewDirector()
	director.UpdateBuilder(builder)

	if in.Recipe != "" {
		if err := director.Apply(building.Recipe(strings.ToLower(in.Recipe))); err != nil {
			return nil, err
		}
		logger.Debug("Recipe applied.", "kind", kind, "recipe", in.Recipe)
	}

	if floors, err := strconv.Atoi(strings.TrimSpace(in.Floors)); err == nil {
		builder.SetFloors(floors).SetColor(in.Color)
	} else if in.Floors != "" {
		logger.Debug("Floor count is not a number, skipping manual fields.", "floors", in.Floors)
	}

	return builder.Build(), nil
}

// Summary renders the result line shown under the form. Absent floors render
// as 0 and an absent color as an empty string.
func Summary(b *building.Building) string {
	floors, _ := b.FloorCount()
	color, _ := b.Paint()
	return fmt.Sprintf("Built %s building with %d floors and color %s", b.Type(), floors, color)
}
