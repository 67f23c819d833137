package building

import (
	"errors"
	"fmt"
)

// ErrUnknownRecipe is returned by Director.Apply for a name with no recipe.
var ErrUnknownRecipe = errors.New("unknown recipe")

// Recipe names a fixed construction sequence known to the Director.
type Recipe string

const (
	RecipeBasic  Recipe = "basic"
	RecipeCustom Recipe = "custom"
)

// Recipes lists every recipe the Director can replay, in display order.
var Recipes = []Recipe{RecipeBasic, RecipeCustom}

// Director replays recipes against the builder it was last given. It does
// not own that builder.
type Director struct {
	builder Builder
}

// NewDirector returns a Director with no builder assigned.
func NewDirector() *Director {
	return &Director{}
}

// UpdateBuilder replaces the held builder. Passing nil clears it.
func (d *Director) UpdateBuilder(b Builder) {
	d.builder = b
}

// HasBuilder reports whether a builder is currently assigned.
func (d *Director) HasBuilder() bool {
	return d.builder != nil
}

// BuildBasicBuilding sets one white floor. It does nothing without a builder.
func (d *Director) BuildBasicBuilding() {
	if d.builder == nil {
		return
	}
	d.builder.SetFloors(1).SetColor("White")
}

// BuildCustomBuilding sets three blue floors. It does nothing without a builder.
func (d *Director) BuildCustomBuilding() {
	if d.builder == nil {
		return
	}
	d.builder.SetFloors(3).SetColor("Blue")
}

// Apply runs the recipe with the given name. An unknown name is an error even
// when no builder is assigned; a known name without a builder is a no-op.
func (d *Director) Apply(recipe Recipe) error {
	switch recipe {
	case RecipeBasic:
		d.BuildBasicBuilding()
	case RecipeCustom:
		d.BuildCustomBuilding()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecipe, string(recipe))
	}
	return nil
}
