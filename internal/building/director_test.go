package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBuilder counts calls so tests can check the order a recipe uses.
type recordingBuilder struct {
	calls []string
	inner *ConcreteBuilder
}

func (r *recordingBuilder) SetFloors(n int) Builder {
	r.calls = append(r.calls, "floors")
	r.inner.SetFloors(n)
	return r
}

func (r *recordingBuilder) SetColor(c string) Builder {
	r.calls = append(r.calls, "color")
	r.inner.SetColor(c)
	return r
}

func (r *recordingBuilder) Build() *Building {
	return r.inner.Build()
}

func TestDirector_BasicRecipe(t *testing.T) {
	b := NewConcreteBuilder("Residential")
	d := NewDirector()

	d.UpdateBuilder(b)
	d.BuildBasicBuilding()

	got := b.Build()
	assert.Equal(t, 1, *got.Floors)
	assert.Equal(t, "White", *got.Color)
}

func TestDirector_CustomRecipe(t *testing.T) {
	b := NewConcreteBuilder("Commercial")
	d := NewDirector()

	d.UpdateBuilder(b)
	d.BuildCustomBuilding()

	got := b.Build()
	assert.Equal(t, 3, *got.Floors)
	assert.Equal(t, "Blue", *got.Color)
}

func TestDirector_RecipeOrder(t *testing.T) {
	rb := &recordingBuilder{inner: NewConcreteBuilder("Residential")}
	d := NewDirector()
	d.UpdateBuilder(rb)

	d.BuildBasicBuilding()
	d.BuildCustomBuilding()

	assert.Equal(t, []string{"floors", "color", "floors", "color"}, rb.calls)
}

func TestDirector_NoBuilderIsNoop(t *testing.T) {
	d := NewDirector()
	require.False(t, d.HasBuilder())

	assert.NotPanics(t, func() {
		d.BuildBasicBuilding()
		d.BuildCustomBuilding()
	})
	require.NoError(t, d.Apply(RecipeBasic))
	assert.False(t, d.HasBuilder())
}

func TestDirector_NoBuilderLeavesOthersUntouched(t *testing.T) {
	b := NewConcreteBuilder("Residential")
	d := NewDirector()

	d.BuildBasicBuilding()

	got := b.Build()
	assert.Nil(t, got.Floors)
	assert.Nil(t, got.Color)
}

func TestDirector_SwapBuilders(t *testing.T) {
	// --- Arrange ---
	first := NewConcreteBuilder("Residential")
	second := NewConcreteBuilder("Commercial")
	d := NewDirector()

	// --- Act ---
	d.UpdateBuilder(first)
	d.BuildBasicBuilding()
	d.UpdateBuilder(second)
	d.BuildCustomBuilding()

	// --- Assert ---
	assert.Equal(t, 1, *first.Build().Floors)
	assert.Equal(t, "White", *first.Build().Color)
	assert.Equal(t, 3, *second.Build().Floors)
	assert.Equal(t, "Blue", *second.Build().Color)
}

func TestDirector_UpdateBuilderNilClears(t *testing.T) {
	b := NewConcreteBuilder("Residential")
	d := NewDirector()
	d.UpdateBuilder(b)
	require.True(t, d.HasBuilder())

	d.UpdateBuilder(nil)
	d.BuildCustomBuilding()

	assert.False(t, d.HasBuilder())
	assert.Nil(t, b.Build().Floors)
}

func TestDirector_RecipeThenManualOverride(t *testing.T) {
	b := NewConcreteBuilder("Residential")
	d := NewDirector()
	d.UpdateBuilder(b)

	d.BuildCustomBuilding()
	b.SetColor("Orange")

	got := b.Build()
	assert.Equal(t, 3, *got.Floors)
	assert.Equal(t, "Orange", *got.Color)
}

func TestDirector_Apply(t *testing.T) {
	b := NewConcreteBuilder("Commercial")
	d := NewDirector()
	d.UpdateBuilder(b)

	require.NoError(t, d.Apply(RecipeCustom))
	assert.Equal(t, 3, *b.Build().Floors)

	require.NoError(t, d.Apply(RecipeBasic))
	assert.Equal(t, 1, *b.Build().Floors)

	err := d.Apply(Recipe("deluxe"))
	require.ErrorIs(t, err, ErrUnknownRecipe)
	assert.Contains(t, err.Error(), `"deluxe"`)
	assert.Equal(t, 1, *b.Build().Floors)
}
