package building

// Builder is the chainable configuration contract for a Building. Setters
// return the receiver so calls can be chained.
type Builder interface {
	SetFloors(n int) Builder
	SetColor(c string) Builder
	// Build returns the builder's entity in its current state. It does not
	// reset the builder: later setters keep mutating the same Building.
	Build() *Building
}

// ConcreteBuilder owns exactly one Building for its whole lifetime.
type ConcreteBuilder struct {
	building *Building
}

// NewConcreteBuilder creates a builder holding a fresh Building of the given type.
func NewConcreteBuilder(buildingType string) *ConcreteBuilder {
	return &ConcreteBuilder{building: newBuilding(buildingType)}
}

// SetFloors implements the Builder interface.
func (b *ConcreteBuilder) SetFloors(n int) Builder {
	b.building.Floors = &n
	return b
}

// SetColor implements the Builder interface.
func (b *ConcreteBuilder) SetColor(c string) Builder {
	b.building.Color = &c
	return b
}

// Build implements the Builder interface.
func (b *ConcreteBuilder) Build() *Building {
	return b.building
}
