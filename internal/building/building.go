package building

// Building is the product assembled by a Builder. Floors and Color stay nil
// until a configuration step sets them.
type Building struct {
	buildingType string
	Floors       *int
	Color        *string
}

func newBuilding(buildingType string) *Building {
	return &Building{buildingType: buildingType}
}

// Type returns the type the building was created with.
func (b *Building) Type() string {
	return b.buildingType
}

// FloorCount returns the floor count and whether it has been set.
func (b *Building) FloorCount() (int, bool) {
	if b.Floors == nil {
		return 0, false
	}
	return *b.Floors, true
}

// Paint returns the color and whether it has been set.
func (b *Building) Paint() (string, bool) {
	if b.Color == nil {
		return "", false
	}
	return *b.Color, true
}
