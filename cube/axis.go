package cube

// Axis is one of the three coordinate axes of the block grid. It doubles as the index of that axis in a Pos.
type Axis int

const (
	// X is the axis that points east.
	X Axis = iota
	// Y is the vertical axis.
	Y
	// Z is the axis that points south.
	Z
)

// String converts an Axis to a string.
func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return "z"
}

// Axes returns all three axes in X, Y, Z order.
func Axes() []Axis {
	return []Axis{X, Y, Z}
}
