package cube

// Face is one of the six faces of a block or box, pointing in the negative or positive direction of one of
// the three axes.
type Face int

const (
	// FaceDown points towards the negative Y axis.
	FaceDown Face = iota
	// FaceUp points towards the positive Y axis.
	FaceUp
	// FaceNorth points towards the negative Z axis.
	FaceNorth
	// FaceSouth points towards the positive Z axis.
	FaceSouth
	// FaceWest points towards the negative X axis.
	FaceWest
	// FaceEast points towards the positive X axis.
	FaceEast
)

// Axis returns the axis the face points along.
func (f Face) Axis() Axis {
	switch f {
	case FaceDown, FaceUp:
		return Y
	case FaceWest, FaceEast:
		return X
	}
	return Z
}

// Positive reports whether the face points towards the positive end of its axis.
func (f Face) Positive() bool {
	return f == FaceUp || f == FaceSouth || f == FaceEast
}

// Opposite returns the face on the opposite side of the block.
func (f Face) Opposite() Face {
	switch f {
	case FaceDown:
		return FaceUp
	case FaceUp:
		return FaceDown
	case FaceNorth:
		return FaceSouth
	case FaceSouth:
		return FaceNorth
	case FaceWest:
		return FaceEast
	}
	return FaceWest
}

// String converts a Face to a string.
func (f Face) String() string {
	switch f {
	case FaceDown:
		return "down"
	case FaceUp:
		return "up"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	}
	return "east"
}

// Faces returns all six faces of a block.
func Faces() []Face {
	return []Face{FaceDown, FaceUp, FaceNorth, FaceSouth, FaceWest, FaceEast}
}
