package cube

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pos holds the position of a block. The position is absolute: increasing the X, Y or Z by one moves the
// position by exactly one block on that axis.
type Pos [3]int

// X returns the X coordinate of the block position.
func (p Pos) X() int {
	return p[0]
}

// Y returns the Y coordinate of the block position.
func (p Pos) Y() int {
	return p[1]
}

// Z returns the Z coordinate of the block position.
func (p Pos) Z() int {
	return p[2]
}

// Add adds the position passed to the position and returns the result.
func (p Pos) Add(o Pos) Pos {
	return Pos{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

// Side returns the position on the side of this block position, at a specific face.
func (p Pos) Side(face Face) Pos {
	switch face {
	case FaceDown:
		p[1]--
	case FaceUp:
		p[1]++
	case FaceNorth:
		p[2]--
	case FaceSouth:
		p[2]++
	case FaceWest:
		p[0]--
	case FaceEast:
		p[0]++
	}
	return p
}

// OutOfBounds checks if the Y coordinate of the position is outside of the vertical range passed.
func (p Pos) OutOfBounds(r Range) bool {
	return p[1] > r.Max() || p[1] < r.Min()
}

// Vec3 returns a mgl64.Vec3 holding the same coordinates as the block position.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Vec3Centre returns a mgl64.Vec3 holding the centre of the block at the position, being the position with
// 0.5 added on each axis.
func (p Pos) Vec3Centre() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]) + 0.5, float64(p[1]) + 0.5, float64(p[2]) + 0.5}
}
