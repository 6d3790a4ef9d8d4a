package cube

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned box of blocks with inclusive minimum and maximum corners. Box is a plain value:
// methods that change the bounds return a new Box and never modify the receiver, so a Box may be shared
// freely between goroutines.
// A Box whose minimum exceeds its maximum on an axis holds no blocks: iterating over it visits nothing.
type Box struct {
	min, max Pos
}

// New returns a new Box spanning the bounds passed. Both corners are inclusive. Bounds with min > max on an
// axis are accepted and produce a Box that holds no blocks.
func New(minX, minY, minZ, maxX, maxY, maxZ int) Box {
	return Box{min: Pos{minX, minY, minZ}, max: Pos{maxX, maxY, maxZ}}
}

// Min returns the minimum corner of the box.
func (b Box) Min() Pos {
	return b.min
}

// Max returns the maximum corner of the box.
func (b Box) Max() Pos {
	return b.max
}

// Size returns the amount of blocks the box spans on the X, Y and Z axes respectively. An axis with
// inverted bounds spans zero blocks.
func (b Box) Size() (sx, sy, sz int) {
	sx, sy, sz = b.max[0]-b.min[0]+1, b.max[1]-b.min[1]+1, b.max[2]-b.min[2]+1
	if sx < 0 {
		sx = 0
	}
	if sy < 0 {
		sy = 0
	}
	if sz < 0 {
		sz = 0
	}
	return sx, sy, sz
}

// Volume returns the total amount of block positions within the box, which is zero for a box with inverted
// bounds on any axis.
func (b Box) Volume() int {
	sx, sy, sz := b.Size()
	return sx * sy * sz
}

// Contains reports whether the block position passed lies within the box.
func (b Box) Contains(p Pos) bool {
	return p[0] >= b.min[0] && p[0] <= b.max[0] &&
		p[1] >= b.min[1] && p[1] <= b.max[1] &&
		p[2] >= b.min[2] && p[2] <= b.max[2]
}

// Intersects reports whether the box passed shares at least one block position with the box.
func (b Box) Intersects(o Box) bool {
	if b.Volume() == 0 || o.Volume() == 0 {
		return false
	}
	return b.min[0] <= o.max[0] && b.max[0] >= o.min[0] &&
		b.min[1] <= o.max[1] && b.max[1] >= o.min[1] &&
		b.min[2] <= o.max[2] && b.max[2] >= o.min[2]
}

// ForEach calls f for every block position within the box. Positions are visited in a fixed order: the X
// coordinate varies slowest and the Z coordinate fastest, so the unit box at the origin visits (0,0,0),
// (0,0,1), (0,1,0), (0,1,1), (1,0,0) and so on. Callers may rely on this order.
func (b Box) ForEach(f func(p Pos)) {
	for x := b.min[0]; x <= b.max[0]; x++ {
		for y := b.min[1]; y <= b.max[1]; y++ {
			for z := b.min[2]; z <= b.max[2]; z++ {
				f(Pos{x, y, z})
			}
		}
	}
}

// ForEachWall calls f for every block position on the outer shell of the box, being every position with at
// least one coordinate equal to the minimum or maximum of its axis. On an axis that is one block thick,
// every position of the box satisfies that, so flat boxes consist entirely of wall positions. Positions are
// visited in ForEach order.
func (b Box) ForEachWall(f func(p Pos)) {
	b.ForEach(func(p Pos) {
		if p[0] == b.min[0] || p[0] == b.max[0] ||
			p[1] == b.min[1] || p[1] == b.max[1] ||
			p[2] == b.min[2] || p[2] == b.max[2] {
			f(p)
		}
	})
}

// ForEachEdge calls f for every block position on an edge or corner of the box, being every position that
// lies on the boundary of at least two axes at once. Positions are visited in ForEach order.
func (b Box) ForEachEdge(f func(p Pos)) {
	b.ForEach(func(p Pos) {
		n := 0
		if p[0] == b.min[0] || p[0] == b.max[0] {
			n++
		}
		if p[1] == b.min[1] || p[1] == b.max[1] {
			n++
		}
		if p[2] == b.min[2] || p[2] == b.max[2] {
			n++
		}
		if n >= 2 {
			f(p)
		}
	})
}

// Slice splits the box into tubes of one by one block spanning the full box on the axis passed, and calls f
// for each of them. Slicing along X produces one tube per (Y, Z) pair with Y varying slowest, slicing along
// Y one tube per (X, Z) pair with X varying slowest, and slicing along Z one tube per (X, Y) pair with X
// varying slowest. Every tube is a full Box usable with all other methods.
func (b Box) Slice(a Axis, f func(sub Box)) {
	switch a {
	case X:
		for y := b.min[1]; y <= b.max[1]; y++ {
			for z := b.min[2]; z <= b.max[2]; z++ {
				f(New(b.min[0], y, z, b.max[0], y, z))
			}
		}
	case Y:
		for x := b.min[0]; x <= b.max[0]; x++ {
			for z := b.min[2]; z <= b.max[2]; z++ {
				f(New(x, b.min[1], z, x, b.max[1], z))
			}
		}
	case Z:
		for x := b.min[0]; x <= b.max[0]; x++ {
			for y := b.min[1]; y <= b.max[1]; y++ {
				f(New(x, y, b.min[2], x, y, b.max[2]))
			}
		}
	}
}

// ErrNotNoodle is returned by Endpoint when the box spans more than one block on an axis that must be flat.
var ErrNotNoodle = errors.New("bounding box is not noodle shaped")

// flat returns the single coordinate the box occupies on the axis passed. An error wrapping ErrNotNoodle is
// returned if the box is more than one block thick on that axis.
func (b Box) flat(a Axis) (int, error) {
	if b.min[a] != b.max[a] {
		return 0, fmt.Errorf("%w: box spans more than one block on the %v axis", ErrNotNoodle, a)
	}
	return b.min[a], nil
}

// Endpoint returns the block position at the extreme of the box in the direction of the face passed. The
// box must be exactly one block thick on the two axes perpendicular to the face, such as a tube produced by
// Slice. If it is not, an error wrapping ErrNotNoodle is returned: such a call signals a bug in the way the
// caller built the box rather than a condition to recover from at runtime.
func (b Box) Endpoint(face Face) (Pos, error) {
	axis := face.Axis()
	var p Pos
	for _, a := range Axes() {
		if a == axis {
			continue
		}
		v, err := b.flat(a)
		if err != nil {
			return Pos{}, err
		}
		p[a] = v
	}
	if face.Positive() {
		p[axis] = b.max[axis]
	} else {
		p[axis] = b.min[axis]
	}
	return p, nil
}

// Expand returns the box grown by offset blocks on all six sides. A negative offset shrinks the box;
// shrinking an axis past its middle inverts the bounds on it, after which the box holds no blocks.
func (b Box) Expand(offset int) Box {
	return New(b.min[0]-offset, b.min[1]-offset, b.min[2]-offset, b.max[0]+offset, b.max[1]+offset, b.max[2]+offset)
}

// ClampY returns the box limited to the vertical range passed, such as the build limits of a dimension.
// Bounds already within the range are left untouched. A box entirely outside of the range ends up with
// inverted Y bounds and holds no blocks.
func (b Box) ClampY(r Range) Box {
	min, max := b.min, b.max
	if min[1] < r.Min() {
		min[1] = r.Min()
	}
	if max[1] > r.Max() {
		max[1] = r.Max()
	}
	return Box{min: min, max: max}
}

// Centre returns the centre point of the box as a mgl64.Vec3, accounting for the fact that a block position
// spans a full block: the centre of the unit box at the origin is (0.5, 0.5, 0.5).
func (b Box) Centre() mgl64.Vec3 {
	return b.min.Vec3Centre().Add(b.max.Vec3Centre()).Mul(0.5)
}

// String converts the box to a readable string.
func (b Box) String() string {
	return fmt.Sprintf("%v -> %v", b.min, b.max)
}
