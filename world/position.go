package world

import (
	"github.com/justtaldevelops/blockbox/cube"
)

// ChunkPos holds the position of a chunk. The type is provided as a utility struct for keeping track of a
// chunk's position. Chunk positions are different from block positions in the way that increasing the X/Z by
// one means increasing the absolute value on the X/Z axis in terms of blocks by 16.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[1]
}

// PosChunk returns the position of the chunk column that holds the block position passed.
func PosChunk(p cube.Pos) ChunkPos {
	return ChunkPos{int32(p.X() >> 4), int32(p.Z() >> 4)}
}

// ChunksInBox calls f for every chunk column that holds at least one block position of the box passed.
// Columns are visited with the X coordinate varying slowest. A box with inverted bounds touches no columns.
func ChunksInBox(b cube.Box, f func(pos ChunkPos)) {
	if b.Volume() == 0 {
		return
	}
	min, max := PosChunk(b.Min()), PosChunk(b.Max())
	for x := min.X(); x <= max.X(); x++ {
		for z := min.Z(); z <= max.Z(); z++ {
			f(ChunkPos{x, z})
		}
	}
}
