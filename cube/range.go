package cube

// Range represents the vertical range of a dimension in blocks, such as the -64 to 319 range of an
// overworld. Both values are inclusive.
type Range [2]int

// Min returns the minimum Y value of the range.
func (r Range) Min() int {
	return r[0]
}

// Max returns the maximum Y value of the range.
func (r Range) Max() int {
	return r[1]
}

// Height returns the difference between the maximum and minimum Y value of the range.
func (r Range) Height() int {
	return r[1] - r[0]
}
