package config

// GapSize returns the gap size for an obstacle created at the given
// difficulty: one cell smaller per GapStep points, never below GapMin.
// Integer division truncates toward zero.
func (o Obstacles) GapSize(difficulty int) int {
	size := o.GapBase - difficulty/o.GapStep
	if size < o.GapMin {
		return o.GapMin
	}
	return size
}
