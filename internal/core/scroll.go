package core

// Directions for horizontal scrolling and list cursor movement
const (
	DirectionNone  = 0
	DirectionLeft  = -1
	DirectionRight = 1
)

// ClampOffset keeps a scroll offset within [0, content-viewport].
func ClampOffset(offset, content, viewport int) int {
	limit := content - viewport
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// ScrollStep moves current toward target, covering about a third of the
// remaining distance per frame and at least one row. It returns target once
// it is reached.
func ScrollStep(current, target int) int {
	d := target - current
	switch {
	case d == 0:
		return target
	case d > 0:
		return current + max(1, d/3)
	default:
		return current - max(1, -d/3)
	}
}
