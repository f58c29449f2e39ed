package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a layout or text widget is asked to
// work with a non-positive row or line count.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Unbounded is used as a maximum constraint when the container may grow freely.
const Unbounded = int(^uint(0) >> 1)

// Box is the measured size of a single child.
type Box struct {
	Width  int
	Height int
}

// Point is a top-left coordinate inside the container.
type Point struct {
	X int
	Y int
}

// Constraints are the size bounds the parent imposes on the container.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Loose returns constraints that accept any size from zero up to the given maximums.
func Loose(maxWidth, maxHeight int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// Constrain clamps width and height into the constraint ranges.
// If a minimum exceeds its maximum the minimum wins.
func (c Constraints) Constrain(width, height int) (int, int) {
	return clamp(width, c.MinWidth, c.MaxWidth), clamp(height, c.MinHeight, c.MaxHeight)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// RowMetrics describes one row of a staggered layout.
type RowMetrics struct {
	Index     int
	Width     int   // accumulated width of the children in the row
	MaxHeight int   // tallest child in the row
	Y         int   // top of the row band
	Children  []int // child indexes, in placement order
}

// StaggeredLayout is the result of a layout pass.
type StaggeredLayout struct {
	Width      int
	Height     int
	Placements []Point // one entry per child, same order as the input
	Rows       []RowMetrics
}

// RowOf returns the row a child at index lands in.
func RowOf(index, rows int) int {
	return index % rows
}

// LayoutRows places children into a fixed number of rows, round-robin.
//
// Child i goes to row i%rows regardless of how full that row already is. Rows
// are stacked top to bottom and children are packed left to right with no
// spacing; every child in a row shares the row's Y.
func LayoutRows(rows int, children []Box, c Constraints) (StaggeredLayout, error) {
	if rows < 1 {
		return StaggeredLayout{}, fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidConfiguration, rows)
	}

	out := StaggeredLayout{
		Rows:       make([]RowMetrics, rows),
		Placements: make([]Point, len(children)),
	}
	for r := range out.Rows {
		out.Rows[r].Index = r
	}

	for i, child := range children {
		row := &out.Rows[RowOf(i, rows)]
		row.Width += abs(child.Width)
		row.MaxHeight = max(row.MaxHeight, abs(child.Height))
		row.Children = append(row.Children, i)
	}

	if len(children) == 0 {
		out.Width, out.Height = c.MinWidth, c.MinHeight
		return out, nil
	}

	widest, total := 0, 0
	for r := range out.Rows {
		out.Rows[r].Y = total
		total += out.Rows[r].MaxHeight
		widest = max(widest, out.Rows[r].Width)
	}
	out.Width, out.Height = c.Constrain(widest, total)

	// x cursor per row
	cursor := make([]int, rows)
	for i, child := range children {
		r := RowOf(i, rows)
		out.Placements[i] = Point{X: cursor[r], Y: out.Rows[r].Y}
		cursor[r] += abs(child.Width)
	}

	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
