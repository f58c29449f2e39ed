package ui

// Layout constants define the geometry of the TUI elements.
const (
	LayoutHeaderHeight = 2 // title + tabs
	LayoutFooterHeight = 2 // help + status
	LayoutSideMargin   = 4 // Left + Right margins
	LayoutVertPadding  = 2 // Top + Bottom padding

	MinBodyHeight = 3
	MinBodyWidth  = 20
)

// Layout controls the visibility of UI elements based on terminal size.
type Layout struct {
	ShowHeader bool
	ShowFooter bool
	BodyWidth  int
	BodyHeight int
}

// CalculateLayout determines which UI elements should be visible and how much
// room is left for the active screen. The body is served first, then the
// footer, then the header.
func CalculateLayout(termW, termH int) Layout {
	l := Layout{
		ShowHeader: true,
		ShowFooter: true,
		BodyWidth:  max(termW-LayoutSideMargin, 0),
	}

	avail := termH - LayoutVertPadding
	if avail-LayoutHeaderHeight-LayoutFooterHeight < MinBodyHeight {
		l.ShowHeader = false
		if avail-LayoutFooterHeight < MinBodyHeight {
			l.ShowFooter = false
		}
	}

	l.BodyHeight = avail
	if l.ShowHeader {
		l.BodyHeight -= LayoutHeaderHeight
	}
	if l.ShowFooter {
		l.BodyHeight -= LayoutFooterHeight
	}
	l.BodyHeight = max(l.BodyHeight, 0)
	return l
}

// IsBelowMinimum returns whether the terminal is too small to draw any screen.
func IsBelowMinimum(termW, termH int) bool {
	return termW < MinBodyWidth+LayoutSideMargin || termH < MinBodyHeight+LayoutVertPadding
}
