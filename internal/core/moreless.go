package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTruncationOverflow reports that the collapsed tag and its separator do not
// fit before the truncation point. The render is still usable: the text prefix
// is clamped to empty.
var ErrTruncationOverflow = errors.New("truncation overflow")

// MoreLessOptions configures the tags and line limit of a collapsible text.
type MoreLessOptions struct {
	MaxLines          int
	CollapsedTag      string
	ExpandedTag       string
	CollapsedTagSpace string
	ExpandedTagSpace  string
}

// DefaultMoreLessOptions returns two lines with "show more" / "show less" tags.
func DefaultMoreLessOptions() MoreLessOptions {
	return MoreLessOptions{
		MaxLines:          2,
		CollapsedTag:      "show more",
		ExpandedTag:       "show less",
		CollapsedTagSpace: "...     ",
		ExpandedTagSpace:  "     ",
	}
}

// Measurement is what the rendering surface reports for a piece of text.
type Measurement struct {
	LineCount int
	// LineEndAtMaxLines is the rune offset at which line MaxLines-1 ends.
	LineEndAtMaxLines int
}

// Segment is a run of rendered text. Affordance segments are the clickable tag.
type Segment struct {
	Text       string
	Affordance bool
}

// RenderedText is the outcome of a decision.
type RenderedText struct {
	Segments   []Segment
	Toggleable bool
	Overflow   bool
}

// String returns the rendered text without any styling.
func (r RenderedText) String() string {
	var b strings.Builder
	for _, s := range r.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Decide picks the text to show for the given measurement and toggle state.
//
// When the text fits in MaxLines it is returned untouched and cannot be
// toggled. Otherwise the collapsed form is cut so that the separator and tag
// end where line MaxLines-1 ended. A cut point below zero is clamped and
// reported with ErrTruncationOverflow next to a valid result.
func Decide(text string, opts MoreLessOptions, m Measurement, expanded bool) (RenderedText, error) {
	if opts.MaxLines < 1 {
		return RenderedText{}, fmt.Errorf("%w: max lines must be at least 1, got %d", ErrInvalidConfiguration, opts.MaxLines)
	}

	if m.LineCount <= opts.MaxLines {
		return RenderedText{Segments: []Segment{{Text: text}}}, nil
	}

	if expanded {
		return RenderedText{
			Segments: []Segment{
				{Text: text + opts.ExpandedTagSpace},
				{Text: opts.ExpandedTag, Affordance: true},
			},
			Toggleable: true,
		}, nil
	}

	runes := []rune(text)
	cut := m.LineEndAtMaxLines - runeLen(opts.CollapsedTag) - runeLen(opts.CollapsedTagSpace)

	var err error
	overflow := false
	if cut < 0 {
		err = fmt.Errorf("%w: tag needs %d more runes than line %d provides",
			ErrTruncationOverflow, -cut, opts.MaxLines)
		overflow = true
		cut = 0
	}
	if cut > len(runes) {
		cut = len(runes)
	}

	return RenderedText{
		Segments: []Segment{
			{Text: string(runes[:cut]) + opts.CollapsedTagSpace},
			{Text: opts.CollapsedTag, Affordance: true},
		},
		Toggleable: true,
		Overflow:   overflow,
	}, err
}

func runeLen(s string) int {
	return len([]rune(s))
}

// Phase is the measurement state of a MoreLess.
type Phase int

const (
	Unmeasured Phase = iota
	MeasuredFits
	MeasuredTruncated
)

func (p Phase) String() string {
	switch p {
	case Unmeasured:
		return "unmeasured"
	case MeasuredFits:
		return "fits"
	case MeasuredTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MoreLess holds the toggle state of one collapsible text across layout passes.
type MoreLess struct {
	Text        string
	Options     MoreLessOptions
	Expanded    bool
	Phase       Phase
	Measurement Measurement
}

// NewMoreLess returns a collapsed, unmeasured text.
func NewMoreLess(text string, opts MoreLessOptions) *MoreLess {
	return &MoreLess{Text: text, Options: opts}
}

// Measure records the line metrics reported by the rendering surface.
// It may be called again after a resize; Expanded is kept.
func (ml *MoreLess) Measure(m Measurement) error {
	if ml.Options.MaxLines < 1 {
		return fmt.Errorf("%w: max lines must be at least 1, got %d", ErrInvalidConfiguration, ml.Options.MaxLines)
	}
	ml.Measurement = m
	if m.LineCount > ml.Options.MaxLines {
		ml.Phase = MeasuredTruncated
	} else {
		ml.Phase = MeasuredFits
	}
	return nil
}

// CanToggle reports whether a tap would change the render.
func (ml *MoreLess) CanToggle() bool {
	return ml.Phase == MeasuredTruncated
}

// Toggle flips the expanded state. It does nothing until a measurement has
// shown that the text needs truncating.
func (ml *MoreLess) Toggle() bool {
	if !ml.CanToggle() {
		return false
	}
	ml.Expanded = !ml.Expanded
	return true
}

// Render returns the text for the current phase. Before the first measurement
// the full text is shown.
func (ml *MoreLess) Render() (RenderedText, error) {
	if ml.Phase == Unmeasured {
		return RenderedText{Segments: []Segment{{Text: ml.Text}}}, nil
	}
	return Decide(ml.Text, ml.Options, ml.Measurement, ml.Expanded)
}
