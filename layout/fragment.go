package layout

import (
	"fmt"

	"github.com/npillmayer/paragraph/bidi"
	"github.com/npillmayer/paragraph/linebreak"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
)

// Fragment is the unit of layout: a run of text with a single style, a
// single direction, and no break opportunity in its interior.
//
// A fragment is created by the Fragmenter, measured by a Spanometer and
// positioned when its line is laid out.
type Fragment struct {
	Start, End       text.Index
	Type             linebreak.BreakType
	Direction        text.Direction // resolved during positioning for neutral runs
	Flow             bidi.Flow
	Span             *style.Span
	TrailingNewlines int
	TrailingSpaces   int
	//
	// measured
	Ascent, Descent              float64
	WidthExcludingTrailingSpaces float64
	widthIncludingTrailingSpaces float64
	extraWidth                   float64 // added by justification
	//
	// positioned
	StartOffset float64 // distance from the line's start edge, in line direction
	Left        float64 // distance from the line's left edge
	Line        *Line
	//
	ellipsis string // text of ellipsis fragments
}

func (f *Fragment) String() string {
	kind := ""
	if f.IsEllipsis() {
		kind = fmt.Sprintf("…%q", f.ellipsis)
	} else if f.IsPlaceholder() {
		kind = "☐"
	}
	return fmt.Sprintf("Fragment%s[%d,%d)%s %s/%s w=%.2f/%.2f", kind, f.Start, f.End, f.Type,
		f.Direction, f.Flow, f.WidthExcludingTrailingSpaces, f.WidthIncludingTrailingSpaces())
}

// Len is the length of the fragment in code units.
func (f *Fragment) Len() int {
	return int(f.End - f.Start)
}

// Range returns the text range of the fragment.
func (f *Fragment) Range() text.Range {
	return text.Range{Start: f.Start, End: f.End}
}

// IsBreak is true if a line may end after the fragment.
func (f *Fragment) IsBreak() bool {
	return f.Type != linebreak.Prohibited
}

// IsHardBreak is true if a line must end after the fragment.
func (f *Fragment) IsHardBreak() bool {
	return f.Type.IsHard()
}

// IsSpaceOnly is true for fragments consisting of white space only.
// Ellipsis fragments are never space only.
func (f *Fragment) IsSpaceOnly() bool {
	return !f.IsEllipsis() && f.TrailingSpaces == f.Len()
}

// IsPlaceholder is true for fragments standing in for an inline box.
func (f *Fragment) IsPlaceholder() bool {
	return !f.IsEllipsis() && f.Span != nil && f.Span.IsPlaceholder()
}

// IsEllipsis is true for the synthetic fragment which marks truncated text.
func (f *Fragment) IsEllipsis() bool {
	return f.ellipsis != ""
}

// Ellipsis returns the text of an ellipsis fragment.
func (f *Fragment) Ellipsis() string {
	return f.ellipsis
}

// WidthIncludingTrailingSpaces is the width of the fragment including
// trailing white space and extra space from justification.
func (f *Fragment) WidthIncludingTrailingSpaces() float64 {
	return f.widthIncludingTrailingSpaces + f.extraWidth
}

// Height is the sum of ascent and descent.
func (f *Fragment) Height() float64 {
	return f.Ascent + f.Descent
}

// Right is the distance of the fragment's right edge from the line's left edge.
func (f *Fragment) Right() float64 {
	return f.Left + f.WidthIncludingTrailingSpaces()
}

// VisibleEnd is the end of the fragment's text, excluding newlines.
func (f *Fragment) VisibleEnd() text.Index {
	return f.End - text.Index(f.TrailingNewlines)
}

// Overlaps is true if the fragment shares text with [start, end).
func (f *Fragment) Overlaps(start, end text.Index) bool {
	return f.Start < end && start < f.End
}

// Text returns the text to paint for a fragment, which is the ellipsis for
// ellipsis fragments. Trailing newlines are not painted.
func (f *Fragment) Text(units text.Units) string {
	if f.IsEllipsis() {
		return f.ellipsis
	}
	return units.String(f.Start, f.VisibleEnd())
}

// setMetrics stores the results of measuring a fragment.
func (f *Fragment) setMetrics(ascent, descent, widthExcl, widthIncl float64) {
	f.Ascent, f.Descent = ascent, descent
	f.WidthExcludingTrailingSpaces = widthExcl
	f.widthIncludingTrailingSpaces = widthIncl
}

// Split cuts a fragment at index, which must be within the fragment. One of
// the results is nil if index is at either end. Trailing white space goes to
// the second part, as far as it fits. The first part never allows a line
// break.
//
// Ellipsis fragments cannot be split.
func (f *Fragment) Split(index text.Index) (*Fragment, *Fragment) {
	assert(!f.IsEllipsis(), "cannot split an ellipsis fragment")
	assert(f.Start <= index && index <= f.End, "split index outside of fragment")
	if index == f.Start {
		return nil, f
	}
	if index == f.End {
		return f, nil
	}
	secondLen := int(f.End - index)
	nl2 := min(f.TrailingNewlines, secondLen)
	sp2 := min(f.TrailingSpaces, secondLen)
	first := &Fragment{
		Start:            f.Start,
		End:              index,
		Type:             linebreak.Prohibited,
		Direction:        f.Direction,
		Flow:             f.Flow,
		Span:             f.Span,
		TrailingNewlines: f.TrailingNewlines - nl2,
		TrailingSpaces:   f.TrailingSpaces - sp2,
	}
	second := &Fragment{
		Start:            index,
		End:              f.End,
		Type:             f.Type,
		Direction:        f.Direction,
		Flow:             f.Flow,
		Span:             f.Span,
		TrailingNewlines: nl2,
		TrailingSpaces:   sp2,
	}
	return first, second
}

// newEllipsis creates an ellipsis fragment at index. It is laid out like a
// neutral run and ends the text.
func newEllipsis(index text.Index, ellipsis string, span *style.Span) *Fragment {
	return &Fragment{
		Start:     index,
		End:       index,
		Type:      linebreak.EndOfText,
		Direction: text.Neutral,
		Flow:      bidi.Sandwich,
		Span:      span,
		ellipsis:  ellipsis,
	}
}

// justifyTo distributes the space missing to fill paragraphWidth over the
// spaces of the fragment's line. Fragments in the trailing white space of a
// line are not stretched.
func (f *Fragment) justifyTo(paragraphWidth float64) {
	line := f.Line
	if f.End > line.EndIndex-text.Index(line.TrailingSpaces) || f.TrailingSpaces == 0 {
		return
	}
	spaces := line.SpaceCount - line.TrailingSpaces
	if spaces <= 0 {
		return
	}
	perSpace := (paragraphWidth - line.Width) / float64(spaces)
	f.extraWidth = perSpace * float64(f.TrailingSpaces)
}

// setPosition places the fragment within its line.
func (f *Fragment) setPosition(startOffset float64, dir text.Direction) {
	f.StartOffset = startOffset
	if f.Direction == text.Neutral {
		f.Direction = dir
	}
}
