package layout

import (
	"math"

	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/text"
)

// BoxHeightStyle selects the height of boxes returned for text ranges.
type BoxHeightStyle int8

// Box height styles
const (
	BoxHeightTight BoxHeightStyle = iota // the fragment's own ascent and descent
	BoxHeightMax                         // the full height of the line
)

// BoxWidthStyle selects the width of boxes returned for text ranges.
type BoxWidthStyle int8

// Box width styles
const (
	BoxWidthTight BoxWidthStyle = iota // only the text
	BoxWidthMax                        // lines are padded to the widest line
)

// LineMetrics describes a committed line.
type LineMetrics struct {
	HardBreak  bool
	Ascent     float64
	Descent    float64
	Height     float64
	Width      float64
	Left       float64
	Baseline   float64
	LineNumber int
}

// LineMetrics returns the metrics of all lines.
func (l *Layout) LineMetrics() []LineMetrics {
	metrics := make([]LineMetrics, len(l.Lines))
	for i, line := range l.Lines {
		metrics[i] = LineMetrics{
			HardBreak:  line.HardBreak,
			Ascent:     line.Ascent,
			Descent:    line.Descent,
			Height:     line.Height,
			Width:      line.Width,
			Left:       line.Left,
			Baseline:   line.Baseline,
			LineNumber: line.LineNumber,
		}
	}
	return metrics
}

// --- Boxes -----------------------------------------------------------------

// TextBox returns the box for the part of a fragment within [start, end),
// in paragraph coordinates.
func (f *Fragment) TextBox(sm *Spanometer, start, end text.Index) text.Box {
	line := f.Line
	top := line.Top() + line.Ascent - f.Ascent
	box := text.Box{
		Left:      line.Left + f.Left,
		Top:       top,
		Right:     line.Left + f.Right(),
		Bottom:    top + f.Height(),
		Direction: f.Direction,
	}
	if f.IsPlaceholder() || f.IsEllipsis() {
		return box
	}
	var before, after float64
	if start > f.Start {
		sm.SetSpan(f.Span)
		before = sm.MeasureRange(f.Start, min(start, f.VisibleEnd()))
	}
	if end < f.VisibleEnd() {
		sm.SetSpan(f.Span)
		after = sm.MeasureRange(end, f.VisibleEnd())
	}
	if f.Direction == text.RightToLeft {
		before, after = after, before
	}
	box.Left += before
	box.Right -= after
	return box
}

// BoxesForRange returns boxes enclosing the text in [start, end), line by
// line and fragment by fragment. Empty, inverted and out-of-bounds ranges
// result in no boxes.
func (l *Layout) BoxesForRange(m *measure.Measurer, start, end text.Index,
	hstyle BoxHeightStyle, wstyle BoxWidthStyle) []text.Box {
	//
	if start >= end || start < 0 || end > l.Units.Len() {
		return nil
	}
	sm := NewSpanometer(m, l.Units)
	widest := 0.0
	if wstyle == BoxWidthMax {
		for _, line := range l.Lines {
			widest = max(widest, line.Right())
		}
	}
	var boxes []text.Box
	for _, line := range l.Lines {
		if !line.Overlaps(start, end) {
			continue
		}
		first := len(boxes)
		for _, f := range line.Fragments {
			if f.IsPlaceholder() || !f.Overlaps(start, end) {
				continue
			}
			box := f.TextBox(sm, max(start, f.Start), min(end, f.End))
			if hstyle == BoxHeightMax {
				box.Top, box.Bottom = line.Top(), line.Bottom()
			}
			boxes = append(boxes, box)
		}
		if wstyle == BoxWidthMax && len(boxes) > first {
			boxes = padLine(boxes, first, line, widest)
		}
	}
	return boxes
}

// padLine adds boxes filling the space between the boxes of a line and the
// left edge of the paragraph and the right edge of the widest line.
func padLine(boxes []text.Box, first int, line *Line, widest float64) []text.Box {
	left, right := math.Inf(1), math.Inf(-1)
	top, bottom := boxes[first].Top, boxes[first].Bottom
	for _, b := range boxes[first:] {
		left, right = min(left, b.Left), max(right, b.Right)
		top, bottom = min(top, b.Top), max(bottom, b.Bottom)
	}
	if left > 0 {
		boxes = append(boxes, text.Box{Left: 0, Top: top, Right: left, Bottom: bottom,
			Direction: line.Direction})
	}
	if right < widest {
		boxes = append(boxes, text.Box{Left: right, Top: top, Right: widest, Bottom: bottom,
			Direction: line.Direction})
	}
	return boxes
}

// BoxesForPlaceholders returns the boxes of all placeholders which made it
// into a line, in logical order.
func (l *Layout) BoxesForPlaceholders() []text.Box {
	var boxes []text.Box
	for _, line := range l.Lines {
		for _, f := range line.Fragments {
			if f.IsPlaceholder() {
				boxes = append(boxes, f.TextBox(nil, f.Start, f.End))
			}
		}
	}
	return boxes
}

// --- Positions -------------------------------------------------------------

// LineForY returns the line at vertical offset y. Offsets above the
// paragraph hit the first line, offsets below hit the last one.
func (l *Layout) LineForY(y float64) *Line {
	for _, line := range l.Lines {
		if y <= line.Height {
			return line
		}
		y -= line.Height
	}
	return l.Lines[len(l.Lines)-1]
}

// LineNumberAt returns the number of the line containing the code unit at
// index, or -1. The end of the text belongs to the last line.
func (l *Layout) LineNumberAt(index text.Index) int {
	lines := l.Lines
	if index == l.Units.Len() && lines[len(lines)-1].EndIndex == index {
		return len(lines) - 1
	}
	lo, hi := 0, len(lines)
	for lo < hi {
		mid := (lo + hi) / 2
		switch line := lines[mid]; {
		case index < line.StartIndex:
			hi = mid
		case index >= line.EndIndex:
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}

// LineBoundary returns the visible text range of the line containing pos.
// Upstream positions at the start of a line belong to the line before.
// Positions beyond the laid out text belong to the last line.
func (l *Layout) LineBoundary(pos text.Position) text.Range {
	n := l.LineNumberAt(pos.Offset)
	if n > 0 && pos.Affinity == text.Upstream && l.Lines[n].StartIndex == pos.Offset {
		n--
	}
	if n < 0 {
		n = len(l.Lines) - 1
	}
	line := l.Lines[n]
	return text.Range{Start: line.StartIndex, End: line.VisibleEnd()}
}

// PositionForOffset hit-tests a point and returns the closest caret
// position.
func (l *Layout) PositionForOffset(m *measure.Measurer, p text.Point) text.Position {
	line := l.LineForY(p.Y)
	rtl := line.Direction == text.RightToLeft
	lineStart := text.Position{Offset: line.StartIndex}
	lineEnd := text.Position{Offset: line.VisibleEnd(), Affinity: text.Upstream}
	if p.X <= line.Left {
		if rtl {
			return lineEnd
		}
		return lineStart
	}
	if p.X >= line.Left+line.WidthWithTrailingSpaces {
		if rtl {
			return lineStart
		}
		return lineEnd
	}
	sm := NewSpanometer(m, l.Units)
	x := p.X - line.Left
	for _, f := range line.Fragments {
		if f.Left <= x && x <= f.Right() {
			return f.positionForX(sm, x-f.Left)
		}
	}
	return lineStart
}

// positionForX finds the caret position closest to x, which is relative to
// the fragment's left edge.
func (f *Fragment) positionForX(sm *Spanometer, x float64) text.Position {
	if f.Direction == text.RightToLeft {
		x = f.WidthIncludingTrailingSpaces() - x
	}
	start, end := f.Start, f.VisibleEnd()
	if f.IsEllipsis() || start == end {
		return text.Position{Offset: start}
	}
	units := sm.units
	_, n := units.CodePointAt(start)
	if f.IsPlaceholder() || start+text.Index(n) >= end {
		if x < f.WidthIncludingTrailingSpaces()-x {
			return text.Position{Offset: start}
		}
		return text.Position{Offset: end, Affinity: text.Upstream}
	}
	sm.SetSpan(f.Span)
	cutoff := sm.ForceBreak(start, end, x, true)
	if cutoff == end {
		return text.Position{Offset: end, Affinity: text.Upstream}
	}
	_, n = units.CodePointAt(cutoff)
	next := cutoff + text.Index(max(n, 1))
	low := sm.MeasureRange(start, cutoff)
	high := sm.MeasureRange(start, next)
	if x-low < high-x {
		return text.Position{Offset: cutoff}
	}
	return text.Position{Offset: next, Affinity: text.Upstream}
}

// --- Glyphs ----------------------------------------------------------------

// GlyphInfoAt returns the bounds of the grapheme cluster at index. It
// returns false if index is not part of a line's visible text.
func (l *Layout) GlyphInfoAt(m *measure.Measurer, index text.Index) (text.GlyphInfo, bool) {
	n := l.LineNumberAt(index)
	if n < 0 {
		return text.GlyphInfo{}, false
	}
	line := l.Lines[n]
	if index >= line.VisibleEnd() {
		return text.GlyphInfo{}, false
	}
	start := line.GraphemeStartBefore(l.Units, index)
	end := line.GraphemeEndAfter(l.Units, index)
	sm := NewSpanometer(m, l.Units)
	for _, f := range line.Fragments {
		if f.Overlaps(start, end) {
			return f.glyphInfo(sm, start, end), true
		}
	}
	return text.GlyphInfo{}, false
}

func (f *Fragment) glyphInfo(sm *Spanometer, start, end text.Index) text.GlyphInfo {
	box := f.TextBox(sm, max(start, f.Start), min(end, f.VisibleEnd()))
	return text.GlyphInfo{
		Bounds:    box.Rect(),
		Range:     text.Range{Start: start, End: end},
		Direction: box.Direction,
	}
}

// ClosestGlyphInfoForOffset returns the bounds of the grapheme cluster
// closest to a point. It returns false if the line at the point has no
// visible text.
func (l *Layout) ClosestGlyphInfoForOffset(m *measure.Measurer, p text.Point) (text.GlyphInfo, bool) {
	line := l.LineForY(p.Y)
	f := line.closestFragment(p.X)
	if f == nil {
		return text.GlyphInfo{}, false
	}
	sm := NewSpanometer(m, l.Units)
	return f.closestGlyph(sm, l.Units, p.X), true
}

// closestFragment returns the fragment with visible text nearest to x.
func (l *Line) closestFragment(x float64) *Fragment {
	var closest *Fragment
	dist := math.Inf(1)
	for _, f := range l.Fragments {
		if f.IsEllipsis() || f.Start >= f.VisibleEnd() {
			continue
		}
		left, right := l.Left+f.Left, l.Left+f.Right()
		d := 0.0
		if x < left {
			d = left - x
		} else if x > right {
			d = x - right
		}
		if d < dist {
			closest, dist = f, d
		}
	}
	return closest
}

// closestGlyph searches the grapheme clusters starting within the fragment
// for the one at x.
func (f *Fragment) closestGlyph(sm *Spanometer, units text.Units, x float64) text.GlyphInfo {
	starts := f.Line.GraphemeStarts(units)
	first, last := -1, -1 // indices into starts of clusters starting within f
	for i := 0; i < len(starts)-1; i++ {
		if starts[i] >= f.Start && starts[i] < f.VisibleEnd() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 { // f lies within a single cluster
		start := f.Line.GraphemeStartBefore(units, f.Start)
		return f.glyphInfo(sm, start, f.Line.GraphemeEndAfter(units, f.Start))
	}
	rtl := f.Direction == text.RightToLeft
	lo, hi := first, last
	for lo < hi {
		mid := (lo + hi) / 2
		g := f.glyphInfo(sm, starts[mid], starts[mid+1])
		if (!rtl && x >= g.Bounds.Right) || (rtl && x < g.Bounds.Left) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return f.glyphInfo(sm, starts[lo], starts[lo+1])
}
