package layout

import (
	"fmt"
	"sync"

	"github.com/npillmayer/paragraph/text"
	"github.com/npillmayer/uax/grapheme"
)

// Line is a committed line of a paragraph. Lines of a layout are contiguous:
// each line starts where the previous one ends.
type Line struct {
	StartIndex, EndIndex text.Index
	TrailingNewlines     int
	TrailingSpaces       int
	SpaceCount           int  // number of spaces, including trailing ones
	HardBreak            bool // line ends with a mandatory break or the end of text
	//
	Width                   float64 // excluding trailing white space
	WidthWithTrailingSpaces float64
	Left                    float64 // distance from the paragraph's left edge
	Ascent, Descent         float64
	Height                  float64
	Baseline                float64 // distance from the paragraph's top edge
	LineNumber              int
	Direction               text.Direction // base direction of the paragraph
	Fragments               []*Fragment    // in logical order
	//
	graphemesOnce  sync.Once
	graphemeStarts []text.Index
}

func (l *Line) String() string {
	return fmt.Sprintf("Line#%d[%d,%d) w=%.2f h=%.2f", l.LineNumber, l.StartIndex, l.EndIndex,
		l.Width, l.Height)
}

// Top is the distance of the line's top edge from the paragraph's top edge.
func (l *Line) Top() float64 {
	return l.Baseline - l.Ascent
}

// Bottom is the distance of the line's bottom edge from the paragraph's top edge.
func (l *Line) Bottom() float64 {
	return l.Top() + l.Height
}

// Right is the distance of the line's right edge from the paragraph's left edge.
func (l *Line) Right() float64 {
	return l.Left + l.Width
}

// VisibleEnd is the end of the line's text, excluding newlines.
func (l *Line) VisibleEnd() text.Index {
	return l.EndIndex - text.Index(l.TrailingNewlines)
}

// Range returns the text range of the line.
func (l *Line) Range() text.Range {
	return text.Range{Start: l.StartIndex, End: l.EndIndex}
}

// Overlaps is true if the line shares text with [start, end).
func (l *Line) Overlaps(start, end text.Index) bool {
	return l.StartIndex < end && start < l.EndIndex
}

// GraphemeStarts returns the start positions of the grapheme clusters of the
// line's visible text, followed by the end of the visible text. It is
// computed on first use.
func (l *Line) GraphemeStarts(units text.Units) []text.Index {
	l.graphemesOnce.Do(func() {
		l.graphemeStarts = graphemeStarts(units, l.StartIndex, l.VisibleEnd())
	})
	return l.graphemeStarts
}

// GraphemeStartBefore returns the start of the grapheme cluster containing
// index, which has to be within the line's visible text.
func (l *Line) GraphemeStartBefore(units text.Units, index text.Index) text.Index {
	starts := l.GraphemeStarts(units)
	lo, hi := 0, len(starts)-1 // starts[lo] <= index < starts[hi]
	if index < starts[lo] {
		return starts[lo]
	}
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if starts[mid] <= index {
			lo = mid
		} else {
			hi = mid
		}
	}
	return starts[lo]
}

// GraphemeEndAfter returns the end of the grapheme cluster containing index.
func (l *Line) GraphemeEndAfter(units text.Units, index text.Index) text.Index {
	starts := l.GraphemeStarts(units)
	for _, s := range starts {
		if s > index {
			return s
		}
	}
	return l.VisibleEnd()
}

var graphemeSetup sync.Once

func graphemeStarts(units text.Units, start, end text.Index) []text.Index {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(units.String(start, end))
	starts := make([]text.Index, 0, gstr.Len()+1)
	pos := start
	for i := 0; i < gstr.Len(); i++ {
		starts = append(starts, pos)
		pos += text.Index(text.Length(gstr.Nth(i)))
	}
	starts = append(starts, end)
	return starts
}
