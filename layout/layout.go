package layout

import (
	"math"

	"github.com/npillmayer/paragraph/bidi"
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
)

// Layout is the result of laying out a paragraph for a given width.
type Layout struct {
	Units text.Units
	Style *style.ParagraphStyle
	Lines []*Line
	//
	Width               float64 // the width laid out for, may be +Inf
	Height              float64
	LongestLine         float64
	MinIntrinsicWidth   float64
	MaxIntrinsicWidth   float64
	AlphabeticBaseline  float64
	IdeographicBaseline float64
	DidExceedMaxLines   bool
	PaintBounds         text.Rect
}

// Perform lays out a paragraph's fragments for width. The measurer has to
// stay acquired during the call.
//
// Justified paragraphs stretch every line except the last one and lines
// ending in a hard break, which are aligned to start.
func Perform(m *measure.Measurer, units text.Units, pstyle *style.ParagraphStyle,
	fr *Fragmenter, width float64) *Layout {
	//
	l := &Layout{
		Units: units,
		Style: pstyle,
		Width: width,
	}
	sm := NewSpanometer(m, units)
	fragments := fr.Fragments()
	for _, f := range fragments {
		sm.MeasureFragment(f)
	}
	l.Lines = breakLines(sm, pstyle, fragments, width, &l.DidExceedMaxLines)
	l.computeIntrinsicWidths(fragments)
	l.computeMetrics(m)
	justify := !math.IsInf(width, 1) && pstyle.TextAlign == style.AlignJustify
	last := l.Lines[len(l.Lines)-1]
	for _, line := range l.Lines {
		if justify && line != last && !line.HardBreak {
			justifyLine(line, width)
		}
		positionFragments(line)
	}
	l.alignLines()
	tracer().Infof("layout for width %.2f: %d lines, height %.2f", width, len(l.Lines), l.Height)
	return l
}

// breakLines fills lines greedily.
func breakLines(sm *Spanometer, pstyle *style.ParagraphStyle, fragments []*Fragment,
	width float64, didExceed *bool) []*Line {
	//
	var lines []*Line
	current := NewLineBuilder(sm, pstyle, width)
	commit := func() {
		line := current.Build()
		lines = append(lines, line)
		current = current.NextLine(line)
	}
outer:
	for i := 0; i < len(fragments); i++ {
		current.AddFragment(fragments[i])
		for current.IsOverflowing() {
			if current.CanHaveEllipsis() {
				current.InsertEllipsis()
				lines = append(lines, current.Build())
				*didExceed = true
				break outer
			}
			if current.IsBreakable() {
				current.RevertToLastBreakOpportunity()
			} else {
				current.ForceBreakLastFragment()
			}
			i += current.AppendZeroWidthFragments(fragments, i+1)
			commit()
		}
		if current.IsHardBreak() {
			commit()
		}
	}
	if n := pstyle.MaxLines; n > 0 && len(lines) > n {
		lines = lines[:n]
		*didExceed = true
	}
	return lines
}

// computeIntrinsicWidths finds the width of the widest unbreakable run and
// the width of the widest paragraph without soft breaks.
func (l *Layout) computeIntrinsicWidths(fragments []*Fragment) {
	var minRun, maxRun float64
	for _, f := range fragments {
		minRun += f.WidthExcludingTrailingSpaces
		maxRun += f.WidthIncludingTrailingSpaces()
		if !f.IsBreak() {
			continue
		}
		l.MinIntrinsicWidth = max(l.MinIntrinsicWidth, minRun)
		minRun = 0
		if f.IsHardBreak() {
			l.MaxIntrinsicWidth = max(l.MaxIntrinsicWidth, maxRun)
			maxRun = 0
		}
	}
}

func (l *Layout) computeMetrics(m *measure.Measurer) {
	for i, line := range l.Lines {
		l.Height += line.Height
		l.LongestLine = max(l.LongestLine, line.Width)
		if i == 0 {
			l.AlphabeticBaseline = line.Baseline
			ruler := m.Ruler(l.Style.Default.HeightKey())
			l.IdeographicBaseline = line.Baseline
			if ruler.AlphabeticBaseline > 0 {
				l.IdeographicBaseline *= ruler.IdeographicBaseline / ruler.AlphabeticBaseline
			}
		}
	}
}

// justifyLine stretches the spaces of a line to fill width.
func justifyLine(line *Line, width float64) {
	var extra float64
	for _, f := range line.Fragments {
		f.justifyTo(width)
		extra += f.extraWidth
	}
	line.Width += extra
	line.WidthWithTrailingSpaces += extra
}

// positionFragments sets the start offsets of a line's fragments. Runs of
// fragments sharing a direction are positioned as a group; groups running
// against the paragraph's direction are laid out in reverse order.
func positionFragments(line *Line) {
	pdir := line.Direction
	prevDir := pdir
	startOffset := 0.0
	sandwichStart := -1
	sequenceStart := 0
	frags := line.Fragments
	for i := 0; i <= len(frags); i++ {
		if i < len(frags) {
			f := frags[i]
			switch f.Flow {
			case bidi.Previous:
				sandwichStart = -1
				continue
			case bidi.Sandwich:
				if sandwichStart < 0 {
					sandwichStart = i
				}
				continue
			}
			if flowDirection(f.Flow) == prevDir {
				sandwichStart = -1
				continue
			}
		}
		// direction changes at i
		if sandwichStart < 0 {
			startOffset += positionRange(frags[sequenceStart:i], prevDir, pdir, startOffset)
		} else {
			startOffset += positionRange(frags[sequenceStart:sandwichStart], prevDir, pdir, startOffset)
			startOffset += positionRange(frags[sandwichStart:i], pdir, pdir, startOffset)
		}
		sequenceStart = i
		sandwichStart = -1
		if i < len(frags) {
			prevDir = flowDirection(frags[i].Flow)
		}
	}
	for _, f := range frags {
		if pdir == text.RightToLeft {
			f.Left = line.Width - (f.StartOffset + f.WidthIncludingTrailingSpaces())
		} else {
			f.Left = f.StartOffset
		}
	}
}

func flowDirection(flow bidi.Flow) text.Direction {
	if flow == bidi.RTL {
		return text.RightToLeft
	}
	return text.LeftToRight
}

func positionRange(frags []*Fragment, dir, pdir text.Direction, startOffset float64) float64 {
	var cumulative float64
	if dir == pdir {
		for _, f := range frags {
			f.setPosition(startOffset+cumulative, dir)
			cumulative += f.WidthIncludingTrailingSpaces()
		}
	} else {
		for i := len(frags) - 1; i >= 0; i-- {
			f := frags[i]
			f.setPosition(startOffset+cumulative, dir)
			cumulative += f.WidthIncludingTrailingSpaces()
		}
	}
	return cumulative
}

// alignLines sets the horizontal offset of every line according to the
// paragraph's text alignment. For unconstrained width lines are aligned
// within the longest line.
func (l *Layout) alignLines() {
	width := l.Width
	if math.IsInf(width, 1) {
		width = l.LongestLine
	}
	align := l.Style.EffectiveTextAlign()
	if align == style.AlignJustify {
		align = style.ParagraphStyle{TextDirection: l.Style.TextDirection}.EffectiveTextAlign()
	}
	left, right := math.Inf(1), math.Inf(-1)
	for _, line := range l.Lines {
		empty := width - line.Width
		switch align {
		case style.AlignCenter:
			line.Left = empty / 2
		case style.AlignRight:
			line.Left = empty
		default:
			line.Left = 0
		}
		left = min(left, line.Left)
		right = max(right, line.Right())
	}
	l.PaintBounds = text.Rect{Left: left, Top: 0, Right: right, Bottom: l.Height}
}
