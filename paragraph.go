package paragraph

import (
	"math"

	"github.com/npillmayer/paragraph/layout"
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
	"github.com/npillmayer/paragraph/wordbreak"
)

// Constraints restrict the layout of a paragraph.
type Constraints struct {
	Width float64 // math.Inf(1) for unconstrained layout
}

// Unconstrained lets lines grow as long as their text, breaking them only at
// mandatory breaks.
var Unconstrained = Constraints{Width: math.Inf(1)}

// BoxHeightStyle selects the height of boxes returned by GetBoxesForRange.
type BoxHeightStyle = layout.BoxHeightStyle

// BoxWidthStyle selects the width of boxes returned by GetBoxesForRange.
type BoxWidthStyle = layout.BoxWidthStyle

// Box styles
const (
	BoxHeightTight = layout.BoxHeightTight
	BoxHeightMax   = layout.BoxHeightMax
	BoxWidthTight  = layout.BoxWidthTight
	BoxWidthMax    = layout.BoxWidthMax
)

// LineMetrics describes a line of a laid out paragraph.
type LineMetrics = layout.LineMetrics

// Paragraph is a styled paragraph of text. Its text and styles are fixed
// when it is built; its layout changes with the constraints passed to
// Layout.
//
// A paragraph is either unlaid or laid out for some constraints. Metrics and
// geometric queries are valid only for laid out paragraphs; calling them on
// an unlaid paragraph is a programming error and panics.
type Paragraph struct {
	units      text.Units
	spans      []style.Span
	pstyle     style.ParagraphStyle
	ctx        *measure.Context
	fragmenter *layout.Fragmenter // segmentation, independent of constraints
	layout     *layout.Layout     // nil if unlaid
	laidFor    Constraints
}

func newParagraph(units text.Units, spans []style.Span, pstyle style.ParagraphStyle,
	ctx *measure.Context) *Paragraph {
	//
	return &Paragraph{
		units:  units,
		spans:  spans,
		pstyle: pstyle,
		ctx:    ctx,
	}
}

// Layout breaks the paragraph into lines. Calling Layout again with the same
// constraints does nothing.
func (p *Paragraph) Layout(c Constraints) {
	if math.IsNaN(c.Width) {
		c.Width = math.Inf(1)
	}
	if p.layout != nil && c == p.laidFor {
		tracer().Debugf("paragraph already laid out for width %.2f", c.Width)
		return
	}
	if p.fragmenter == nil {
		p.fragmenter = layout.NewFragmenter(p.units, p.spans, p.pstyle.Direction())
	}
	m := p.ctx.Acquire()
	defer m.Release()
	p.layout = layout.Perform(m, p.units, &p.pstyle, p.fragmenter, c.Width)
	p.laidFor = c
}

// Invalidate discards the paragraph's layout. It has to be called when the
// measurement context has been invalidated, e.g. after fonts have changed.
func (p *Paragraph) Invalidate() {
	p.layout = nil
}

// IsLaidOut is true if the paragraph has a valid layout.
func (p *Paragraph) IsLaidOut() bool {
	return p.layout != nil
}

func (p *Paragraph) laidOut() *layout.Layout {
	assert(p.layout != nil, "paragraph has not been laid out")
	return p.layout
}

// PlainText returns the text of the paragraph. Placeholders are represented
// by U+FFFC.
func (p *Paragraph) PlainText() string {
	return p.units.String(0, p.units.Len())
}

// Len returns the length of the paragraph's text in UTF-16 code units.
func (p *Paragraph) Len() text.Index {
	return p.units.Len()
}

// Style returns the paragraph's style.
func (p *Paragraph) Style() style.ParagraphStyle {
	return p.pstyle
}

// Spans returns a copy of the paragraph's spans.
func (p *Paragraph) Spans() []style.Span {
	return append([]style.Span(nil), p.spans...)
}

// Lines returns the lines of the current layout. Clients must not modify
// them.
func (p *Paragraph) Lines() []*layout.Line {
	return p.laidOut().Lines
}

// --- Metrics ---------------------------------------------------------------

// Width is the width the paragraph has been laid out for.
func (p *Paragraph) Width() float64 { return p.laidOut().Width }

// Height is the sum of the heights of all lines.
func (p *Paragraph) Height() float64 { return p.laidOut().Height }

// LongestLine is the width of the widest line, excluding trailing white
// space.
func (p *Paragraph) LongestLine() float64 { return p.laidOut().LongestLine }

// MinIntrinsicWidth is the width of the widest unbreakable run of text.
// Laying out for less width forces breaks within words.
func (p *Paragraph) MinIntrinsicWidth() float64 { return p.laidOut().MinIntrinsicWidth }

// MaxIntrinsicWidth is the width the paragraph needs to avoid soft line
// breaks.
func (p *Paragraph) MaxIntrinsicWidth() float64 { return p.laidOut().MaxIntrinsicWidth }

// AlphabeticBaseline is the distance of the first line's baseline from the
// top of the paragraph.
func (p *Paragraph) AlphabeticBaseline() float64 { return p.laidOut().AlphabeticBaseline }

// IdeographicBaseline is the distance of the first line's ideographic
// baseline from the top of the paragraph.
func (p *Paragraph) IdeographicBaseline() float64 { return p.laidOut().IdeographicBaseline }

// DidExceedMaxLines is true if text has been dropped because of the
// paragraph's line limit.
func (p *Paragraph) DidExceedMaxLines() bool { return p.laidOut().DidExceedMaxLines }

// NumberOfLines is the number of lines of the layout.
func (p *Paragraph) NumberOfLines() int { return len(p.laidOut().Lines) }

// PaintBounds is the rectangle covering all lines.
func (p *Paragraph) PaintBounds() text.Rect { return p.laidOut().PaintBounds }

// ComputeLineMetrics returns the metrics of every line.
func (p *Paragraph) ComputeLineMetrics() []LineMetrics {
	return p.laidOut().LineMetrics()
}

// --- Queries ---------------------------------------------------------------

// GetBoxesForRange returns boxes enclosing the text in [start, end).
// Invalid ranges and ranges outside of the text result in no boxes.
func (p *Paragraph) GetBoxesForRange(start, end text.Index, hstyle BoxHeightStyle,
	wstyle BoxWidthStyle) []text.Box {
	//
	l := p.laidOut()
	m := p.ctx.Acquire()
	defer m.Release()
	return l.BoxesForRange(m, start, end, hstyle, wstyle)
}

// GetBoxesForPlaceholders returns the boxes of all placeholders which have
// been laid out.
func (p *Paragraph) GetBoxesForPlaceholders() []text.Box {
	return p.laidOut().BoxesForPlaceholders()
}

// GetPositionForOffset returns the caret position closest to a point.
func (p *Paragraph) GetPositionForOffset(pt text.Point) text.Position {
	l := p.laidOut()
	m := p.ctx.Acquire()
	defer m.Release()
	return l.PositionForOffset(m, pt)
}

// GetGlyphInfoAt returns the bounds of the grapheme cluster containing the
// code unit at index. It returns false if there is no visible glyph at index.
func (p *Paragraph) GetGlyphInfoAt(index text.Index) (text.GlyphInfo, bool) {
	l := p.laidOut()
	m := p.ctx.Acquire()
	defer m.Release()
	return l.GlyphInfoAt(m, index)
}

// GetClosestGlyphInfoForOffset returns the bounds of the grapheme cluster
// closest to a point.
func (p *Paragraph) GetClosestGlyphInfoForOffset(pt text.Point) (text.GlyphInfo, bool) {
	l := p.laidOut()
	m := p.ctx.Acquire()
	defer m.Release()
	return l.ClosestGlyphInfoForOffset(m, pt)
}

// GetWordBoundary returns the word around a caret position. For upstream
// positions this is the word before the position.
func (p *Paragraph) GetWordBoundary(pos text.Position) text.Range {
	i := pos.Offset
	if pos.Affinity == text.Upstream {
		i--
	}
	start := wordbreak.PrevBreakIndex(p.units, i+1)
	end := wordbreak.NextBreakIndex(p.units, i)
	return text.Range{Start: start, End: end}
}

// GetLineBoundary returns the range of the visible text of the line
// containing pos.
func (p *Paragraph) GetLineBoundary(pos text.Position) text.Range {
	return p.laidOut().LineBoundary(pos)
}

// GetLineNumberAt returns the number of the line containing the code unit
// at index, or -1 if index is not part of any line.
func (p *Paragraph) GetLineNumberAt(index text.Index) int {
	return p.laidOut().LineNumberAt(index)
}

// MoveByWord returns the caret position one word before or after index.
func (p *Paragraph) MoveByWord(index text.Index, forward bool) text.Index {
	return wordbreak.MoveByWordBoundary(p.units, index, forward)
}
