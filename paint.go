package paragraph

import (
	"image/color"
	"sync"

	"github.com/npillmayer/paragraph/layout"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
	"github.com/npillmayer/uax/grapheme"
)

// TextRun is a piece of text to be drawn in a single style and direction.
// Coordinates are absolute, i.e. include the offset passed to Paint.
type TextRun struct {
	Text      string
	Range     text.Range // range in the paragraph's text, collapsed for ellipses
	X         float64    // left edge
	Baseline  float64
	Width     float64
	Style     style.SpanStyle
	Direction text.Direction
	Line      int // number of the line the run is part of
}

var graphemeSetup sync.Once

// Visual returns the run's text in display order. Text of right-to-left runs
// is reversed by grapheme clusters, so that combining marks stay with their
// base characters. Surfaces drawing glyphs left to right use it instead of
// Text.
func (r TextRun) Visual() string {
	if r.Direction != text.RightToLeft {
		return r.Text
	}
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(r.Text)
	n := gstr.Len()
	b := make([]byte, 0, len(r.Text))
	for i := n - 1; i >= 0; i-- {
		b = append(b, gstr.Nth(i)...)
	}
	return string(b)
}

// Surface is where paragraphs are painted on.
type Surface interface {
	DrawText(run TextRun)
}

// RectFiller is implemented by surfaces which can paint span backgrounds.
type RectFiller interface {
	FillRect(box text.Box, c color.Color)
}

// Paint draws the paragraph's lines with the paragraph's top left corner at
// offset. Placeholders are not painted; clients find their positions with
// GetBoxesForPlaceholders.
func (p *Paragraph) Paint(surface Surface, offset text.Point) {
	l := p.laidOut()
	filler, canFill := surface.(RectFiller)
	for _, line := range l.Lines {
		for _, f := range line.Fragments {
			if f.IsPlaceholder() {
				continue
			}
			if canFill && f.Span.Style.Background != nil {
				filler.FillRect(backgroundBox(line, f, offset), f.Span.Style.Background)
			}
			run := p.textRun(line, f, offset)
			if run.Text == "" {
				continue
			}
			surface.DrawText(run)
		}
	}
}

func (p *Paragraph) textRun(line *layout.Line, f *layout.Fragment, offset text.Point) TextRun {
	return TextRun{
		Text:      f.Text(p.units),
		Range:     f.Range(),
		X:         offset.X + line.Left + f.Left,
		Baseline:  offset.Y + line.Baseline,
		Width:     f.WidthIncludingTrailingSpaces(),
		Style:     f.Span.Style,
		Direction: f.Direction,
		Line:      line.LineNumber,
	}
}

func backgroundBox(line *layout.Line, f *layout.Fragment, offset text.Point) text.Box {
	return text.Box{
		Left:      offset.X + line.Left + f.Left,
		Top:       offset.Y + line.Top(),
		Right:     offset.X + line.Left + f.Right(),
		Bottom:    offset.Y + line.Bottom(),
		Direction: f.Direction,
	}
}
