package text

import "fmt"

// Direction is a writing direction. The zero value means “no direction”; it
// is used for text without strong directional characters.
type Direction int8

// Writing directions.
const (
	Neutral Direction = iota
	LeftToRight
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	}
	return "neutral"
}

// Or returns d, or def if d is Neutral.
func (d Direction) Or(def Direction) Direction {
	if d == Neutral {
		return def
	}
	return d
}

// Affinity tells which side of a position a caret belongs to when the
// position is ambiguous, e.g. at a line wrap.
type Affinity int8

// Affinities
const (
	Downstream Affinity = iota // the caret belongs to the character after the position
	Upstream                   // the caret belongs to the character before the position
)

// Position is a caret position within a paragraph.
type Position struct {
	Offset   Index
	Affinity Affinity
}

func (p Position) String() string {
	if p.Affinity == Upstream {
		return fmt.Sprintf("%d↑", p.Offset)
	}
	return fmt.Sprintf("%d", p.Offset)
}

// Rect is an axis-aligned rectangle in paragraph coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Box is a rectangle enclosing a run of text, together with the direction of
// that run.
type Box struct {
	Left, Top, Right, Bottom float64
	Direction                Direction
}

// Rect drops the direction of a box.
func (b Box) Rect() Rect {
	return Rect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%.2f,%.2f,%.2f,%.2f,%s)", b.Left, b.Top, b.Right, b.Bottom, b.Direction)
}

// Point is a 2-dimensional offset.
type Point struct {
	X, Y float64
}

// GlyphInfo describes the bounds of a grapheme cluster.
type GlyphInfo struct {
	Bounds    Rect
	Range     Range
	Direction Direction
}
