package bidi

import (
	"fmt"

	"github.com/npillmayer/paragraph/props"
	"github.com/npillmayer/paragraph/text"
)

// Flow tells how a run's direction relates to neighbouring runs.
type Flow int8

// Fragment flows
const (
	LTR      Flow = iota // left-to-right run
	RTL                  // right-to-left run
	Previous             // follows the run before it
	Sandwich             // joins equal neighbours, paragraph direction otherwise
)

func (f Flow) String() string {
	switch f {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case Previous:
		return "previous"
	case Sandwich:
		return "sandwich"
	}
	return "??"
}

// Fragment is a run of text [Start, End) with a single Direction. Runs of
// neutral characters have no direction (text.Neutral).
type Fragment struct {
	Start, End text.Index
	Direction  text.Direction
	Flow       Flow
}

func (f Fragment) String() string {
	return fmt.Sprintf("[%d,%d)%s/%s", f.Start, f.End, f.Direction, f.Flow)
}

// Fragments splits a text into maximal runs of code points sharing the same
// direction. The fragments cover the text without gaps. Empty text results
// in a single empty fragment running in the paragraph's base direction.
func Fragments(units text.Units, base text.Direction) []Fragment {
	if len(units) == 0 {
		if base == text.RightToLeft {
			return []Fragment{{Direction: text.RightToLeft, Flow: RTL}}
		}
		return []Fragment{{Direction: text.LeftToRight, Flow: LTR}}
	}
	var fragments []Fragment
	r, n := units.CodePointAt(0)
	frag := Fragment{Direction: directionOf(r), Flow: flowOf(r)}
	for i := text.Index(n); i < units.Len(); i += text.Index(n) {
		r, n = units.CodePointAt(i)
		dir := directionOf(r)
		if dir != frag.Direction {
			frag.End = i
			tracer().Debugf("bidi fragment %v", frag)
			fragments = append(fragments, frag)
			frag = Fragment{Start: i, Direction: dir, Flow: flowOf(r)}
		} else if frag.Flow == Previous {
			// digits immediately followed by letters of the same direction
			frag.Flow = flowOf(r)
		}
	}
	frag.End = units.Len()
	tracer().Debugf("bidi fragment %v", frag)
	return append(fragments, frag)
}

// directionOf returns the direction a code point is laid out in. Digits are
// always laid out left to right.
func directionOf(r rune) text.Direction {
	if props.IsASCIIDigit(r) || props.IsArabicIndicDigit(r) {
		return text.LeftToRight
	}
	return props.Direction(r)
}

func flowOf(r rune) Flow {
	switch {
	case props.IsASCIIDigit(r):
		return Previous
	case props.IsArabicIndicDigit(r):
		return RTL
	}
	switch props.Direction(r) {
	case text.LeftToRight:
		return LTR
	case text.RightToLeft:
		return RTL
	}
	return Sandwich
}
