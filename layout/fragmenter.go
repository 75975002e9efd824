package layout

import (
	"github.com/npillmayer/paragraph/bidi"
	"github.com/npillmayer/paragraph/linebreak"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
)

// Fragmenter merges the three partitions of a paragraph's text into layout
// fragments. Line-break and bidi fragments do not depend on layout
// constraints, so they are computed once and kept by clients across layout
// passes.
type Fragmenter struct {
	LineBreaks []linebreak.Fragment
	Bidi       []bidi.Fragment
	Spans      []style.Span
}

// NewFragmenter segments a text and prepares merging with its spans. base is
// the paragraph's direction.
func NewFragmenter(units text.Units, spans []style.Span, base text.Direction) *Fragmenter {
	return &Fragmenter{
		LineBreaks: linebreak.Fragments(units),
		Bidi:       bidi.Fragments(units, base),
		Spans:      spans,
	}
}

// Fragments returns the layout fragments. Every call creates fresh
// fragments, which are not yet measured.
//
// Each fragment ends where the first of the current line-break fragment,
// bidi run or span ends. It carries the break type of its line-break
// fragment only if it ends together with it; otherwise no break is allowed
// after it.
func (fr *Fragmenter) Fragments() []*Fragment {
	assert(len(fr.LineBreaks) > 0 && len(fr.Bidi) > 0 && len(fr.Spans) > 0,
		"fragmenter needs non-empty partitions")
	fragments := make([]*Fragment, 0, len(fr.LineBreaks)+len(fr.Bidi)+len(fr.Spans))
	var lb, bd, sp int // cursors
	start := text.Index(0)
	for {
		lbf, bdf, span := fr.LineBreaks[lb], fr.Bidi[bd], &fr.Spans[sp]
		end := min(lbf.End, bdf.End, span.End)
		distance := int(lbf.End - end)
		bt := linebreak.Prohibited
		if distance == 0 {
			bt = lbf.Type
		}
		length := int(end - start)
		frag := &Fragment{
			Start:            start,
			End:              end,
			Type:             bt,
			Direction:        bdf.Direction,
			Flow:             bdf.Flow,
			Span:             span,
			TrailingNewlines: clamp(lbf.TrailingNewlines-distance, 0, length),
			TrailingSpaces:   clamp(lbf.TrailingSpaces-distance, 0, length),
		}
		fragments = append(fragments, frag)
		start = end
		moved := false
		if lbf.End == end && lb+1 < len(fr.LineBreaks) {
			lb++
			moved = true
		}
		if bdf.End == end && bd+1 < len(fr.Bidi) {
			bd++
			moved = true
		}
		if span.End == end && sp+1 < len(fr.Spans) {
			sp++
			moved = true
		}
		if !moved {
			break
		}
	}
	tracer().Debugf("paragraph has %d layout fragments", len(fragments))
	return fragments
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
