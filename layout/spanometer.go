package layout

import (
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
)

// Spanometer measures ranges of text within a single span.
type Spanometer struct {
	m     *measure.Measurer
	units text.Units
	span  *style.Span
	ruler measure.Ruler
}

// NewSpanometer creates a spanometer for a paragraph's text. The measurer
// must stay acquired for as long as the spanometer is in use.
func NewSpanometer(m *measure.Measurer, units text.Units) *Spanometer {
	return &Spanometer{m: m, units: units}
}

// SetSpan selects the span subsequent measurements refer to.
func (sm *Spanometer) SetSpan(span *style.Span) {
	if span == sm.span {
		return
	}
	sm.span = span
	sm.ruler = sm.m.Ruler(span.Style.HeightKey())
}

// Span returns the current span.
func (sm *Spanometer) Span() *style.Span {
	return sm.span
}

// Ascent of the current span's style.
func (sm *Spanometer) Ascent() float64 {
	return sm.ruler.AlphabeticBaseline
}

// Descent of the current span's style.
func (sm *Spanometer) Descent() float64 {
	return sm.ruler.Height - sm.ruler.AlphabeticBaseline
}

// Height of a line in the current span's style.
func (sm *Spanometer) Height() float64 {
	return sm.ruler.Height
}

// Ruler returns the full vertical dimensions of the current span's style.
func (sm *Spanometer) Ruler() measure.Ruler {
	return sm.ruler
}

// MeasureRange returns the width of [start, end), which must lie within the
// current span.
func (sm *Spanometer) MeasureRange(start, end text.Index) float64 {
	assert(sm.span != nil, "spanometer has no current span")
	assert(sm.span.Start <= start && start <= sm.span.End &&
		sm.span.Start <= end && end <= sm.span.End,
		"measured range crosses a span boundary")
	return sm.measure(start, end)
}

// MeasureText returns the width of s in the style of the current span.
func (sm *Spanometer) MeasureText(s string) float64 {
	assert(sm.span != nil, "spanometer has no current span")
	st := sm.span.Style
	return sm.m.MeasureText(s, st.Font(), st.LetterSpacing)
}

func (sm *Spanometer) measure(start, end text.Index) float64 {
	if start >= end {
		return 0
	}
	st := sm.span.Style
	return sm.m.MeasureText(sm.units.String(start, end), st.Font(), st.LetterSpacing)
}

// MeasureFragment sets ascent, descent and widths of a fragment.
// Placeholders get their box width and, preliminarily, an ascent of their
// full height. Their final vertical metrics depend on the line they end up
// in.
func (sm *Spanometer) MeasureFragment(f *Fragment) {
	if f.IsPlaceholder() {
		ph := f.Span.Placeholder
		f.setMetrics(ph.Height, 0, ph.Width, ph.Width)
		return
	}
	sm.SetSpan(f.Span)
	excl := sm.measure(f.Start, f.End-text.Index(f.TrailingSpaces))
	incl := sm.measure(f.Start, f.VisibleEnd())
	f.setMetrics(sm.Ascent(), sm.Descent(), excl, incl)
}

// ForceBreak finds the position k in [start, end] at which the range has to
// be cut to fit into availableWidth, i.e. the largest k for which [start, k)
// is not wider than availableWidth. If nothing fits and allowEmpty is false,
// the first code point is returned as fitting anyway, so that a caller
// breaking lines always makes progress. Surrogate pairs are never cut.
func (sm *Spanometer) ForceBreak(start, end text.Index, availableWidth float64, allowEmpty bool) text.Index {
	assert(sm.span != nil, "spanometer has no current span")
	assert(start < end || allowEmpty, "force break of empty range")
	if start >= end {
		return start
	}
	if availableWidth <= 0 {
		return sm.minimalBreak(start, allowEmpty)
	}
	if sm.MeasureRange(start, end) <= availableWidth {
		return end
	}
	low, high := start, end // [start, low) fits, [start, high) does not
	for high-low > 1 {
		mid := (low + high) / 2
		w := sm.measure(start, mid)
		if w <= availableWidth {
			low = mid
		} else {
			high = mid
		}
	}
	if sm.units.IsInsideSurrogatePair(low) {
		low--
	}
	if low == start {
		return sm.minimalBreak(start, allowEmpty)
	}
	return low
}

func (sm *Spanometer) minimalBreak(start text.Index, allowEmpty bool) text.Index {
	if allowEmpty {
		return start
	}
	_, n := sm.units.CodePointAt(start)
	return start + text.Index(max(n, 1))
}
