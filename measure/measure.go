package measure

import (
	"fmt"
	"math"
	"sync"

	"github.com/npillmayer/paragraph/text"
)

// Font describes a font for the purpose of measuring text.
type Font struct {
	Family string
	Size   float64
	Weight int // 100…900, 400 is normal
	Italic bool
}

func (f Font) String() string {
	slant := ""
	if f.Italic {
		slant = " italic"
	}
	return fmt.Sprintf("%s %.1f/%d%s", f.Family, f.Size, f.Weight, slant)
}

// FontMetrics are the vertical metrics of a font, in pixels. Ascent and
// Descent are both positive.
type FontMetrics struct {
	Ascent, Descent, LineGap float64
}

// Oracle measures text.
type Oracle interface {
	// MeasureText returns the advance width of s set in font.
	MeasureText(s string, font Font) float64
	// Metrics returns the vertical metrics of font.
	Metrics(font Font) FontMetrics
}

// HeightKey holds the properties of a style which determine line height.
type HeightKey struct {
	Font   Font
	Height float64 // line height as a multiple of the font size, 0 for natural
}

// Ruler holds the vertical dimensions of a line of text set in a single
// style.
type Ruler struct {
	Ascent, Descent     float64
	Height              float64
	AlphabeticBaseline  float64
	IdeographicBaseline float64
}

// Round rounds a measurement to 1/100 of a pixel, which is the precision
// layout computes with.
func Round(w float64) float64 {
	return math.Round(w*100) / 100
}

// --- Context ---------------------------------------------------------------

// Context owns the measurement caches for an oracle.
type Context struct {
	mu     sync.Mutex
	oracle Oracle
	last   memo
	rulers map[HeightKey]Ruler
}

type memo struct {
	valid   bool
	s       string
	font    Font
	spacing float64
	width   float64
}

// NewContext creates a measurement context for an oracle.
func NewContext(oracle Oracle) *Context {
	assert(oracle != nil, "measurement context needs an oracle")
	return &Context{
		oracle: oracle,
		rulers: make(map[HeightKey]Ruler),
	}
}

// Acquire locks the context for exclusive use. Clients have to call
// Release on the returned measurer when done.
func (ctx *Context) Acquire() *Measurer {
	ctx.mu.Lock()
	return &Measurer{ctx: ctx}
}

// Invalidate clears all caches, e.g. after fonts have been changed.
func (ctx *Context) Invalidate() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.last = memo{}
	ctx.rulers = make(map[HeightKey]Ruler)
}

// Measurer gives access to a locked context.
type Measurer struct {
	ctx *Context
}

// Release unlocks the context. The measurer must not be used afterwards.
func (m *Measurer) Release() {
	if m.ctx == nil {
		panic("measurer released twice")
	}
	ctx := m.ctx
	m.ctx = nil
	ctx.mu.Unlock()
}

// MeasureText returns the width of s in font, with letterSpacing added for
// every UTF-16 code unit of s. The result is rounded to 1/100 px.
// Measuring the same text twice in a row does not consult the oracle again.
func (m *Measurer) MeasureText(s string, font Font, letterSpacing float64) float64 {
	last := &m.ctx.last
	if last.valid && last.s == s && last.font == font && last.spacing == letterSpacing {
		return last.width
	}
	w := m.ctx.oracle.MeasureText(s, font)
	w = Round(w + letterSpacing*float64(text.Length(s)))
	*last = memo{valid: true, s: s, font: font, spacing: letterSpacing, width: w}
	return w
}

// Ruler returns the vertical dimensions for a line-height key, computing
// them at most once per context.
func (m *Measurer) Ruler(key HeightKey) Ruler {
	if r, ok := m.ctx.rulers[key]; ok {
		return r
	}
	r := makeRuler(m.ctx.oracle.Metrics(key.Font), key)
	tracer().Debugf("new height ruler for %v: %+v", key.Font, r)
	m.ctx.rulers[key] = r
	return r
}

// makeRuler derives line dimensions from font metrics. With an explicit
// height multiplier the leading is distributed evenly above and below the
// glyphs; otherwise the font's line gap is.
func makeRuler(fm FontMetrics, key HeightKey) Ruler {
	var r Ruler
	glyphs := fm.Ascent + fm.Descent
	if key.Height > 0 {
		r.Height = key.Height * key.Font.Size
		leading := r.Height - glyphs
		r.Ascent = fm.Ascent + leading/2
		r.Descent = fm.Descent + leading/2
	} else {
		r.Height = glyphs + fm.LineGap
		r.Ascent = fm.Ascent + fm.LineGap/2
		r.Descent = fm.Descent + fm.LineGap/2
	}
	r.AlphabeticBaseline = r.Ascent
	r.IdeographicBaseline = r.Ascent + fm.Descent
	return r
}
