package style

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/text"
)

// DefaultFontSize is used for spans without a font size.
const DefaultFontSize = 14.0

// DefaultFontFamily is used for spans without a font family.
const DefaultFontFamily = "Go"

// Font weights
const (
	WeightNormal = 400
	WeightBold   = 700
)

// TextAlign is the horizontal alignment of lines.
type TextAlign int8

// Alignments. Start and End depend on the paragraph's direction.
const (
	AlignStart TextAlign = iota
	AlignEnd
	AlignLeft
	AlignRight
	AlignCenter
	AlignJustify
)

func (a TextAlign) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	}
	return "??"
}

// SpanStyle is the style of a run of text.
type SpanStyle struct {
	FontFamily    string
	FontSize      float64
	FontWeight    int
	Italic        bool
	Height        float64 // line height as a multiple of font size, 0 for the font's own
	LetterSpacing float64 // extra space after every code unit
	Color         color.Color
	Background    color.Color
}

// Font returns the font of a span style, with defaults for unset fields.
func (s SpanStyle) Font() measure.Font {
	f := measure.Font{
		Family: s.FontFamily,
		Size:   s.FontSize,
		Weight: s.FontWeight,
		Italic: s.Italic,
	}
	if f.Family == "" {
		f.Family = DefaultFontFamily
	}
	if f.Size <= 0 {
		f.Size = DefaultFontSize
	}
	if f.Weight == 0 {
		f.Weight = WeightNormal
	}
	return f
}

// HeightKey returns the properties of s which determine line height.
func (s SpanStyle) HeightKey() measure.HeightKey {
	return measure.HeightKey{Font: s.Font(), Height: s.Height}
}

// Inherit returns s with unset fields taken from parent. Italic is sticky:
// text inside an italic parent stays italic.
func (s SpanStyle) Inherit(parent SpanStyle) SpanStyle {
	if s.FontFamily == "" {
		s.FontFamily = parent.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = parent.FontSize
	}
	if s.FontWeight == 0 {
		s.FontWeight = parent.FontWeight
	}
	s.Italic = s.Italic || parent.Italic
	if s.Height == 0 {
		s.Height = parent.Height
	}
	if s.LetterSpacing == 0 {
		s.LetterSpacing = parent.LetterSpacing
	}
	if s.Color == nil {
		s.Color = parent.Color
	}
	if s.Background == nil {
		s.Background = parent.Background
	}
	return s
}

// Foreground returns the text color, black if unset.
func (s SpanStyle) Foreground() color.Color {
	if s.Color == nil {
		return color.Black
	}
	return s.Color
}

func (s SpanStyle) String() string {
	return fmt.Sprintf("SpanStyle(%v, h=%.2f, ls=%.2f)", s.Font(), s.Height, s.LetterSpacing)
}

// ParagraphStyle holds paragraph-wide settings.
type ParagraphStyle struct {
	TextAlign     TextAlign
	TextDirection text.Direction // Neutral means left-to-right
	MaxLines      int            // 0 for no limit
	Ellipsis      string         // appended to the last line if text is truncated
	Default       SpanStyle      // root style of the paragraph's text
}

// Direction returns the base direction of the paragraph.
func (ps ParagraphStyle) Direction() text.Direction {
	return ps.TextDirection.Or(text.LeftToRight)
}

// EffectiveTextAlign resolves start and end alignment against the
// paragraph's direction. Justified text is reported as such, the last line
// of justified text is aligned to start by layout.
func (ps ParagraphStyle) EffectiveTextAlign() TextAlign {
	rtl := ps.Direction() == text.RightToLeft
	switch ps.TextAlign {
	case AlignStart:
		if rtl {
			return AlignRight
		}
		return AlignLeft
	case AlignEnd:
		if rtl {
			return AlignLeft
		}
		return AlignRight
	}
	return ps.TextAlign
}

// HasLineLimit is true if the number of lines is limited.
func (ps ParagraphStyle) HasLineLimit() bool {
	return ps.MaxLines > 0
}

// --- Spans -----------------------------------------------------------------

// PlaceholderAlignment tells how a placeholder box is aligned vertically
// within its line.
type PlaceholderAlignment int8

// Placeholder alignments
const (
	AlignBaseline      PlaceholderAlignment = iota // BaselineOffset above the baseline sits on the baseline
	AlignAboveBaseline                             // the bottom sits on the baseline
	AlignBelowBaseline                             // the top sits on the baseline
	AlignTop                                       // the top is aligned with the top of the line
	AlignBottom                                    // the bottom is aligned with the bottom of the line
	AlignMiddle                                    // centered within the line
)

func (a PlaceholderAlignment) String() string {
	return [...]string{"baseline", "aboveBaseline", "belowBaseline", "top", "bottom", "middle"}[a]
}

// Baseline selects one of a font's baselines.
type Baseline int8

// Baselines
const (
	Alphabetic Baseline = iota
	Ideographic
)

// PlaceholderStyle describes an inline box.
type PlaceholderStyle struct {
	Width, Height  float64
	Alignment      PlaceholderAlignment
	BaselineOffset float64  // distance from the top of the box to its baseline, for AlignBaseline
	Baseline       Baseline // the line's baseline to align with, for AlignBaseline
}

// Span is a styled run of text [Start, End) or, if Placeholder is set, an
// inline placeholder. Placeholders cover a single U+FFFC code unit.
type Span struct {
	Style       SpanStyle
	Start, End  text.Index
	Placeholder *PlaceholderStyle
}

// IsPlaceholder is true for placeholder spans.
func (s Span) IsPlaceholder() bool {
	return s.Placeholder != nil
}

// Range returns the text range covered by s.
func (s Span) Range() text.Range {
	return text.Range{Start: s.Start, End: s.End}
}

func (s Span) String() string {
	if s.IsPlaceholder() {
		return fmt.Sprintf("Placeholder[%d,%d)(%.1f×%.1f %s)", s.Start, s.End,
			s.Placeholder.Width, s.Placeholder.Height, s.Placeholder.Alignment)
	}
	return fmt.Sprintf("Span[%d,%d)", s.Start, s.End)
}
