package inline

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/paragraph/style"
)

// Some standard text formats
const (
	PlainStyle Style = 0
	BoldStyle  Style = 1 << iota
	ItalicsStyle
	StrongStyle
	EmStyle
	SmallStyle
	MarkedStyle
)

// SmallScale is the font size of <small> text relative to its parent.
const SmallScale = 0.8

// MarkColor is the background color of <mark> text.
var MarkColor color.Color = color.RGBA{R: 255, G: 255, A: 255}

func styleString(s Style) string {
	switch s {
	case PlainStyle:
		return "plain"
	case BoldStyle:
		return "b"
	case ItalicsStyle:
		return "i"
	case StrongStyle:
		return "strong"
	case EmStyle:
		return "em"
	case SmallStyle:
		return "small"
	case MarkedStyle:
		return "mark"
	}
	return fmt.Sprintf("Style(%d)", s)
}

var htmlStyles = map[string]Style{
	"b":      BoldStyle,
	"i":      ItalicsStyle,
	"strong": StrongStyle,
	"em":     EmStyle,
	"small":  SmallStyle,
	"mark":   MarkedStyle,
}

var htmlStyleNames = map[Style]string{
	BoldStyle:    "b",
	ItalicsStyle: "i",
	StrongStyle:  "strong",
	EmStyle:      "em",
	SmallStyle:   "small",
	MarkedStyle:  "mark",
}

// StyleFromHTMLName returns the style for an HTML inline element, or
// PlainStyle for elements without a style.
func StyleFromHTMLName(name string) Style {
	return htmlStyles[name]
}

// Style is a text style, applicable on runs of characters
type Style int

// Add combines two styles.
func (s Style) Add(other Style) Style {
	return s | other
}

// Minus removes other from s.
func (s Style) Minus(other Style) Style {
	return s & ^other
}

// Has is true if s includes all of other.
func (s Style) Has(other Style) bool {
	return s&other == other
}

func (s Style) String() string {
	if s == 0 {
		return styleString(0)
	}
	str := ""
	for i := 0; i < 7; i++ {
		if s&(1<<i) > 0 {
			if str != "" {
				str += "+"
			}
			str = str + styleString(1<<i)
		}
	}
	if str != "" {
		return str
	}
	return styleString(s)
}

// StyleOf classifies a span style relative to a base style, usually the
// default style of a paragraph. It is the inverse of Style.SpanStyle, except
// that <strong> and <em> are reported as BoldStyle and ItalicsStyle.
func StyleOf(st, base style.SpanStyle) Style {
	s := PlainStyle
	if st.Font().Weight >= 600 && base.Font().Weight < 600 {
		s = s.Add(BoldStyle)
	}
	if st.Italic && !base.Italic {
		s = s.Add(ItalicsStyle)
	}
	if st.Font().Size < base.Font().Size {
		s = s.Add(SmallStyle)
	}
	if st.Background != nil && base.Background == nil {
		s = s.Add(MarkedStyle)
	}
	return s
}

func (s Style) tags(closing bool) string {
	if s == 0 {
		return ""
	}
	str := ""
	if closing {
		for i := 6; i >= 0; i-- {
			if s&(1<<i) > 0 {
				str = str + "</" + htmlStyleNames[1<<i] + ">"
			}
		}
	} else {
		for i := 0; i < 7; i++ {
			if s&(1<<i) > 0 {
				str = str + "<" + htmlStyleNames[1<<i] + ">"
			}
		}
	}
	return str // may be empty string
}

// SpanStyle returns the span style to push for text in style s, nested in a
// parent style. Only the properties s changes are set; the others are
// inherited by the paragraph builder.
func (s Style) SpanStyle(parent style.SpanStyle) style.SpanStyle {
	var st style.SpanStyle
	if s&(BoldStyle|StrongStyle) != 0 {
		st.FontWeight = style.WeightBold
	}
	if s&(ItalicsStyle|EmStyle) != 0 {
		st.Italic = true
	}
	if s.Has(SmallStyle) {
		st.FontSize = parent.Font().Size * SmallScale
	}
	if s.Has(MarkedStyle) {
		st.Background = MarkColor
	}
	return st
}
