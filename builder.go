package paragraph

import (
	"fmt"
	"strings"

	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/paragraph/text"
)

// PlaceholderChar is the character standing in for placeholders in the
// paragraph's text.
const PlaceholderChar = '\uFFFC'

// Builder collects styled text and placeholders and finalizes them into a
// Paragraph.
//
// Styles are kept on a stack. Text is added in the style on top of the stack,
// which inherits unset properties from the styles below it and, finally, from
// the paragraph's default style.
type Builder struct {
	pstyle     style.ParagraphStyle
	ctx        *measure.Context
	units      text.Units
	spans      []style.Span
	styles     []style.SpanStyle // effective styles, root at index 0
	generation int               // changes with every push and pop
	spanGen    int               // generation of the last text span
	done       bool
}

// NewBuilder creates a builder for a paragraph in pstyle. Layouts of the
// paragraph measure text within ctx.
func NewBuilder(pstyle style.ParagraphStyle, ctx *measure.Context) *Builder {
	assert(ctx != nil, "paragraph builder needs a measurement context")
	return &Builder{
		pstyle:  pstyle,
		ctx:     ctx,
		styles:  []style.SpanStyle{pstyle.Default},
		spanGen: -1,
	}
}

// PushStyle makes st the current style. Properties not set in st are
// inherited from the current style.
func (b *Builder) PushStyle(st style.SpanStyle) error {
	if b.done {
		return ErrBuilderCompleted
	}
	b.styles = append(b.styles, st.Inherit(b.current()))
	b.generation++
	return nil
}

// Pop removes the current style and restores the one pushed before it.
func (b *Builder) Pop() error {
	if b.done {
		return ErrBuilderCompleted
	}
	if len(b.styles) <= 1 {
		return ErrStyleStackEmpty
	}
	b.styles = b.styles[:len(b.styles)-1]
	b.generation++
	return nil
}

func (b *Builder) current() style.SpanStyle {
	return b.styles[len(b.styles)-1]
}

// AddText appends text in the current style. Empty text is ignored.
func (b *Builder) AddText(s string) error {
	if b.done {
		return ErrBuilderCompleted
	}
	if s == "" {
		return nil
	}
	if strings.ContainsRune(s, PlaceholderChar) {
		tracer().Errorf("text contains placeholder character, replaced by U+FFFD")
		s = strings.ReplaceAll(s, string(PlaceholderChar), "\uFFFD")
	}
	start := b.units.Len()
	b.units = append(b.units, text.FromString(s)...)
	end := b.units.Len()
	if n := len(b.spans); n > 0 && b.spanGen == b.generation && !b.spans[n-1].IsPlaceholder() {
		b.spans[n-1].End = end
		return nil
	}
	b.spans = append(b.spans, style.Span{Style: b.current(), Start: start, End: end})
	b.spanGen = b.generation
	return nil
}

// AddPlaceholder appends an inline box. The placeholder is represented by a
// single U+FFFC in the paragraph's text.
func (b *Builder) AddPlaceholder(ph style.PlaceholderStyle) error {
	if b.done {
		return ErrBuilderCompleted
	}
	if ph.Width < 0 || ph.Height < 0 {
		return fmt.Errorf("placeholder %.2f×%.2f: %w", ph.Width, ph.Height, ErrIllegalArguments)
	}
	start := b.units.Len()
	b.units = append(b.units, PlaceholderChar)
	b.spans = append(b.spans, style.Span{
		Style:       b.current(),
		Start:       start,
		End:         start + 1,
		Placeholder: &ph,
	})
	b.spanGen = -1
	return nil
}

// Build finalizes the paragraph. The builder must not be used afterwards.
func (b *Builder) Build() (*Paragraph, error) {
	if b.done {
		return nil, ErrBuilderCompleted
	}
	b.done = true
	spans := b.spans
	if len(spans) == 0 { // empty text still has a style
		spans = []style.Span{{Style: b.styles[0]}}
	}
	tracer().Debugf("built paragraph of %d code units in %d spans", b.units.Len(), len(spans))
	return newParagraph(b.units, spans, b.pstyle, b.ctx), nil
}
