/*
Package console prints paragraphs to terminals with a fixed-width font.

Text is measured in character cells (see package measure/cells), lines are
broken to the terminal's width, and every line of a paragraph is printed as
a single row of text. Span styles are approximated by terminal colors and
attributes.

Console output is notoriously tricky for bi-directional text and for
scripts other than Latin. To fully appreciate the difficulties behind this,
refer for example to
https://terminal-wg.pages.freedesktop.org/bidi/bidi-intro/why-terminals-are-special.html

Package console does not rely on a terminal's own bidi handling. Runs are
output in display order, with right-to-left runs reversed by grapheme
clusters, and the terminal is switched to explicit mode, i.e. asked not to
reorder characters by itself. Terminals which do not understand the
respective escape sequences should be driven with PlainCodes.

	con := console.New(nil, nil) // configure from terminal and environment
	b := paragraph.NewBuilder(style.ParagraphStyle{}, con.Context())
	b.AddText("The quick brown fox jumps over the ")
	b.PushStyle(style.SpanStyle{FontWeight: style.WeightBold})
	b.AddText("כלב עצלן")
	b.Pop()
	para, _ := b.Build()
	con.Print(para)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}
