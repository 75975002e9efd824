/*
Package inline creates paragraphs from inline HTML.

Only the textual content of HTML and a small set of inline elements are
considered: <b>, <strong>, <i>, <em>, <small> and <mark> change the style of
text, <br> breaks lines. Everything else, including CSS, is ignored.

	para, err := inline.FromHTML(strings.NewReader(`My <b>first</b> paragraph.`),
		style.ParagraphStyle{}, ctx)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}
