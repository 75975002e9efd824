/*
Package paragraph lays out styled, bidirectional paragraphs of text.

A paragraph is a sequence of styled text runs and inline placeholders. Clients
create paragraphs with a Builder, lay them out for a given width, and then
paint them onto a Surface or query them for geometry: boxes enclosing a range
of text (for selection highlighting), the caret position under a point (for
hit testing), the bounds of single grapheme clusters, and word and line
boundaries.

	b := paragraph.NewBuilder(style.ParagraphStyle{}, ctx)
	b.AddText("Hello ")
	b.PushStyle(style.SpanStyle{FontWeight: style.WeightBold})
	b.AddText("world")
	b.Pop()
	para, err := b.Build()
	...
	para.Layout(paragraph.Constraints{Width: 300})
	para.Paint(surface, text.Point{X: 10, Y: 10})

Text positions are given in UTF-16 code units, see package text. Fonts are
never opened by this package; widths and vertical metrics are requested from a
measurement oracle (package measure), with results cached in a
measure.Context. A context may be shared between paragraphs, even across
goroutines: laying out a paragraph locks the context for the duration of the
pass.

Line breaking follows UAX#14 (package linebreak), bidi runs are found with
a simplified per-character classification (package bidi), and words are
delimited following UAX#29 (package wordbreak). Lines are filled greedily by
package layout.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package paragraph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}

// Error is an error type for the paragraph module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrBuilderCompleted signals that a builder has already built its paragraph
// and it's illegal to add further text.
const ErrBuilderCompleted = Error("paragraph has been built; forbidden to add text")

// ErrStyleStackEmpty is flagged when popping more styles than have been pushed.
const ErrStyleStackEmpty = Error("style stack is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
