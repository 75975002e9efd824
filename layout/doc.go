/*
Package layout breaks paragraphs into lines.

Layout starts from three independent partitions of a paragraph's text:
line-break fragments (package linebreak), bidi runs (package bidi) and style
spans. The Fragmenter merges them into a single stream of layout fragments,
each of which lies within exactly one element of every partition. A layout
fragment therefore has a single style (and can be measured in one go), a
single direction, and a known break type at its end.

Lines are filled greedily. A LineBuilder appends fragments until the line
overflows. Then it truncates the line with an ellipsis if this is the last
line allowed. Otherwise it reverts to the last break opportunity, and if
there is none, it force-breaks the last fragment at the code unit which
overflows the line. Measuring is done by a Spanometer, which talks to
a measurement oracle through a measure.Measurer.

After all lines are built, fragments are positioned within their lines:
lines are justified if requested, and runs of fragments sharing a direction
are laid out left-to-right or right-to-left, according to their bidi flow.

A Layout is the result of a single layout pass. It is not changed afterwards,
but it answers geometric queries (boxes for text ranges, hit testing).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
