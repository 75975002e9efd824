/*
Package linebreak finds line-break opportunities in paragraph text, following
the rules of UAX#14 (https://www.unicode.org/reports/tr14/).

The text is split into fragments, each ending at a position where a line
break is either allowed (Opportunity), required (Mandatory) or where the text
ends (EndOfText). Positions in between are “prohibited” and never end a
fragment. Fragments report how many of their trailing code units are
white space and how many of those are newlines, so that line filling can
exclude them from width calculations.

Rules are evaluated in order of precedence, looking at the classes of the
current character and of the two characters before it. Combining marks take
the class of their base character (LB9) and runs of spaces remember the class
of the character preceding them (LB14–LB17).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package linebreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}
