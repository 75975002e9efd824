/*
Package bidi splits paragraph text into runs of uniform writing direction.

This is not an implementation of the Unicode Bidirectional Algorithm. Every
code point is classified by its strong direction only; explicit embeddings,
overrides and isolates are not resolved, and neither are the weak types
besides digits. Each run carries a flow, which tells the positioning step
how the run relates to its neighbours:

	LTR, RTL   strong runs, which start a new positioning group
	Previous   ASCII digits, which follow the run before them
	Sandwich   neutral characters, which join their neighbours if both sides
	           agree, and take the paragraph direction otherwise

Digits are always laid out left to right internally. Arabic-Indic digits
flow like right-to-left text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package bidi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}
