/*
Package props looks up Unicode character properties needed for segmenting
paragraph text: line-break classes (UAX#14), word-break classes (UAX#29) and
the strong direction of a code point (UAX#9 bidi classes).

Line-break classes are taken from package uax14, bidi classes from
golang.org/x/text/unicode/bidi, word-break classes from package uax29.
Extended pictographics (needed for rule WB3c) come from package emoji.

All lookups apply the class resolutions the segmentation rules expect, e.g.
rule LB1 of UAX#14, which maps ambiguous and unknown classes to AL.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package props

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paragraph'
func tracer() tracing.Trace {
	return tracing.Select("paragraph")
}
