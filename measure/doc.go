/*
Package measure connects paragraph layout to a measurement oracle.

An Oracle knows how wide a string is when set in a given font, and what
vertical metrics a font has. This is the only place where fonts are
consulted. Layout never opens or parses font files itself.

Measuring is comparatively expensive, so a Context keeps two caches: the
most recent measurement (layout tends to re-measure the same range while
backtracking) and a table of line-height rulers, keyed by the properties
of a style which affect line height. A Context belongs to one rendering
surface. It is safe for concurrent use, but measuring is serialized: a
layout pass acquires the context for its whole duration.

	ctx := measure.NewContext(oracle)
	m := ctx.Acquire()
	defer m.Release()
	w := m.MeasureText("Hello", font, 0)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package measure

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
