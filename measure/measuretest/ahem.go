/*
Package measuretest provides a deterministic measurement oracle for tests.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package measuretest

import (
	"sync/atomic"
	"unicode"

	"github.com/npillmayer/paragraph/measure"
)

// Ahem is an oracle modelled after the Ahem test font: every glyph is a
// square of the font's size. Ascent is 80% of the size, descent 20%.
// Combining marks and format characters have no width.
//
// Ahem counts how often it is asked to measure text.
type Ahem struct {
	calls atomic.Int64
}

var _ measure.Oracle = (*Ahem)(nil)

// MeasureText is part of interface measure.Oracle.
func (a *Ahem) MeasureText(s string, font measure.Font) float64 {
	a.calls.Add(1)
	n := 0
	for _, r := range s {
		if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
			continue
		}
		n++
	}
	return float64(n) * font.Size
}

// Metrics is part of interface measure.Oracle.
func (a *Ahem) Metrics(font measure.Font) measure.FontMetrics {
	return measure.FontMetrics{
		Ascent:  0.8 * font.Size,
		Descent: 0.2 * font.Size,
	}
}

// Calls returns the number of MeasureText calls so far.
func (a *Ahem) Calls() int {
	return int(a.calls.Load())
}

// Reset sets the call counter back to zero.
func (a *Ahem) Reset() {
	a.calls.Store(0)
}
