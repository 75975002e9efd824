package props

import (
	"github.com/npillmayer/paragraph/text"
	"golang.org/x/text/unicode/bidi"
)

// Direction returns the strong direction of code point r: LeftToRight for
// bidi class L, RightToLeft for classes R and AL, and Neutral for everything
// else, including digits. Explicit embeddings and overrides are not
// resolved.
func Direction(r rune) text.Direction {
	p, size := bidi.LookupRune(r)
	if size == 0 {
		return text.Neutral
	}
	switch p.Class() {
	case bidi.L:
		return text.LeftToRight
	case bidi.R, bidi.AL:
		return text.RightToLeft
	}
	return text.Neutral
}

// IsASCIIDigit is true for '0'…'9'.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsArabicIndicDigit is true for Arabic-Indic and Extended Arabic-Indic
// (Persian) digits.
func IsArabicIndicDigit(r rune) bool {
	return (r >= 0x0660 && r <= 0x0669) || (r >= 0x06f0 && r <= 0x06f9)
}
