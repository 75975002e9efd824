package text

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Index is an offset into a paragraph's text, counted in UTF-16 code units.
type Index int

// Next returns the index one code unit further.
func (i Index) Next() Index { return i + 1 }

// Prev returns the index one code unit back.
func (i Index) Prev() Index { return i - 1 }

// Range is a half-open range [Start, End) of text positions.
type Range struct {
	Start Index
	End   Index
}

// MakeRange creates a range from two positions, swapping them if necessary.
func MakeRange(from, to Index) Range {
	if from > to {
		from, to = to, from
	}
	return Range{Start: from, End: to}
}

// EmptyRange is the collapsed range at position 0.
var EmptyRange = Range{}

// IsCollapsed is true for ranges without content.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// Len returns the number of code units in r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// Contains is true if position i lies within [Start, End).
func (r Range) Contains(i Index) bool {
	return r.Start <= i && i < r.End
}

// Overlaps is true if r and the range [start, end) share at least one position.
func (r Range) Overlaps(start, end Index) bool {
	return r.Start < end && start < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// --- Code units ------------------------------------------------------------

// Units is a paragraph's plain text as UTF-16 code units.
type Units []uint16

// FromString converts a Go string to UTF-16 code units.
func FromString(s string) Units {
	return Units(utf16.Encode([]rune(s)))
}

// Len returns the length of the text in code units.
func (u Units) Len() Index {
	return Index(len(u))
}

// String returns the text in [from, to) as a Go string. Range boundaries are
// clamped to the text.
func (u Units) String(from, to Index) string {
	if from < 0 {
		from = 0
	}
	if to > u.Len() {
		to = u.Len()
	}
	if from >= to {
		return ""
	}
	return string(utf16.Decode(u[from:to]))
}

// CodePointAt returns the code point starting at i together with its length
// in code units. For positions outside the text, utf8.RuneError and 0 are
// returned. A lone surrogate is returned as is, with length 1.
func (u Units) CodePointAt(i Index) (rune, int) {
	if i < 0 || i >= u.Len() {
		return utf8.RuneError, 0
	}
	c := u[i]
	if IsHighSurrogate(c) && i+1 < u.Len() && IsLowSurrogate(u[i+1]) {
		return utf16.DecodeRune(rune(c), rune(u[i+1])), 2
	}
	return rune(c), 1
}

// CodePointBefore returns the code point ending right before i together with
// its length in code units.
func (u Units) CodePointBefore(i Index) (rune, int) {
	if i <= 0 || i > u.Len() {
		return utf8.RuneError, 0
	}
	c := u[i-1]
	if IsLowSurrogate(c) && i-2 >= 0 && IsHighSurrogate(u[i-2]) {
		return utf16.DecodeRune(rune(u[i-2]), rune(c)), 2
	}
	return rune(c), 1
}

// IsInsideSurrogatePair is true if i falls between the two halves of a
// surrogate pair.
func (u Units) IsInsideSurrogatePair(i Index) bool {
	if i <= 0 || i >= u.Len() {
		return false
	}
	return IsHighSurrogate(u[i-1]) && IsLowSurrogate(u[i])
}

// IsHighSurrogate checks for the leading half of a surrogate pair.
func IsHighSurrogate(c uint16) bool {
	return c >= 0xd800 && c <= 0xdbff
}

// IsLowSurrogate checks for the trailing half of a surrogate pair.
func IsLowSurrogate(c uint16) bool {
	return c >= 0xdc00 && c <= 0xdfff
}

// IsSurrogate checks for either half of a surrogate pair.
func IsSurrogate(c uint16) bool {
	return c >= 0xd800 && c <= 0xdfff
}

// Length returns the length of s in UTF-16 code units.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
