package wordbreak

import (
	"unicode"

	"github.com/npillmayer/paragraph/props"
	"github.com/npillmayer/paragraph/text"
)

// none is returned for positions outside of the text.
const none = props.WordClass(255)

// IsBreak is true if there is a word boundary between the code units at
// index-1 and index. The start and the end of text are always boundaries.
func IsBreak(units text.Units, index text.Index) bool {
	// WB1: sot ÷ Any
	// WB2: Any ÷ eot
	if index <= 0 || index >= units.Len() {
		return true
	}
	if units.IsInsideSurrogatePair(index) {
		return false
	}
	left, right := classBefore(units, index), classAt(units, index)
	// WB3: CR × LF
	if left == props.WordCR && right == props.WordLF {
		return false
	}
	// WB3a: (Newline | CR | LF) ÷
	// WB3b: ÷ (Newline | CR | LF)
	if isNewline(left) || isNewline(right) {
		return true
	}
	// WB3c: ZWJ × \p{Extended_Pictographic}
	if r, _ := units.CodePointAt(index); left == props.WordZWJ && props.IsExtendedPictographic(r) {
		return false
	}
	// WB3d: WSegSpace × WSegSpace
	if left == props.WordWSegSpace && right == props.WordWSegSpace {
		return false
	}
	// WB4: X (Extend | Format | ZWJ)* → X
	if right.IsIgnorable() {
		return false
	}
	leftPos := skipIgnorablesBefore(units, index)
	if leftPos <= 0 {
		return true // only ignorables before index
	}
	left = classBefore(units, leftPos)
	// WB5: AHLetter × AHLetter
	if left.IsAHLetter() && right.IsAHLetter() {
		return false
	}
	nextRight := classAfter(units, index)
	furtherLeft := classBefore(units, skipIgnorablesBefore(units, prevCodePoint(units, leftPos)))
	// WB6: AHLetter × (MidLetter | MidNumLet | Single_Quote) AHLetter
	if left.IsAHLetter() && isMidLetter(right) && nextRight.IsAHLetter() {
		return false
	}
	// WB7: AHLetter (MidLetter | MidNumLet | Single_Quote) × AHLetter
	if furtherLeft.IsAHLetter() && isMidLetter(left) && right.IsAHLetter() {
		return false
	}
	// WB7a: Hebrew_Letter × Single_Quote
	if left == props.WordHebrewLetter && right == props.WordSingleQuote {
		return false
	}
	// WB7b: Hebrew_Letter × Double_Quote Hebrew_Letter
	if left == props.WordHebrewLetter && right == props.WordDoubleQuote && nextRight == props.WordHebrewLetter {
		return false
	}
	// WB7c: Hebrew_Letter Double_Quote × Hebrew_Letter
	if furtherLeft == props.WordHebrewLetter && left == props.WordDoubleQuote && right == props.WordHebrewLetter {
		return false
	}
	// WB8: Numeric × Numeric
	// WB9: AHLetter × Numeric
	// WB10: Numeric × AHLetter
	if (left == props.WordNumeric || left.IsAHLetter()) && (right == props.WordNumeric || right.IsAHLetter()) {
		return false
	}
	// WB11: Numeric (MidNum | MidNumLet | Single_Quote) × Numeric
	if furtherLeft == props.WordNumeric && isMidNum(left) && right == props.WordNumeric {
		return false
	}
	// WB12: Numeric × (MidNum | MidNumLet | Single_Quote) Numeric
	if left == props.WordNumeric && isMidNum(right) && nextRight == props.WordNumeric {
		return false
	}
	// WB13: Katakana × Katakana
	if left == props.WordKatakana && right == props.WordKatakana {
		return false
	}
	// WB13a: (AHLetter | Numeric | Katakana | ExtendNumLet) × ExtendNumLet
	if right == props.WordExtendNumLet && (left.IsAHLetter() || left == props.WordNumeric ||
		left == props.WordKatakana || left == props.WordExtendNumLet) {
		return false
	}
	// WB13b: ExtendNumLet × (AHLetter | Numeric | Katakana)
	if left == props.WordExtendNumLet && (right.IsAHLetter() || right == props.WordNumeric ||
		right == props.WordKatakana) {
		return false
	}
	// WB15/WB16: break between pairs of regional indicators
	if left == props.WordRegionalIndicator && right == props.WordRegionalIndicator {
		return regionalIndicatorsBefore(units, leftPos)%2 == 0
	}
	// WB999: Any ÷ Any
	return true
}

// NextBreakIndex returns the first word boundary after index.
func NextBreakIndex(units text.Units, index text.Index) text.Index {
	if index < 0 {
		index = 0
	}
	for index < units.Len() {
		index++
		if IsBreak(units, index) {
			break
		}
	}
	return clamp(index, units)
}

// PrevBreakIndex returns the last word boundary before index.
func PrevBreakIndex(units text.Units, index text.Index) text.Index {
	if index > units.Len() {
		index = units.Len()
	}
	for index > 0 {
		index--
		if IsBreak(units, index) {
			break
		}
	}
	return clamp(index, units)
}

// MoveByWordBoundary returns the caret position one word away from index.
// Moving forward, the caret stops after the punctuation and white space
// following the next word. Moving backward, it skips punctuation and white
// space and stops at the start of the word before.
func MoveByWordBoundary(units text.Units, index text.Index, forward bool) text.Index {
	index = clamp(index, units)
	if forward {
		index = NextBreakIndex(units, index)
		for index < units.Len() {
			next := NextBreakIndex(units, index)
			if !isPunctOrSpace(units, index, next) {
				break
			}
			index = next
		}
		return index
	}
	for index > 0 {
		prev := PrevBreakIndex(units, index)
		if !isPunctOrSpace(units, prev, index) {
			return prev
		}
		index = prev
	}
	return index
}

// --- Helpers ---------------------------------------------------------------

func classAt(units text.Units, i text.Index) props.WordClass {
	r, n := units.CodePointAt(i)
	if n == 0 {
		return none
	}
	return props.WordBreakClass(r)
}

func classBefore(units text.Units, i text.Index) props.WordClass {
	r, n := units.CodePointBefore(i)
	if n == 0 {
		return none
	}
	return props.WordBreakClass(r)
}

// classAfter returns the class of the code point following the one at i,
// skipping ignorables (WB4).
func classAfter(units text.Units, i text.Index) props.WordClass {
	_, n := units.CodePointAt(i)
	i += text.Index(n)
	for {
		c := classAt(units, i)
		if !c.IsIgnorable() {
			return c
		}
		_, n = units.CodePointAt(i)
		i += text.Index(n)
	}
}

// skipIgnorablesBefore moves back from i over Extend, Format and ZWJ.
func skipIgnorablesBefore(units text.Units, i text.Index) text.Index {
	for i > 0 && classBefore(units, i).IsIgnorable() {
		i = prevCodePoint(units, i)
	}
	return i
}

func prevCodePoint(units text.Units, i text.Index) text.Index {
	_, n := units.CodePointBefore(i)
	return i - text.Index(n)
}

func regionalIndicatorsBefore(units text.Units, i text.Index) int {
	cnt := 0
	for i > 0 && classBefore(units, i) == props.WordRegionalIndicator {
		cnt++
		i = skipIgnorablesBefore(units, prevCodePoint(units, i))
	}
	return cnt
}

func isNewline(c props.WordClass) bool {
	return c == props.WordNewline || c == props.WordCR || c == props.WordLF
}

func isMidLetter(c props.WordClass) bool {
	return c == props.WordMidLetter || c == props.WordMidNumLet || c == props.WordSingleQuote
}

func isMidNum(c props.WordClass) bool {
	return c == props.WordMidNum || c == props.WordMidNumLet || c == props.WordSingleQuote
}

func isPunctOrSpace(units text.Units, from, to text.Index) bool {
	if from >= to {
		return false
	}
	for _, r := range units.String(from, to) {
		if !unicode.IsSpace(r) && !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

func clamp(i text.Index, units text.Units) text.Index {
	if i < 0 {
		return 0
	}
	if i > units.Len() {
		return units.Len()
	}
	return i
}
