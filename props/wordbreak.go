package props

import (
	"sync"
	"unicode"

	"github.com/npillmayer/uax/emoji"
	"github.com/npillmayer/uax/uax29"
)

// WordClass is a UAX#29 word-break property value.
type WordClass uint8

// Word-break properties, see https://www.unicode.org/reports/tr29/#Table_Word_Break_Property_Values
const (
	WordOther WordClass = iota
	WordCR
	WordLF
	WordNewline
	WordExtend
	WordZWJ
	WordRegionalIndicator
	WordFormat
	WordKatakana
	WordHebrewLetter
	WordALetter
	WordSingleQuote
	WordDoubleQuote
	WordMidNumLet
	WordMidLetter
	WordMidNum
	WordNumeric
	WordExtendNumLet
	WordWSegSpace
)

var wordClassNames = [...]string{
	"Other", "CR", "LF", "Newline", "Extend", "ZWJ", "Regional_Indicator",
	"Format", "Katakana", "Hebrew_Letter", "ALetter", "Single_Quote",
	"Double_Quote", "MidNumLet", "MidLetter", "MidNum", "Numeric",
	"ExtendNumLet", "WSegSpace",
}

func (c WordClass) String() string {
	if int(c) < len(wordClassNames) {
		return wordClassNames[c]
	}
	return "??"
}

// IsAHLetter is true for ALetter and Hebrew_Letter.
func (c WordClass) IsAHLetter() bool {
	return c == WordALetter || c == WordHebrewLetter
}

// IsIgnorable is true for classes which rule WB4 folds into the preceding
// character.
func (c WordClass) IsIgnorable() bool {
	return c == WordExtend || c == WordFormat || c == WordZWJ
}

var wordSetup sync.Once

// asciiWordClasses caches classes for the ASCII range.
var asciiWordClasses [128]WordClass

func setupWordClasses() {
	uax29.SetupClasses()
	for r := rune(0); r < 128; r++ {
		asciiWordClasses[r] = wordClassFromUAX29(uax29.ClassForRune(r))
	}
}

// WordBreakClass returns the UAX#29 word-break property of code point r.
func WordBreakClass(r rune) WordClass {
	wordSetup.Do(setupWordClasses)
	if r >= 0 && r < 128 {
		return asciiWordClasses[r]
	}
	return wordClassFromUAX29(uax29.ClassForRune(r))
}

// IsExtendedPictographic is true for code points which rule WB3c keeps
// together with a preceding ZWJ.
func IsExtendedPictographic(r rune) bool {
	return unicode.Is(emoji.Extended_Pictographic, r)
}

func wordClassFromUAX29(c uax29.WordBreakClass) WordClass {
	switch c {
	case uax29.CRClass:
		return WordCR
	case uax29.LFClass:
		return WordLF
	case uax29.NewlineClass:
		return WordNewline
	case uax29.ExtendClass:
		return WordExtend
	case uax29.ZWJClass:
		return WordZWJ
	case uax29.Regional_IndicatorClass:
		return WordRegionalIndicator
	case uax29.FormatClass:
		return WordFormat
	case uax29.KatakanaClass:
		return WordKatakana
	case uax29.Hebrew_LetterClass:
		return WordHebrewLetter
	case uax29.ALetterClass:
		return WordALetter
	case uax29.Single_QuoteClass:
		return WordSingleQuote
	case uax29.Double_QuoteClass:
		return WordDoubleQuote
	case uax29.MidNumLetClass:
		return WordMidNumLet
	case uax29.MidLetterClass:
		return WordMidLetter
	case uax29.MidNumClass:
		return WordMidNum
	case uax29.NumericClass:
		return WordNumeric
	case uax29.ExtendNumLetClass:
		return WordExtendNumLet
	case uax29.WSegSpaceClass:
		return WordWSegSpace
	}
	return WordOther
}
