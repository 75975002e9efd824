package props

import (
	"sync"
	"unicode"

	"github.com/npillmayer/uax/uax14"
)

// LineClass is a UAX#14 line-breaking class, after resolution by rule LB1.
// Classes AI, SA, SG, XX and CJ never show up, as they are resolved to other
// classes.
type LineClass uint8

// Line-breaking classes, see https://www.unicode.org/reports/tr14/#Table1
const (
	LineAL  LineClass = iota // alphabetic
	LineB2                   // break opportunity before and after
	LineBA                   // break after
	LineBB                   // break before
	LineBK                   // mandatory break
	LineCB                   // contingent break (object replacement)
	LineCL                   // close punctuation
	LineCM                   // combining mark
	LineCP                   // close parenthesis
	LineCR                   // carriage return
	LineEB                   // emoji base
	LineEM                   // emoji modifier
	LineEX                   // exclamation/interrogation
	LineGL                   // non-breaking glue
	LineH2                   // Hangul LV syllable
	LineH3                   // Hangul LVT syllable
	LineHL                   // Hebrew letter
	LineHY                   // hyphen
	LineID                   // ideographic
	LineIN                   // inseparable
	LineIS                   // infix numeric separator
	LineJL                   // Hangul L Jamo
	LineJT                   // Hangul T Jamo
	LineJV                   // Hangul V Jamo
	LineLF                   // line feed
	LineNL                   // next line
	LineNS                   // non-starter
	LineNU                   // numeric
	LineOP                   // open punctuation
	LinePO                   // postfix numeric
	LinePR                   // prefix numeric
	LineQU                   // quotation
	LineRI                   // regional indicator
	LineSP                   // space
	LineSY                   // symbols allowing break after
	LineWJ                   // word joiner
	LineZW                   // zero width space
	LineZWJ                  // zero width joiner
)

var lineClassNames = [...]string{
	"AL", "B2", "BA", "BB", "BK", "CB", "CL", "CM", "CP", "CR", "EB", "EM", "EX",
	"GL", "H2", "H3", "HL", "HY", "ID", "IN", "IS", "JL", "JT", "JV", "LF", "NL",
	"NS", "NU", "OP", "PO", "PR", "QU", "RI", "SP", "SY", "WJ", "ZW", "ZWJ",
}

func (c LineClass) String() string {
	if int(c) < len(lineClassNames) {
		return lineClassNames[c]
	}
	return "??"
}

// ObjectReplacementChar stands in for inline placeholders in paragraph text.
const ObjectReplacementChar = '\uFFFC'

var lineSetup sync.Once

// asciiLineClasses caches classes for the ASCII range, which covers most
// look-ups in Latin text.
var asciiLineClasses [128]LineClass

func setupLineClasses() {
	uax14.SetupClasses()
	asciiLineClasses[0] = LineCM // uax14 reserves NUL for end-of-text
	for r := rune(1); r < 128; r++ {
		asciiLineClasses[r] = resolveLineClass(r, uax14.ClassForRune(r))
	}
}

// LineBreakClass returns the resolved UAX#14 class of code point r.
// Lone surrogates are classified as AL (rule LB1 maps SG to AL).
func LineBreakClass(r rune) LineClass {
	lineSetup.Do(setupLineClasses)
	if r >= 0 && r < 128 {
		return asciiLineClasses[r]
	}
	if r >= 0xd800 && r <= 0xdfff {
		return LineAL
	}
	if r == ObjectReplacementChar {
		return LineCB
	}
	return resolveLineClass(r, uax14.ClassForRune(r))
}

// resolveLineClass maps uax14 classes onto LineClass, applying rule LB1:
//
//	AI, SG, XX → AL
//	SA → CM if the character is of category Mn or Mc, AL otherwise
//	CJ → NS
func resolveLineClass(r rune, c uax14.UAX14Class) LineClass {
	switch c {
	case uax14.AIClass, uax14.SGClass, uax14.XXClass, uax14.ALClass:
		return LineAL
	case uax14.SAClass:
		if unicode.In(r, unicode.Mn, unicode.Mc) {
			return LineCM
		}
		return LineAL
	case uax14.CJClass, uax14.NSClass:
		return LineNS
	case uax14.B2Class:
		return LineB2
	case uax14.BAClass:
		return LineBA
	case uax14.BBClass:
		return LineBB
	case uax14.BKClass:
		return LineBK
	case uax14.CBClass:
		return LineCB
	case uax14.CLClass:
		return LineCL
	case uax14.CMClass:
		return LineCM
	case uax14.CPClass:
		return LineCP
	case uax14.CRClass:
		return LineCR
	case uax14.EBClass:
		return LineEB
	case uax14.EMClass:
		return LineEM
	case uax14.EXClass:
		return LineEX
	case uax14.GLClass:
		return LineGL
	case uax14.H2Class:
		return LineH2
	case uax14.H3Class:
		return LineH3
	case uax14.HLClass:
		return LineHL
	case uax14.HYClass:
		return LineHY
	case uax14.IDClass:
		return LineID
	case uax14.INClass:
		return LineIN
	case uax14.ISClass:
		return LineIS
	case uax14.JLClass:
		return LineJL
	case uax14.JTClass:
		return LineJT
	case uax14.JVClass:
		return LineJV
	case uax14.LFClass:
		return LineLF
	case uax14.NLClass:
		return LineNL
	case uax14.NUClass:
		return LineNU
	case uax14.OPClass:
		return LineOP
	case uax14.POClass:
		return LinePO
	case uax14.PRClass:
		return LinePR
	case uax14.QUClass:
		return LineQU
	case uax14.RIClass:
		return LineRI
	case uax14.SPClass:
		return LineSP
	case uax14.SYClass:
		return LineSY
	case uax14.WJClass:
		return LineWJ
	case uax14.ZWClass:
		return LineZW
	case uax14.ZWJClass:
		return LineZWJ
	}
	tracer().Errorf("no line-break class for %U, using AL", r)
	return LineAL
}

// IsHardBreak is true for classes which force a line break after them
// (CR is handled separately, as it may be followed by LF).
func (c LineClass) IsHardBreak() bool {
	return c == LineBK || c == LineLF || c == LineNL
}

// IsCombining is true for combining marks and zero width joiners, which
// attach to the preceding character.
func (c LineClass) IsCombining() bool {
	return c == LineCM || c == LineZWJ
}
