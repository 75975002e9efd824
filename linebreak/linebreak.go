package linebreak

import (
	"fmt"

	"github.com/npillmayer/paragraph/props"
	"github.com/npillmayer/paragraph/text"
	"golang.org/x/text/width"
)

// BreakType tells what kind of line break is possible at the end of a
// fragment.
type BreakType int8

// Break types
const (
	Prohibited  BreakType = iota // no break allowed
	Opportunity                  // a line may break here
	Mandatory                    // a line must break here (hard line break)
	EndOfText                    // the text ends here
)

func (bt BreakType) String() string {
	switch bt {
	case Prohibited:
		return "prohibited"
	case Opportunity:
		return "opportunity"
	case Mandatory:
		return "mandatory"
	case EndOfText:
		return "endOfText"
	}
	return "??"
}

// IsHard is true for break types which must end a line.
func (bt BreakType) IsHard() bool {
	return bt == Mandatory || bt == EndOfText
}

// Fragment is a run of text [Start, End) without break opportunities in its
// interior. Type is the kind of break at End.
//
// TrailingSpaces counts the white space code units at the end of the
// fragment, TrailingNewlines those of them which are line terminators.
// Newlines are counted as spaces, too.
type Fragment struct {
	Start, End       text.Index
	Type             BreakType
	TrailingNewlines int
	TrailingSpaces   int
}

// Len is the length of the fragment in code units.
func (f Fragment) Len() int {
	return int(f.End - f.Start)
}

func (f Fragment) String() string {
	return fmt.Sprintf("[%d,%d)%s(nl=%d,sp=%d)", f.Start, f.End, f.Type,
		f.TrailingNewlines, f.TrailingSpaces)
}

// none stands in for “no character”, i.e. for positions before the start of
// text or right after a break.
const none = props.LineClass(255)

// fragmenter holds the state of a single scan over a text.
type fragmenter struct {
	units     text.Units
	fragments []Fragment
	start     text.Index // start of the current fragment
	index     text.Index // current position, between prev1 and curr
	//
	prev2, prev1, curr props.LineClass // resolved classes
	rawPrev            props.LineClass // class of the character before index, before LB9/LB10
	prevRune, currRune rune
	spaceBase          props.LineClass // class of the character before a run of spaces
	riCount            int             // length of the regional indicator run before index
	//
	trailingSpaces, trailingNewlines int
}

// Fragments splits a text into line-break fragments. The fragments cover the
// whole text without gaps. The last fragment is always of type EndOfText.
// If the text ends with a hard line break, the last fragment is empty and
// starts at the end of the text. For empty text a single empty fragment is
// returned.
func Fragments(units text.Units) []Fragment {
	f := &fragmenter{
		units:     units,
		fragments: make([]Fragment, 0, len(units)/4+1),
		prev2:     none,
		prev1:     none,
		rawPrev:   none,
		spaceBase: props.LineWJ,
	}
	f.scan()
	return f.fragments
}

func (f *fragmenter) scan() {
	// LB2: sot ×
	// The start of text is never a candidate, we start right after the first
	// code point.
	r, n := f.units.CodePointAt(0)
	f.currRune = r
	f.curr, f.rawPrev = f.classify(r, n), none
	rawCurr := f.rawClass(r, n)
	for n > 0 {
		f.index += text.Index(n) // surrogate pairs are skipped as a whole
		f.prev2, f.prev1 = f.prev1, f.curr
		f.rawPrev, f.prevRune = rawCurr, f.currRune
		r, n = f.units.CodePointAt(f.index)
		f.currRune, rawCurr = r, f.rawClass(r, n)
		f.curr = f.classify(r, n)
		f.countTrailing()
		if f.rawPrev == props.LineRI {
			f.riCount++
		} else {
			f.riCount = 0
		}
		if f.prev1 != props.LineSP {
			f.spaceBase = f.prev1
		}
		bt := f.decide(n == 0)
		f.setBreak(bt)
		if bt == EndOfText {
			return
		}
	}
	// LB3: ! eot
	// Reached for empty text and for text ending with a hard break.
	f.setBreak(EndOfText)
}

// decide returns the break type at the current index. It is not called for
// index 0. atEnd signals that there is no current character.
func (f *fragmenter) decide(atEnd bool) BreakType {
	p1, p2, c := f.prev1, f.prev2, f.curr
	// LB4: BK !
	// LB5: CR × LF, CR !, LF !, NL !
	if p1.IsHardBreak() {
		return Mandatory
	}
	if p1 == props.LineCR {
		if c == props.LineLF {
			return Prohibited
		}
		return Mandatory
	}
	// LB6: × ( BK | CR | LF | NL )
	if c.IsHardBreak() || c == props.LineCR {
		return Prohibited
	}
	if atEnd {
		return EndOfText
	}
	// LB7: × SP, × ZW
	if c == props.LineSP || c == props.LineZW {
		return Prohibited
	}
	// LB8: ZW SP* ÷
	if f.spaceBase == props.LineZW {
		return Opportunity
	}
	// LB8a: ZWJ ×
	if f.rawPrev == props.LineZWJ {
		return Prohibited
	}
	// LB9: do not break a combining character sequence
	if f.isCombiningContinuation() {
		return Prohibited
	}
	// LB11: × WJ, WJ ×
	if c == props.LineWJ || p1 == props.LineWJ {
		return Prohibited
	}
	// LB12: GL ×
	if p1 == props.LineGL {
		return Prohibited
	}
	// LB12a: [^SP BA HY] × GL
	if c == props.LineGL && p1 != props.LineSP && p1 != props.LineBA && p1 != props.LineHY {
		return Prohibited
	}
	// LB13: × CL, × CP, × EX, × IS, × SY
	switch c {
	case props.LineCL, props.LineCP, props.LineEX, props.LineIS, props.LineSY:
		return Prohibited
	}
	// LB14: OP SP* ×
	if f.spaceBase == props.LineOP {
		return Prohibited
	}
	// LB15: QU SP* × OP
	if f.spaceBase == props.LineQU && c == props.LineOP {
		return Prohibited
	}
	// LB16: (CL | CP) SP* × NS
	if (f.spaceBase == props.LineCL || f.spaceBase == props.LineCP) && c == props.LineNS {
		return Prohibited
	}
	// LB17: B2 SP* × B2
	if f.spaceBase == props.LineB2 && c == props.LineB2 {
		return Prohibited
	}
	// LB18: SP ÷
	if p1 == props.LineSP {
		return Opportunity
	}
	// LB19: × QU, QU ×
	if c == props.LineQU || p1 == props.LineQU {
		return Prohibited
	}
	// LB20: ÷ CB, CB ÷
	if c == props.LineCB || p1 == props.LineCB {
		return Opportunity
	}
	// LB21: × BA, × HY, × NS, BB ×
	switch {
	case c == props.LineBA, c == props.LineHY, c == props.LineNS, p1 == props.LineBB:
		return Prohibited
	}
	// LB21a: HL (HY | BA) ×
	if p2 == props.LineHL && (p1 == props.LineHY || p1 == props.LineBA) {
		return Prohibited
	}
	// LB21b: SY × HL
	if p1 == props.LineSY && c == props.LineHL {
		return Prohibited
	}
	// LB22: × IN
	if c == props.LineIN {
		return Prohibited
	}
	// LB23: (AL | HL) × NU, NU × (AL | HL)
	if (isAHL(p1) && c == props.LineNU) || (p1 == props.LineNU && isAHL(c)) {
		return Prohibited
	}
	// LB23a: PR × (ID | EB | EM), (ID | EB | EM) × PO
	if (p1 == props.LinePR && isIdeographic(c)) || (isIdeographic(p1) && c == props.LinePO) {
		return Prohibited
	}
	// LB24: (PR | PO) × (AL | HL), (AL | HL) × (PR | PO)
	if (isPrefixPostfix(p1) && isAHL(c)) || (isAHL(p1) && isPrefixPostfix(c)) {
		return Prohibited
	}
	// LB25: numbers, in the pair-wise tailoring of the standard
	if f.isNumericSequence() {
		return Prohibited
	}
	// LB26: Korean syllable blocks
	switch {
	case p1 == props.LineJL && (c == props.LineJL || c == props.LineJV || c == props.LineH2 || c == props.LineH3):
		return Prohibited
	case (p1 == props.LineJV || p1 == props.LineH2) && (c == props.LineJV || c == props.LineJT):
		return Prohibited
	case (p1 == props.LineJT || p1 == props.LineH3) && c == props.LineJT:
		return Prohibited
	}
	// LB27: (JL | JV | JT | H2 | H3) × PO, PR × (JL | JV | JT | H2 | H3)
	if (isKorean(p1) && c == props.LinePO) || (p1 == props.LinePR && isKorean(c)) {
		return Prohibited
	}
	// LB28: (AL | HL) × (AL | HL)
	if isAHL(p1) && isAHL(c) {
		return Prohibited
	}
	// LB29: IS × (AL | HL)
	if p1 == props.LineIS && isAHL(c) {
		return Prohibited
	}
	// LB30: (AL | HL | NU) × OP, CP × (AL | HL | NU), excluding East Asian
	// wide parentheses
	if (isAHL(p1) || p1 == props.LineNU) && c == props.LineOP && !isWide(f.currRune) {
		return Prohibited
	}
	if p1 == props.LineCP && (isAHL(c) || c == props.LineNU) && !isWide(f.prevRune) {
		return Prohibited
	}
	// LB30a: break between pairs of regional indicators
	if p1 == props.LineRI && c == props.LineRI && f.riCount%2 == 1 {
		return Prohibited
	}
	// LB30b: EB × EM
	if p1 == props.LineEB && c == props.LineEM {
		return Prohibited
	}
	// LB31: ÷
	return Opportunity
}

// isNumericSequence applies LB25 to the current position:
//
//	(PR | PO) × ( OP | HY )? NU
//	( OP | HY ) × NU
//	NU × (NU | SY | IS)
//	(NU | SY | IS) × NU
//	(NU | CL | CP) × (PO | PR)
func (f *fragmenter) isNumericSequence() bool {
	p1, c := f.prev1, f.curr
	switch {
	case isPrefixPostfix(p1) && c == props.LineNU:
		return true
	case isPrefixPostfix(p1) && (c == props.LineOP || c == props.LineHY):
		next := f.index + text.Index(f.currLen())
		r, n := f.units.CodePointAt(next)
		return n > 0 && props.LineBreakClass(r) == props.LineNU
	case (p1 == props.LineOP || p1 == props.LineHY) && c == props.LineNU:
		return true
	case p1 == props.LineNU && (c == props.LineNU || c == props.LineSY || c == props.LineIS):
		return true
	case (p1 == props.LineSY || p1 == props.LineIS) && c == props.LineNU:
		return true
	case (p1 == props.LineNU || p1 == props.LineCL || p1 == props.LineCP) && isPrefixPostfix(c):
		return true
	}
	return false
}

// setBreak records a break at the current index. Prohibited breaks do not
// end a fragment.
func (f *fragmenter) setBreak(bt BreakType) {
	if bt == Prohibited {
		return
	}
	end := f.index
	if bt == EndOfText {
		end = f.units.Len()
	}
	frag := Fragment{
		Start:            f.start,
		End:              end,
		Type:             bt,
		TrailingNewlines: f.trailingNewlines,
		TrailingSpaces:   f.trailingSpaces,
	}
	tracer().Debugf("line-break fragment %v", frag)
	f.fragments = append(f.fragments, frag)
	f.start = end
	f.trailingSpaces, f.trailingNewlines = 0, 0
	f.prev1 = none // becomes prev2 on the next step, so look-back stops at the break
}

// countTrailing updates the count of trailing white space with the character
// just passed. Any other character starts a new count.
func (f *fragmenter) countTrailing() {
	switch {
	case f.rawPrev == props.LineSP:
		f.trailingSpaces++
	case f.rawPrev.IsHardBreak() || f.rawPrev == props.LineCR:
		f.trailingNewlines++
		f.trailingSpaces++
	default:
		f.trailingSpaces, f.trailingNewlines = 0, 0
	}
}

// rawClass is the class of a code point as it is found in the property
// table (after LB1). It is `none` for positions at the end of text.
func (f *fragmenter) rawClass(r rune, n int) props.LineClass {
	if n == 0 {
		return none
	}
	return props.LineBreakClass(r)
}

// classify resolves the class of the code point following prev1. Combining
// marks and ZWJ take the class of their base character (LB9). If there is
// no base they are treated as AL (LB10).
func (f *fragmenter) classify(r rune, n int) props.LineClass {
	c := f.rawClass(r, n)
	if !c.IsCombining() {
		return c
	}
	if hasCombiningBase(f.prev1) {
		return f.prev1
	}
	return props.LineAL
}

func (f *fragmenter) isCombiningContinuation() bool {
	return f.rawClass(f.currRune, f.currLen()).IsCombining() && hasCombiningBase(f.prev1)
}

func (f *fragmenter) currLen() int {
	_, n := f.units.CodePointAt(f.index)
	return n
}

// hasCombiningBase is true for classes combining marks may attach to.
func hasCombiningBase(c props.LineClass) bool {
	switch c {
	case none, props.LineBK, props.LineCR, props.LineLF, props.LineNL, props.LineSP, props.LineZW:
		return false
	}
	return true
}

func isAHL(c props.LineClass) bool {
	return c == props.LineAL || c == props.LineHL
}

func isPrefixPostfix(c props.LineClass) bool {
	return c == props.LinePR || c == props.LinePO
}

func isIdeographic(c props.LineClass) bool {
	return c == props.LineID || c == props.LineEB || c == props.LineEM
}

func isKorean(c props.LineClass) bool {
	switch c {
	case props.LineJL, props.LineJV, props.LineJT, props.LineH2, props.LineH3:
		return true
	}
	return false
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianHalfwidth:
		return true
	}
	return false
}
