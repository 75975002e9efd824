package wordbreak

import (
	"testing"

	"github.com/npillmayer/paragraph/text"
)

func TestWordBreaks(t *testing.T) {
	for _, x := range []struct {
		s      string
		breaks []text.Index
	}{
		{"", []text.Index{0}},
		{"hello world", []text.Index{0, 5, 6, 11}},
		{"can't stop", []text.Index{0, 5, 6, 10}},
		{"3.14 pi", []text.Index{0, 4, 5, 7}},
		{"a,b", []text.Index{0, 1, 2, 3}},
		{"1,000", []text.Index{0, 5}},
		{"foo_bar", []text.Index{0, 7}},
		{"a  b", []text.Index{0, 1, 3, 4}},
		{"a\r\nb", []text.Index{0, 1, 3, 4}},
		{"e\u0301te", []text.Index{0, 4}},
		{"カタカナ漢字", []text.Index{0, 4, 5, 6}},
		{"😀😀", []text.Index{0, 2, 4}},
		{"🇦🇹🇩🇪", []text.Index{0, 4, 8}},
		{"\U0001F469\u200D\U0001F4BB!", []text.Index{0, 5, 6}},
		{"\u0915\u093F\u0924\u093E\u092C \u0915", []text.Index{0, 5, 6, 7}},
	} {
		units := text.FromString(x.s)
		var breaks []text.Index
		for i := text.Index(0); i <= units.Len(); i++ {
			if IsBreak(units, i) {
				breaks = append(breaks, i)
			}
		}
		if !equal(breaks, x.breaks) {
			t.Errorf("%q: expected breaks at %v, have %v", x.s, x.breaks, breaks)
		}
	}
}

func TestNextPrevBreak(t *testing.T) {
	units := text.FromString("hello, world")
	if n := NextBreakIndex(units, 0); n != 5 {
		t.Errorf("expected next break after 0 at 5, is %d", n)
	}
	if n := NextBreakIndex(units, 2); n != 5 {
		t.Errorf("expected next break after 2 at 5, is %d", n)
	}
	if n := NextBreakIndex(units, 12); n != 12 {
		t.Errorf("expected next break at end to stay at 12, is %d", n)
	}
	if p := PrevBreakIndex(units, 10); p != 7 {
		t.Errorf("expected previous break before 10 at 7, is %d", p)
	}
	if p := PrevBreakIndex(units, 0); p != 0 {
		t.Errorf("expected previous break at start to stay at 0, is %d", p)
	}
}

func TestMoveByWordBoundary(t *testing.T) {
	units := text.FromString("hello, world")
	if i := MoveByWordBoundary(units, 0, true); i != 7 {
		t.Errorf("expected caret to move to 7, is at %d", i)
	}
	if i := MoveByWordBoundary(units, 7, true); i != 12 {
		t.Errorf("expected caret to move to 12, is at %d", i)
	}
	if i := MoveByWordBoundary(units, 7, false); i != 0 {
		t.Errorf("expected caret to move back to 0, is at %d", i)
	}
	if i := MoveByWordBoundary(units, 12, false); i != 7 {
		t.Errorf("expected caret to move back to 7, is at %d", i)
	}
}

// --- Test Helpers ----------------------------------------------------------

func equal(a, b []text.Index) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
