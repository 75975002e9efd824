package linebreak

import (
	"testing"

	"github.com/npillmayer/paragraph/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHelloWorld(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	frags := Fragments(text.FromString("Hello world"))
	expectFragments(t, frags, []Fragment{
		{0, 6, Opportunity, 0, 1},
		{6, 11, EndOfText, 0, 0},
	})
}

func TestEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	frags := Fragments(text.Units{})
	expectFragments(t, frags, []Fragment{
		{0, 0, EndOfText, 0, 0},
	})
}

func TestHardBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	frags := Fragments(text.FromString("line1\nline2"))
	expectFragments(t, frags, []Fragment{
		{0, 6, Mandatory, 1, 1},
		{6, 11, EndOfText, 0, 0},
	})
	frags = Fragments(text.FromString("a \r\nb"))
	expectFragments(t, frags, []Fragment{
		{0, 4, Mandatory, 2, 3},
		{4, 5, EndOfText, 0, 0},
	})
	frags = Fragments(text.FromString("ab\n"))
	expectFragments(t, frags, []Fragment{
		{0, 3, Mandatory, 1, 1},
		{3, 3, EndOfText, 0, 0},
	})
	frags = Fragments(text.FromString("\n\n"))
	expectFragments(t, frags, []Fragment{
		{0, 1, Mandatory, 1, 1},
		{1, 2, Mandatory, 1, 1},
		{2, 2, EndOfText, 0, 0},
	})
}

func TestTrailingSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	frags := Fragments(text.FromString("foo   bar  "))
	expectFragments(t, frags, []Fragment{
		{0, 6, Opportunity, 0, 3},
		{6, 11, EndOfText, 0, 2},
	})
	// LB14 keeps the space after an opening parenthesis; it must not be
	// counted as trailing
	frags = Fragments(text.FromString("( a b"))
	expectFragments(t, frags, []Fragment{
		{0, 4, Opportunity, 0, 1},
		{4, 5, EndOfText, 0, 0},
	})
}

func TestPunctuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	frags := Fragments(text.FromString("well-known (yes), $12.50!"))
	expectBreaksAt(t, frags, 5, 11, 18, 25)
}

func TestSurrogatesAreNotSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	units := text.FromString("一😀二")
	frags := Fragments(units)
	for _, f := range frags {
		if units.IsInsideSurrogatePair(f.End) {
			t.Errorf("fragment %v ends inside a surrogate pair", f)
		}
	}
	expectBreaksAt(t, frags, 1, 3, 4)
}

func TestRegionalIndicators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	// three flags: AT, DE, CH; each flag is 2 RIs of 2 code units
	frags := Fragments(text.FromString("🇦🇹🇩🇪🇨🇭"))
	expectBreaksAt(t, frags, 4, 8, 12)
}

func TestCombiningMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	// e + combining acute is one unit, like a letter
	frags := Fragments(text.FromString("cafe\u0301 ok"))
	expectBreaksAt(t, frags, 6, 8)
	// a combining mark after a space is treated as a letter
	frags = Fragments(text.FromString("a \u0301b"))
	expectBreaksAt(t, frags, 2, 4)
}

func TestIdeographs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	frags := Fragments(text.FromString("日本語。"))
	expectBreaksAt(t, frags, 1, 2, 4)
}

func TestCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	for _, s := range []string{
		"", " ", "\n", "a", "The quick brown fox\njumps over\r\nthe lazy dog.  ",
		"abc أحمد 123", "(a) [b] {c}", "x\u200b y", "\U0001F469\u200d\U0001F469\u200d\U0001F467 family", "١٢٣ ٤٥٦",
	} {
		units := text.FromString(s)
		frags := Fragments(units)
		if len(frags) == 0 {
			t.Fatalf("no fragments for %q", s)
		}
		pos := text.Index(0)
		for i, f := range frags {
			if f.Start != pos {
				t.Errorf("%q: fragment %d starts at %d, expected %d", s, i, f.Start, pos)
			}
			if f.TrailingNewlines > f.TrailingSpaces || f.TrailingSpaces > f.Len() {
				t.Errorf("%q: inconsistent trailing counts in %v", s, f)
			}
			if f.Type == Prohibited {
				t.Errorf("%q: fragment %v has prohibited break", s, f)
			}
			pos = f.End
		}
		last := frags[len(frags)-1]
		if last.Type != EndOfText || last.End != units.Len() {
			t.Errorf("%q: last fragment should end text, is %v", s, last)
		}
	}
}

// --- Test Helpers ----------------------------------------------------------

func expectFragments(t *testing.T, frags []Fragment, expected []Fragment) {
	t.Helper()
	if len(frags) != len(expected) {
		t.Fatalf("expected %d fragments, have %d: %v", len(expected), len(frags), frags)
	}
	for i, f := range frags {
		if f != expected[i] {
			t.Errorf("expected fragment #%d to be %v, is %v", i, expected[i], f)
		}
	}
}

func expectBreaksAt(t *testing.T, frags []Fragment, positions ...text.Index) {
	t.Helper()
	if len(frags) != len(positions) {
		t.Fatalf("expected breaks at %v, have fragments %v", positions, frags)
	}
	for i, f := range frags {
		if f.End != positions[i] {
			t.Errorf("expected break #%d at %d, is at %d", i, positions[i], f.End)
		}
	}
}
