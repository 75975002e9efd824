package props

import (
	"testing"

	"github.com/npillmayer/paragraph/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLineBreakClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	for _, x := range []struct {
		r rune
		c LineClass
	}{
		{'a', LineAL},
		{'1', LineNU},
		{' ', LineSP},
		{'\n', LineLF},
		{'\r', LineCR},
		{'(', LineOP},
		{')', LineCP},
		{'-', LineHY},
		{'!', LineEX},
		{'\u00a0', LineGL},
		{'\u200b', LineZW},
		{'\u200d', LineZWJ},
		{'\u0301', LineCM},
		{'一', LineID},
		{'א', LineHL},
		{'\U0001F1E6', LineRI},
		{ObjectReplacementChar, LineCB},
		{0xd800, LineAL},
	} {
		if c := LineBreakClass(x.r); c != x.c {
			t.Errorf("expected class of %U to be %s, is %s", x.r, x.c, c)
		}
	}
}

func TestLineClassResolvesSA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	if c := LineBreakClass('ก'); c != LineAL { // Thai ko kai
		t.Errorf("expected Thai letter to resolve to AL, is %s", c)
	}
	if c := LineBreakClass('\u0e34'); c != LineCM { // Thai sara i, Mn
		t.Errorf("expected Thai vowel sign to resolve to CM, is %s", c)
	}
}

func TestWordBreakClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	for _, x := range []struct {
		r rune
		c WordClass
	}{
		{'a', WordALetter},
		{'Z', WordALetter},
		{'7', WordNumeric},
		{' ', WordWSegSpace},
		{'\'', WordSingleQuote},
		{'"', WordDoubleQuote},
		{'.', WordMidNumLet},
		{',', WordMidNum},
		{':', WordMidLetter},
		{'_', WordExtendNumLet},
		{'\n', WordLF},
		{'\r', WordCR},
		{'\u0301', WordExtend},
		{'\u200d', WordZWJ},
		{'\u00ad', WordFormat},
		{'ア', WordKatakana},
		{'א', WordHebrewLetter},
		{'ا', WordALetter},
		{'٣', WordNumeric},
		{'一', WordOther},
		{'!', WordOther},
		{'\U0001F1E6', WordRegionalIndicator},
	} {
		if c := WordBreakClass(x.r); c != x.c {
			t.Errorf("expected word class of %U to be %s, is %s", x.r, x.c, c)
		}
	}
}

func TestWordClassesOfScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	for _, x := range []struct {
		r rune
		c WordClass
	}{
		{'\u0915', WordALetter},   // Devanagari KA
		{'\u0e01', WordOther},     // Thai KO KAI, left to dictionary segmentation
		{'\u3042', WordOther},     // Hiragana A
		{'\u2019', WordMidNumLet}, // right single quotation mark
		{'\u00b7', WordMidLetter}, // middle dot
		{'\u3000', WordWSegSpace}, // ideographic space
		{'\u2028', WordNewline},
	} {
		if c := WordBreakClass(x.r); c != x.c {
			t.Errorf("expected %U to be %s, is %s", x.r, x.c, c)
		}
	}
	if !IsExtendedPictographic('\U0001F4BB') {
		t.Errorf("expected laptop emoji to be extended pictographic")
	}
	if IsExtendedPictographic('a') {
		t.Errorf("expected 'a' not to be extended pictographic")
	}
}

func TestDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	if d := Direction('a'); d != text.LeftToRight {
		t.Errorf("expected 'a' to be ltr, is %s", d)
	}
	if d := Direction('ا'); d != text.RightToLeft {
		t.Errorf("expected alef to be rtl, is %s", d)
	}
	if d := Direction('א'); d != text.RightToLeft {
		t.Errorf("expected hebrew alef to be rtl, is %s", d)
	}
	if d := Direction('1'); d != text.Neutral {
		t.Errorf("expected digit to have no strong direction, is %s", d)
	}
	if d := Direction(' '); d != text.Neutral {
		t.Errorf("expected space to have no strong direction, is %s", d)
	}
	if !IsArabicIndicDigit('٣') || IsArabicIndicDigit('3') {
		t.Errorf("Arabic-Indic digit detection is broken")
	}
}
