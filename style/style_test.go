package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/paragraph/text"
)

func TestFontDefaults(t *testing.T) {
	var s SpanStyle
	f := s.Font()
	if f.Family != DefaultFontFamily || f.Size != DefaultFontSize || f.Weight != WeightNormal {
		t.Errorf("unexpected default font %v", f)
	}
}

func TestInherit(t *testing.T) {
	parent := SpanStyle{FontFamily: "Serif", FontSize: 20, Italic: true, Color: color.White}
	child := SpanStyle{FontWeight: WeightBold, FontSize: 10}.Inherit(parent)
	if child.FontFamily != "Serif" || child.FontSize != 10 || child.FontWeight != WeightBold {
		t.Errorf("unexpected inherited style %v", child)
	}
	if !child.Italic || child.Color != color.White {
		t.Errorf("expected italic and color to be inherited")
	}
}

func TestEffectiveTextAlign(t *testing.T) {
	for _, x := range []struct {
		align    TextAlign
		dir      text.Direction
		expected TextAlign
	}{
		{AlignStart, text.Neutral, AlignLeft},
		{AlignStart, text.RightToLeft, AlignRight},
		{AlignEnd, text.LeftToRight, AlignRight},
		{AlignEnd, text.RightToLeft, AlignLeft},
		{AlignCenter, text.RightToLeft, AlignCenter},
		{AlignJustify, text.LeftToRight, AlignJustify},
	} {
		ps := ParagraphStyle{TextAlign: x.align, TextDirection: x.dir}
		if a := ps.EffectiveTextAlign(); a != x.expected {
			t.Errorf("expected %s/%s to resolve to %s, is %s", x.align, x.dir, x.expected, a)
		}
	}
}
