package inline

import (
	"testing"

	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStyleString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	s := ItalicsStyle
	if s.String() != "i" {
		t.Errorf("expected italics to print as 'i', is %q", s.String())
	}
	s = s.Add(MarkedStyle)
	if s.String() != "i+mark" {
		t.Errorf("expected combined style to print as 'i+mark', is %q", s.String())
	}
	if s = s.Minus(ItalicsStyle); s != MarkedStyle {
		t.Errorf("expected mark after removing italics, is %v", s)
	}
	if PlainStyle.String() != "plain" {
		t.Errorf("expected plain style to print as 'plain'")
	}
}

func TestStyleFromHTMLName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	for name, expected := range map[string]Style{
		"b": BoldStyle, "strong": StrongStyle, "em": EmStyle, "p": PlainStyle, "span": PlainStyle,
	} {
		if s := StyleFromHTMLName(name); s != expected {
			t.Errorf("<%s>: expected %v, have %v", name, expected, s)
		}
	}
}

func TestSpanStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	parent := style.SpanStyle{FontSize: 20}
	st := StrongStyle.Add(SmallStyle).SpanStyle(parent)
	if st.FontWeight != style.WeightBold || st.FontSize != 16 {
		t.Errorf("expected bold 16px, have %v", st)
	}
	if st.Italic || st.Background != nil {
		t.Errorf("expected no other properties to be set, have %v", st)
	}
}
