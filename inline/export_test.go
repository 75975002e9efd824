package inline

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	for _, c := range []struct{ in, out string }{
		{`My <b>first</b> paragraph.`, `<p>My <b>first</b> paragraph.</p>`},
		{`one<br>two`, `<p>one<br>two</p>`},
		{`<strong>a &lt; b</strong>`, `<p><b>a &lt; b</b></p>`},
		{``, `<p></p>`},
	} {
		para := parse(t, c.in)
		var out bytes.Buffer
		if err := ToHTML(para, &out); err != nil {
			t.Fatal(err)
		}
		if out.String() != c.out {
			t.Errorf("%q: expected %q, have %q", c.in, c.out, out.String())
		}
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	para := parse(t, `a <small>b <em>c <mark>d</mark></em></small><br>e`)
	var out bytes.Buffer
	if err := ToHTML(para, &out); err != nil {
		t.Fatal(err)
	}
	t.Logf("html = %s", out.String())
	again := parse(t, out.String())
	if again.PlainText() != para.PlainText() {
		t.Fatalf("expected text %q, have %q", para.PlainText(), again.PlainText())
	}
	spans, spansAgain := para.Spans(), again.Spans()
	if len(spans) != len(spansAgain) {
		t.Fatalf("expected %d spans, have %d", len(spans), len(spansAgain))
	}
	base := pstyle().Default
	for i := range spans {
		if spans[i].Range() != spansAgain[i].Range() {
			t.Errorf("span %d: expected range %v, have %v", i, spans[i].Range(), spansAgain[i].Range())
		}
		s, sAgain := StyleOf(spans[i].Style, base), StyleOf(spansAgain[i].Style, base)
		if s != sAgain {
			t.Errorf("span %d: expected style %v, have %v", i, s, sAgain)
		}
	}
}
