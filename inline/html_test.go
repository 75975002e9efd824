package inline

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/paragraph"
	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/paragraph/measure/measuretest"
	"github.com/npillmayer/paragraph/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestHTMLFromTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	r := strings.NewReader(`
	<!DOCTYPE html>
	<html>
	<head><title>Ignored</title></head>
	<body>

	<h1>My First Heading</h1>
	<p>My <b>first</b> paragraph.</p>

	</body>
	</html>
`)
	doc, err := html.Parse(r)
	if err != nil {
		t.Fatal(err.Error())
	}
	para, err := FromNode(doc, pstyle(), context())
	if err != nil {
		t.Fatal(err.Error())
	}
	if s := para.PlainText(); s != "My First Heading My first paragraph." {
		t.Errorf("unexpected text %q", s)
	}
}

func TestHTMLParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	para := parse(t, `<p>My <b>first</b> paragraph.</p>`)
	if s := para.PlainText(); s != "My first paragraph." {
		t.Errorf("unexpected text %q", s)
	}
	spans := para.Spans()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, have %d: %v", len(spans), spans)
	}
	if spans[1].Start != 3 || spans[1].End != 8 {
		t.Errorf("expected bold span at [3,8), is [%d,%d)", spans[1].Start, spans[1].End)
	}
	if w := spans[1].Style.Font().Weight; w != style.WeightBold {
		t.Errorf("expected bold span to have weight %d, has %d", style.WeightBold, w)
	}
	if w := spans[2].Style.Font().Weight; w != style.WeightNormal {
		t.Errorf("expected text after </b> to have normal weight, has %d", w)
	}
}

func TestHTMLLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	para := parse(t, "one <br>\n   two<br/>three")
	if s := para.PlainText(); s != "one\ntwo\nthree" {
		t.Errorf("unexpected text %q", s)
	}
	para.Layout(paragraph.Unconstrained)
	if n := para.NumberOfLines(); n != 3 {
		t.Errorf("expected 3 lines, have %d", n)
	}
}

func TestHTMLNestedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	para := parse(t, `a <small>b <em>c <mark>d</mark></em></small>`)
	if s := para.PlainText(); s != "a b c d" {
		t.Errorf("unexpected text %q", s)
	}
	spans := para.Spans()
	last := spans[len(spans)-1]
	if last.Style.Font().Size != 8 {
		t.Errorf("expected small text to have size 8, has %.2f", last.Style.Font().Size)
	}
	if !last.Style.Italic {
		t.Errorf("expected emphasized text to be italic")
	}
	if last.Style.Background != MarkColor {
		t.Errorf("expected marked text to have background %v", MarkColor)
	}
	if spans[0].Style.Font().Size != 10 {
		t.Errorf("expected plain text to keep size 10")
	}
}

func TestHTMLIllegalArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	_, err := FromNode(nil, pstyle(), context())
	if !errors.Is(err, paragraph.ErrIllegalArguments) {
		t.Errorf("expected illegal arguments error, have %v", err)
	}
}

// --- Test Helpers ----------------------------------------------------------

func pstyle() style.ParagraphStyle {
	return style.ParagraphStyle{Default: style.SpanStyle{FontFamily: "Ahem", FontSize: 10}}
}

func context() *measure.Context {
	return measure.NewContext(&measuretest.Ahem{})
}

func parse(t *testing.T, s string) *paragraph.Paragraph {
	t.Helper()
	para, err := FromHTML(strings.NewReader(s), pstyle(), context())
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("text = %q", para.PlainText())
	return para
}
