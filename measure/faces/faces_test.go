package faces

import (
	"testing"

	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGoFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	oracle, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	regular := measure.Font{Family: "Go", Size: 16, Weight: 400}
	w := oracle.MeasureText("Hello World", regular)
	if w <= 0 {
		t.Fatalf("expected positive width, have %.2f", w)
	}
	if w2 := oracle.MeasureText("Hello World Hello World", regular); w2 <= w {
		t.Errorf("expected longer text to be wider: %.2f <= %.2f", w2, w)
	}
	bold := regular
	bold.Weight = 700
	if oracle.Face(bold) == oracle.Face(regular) {
		t.Errorf("expected bold face to differ from regular face")
	}
	m := oracle.Metrics(regular)
	if m.Ascent <= 0 || m.Descent <= 0 || m.Ascent+m.Descent > 2*regular.Size {
		t.Errorf("unexpected metrics %+v", m)
	}
}

func TestFallbackFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	oracle, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	a := oracle.MeasureText("fallback", measure.Font{Family: "Unknown", Size: 12, Weight: 400})
	b := oracle.MeasureText("fallback", measure.Font{Family: "Go", Size: 12, Weight: 400})
	if a != b {
		t.Errorf("expected unknown family to fall back to Go: %.2f != %.2f", a, b)
	}
}

func TestWithContext(t *testing.T) {
	oracle, err := New(&Config{DPI: 144})
	if err != nil {
		t.Fatal(err)
	}
	ctx := measure.NewContext(oracle)
	m := ctx.Acquire()
	defer m.Release()
	font := measure.Font{Family: "Go", Size: 10, Weight: 400}
	if w := m.MeasureText("x", font, 0); w != measure.Round(w) {
		t.Errorf("expected rounded width, have %v", w)
	}
}
