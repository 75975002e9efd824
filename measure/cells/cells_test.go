package cells

import (
	"testing"

	"github.com/npillmayer/paragraph/measure"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCellWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	oracle := New(nil)
	font := measure.Font{Size: 12}
	if w := oracle.MeasureText("Hello", font); w != 5 {
		t.Errorf("expected 'Hello' to occupy 5 cells, has %.1f", w)
	}
	if w := oracle.MeasureText("日本", font); w != 4 {
		t.Errorf("expected two ideographs to occupy 4 cells, have %.1f", w)
	}
	if c := oracle.Cells(""); c != 0 {
		t.Errorf("expected empty string to have no cells, has %d", c)
	}
	if m := oracle.Metrics(font); m.Ascent != 1 || m.Descent != 0 {
		t.Errorf("unexpected cell metrics %+v", m)
	}
}

func TestCellWidthScaling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paragraph")
	defer teardown()
	//
	oracle := New(&Config{CellWidth: 8, CellHeight: 16})
	if w := oracle.MeasureText("abc", measure.Font{}); w != 24 {
		t.Errorf("expected 3 cells of width 8, have %.1f", w)
	}
}
