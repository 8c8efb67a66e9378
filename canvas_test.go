package main

import (
	"strings"
	"testing"
)

func testSketchForPlot(w, h int) *Sketch {
	return NewSketch(float64(w*2), float64(h*4))
}

func TestRenderPlotDimensions(t *testing.T) {
	s := testSketchForPlot(80, 24)
	lines := renderPlot(s, 80, 24, 0, 0, false, false, 0, 0)
	if len(lines) != 24 {
		t.Fatalf("%d lines, want 24", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 80 {
			t.Errorf("line %d: %d cells, want 80", i, n)
		}
	}
}

func TestRenderPlotHasAxes(t *testing.T) {
	s := testSketchForPlot(80, 24)
	out := strings.Join(renderPlot(s, 80, 24, 0, 0, false, false, 0, 0), "\n")
	for _, glyph := range []string{"▲", "▼", "◀", "▶"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("missing axis arrowhead %q", glyph)
		}
	}
}

func TestRenderPlotShowsMarkers(t *testing.T) {
	s := testSketchForPlot(80, 24)
	s.history.Commit(markerAction(2, 2))
	out := strings.Join(renderPlot(s, 80, 24, 0, 0, false, false, 0, 0), "\n")
	if !strings.Contains(out, "○") {
		t.Error("committed marker not rendered")
	}
}

func TestRenderPlotShowsCursor(t *testing.T) {
	s := testSketchForPlot(80, 24)
	lines := renderPlot(s, 80, 24, 5, 3, true, false, 0, 0)
	if []rune(lines[3])[5] != '+' {
		t.Errorf("cursor glyph missing at (5,3): %q", lines[3])
	}
}
