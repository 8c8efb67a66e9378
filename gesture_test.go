package main

import "testing"

// testGrid is 720px across 24 grid units: 30px per cell, so the default
// classifier uses PointMaxSpan=27 and PointMinVertical=12.
func testGrid() Grid {
	return Grid{W: 720, H: 720}
}

func TestClassifyMarker(t *testing.T) {
	g := testGrid()
	c := defaultClassifier(g)

	// spanX=5, spanY=20: total length ~20.6 < 27 and vertical >= 12.
	start := PixelPoint{X: 300, Y: 300}
	end := PixelPoint{X: 305, Y: 320}
	action, ok := c.Classify(g, ShapeLine, start, end)
	if !ok {
		t.Fatal("marker flick dropped")
	}
	if action.Type != ActionMarker {
		t.Fatalf("want marker, got %v", action.Type)
	}
	// Center (302.5, 310) maps to (-1.92, 1.67) and snaps to (-2, 2).
	if want := (Point{X: -2, Y: 2}); action.Marker != want {
		t.Errorf("marker at %v, want %v", action.Marker, want)
	}
}

func TestClassifyMarkerIgnoresTool(t *testing.T) {
	g := testGrid()
	c := defaultClassifier(g)
	start := PixelPoint{X: 360, Y: 350}
	end := PixelPoint{X: 360, Y: 370}
	for _, shape := range []Shape{ShapeNone, ShapeLine, ShapeParabola} {
		action, ok := c.Classify(g, shape, start, end)
		if !ok || action.Type != ActionMarker {
			t.Errorf("shape %v: marker flick not classified as marker", shape)
		}
	}
}

func TestClassifySegment(t *testing.T) {
	g := testGrid()
	c := defaultClassifier(g)

	start := PixelPoint{X: 360, Y: 360} // value (0, 0)
	end := PixelPoint{X: 450, Y: 270}   // value (3, 3)
	action, ok := c.Classify(g, ShapeExponential, start, end)
	if !ok {
		t.Fatal("segment drag dropped")
	}
	if action.Type != ActionSegment {
		t.Fatalf("want segment, got %v", action.Type)
	}
	want := Segment{Shape: ShapeExponential, Start: Point{0, 0}, End: Point{3, 3}}
	if action.Segment != want {
		t.Errorf("segment %+v, want %+v", action.Segment, want)
	}
}

func TestClassifyTallDragIsSegment(t *testing.T) {
	g := testGrid()
	c := defaultClassifier(g)

	// Vertical travel alone does not make a marker: the total span must
	// stay under the cell width.
	start := PixelPoint{X: 360, Y: 360}
	end := PixelPoint{X: 360, Y: 200}
	action, ok := c.Classify(g, ShapeLine, start, end)
	if !ok || action.Type != ActionSegment {
		t.Fatalf("long vertical drag should be a segment, got %+v ok=%v", action, ok)
	}
}

func TestClassifyDrops(t *testing.T) {
	g := testGrid()
	c := defaultClassifier(g)

	tests := []struct {
		name       string
		shape      Shape
		start, end PixelPoint
	}{
		{"zero span", ShapeLine, PixelPoint{X: 100, Y: 100}, PixelPoint{X: 100, Y: 100}},
		{"snaps to same point", ShapeLine, PixelPoint{X: 300, Y: 300}, PixelPoint{X: 310, Y: 300}},
		{"segment with no tool", ShapeNone, PixelPoint{X: 360, Y: 360}, PixelPoint{X: 450, Y: 270}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if action, ok := c.Classify(g, tt.shape, tt.start, tt.end); ok {
				t.Errorf("want drop, got %+v", action)
			}
		})
	}
}

func TestClassifySnapsEndpointsIndependently(t *testing.T) {
	g := testGrid()
	c := defaultClassifier(g)

	// Both coordinates of both endpoints land off-grid.
	start := PixelPoint{X: g.XToPixel(1.3), Y: g.YToPixel(2.7)}
	end := PixelPoint{X: g.XToPixel(-4.6), Y: g.YToPixel(-0.4)}
	action, ok := c.Classify(g, ShapeLine, start, end)
	if !ok {
		t.Fatal("drag dropped")
	}
	want := Segment{Shape: ShapeLine, Start: Point{1, 3}, End: Point{-5, 0}}
	if action.Segment != want {
		t.Errorf("segment %+v, want %+v", action.Segment, want)
	}
}

func TestClassifyClampsOutOfRange(t *testing.T) {
	g := testGrid()
	c := defaultClassifier(g)

	// Drag past the plot edge: values clamp to the grid range.
	start := PixelPoint{X: 0, Y: 360}
	end := PixelPoint{X: 719, Y: 360}
	action, ok := c.Classify(g, ShapeLine, start, end)
	if !ok {
		t.Fatal("drag dropped")
	}
	if action.Segment.Start.X != -10 || action.Segment.End.X != 10 {
		t.Errorf("endpoints not clamped: %+v", action.Segment)
	}
}
