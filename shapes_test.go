package main

import (
	"math"
	"testing"
)

func approxEqual(a, b PixelPoint) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestShapePathDefaultsToLine(t *testing.T) {
	p0 := PixelPoint{X: 10, Y: 20}
	p1 := PixelPoint{X: 110, Y: 220}
	for _, shape := range []Shape{ShapeLine, ShapeNone, Shape(99)} {
		pts := shapePath(shape, p0, p1)
		if len(pts) != 2 || pts[0] != p0 || pts[1] != p1 {
			t.Errorf("shape %v: want straight segment, got %v", shape, pts)
		}
	}
}

func TestExponentialHitsBothEndpoints(t *testing.T) {
	p0 := PixelPoint{X: 100, Y: 400}
	p1 := PixelPoint{X: 300, Y: 100}
	pts := shapePath(ShapeExponential, p0, p1)
	if len(pts) < 21 {
		t.Fatalf("want at least 21 samples, got %d", len(pts))
	}
	if !approxEqual(pts[0], p0) {
		t.Errorf("first sample %v, want %v", pts[0], p0)
	}
	if !approxEqual(pts[len(pts)-1], p1) {
		t.Errorf("last sample %v, want %v", pts[len(pts)-1], p1)
	}
}

func TestExponentialMonotonic(t *testing.T) {
	p0 := PixelPoint{X: 0, Y: 0}
	p1 := PixelPoint{X: 100, Y: 200}
	pts := shapePath(ShapeExponential, p0, p1)
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X {
			t.Fatalf("x not monotonic at sample %d", i)
		}
		if pts[i].Y < pts[i-1].Y {
			t.Fatalf("y not monotonic at sample %d", i)
		}
	}
}

func TestExponentialSaturates(t *testing.T) {
	// 1-e^(-kt) rises fastest at t=0 and levels off, so over equal x steps
	// the y increments shrink toward the far endpoint.
	p0 := PixelPoint{X: 0, Y: 0}
	p1 := PixelPoint{X: 100, Y: 100}
	pts := shapePath(ShapeExponential, p0, p1)
	for i := 2; i < len(pts); i++ {
		prev := pts[i-1].Y - pts[i-2].Y
		cur := pts[i].Y - pts[i-1].Y
		if cur >= prev {
			t.Fatalf("y step grew at sample %d: %v then %v", i, prev, cur)
		}
	}
}

func TestMirrorArm(t *testing.T) {
	tests := []struct {
		name        string
		vertex, arm Point
		want        Point
	}{
		{"origin vertex", Point{0, 0}, Point{4, 2}, Point{-4, 2}},
		{"offset vertex", Point{3, -1}, Point{5, 4}, Point{1, 4}},
		{"arm left of vertex", Point{0, 0}, Point{-2, 7}, Point{2, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mirrorArm(tt.vertex, tt.arm); got != tt.want {
				t.Errorf("mirrorArm(%v, %v) = %v, want %v", tt.vertex, tt.arm, got, tt.want)
			}
		})
	}
}

func TestParabolaEndpoints(t *testing.T) {
	vertex := PixelPoint{X: 200, Y: 300}
	arm := PixelPoint{X: 280, Y: 100}
	pts := shapePath(ShapeParabola, vertex, arm)

	mirror := PixelPoint{X: 120, Y: 100}
	if !approxEqual(pts[0], mirror) {
		t.Errorf("first sample %v, want mirrored arm %v", pts[0], mirror)
	}
	if !approxEqual(pts[len(pts)-1], arm) {
		t.Errorf("last sample %v, want arm %v", pts[len(pts)-1], arm)
	}
	if !approxEqual(pts[len(pts)/2], vertex) {
		t.Errorf("middle sample %v, want vertex %v", pts[len(pts)/2], vertex)
	}
}

func TestParabolaSymmetric(t *testing.T) {
	vertex := PixelPoint{X: 0, Y: 0}
	arm := PixelPoint{X: 80, Y: 160}
	pts := shapePath(ShapeParabola, vertex, arm)
	n := len(pts)
	for i := 0; i < n/2; i++ {
		a, b := pts[i], pts[n-1-i]
		if math.Abs(a.Y-b.Y) > 1e-9 || math.Abs(a.X+b.X) > 1e-9 {
			t.Fatalf("samples %d and %d not mirrored: %v vs %v", i, n-1-i, a, b)
		}
	}
}

func TestParabolaIsTrueParabola(t *testing.T) {
	// With vertex at the origin and arm (80, 160) the curve is y = x^2/40.
	vertex := PixelPoint{X: 0, Y: 0}
	arm := PixelPoint{X: 80, Y: 160}
	pts := shapePath(ShapeParabola, vertex, arm)
	for i, p := range pts {
		want := p.X * p.X / 40
		if math.Abs(p.Y-want) > 1e-6 {
			t.Fatalf("sample %d off the parabola: (%v, %v), want y %v", i, p.X, p.Y, want)
		}
	}
}
