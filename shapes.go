package main

import "math"

// shapePath returns the renderable polyline for a curve between two surface
// pixel endpoints. Unrecognized shapes render as a straight line.
func shapePath(shape Shape, p0, p1 PixelPoint) []PixelPoint {
	switch shape {
	case ShapeExponential:
		return expPath(p0, p1)
	case ShapeParabola:
		return parabolaPath(p0, p1)
	default:
		return []PixelPoint{p0, p1}
	}
}

// expPath samples y0 + (1-e^(-kt))/(1-e^(-k)) * (y1-y0) with x linear in t.
// The normalization makes the curve pass through both endpoints exactly
// regardless of the steepness constant.
func expPath(p0, p1 PixelPoint) []PixelPoint {
	norm := 1 - math.Exp(-expSteepness)
	pts := make([]PixelPoint, 0, curveSamples+1)
	for i := 0; i <= curveSamples; i++ {
		t := float64(i) / curveSamples
		rise := (1 - math.Exp(-expSteepness*t)) / norm
		pts = append(pts, PixelPoint{
			X: p0.X + t*(p1.X-p0.X),
			Y: p0.Y + rise*(p1.Y-p0.Y),
		})
	}
	return pts
}

// parabolaPath builds two quadratic arcs meeting at the vertex. The second
// arm endpoint is arm mirrored through the vertical line at the vertex. A
// quadratic arc with its control point at (mid-x, vertex-y) traces an exact
// parabola arc, so the halves join symmetrically at the vertex.
func parabolaPath(vertex, arm PixelPoint) []PixelPoint {
	mirror := PixelPoint{X: 2*vertex.X - arm.X, Y: arm.Y}
	half := curveSamples / 2
	pts := make([]PixelPoint, 0, curveSamples+1)
	ctrl := PixelPoint{X: (mirror.X + vertex.X) / 2, Y: vertex.Y}
	for i := 0; i <= half; i++ {
		pts = append(pts, quadPoint(mirror, ctrl, vertex, float64(i)/float64(half)))
	}
	ctrl = PixelPoint{X: (vertex.X + arm.X) / 2, Y: vertex.Y}
	for i := 1; i <= half; i++ {
		pts = append(pts, quadPoint(vertex, ctrl, arm, float64(i)/float64(half)))
	}
	return pts
}

func quadPoint(a, ctrl, b PixelPoint, t float64) PixelPoint {
	u := 1 - t
	return PixelPoint{
		X: u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
	}
}

// mirrorArm reflects a parabola arm endpoint through the vertical line at
// the vertex, in plot space.
func mirrorArm(vertex, arm Point) Point {
	return Point{X: 2*vertex.X - arm.X, Y: arm.Y}
}
