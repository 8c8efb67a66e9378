package main

import "math"

// Classifier decides whether a completed drag is an open-circle marker or a
// segment. A marker gesture is a short near-vertical flick, which keeps it
// distinguishable from a deliberate one-unit horizontal drag. Thresholds are
// independent of the selected shape tool.
type Classifier struct {
	PointMaxSpan     float64 // px; a drag longer than this cannot be a marker
	PointMinVertical float64 // px; minimum vertical travel for a marker flick
}

// defaultClassifier sizes the marker span threshold to the grid cell width.
func defaultClassifier(g Grid) Classifier {
	return Classifier{
		PointMaxSpan:     pointSpanFactor * g.ScaleX(),
		PointMinVertical: pointMinVertical,
	}
}

// Classify turns the start and end of one drag into at most one action. The
// bool result is false when the drag is dropped: a zero-span gesture, a
// segment whose endpoints snap to the same grid point, or a segment attempt
// with no drawing tool selected. Dropped drags are a no-op, not an error.
func (c Classifier) Classify(g Grid, shape Shape, start, end PixelPoint) (Action, bool) {
	spanX := math.Abs(end.X - start.X)
	spanY := math.Abs(end.Y - start.Y)
	if spanX == 0 && spanY == 0 {
		return Action{}, false
	}
	if math.Hypot(spanX, spanY) < c.PointMaxSpan && spanY >= c.PointMinVertical {
		center := g.SnapPoint((start.X+end.X)/2, (start.Y+end.Y)/2)
		return Action{Type: ActionMarker, Marker: center}, true
	}
	if shape == ShapeNone {
		return Action{}, false
	}
	p0 := g.SnapPoint(start.X, start.Y)
	p1 := g.SnapPoint(end.X, end.Y)
	if p0 == p1 {
		return Action{}, false
	}
	return Action{
		Type:    ActionSegment,
		Segment: Segment{Shape: shape, Start: p0, End: p1},
	}, true
}
