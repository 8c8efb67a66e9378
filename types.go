package main

// Point is a grid-snapped plot-space coordinate. Markers and segment
// endpoints are stored in this space so the geometry can be recomputed when
// the surface is resized.
type Point struct {
	X, Y int
}

// PixelPoint is a position in surface (pixel) space.
type PixelPoint struct {
	X, Y float64
}

// Segment is a drawn curve between two snapped endpoints. For ShapeParabola,
// Start is the vertex and End one arm's free endpoint; the other arm is the
// mirror of End through the vertical line at the vertex.
type Segment struct {
	Shape Shape
	Start Point
	End   Point
}

// Action is one committed edit. Type selects which of Segment or Marker is
// meaningful. Immutable once appended to a History.
type Action struct {
	Type    ActionType
	Segment Segment
	Marker  Point
}

type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is one raw input sample in surface pixel coordinates,
// clamped to the surface bounds by the host.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
}
