package main

type Shape int

const (
	ShapeNone Shape = iota
	ShapeLine
	ShapeExponential
	ShapeParabola
)

func (s Shape) String() string {
	switch s {
	case ShapeLine:
		return "line"
	case ShapeExponential:
		return "exponential"
	case ShapeParabola:
		return "parabola"
	default:
		return "none"
	}
}

func parseShape(name string) (Shape, bool) {
	switch name {
	case "line":
		return ShapeLine, true
	case "exponential", "exp":
		return ShapeExponential, true
	case "parabola":
		return ShapeParabola, true
	case "none":
		return ShapeNone, true
	}
	return ShapeNone, false
}

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveText
)

type ConfirmAction int

const (
	ConfirmReset ConfirmAction = iota
	ConfirmQuit
)

type ActionType int

const (
	ActionSegment ActionType = iota
	ActionMarker
)

const (
	// Plot value range. Coordinates snap to integer ticks inside it.
	gridMin = -10
	gridMax = 10

	// Extra grid units past each axis end so the arrowheads have room.
	axisMargin = 1

	// Steepness of the exponential-rise curve.
	expSteepness = 4.0

	// Samples per generated curve.
	curveSamples = 24

	// Marker gesture defaults: a marker is a drag shorter than
	// pointSpanFactor of one grid cell with at least pointMinVertical
	// pixels of vertical travel.
	pointSpanFactor  = 0.9
	pointMinVertical = 12.0
)
