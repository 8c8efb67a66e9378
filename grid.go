package main

import "math"

// Grid maps between plot-space values and surface pixels for a W x H pixel
// surface. The surface spans gridMin-axisMargin .. gridMax+axisMargin on both
// axes, centered on the origin, with pixel y growing downward.
type Grid struct {
	W, H float64
}

func unitsAcross() float64 {
	return float64(gridMax-gridMin) + 2*axisMargin
}

// ScaleX returns the width of one grid cell in pixels.
func (g Grid) ScaleX() float64 { return g.W / unitsAcross() }

// ScaleY returns the height of one grid cell in pixels.
func (g Grid) ScaleY() float64 { return g.H / unitsAcross() }

func (g Grid) XToPixel(v float64) float64 { return g.W/2 + v*g.ScaleX() }
func (g Grid) YToPixel(v float64) float64 { return g.H/2 - v*g.ScaleY() }

func (g Grid) PixelToX(px float64) float64 { return (px - g.W/2) / g.ScaleX() }
func (g Grid) PixelToY(py float64) float64 { return (g.H/2 - py) / g.ScaleY() }

// snapValue clamps a plot-space value to the grid range and rounds it to the
// nearest integer tick.
func snapValue(v float64) int {
	if v < gridMin {
		v = gridMin
	}
	if v > gridMax {
		v = gridMax
	}
	return int(math.Round(v))
}

// SnapPoint snaps a surface pixel position to the nearest grid intersection.
// Both coordinates snap independently.
func (g Grid) SnapPoint(px, py float64) Point {
	return Point{X: snapValue(g.PixelToX(px)), Y: snapValue(g.PixelToY(py))}
}

// PointToPixel maps a grid point back to surface pixels.
func (g Grid) PointToPixel(p Point) PixelPoint {
	return PixelPoint{X: g.XToPixel(float64(p.X)), Y: g.YToPixel(float64(p.Y))}
}
