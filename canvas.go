package main

import "math"

// plotCanvas composites the sketch into terminal cells: a braille layer with
// 2x4 micro pixels per cell, plus a rune overlay for glyphs (arrowheads,
// markers, cursor) drawn on top of the braille.
type plotCanvas struct {
	w, h int // cells
	mask [][]uint8
	over [][]rune
}

func newPlotCanvas(w, h int) *plotCanvas {
	mask := make([][]uint8, h)
	over := make([][]rune, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		over[i] = make([]rune, w)
	}
	return &plotCanvas{w: w, h: h, mask: mask, over: over}
}

// setPixel sets one braille dot at micro coordinates (2x4 per cell).
func (p *plotCanvas) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= p.w || cy >= p.h {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	p.mask[cy][cx] |= bit
}

// drawLine draws on the microgrid using Bresenham.
func (p *plotCanvas) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		p.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawPath rasterizes a pixel-space polyline onto the microgrid.
func (p *plotCanvas) drawPath(pts []PixelPoint) {
	for i := 1; i < len(pts); i++ {
		x0 := int(math.Round(pts[i-1].X))
		y0 := int(math.Round(pts[i-1].Y))
		x1 := int(math.Round(pts[i].X))
		y1 := int(math.Round(pts[i].Y))
		p.drawLine(x0, y0, x1, y1)
	}
}

func (p *plotCanvas) setGlyph(cx, cy int, r rune) {
	if cx < 0 || cy < 0 || cx >= p.w || cy >= p.h {
		return
	}
	p.over[cy][cx] = r
}

// setGlyphAt places a glyph at the cell containing a micro-pixel position.
func (p *plotCanvas) setGlyphAt(pt PixelPoint, r rune) {
	p.setGlyph(int(math.Round(pt.X))/2, int(math.Round(pt.Y))/4, r)
}

// render composes the braille layer and the glyph overlay. Overlay wins.
func (p *plotCanvas) render() []string {
	lines := make([]string, p.h)
	for y := 0; y < p.h; y++ {
		row := make([]rune, p.w)
		for x := 0; x < p.w; x++ {
			switch {
			case p.over[y][x] != 0:
				row[x] = p.over[y][x]
			case p.mask[y][x] != 0:
				row[x] = rune(0x2800 + int(p.mask[y][x]))
			default:
				row[x] = ' '
			}
		}
		lines[y] = string(row)
	}
	return lines
}

// renderPlot draws the visible sketch state into w x h terminal cells:
// grid dots, axes with ticks and arrowheads, committed segments and markers,
// the live drag preview, and the keyboard cursor/anchor.
func renderPlot(s *Sketch, w, h int, cursorX, cursorY int, showCursor bool, anchorSet bool, anchorX, anchorY int) []string {
	p := newPlotCanvas(w, h)
	g := s.Grid()

	// grid intersections
	for gx := gridMin; gx <= gridMax; gx++ {
		for gy := gridMin; gy <= gridMax; gy++ {
			p.setPixel(int(math.Round(g.XToPixel(float64(gx)))), int(math.Round(g.YToPixel(float64(gy)))))
		}
	}

	drawAxes(p, g)

	segments, markers := s.Visible()
	for _, seg := range segments {
		p.drawPath(shapePath(seg.Shape, g.PointToPixel(seg.Start), g.PointToPixel(seg.End)))
	}
	for _, mk := range markers {
		p.setGlyphAt(g.PointToPixel(mk), '○')
	}

	if start, last, ok := s.DragPreview(); ok && s.Shape() != ShapeNone {
		p.drawPath(shapePath(s.Shape(), start, last))
	}

	if anchorSet {
		p.setGlyph(anchorX, anchorY, '◆')
	}
	if showCursor {
		p.setGlyph(cursorX, cursorY, '+')
	}

	return p.render()
}

func drawAxes(p *plotCanvas, g Grid) {
	x0 := int(math.Round(g.XToPixel(gridMin - axisMargin)))
	x1 := int(math.Round(g.XToPixel(gridMax + axisMargin)))
	y0 := int(math.Round(g.YToPixel(gridMax + axisMargin)))
	y1 := int(math.Round(g.YToPixel(gridMin - axisMargin)))
	cx := int(math.Round(g.XToPixel(0)))
	cy := int(math.Round(g.YToPixel(0)))

	p.drawLine(x0, cy, x1, cy)
	p.drawLine(cx, y0, cx, y1)

	// tick marks perpendicular to each axis
	for v := gridMin; v <= gridMax; v++ {
		if v == 0 {
			continue
		}
		tx := int(math.Round(g.XToPixel(float64(v))))
		ty := int(math.Round(g.YToPixel(float64(v))))
		p.setPixel(tx, cy-1)
		p.setPixel(tx, cy+1)
		p.setPixel(cx-1, ty)
		p.setPixel(cx+1, ty)
	}

	// arrowheads one grid unit past the range ends
	p.setGlyph(cx/2, y0/4, '▲')
	p.setGlyph(cx/2, y1/4, '▼')
	p.setGlyph(x0/2, cy/4, '◀')
	p.setGlyph(x1/2, cy/4, '▶')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
