package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportSize    = 720
	exportMarkerR = 6.0
)

// exportPNG renders the visible sketch state to a PNG at a fixed
// high-resolution surface, independent of the terminal size.
func exportPNG(s *Sketch, filename string) error {
	segments, markers := s.Visible()
	if len(segments) == 0 && len(markers) == 0 {
		return fmt.Errorf("nothing to export")
	}

	g := Grid{W: exportSize, H: exportSize}
	dc := gg.NewContext(exportSize, exportSize)
	dc.SetColor(color.White)
	dc.Clear()

	drawGridPNG(dc, g)
	drawAxesPNG(dc, g)
	if err := drawLabelsPNG(dc, g); err != nil {
		return err
	}

	dc.SetColor(color.Black)
	dc.SetLineWidth(2.5)
	for _, seg := range segments {
		pts := shapePath(seg.Shape, g.PointToPixel(seg.Start), g.PointToPixel(seg.End))
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.Stroke()
	}

	for _, mk := range markers {
		p := g.PointToPixel(mk)
		dc.SetColor(color.White)
		dc.DrawCircle(p.X, p.Y, exportMarkerR)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.SetLineWidth(2)
		dc.DrawCircle(p.X, p.Y, exportMarkerR)
		dc.Stroke()
	}

	return dc.SavePNG(filename)
}

func drawGridPNG(dc *gg.Context, g Grid) {
	dc.SetColor(color.RGBA{R: 222, G: 222, B: 222, A: 255})
	dc.SetLineWidth(1)
	for v := gridMin; v <= gridMax; v++ {
		dc.DrawLine(g.XToPixel(float64(v)), g.YToPixel(gridMin), g.XToPixel(float64(v)), g.YToPixel(gridMax))
		dc.Stroke()
		dc.DrawLine(g.XToPixel(gridMin), g.YToPixel(float64(v)), g.XToPixel(gridMax), g.YToPixel(float64(v)))
		dc.Stroke()
	}
}

func drawAxesPNG(dc *gg.Context, g Grid) {
	x0 := g.XToPixel(gridMin - axisMargin)
	x1 := g.XToPixel(gridMax + axisMargin)
	yTop := g.YToPixel(gridMax + axisMargin)
	yBot := g.YToPixel(gridMin - axisMargin)
	cx := g.XToPixel(0)
	cy := g.YToPixel(0)

	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	dc.DrawLine(x0, cy, x1, cy)
	dc.Stroke()
	dc.DrawLine(cx, yTop, cx, yBot)
	dc.Stroke()

	dc.SetLineWidth(1.5)
	for v := gridMin; v <= gridMax; v++ {
		if v == 0 {
			continue
		}
		tx := g.XToPixel(float64(v))
		ty := g.YToPixel(float64(v))
		dc.DrawLine(tx, cy-4, tx, cy+4)
		dc.Stroke()
		dc.DrawLine(cx-4, ty, cx+4, ty)
		dc.Stroke()
	}

	drawArrowPNG(dc, x1, cy, 1, 0)
	drawArrowPNG(dc, x0, cy, -1, 0)
	drawArrowPNG(dc, cx, yTop, 0, -1)
	drawArrowPNG(dc, cx, yBot, 0, 1)
}

// drawArrowPNG draws a filled arrowhead with its tip at (x, y), pointing
// along the unit direction (dx, dy).
func drawArrowPNG(dc *gg.Context, x, y, dx, dy float64) {
	const size = 10.0
	dc.MoveTo(x, y)
	dc.LineTo(x-dx*size-dy*size/2, y-dy*size-dx*size/2)
	dc.LineTo(x-dx*size+dy*size/2, y-dy*size+dx*size/2)
	dc.ClosePath()
	dc.Fill()
}

func drawLabelsPNG(dc *gg.Context, g Grid) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.Black)

	cx := g.XToPixel(0)
	cy := g.YToPixel(0)
	for v := gridMin; v <= gridMax; v += 5 {
		if v == 0 {
			continue
		}
		label := fmt.Sprintf("%d", v)
		dc.DrawStringAnchored(label, g.XToPixel(float64(v)), cy+16, 0.5, 0.5)
		dc.DrawStringAnchored(label, cx-10, g.YToPixel(float64(v)), 1, 0.4)
	}
	dc.DrawStringAnchored("x", g.XToPixel(gridMax+axisMargin), cy-14, 0.5, 0.5)
	dc.DrawStringAnchored("y", cx+14, g.YToPixel(gridMax+axisMargin), 0.5, 0.5)
	return nil
}

// exportText writes the plain-text dump of the visible state to a file.
func exportText(s *Sketch, filename string) error {
	text := sketchText(s)
	if text == "" {
		return fmt.Errorf("nothing to export")
	}
	return os.WriteFile(filename, []byte(text), 0644)
}
