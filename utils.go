package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// sketchText dumps the visible state as plain text, one element per line.
// Segments read start -> end; for parabolas the start is the vertex.
func sketchText(s *Sketch) string {
	segments, markers := s.Visible()
	var b strings.Builder
	for _, seg := range segments {
		if seg.Shape == ShapeParabola {
			arm := mirrorArm(seg.Start, seg.End)
			fmt.Fprintf(&b, "parabola vertex (%d,%d) arms (%d,%d) (%d,%d)\n",
				seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y, arm.X, arm.Y)
			continue
		}
		fmt.Fprintf(&b, "%s (%d,%d) -> (%d,%d)\n",
			seg.Shape, seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
	}
	for _, mk := range markers {
		fmt.Fprintf(&b, "circle (%d,%d)\n", mk.X, mk.Y)
	}
	return b.String()
}

func yankSketch(s *Sketch) error {
	text := sketchText(s)
	if text == "" {
		return fmt.Errorf("nothing to copy")
	}
	return clipboard.WriteAll(text)
}
