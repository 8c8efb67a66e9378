package main

// Sketch owns all mutable drawing state: the surface grid, the action
// history, the selected tool and the in-flight drag. Hosts feed it pointer
// events and commands; nothing else touches the history, so mutation is
// single-writer by construction.
type Sketch struct {
	grid       Grid
	classifier Classifier
	history    History
	shape      Shape
	dragging   bool
	dragStart  PixelPoint
	dragLast   PixelPoint
}

func NewSketch(w, h float64) *Sketch {
	g := Grid{W: w, H: h}
	return &Sketch{
		grid:       g,
		classifier: defaultClassifier(g),
		shape:      ShapeLine,
	}
}

func (s *Sketch) Grid() Grid { return s.grid }

// Resize adapts the surface to new pixel bounds. Committed geometry lives in
// plot space, so nothing in the history moves; the span threshold re-derives
// from the new cell width while an explicitly tuned vertical threshold is
// kept.
func (s *Sketch) Resize(w, h float64) {
	s.grid = Grid{W: w, H: h}
	s.classifier.PointMaxSpan = pointSpanFactor * s.grid.ScaleX()
}

func (s *Sketch) SetShape(shape Shape) { s.shape = shape }
func (s *Sketch) Shape() Shape         { return s.shape }

// Pointer advances the drag state machine. Only the terminal up/cancel event
// can commit an action — cancel classifies exactly like up. The return value
// reports whether an action was committed.
func (s *Sketch) Pointer(ev PointerEvent) bool {
	switch ev.Phase {
	case PointerDown:
		s.dragging = true
		s.dragStart = PixelPoint{X: ev.X, Y: ev.Y}
		s.dragLast = s.dragStart
	case PointerMove:
		if !s.dragging {
			return false
		}
		s.dragLast = PixelPoint{X: ev.X, Y: ev.Y}
	case PointerUp, PointerCancel:
		if !s.dragging {
			return false
		}
		s.dragging = false
		s.dragLast = PixelPoint{X: ev.X, Y: ev.Y}
		action, ok := s.classifier.Classify(s.grid, s.shape, s.dragStart, s.dragLast)
		if !ok {
			return false
		}
		s.history.Commit(action)
		return true
	}
	return false
}

// DragPreview exposes the in-flight drag for live rendering. The committed
// result depends only on the start and latest points, never on the preview.
func (s *Sketch) DragPreview() (start, last PixelPoint, ok bool) {
	return s.dragStart, s.dragLast, s.dragging
}

func (s *Sketch) Undo() (canUndo, canRedo, canReset bool) {
	s.history.Undo()
	return s.Flags()
}

func (s *Sketch) Redo() (canUndo, canRedo, canReset bool) {
	s.history.Redo()
	return s.Flags()
}

func (s *Sketch) Reset() (canUndo, canRedo, canReset bool) {
	s.history.Reset()
	return s.Flags()
}

func (s *Sketch) Flags() (canUndo, canRedo, canReset bool) {
	return s.history.CanUndo(), s.history.CanRedo(), s.history.CanReset()
}

func (s *Sketch) Visible() ([]Segment, []Point) {
	return s.history.Visible()
}
