package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	return m, nil
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.cursorX >= m.plotWidth() {
		m.cursorX = m.plotWidth() - 1
	}
	if m.cursorY >= m.plotHeight() {
		m.cursorY = m.plotHeight() - 1
	}
}

// cellCenter returns the micro-pixel center of a plot cell.
func cellCenter(cx, cy int) PixelPoint {
	return PixelPoint{X: float64(cx*2 + 1), Y: float64(cy*4 + 2)}
}

// commitAnchoredSegment replays the anchor and cursor cells as a synthetic
// drag, so keyboard drawing goes through the same classifier as the mouse.
func (m *model) commitAnchoredSegment() bool {
	from := cellCenter(m.anchorX, m.anchorY)
	to := cellCenter(m.cursorX, m.cursorY)
	m.sketch.Pointer(PointerEvent{Phase: PointerDown, X: from.X, Y: from.Y})
	return m.sketch.Pointer(PointerEvent{Phase: PointerUp, X: to.X, Y: to.Y})
}

// placeMarkerAtCursor fakes the short vertical flick the classifier reads as
// a marker, centered on the cursor cell.
func (m *model) placeMarkerAtCursor() bool {
	c := cellCenter(m.cursorX, m.cursorY)
	v := m.sketch.classifier.PointMinVertical / 2
	m.sketch.Pointer(PointerEvent{Phase: PointerDown, X: c.X, Y: c.Y - v})
	return m.sketch.Pointer(PointerEvent{Phase: PointerUp, X: c.X, Y: c.Y + v})
}
