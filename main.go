package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// Terminal mouse input is cell-quantized, so the marker flick threshold
// drops to a single braille cell row of micro pixels.
const markerFlickMicro = 4.0

const (
	defaultPlotWidth  = 80
	defaultPlotHeight = 22
)

type model struct {
	width  int
	height int

	sketch *Sketch

	cursorX   int
	cursorY   int
	anchorSet bool
	anchorX   int
	anchorY   int
	mouseDown bool

	mode          Mode
	help          bool
	helpScroll    int
	fileOp        FileOperation
	filename      string
	confirmAction ConfirmAction

	errorMessage   string
	successMessage string
	config         *Config
}

func initialModel() model {
	config := loadConfig()
	m := model{
		sketch: NewSketch(defaultPlotWidth*2, defaultPlotHeight*4),
		config: config,
	}
	m.sketch.SetShape(config.DefaultShape)
	m.sketch.classifier.PointMinVertical = markerFlickMicro
	return m
}

// plotWidth and plotHeight are the plot area in cells; one row above for the
// title and one below for the status line.
func (m *model) plotWidth() int {
	if m.width < 1 {
		return defaultPlotWidth
	}
	return m.width
}

func (m *model) plotHeight() int {
	h := m.height - 2
	if h < 1 {
		return defaultPlotHeight
	}
	return h
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sketch.Resize(float64(m.plotWidth()*2), float64(m.plotHeight()*4))
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg.String())
		}
		switch m.mode {
		case ModeFileInput:
			return m.handleFileInputKey(msg.String())
		case ModeConfirm:
			return m.handleConfirmKey(msg.String())
		}
		return m.handleNormalKey(msg.String())
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.help || m.mode != ModeNormal {
		return m, nil
	}

	mx, my, inside := m.mouseToSurface(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.mouseDown = true
			m.errorMessage = ""
			m.successMessage = ""
			m.sketch.Pointer(PointerEvent{Phase: PointerDown, X: mx, Y: my})
		}
	case tea.MouseActionMotion:
		if m.mouseDown {
			m.sketch.Pointer(PointerEvent{Phase: PointerMove, X: mx, Y: my})
		}
	case tea.MouseActionRelease:
		if m.mouseDown {
			m.mouseDown = false
			m.sketch.Pointer(PointerEvent{Phase: PointerUp, X: mx, Y: my})
		}
	}
	return m, nil
}

// mouseToSurface maps a terminal cell to the center of the matching plot
// cell in micro-pixel surface coordinates, clamped to the surface bounds.
func (m *model) mouseToSurface(cx, cy int) (float64, float64, bool) {
	px := cx
	py := cy - 1 // title row
	inside := px >= 0 && px < m.plotWidth() && py >= 0 && py < m.plotHeight()
	if px < 0 {
		px = 0
	}
	if py < 0 {
		py = 0
	}
	if px >= m.plotWidth() {
		px = m.plotWidth() - 1
	}
	if py >= m.plotHeight() {
		py = m.plotHeight() - 1
	}
	c := cellCenter(px, py)
	return c.X, c.Y, inside
}

func (m model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		maxScroll := len(helpText()) - (m.height - 1)
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmReset:
			m.sketch.Reset()
			m.anchorSet = false
			m.successMessage = "sketch cleared"
		case ConfirmQuit:
			return m, tea.Quit
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleFileInputKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		filename := strings.TrimSpace(m.filename)
		if filename == "" {
			m.errorMessage = "filename required"
			m.mode = ModeNormal
			return m, nil
		}
		var err error
		switch m.fileOp {
		case FileOpSavePNG:
			if !strings.HasSuffix(filename, ".png") {
				filename += ".png"
			}
			err = exportPNG(m.sketch, m.config.GetSavePath(filename))
		case FileOpSaveText:
			if !strings.HasSuffix(filename, ".txt") {
				filename += ".txt"
			}
			err = exportText(m.sketch, m.config.GetSavePath(filename))
		}
		if err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "saved " + filename
		}
		m.mode = ModeNormal
	case "esc":
		m.mode = ModeNormal
	case "backspace":
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
	default:
		if len(key) == 1 {
			m.filename += key
		}
	}
	return m, nil
}

func (m model) handleNormalKey(key string) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c", "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "1":
		m.sketch.SetShape(ShapeLine)
	case "2":
		m.sketch.SetShape(ShapeExponential)
	case "3":
		m.sketch.SetShape(ShapeParabola)
	case "0":
		m.sketch.SetShape(ShapeNone)
	case "u":
		if canUndo, _, _ := m.sketch.Flags(); canUndo {
			m.sketch.Undo()
		} else {
			m.errorMessage = "nothing to undo"
		}
	case "U":
		if _, canRedo, _ := m.sketch.Flags(); canRedo {
			m.sketch.Redo()
		} else {
			m.errorMessage = "nothing to redo"
		}
	case "R":
		if _, _, canReset := m.sketch.Flags(); !canReset {
			m.errorMessage = "nothing to clear"
		} else if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmReset
		} else {
			m.sketch.Reset()
			m.anchorSet = false
			m.successMessage = "sketch cleared"
		}
	case "S":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		m.filename = ""
	case "T":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveText
		m.filename = ""
	case "y":
		if err := yankSketch(m.sketch); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "copied to clipboard"
		}
	case " ", "enter":
		if !m.anchorSet {
			m.anchorSet = true
			m.anchorX = m.cursorX
			m.anchorY = m.cursorY
		} else {
			committed := m.commitAnchoredSegment()
			m.anchorSet = false
			if !committed {
				m.errorMessage = "nothing drawn"
			}
		}
	case "o":
		if !m.placeMarkerAtCursor() {
			m.errorMessage = "marker not placed"
		}
	case "esc":
		m.anchorSet = false
	default:
		return m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	toolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.help {
		return m.renderHelp()
	}

	title := titleStyle.Render(" graphterm ") +
		dimStyle.Render("sketch on the -10..10 plane · ? for help")

	lines := renderPlot(m.sketch, m.plotWidth(), m.plotHeight(),
		m.cursorX, m.cursorY, m.mode == ModeNormal,
		m.anchorSet, m.anchorX, m.anchorY)

	return title + "\n" + strings.Join(lines, "\n") + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		prompt := "export PNG to: "
		if m.fileOp == FileOpSaveText {
			prompt = "export text to: "
		}
		return prompt + m.filename + "█"
	case ModeConfirm:
		if m.confirmAction == ConfirmReset {
			return "clear the sketch? history is not recoverable (y/n)"
		}
		return "quit? (y/n)"
	}

	canUndo, canRedo, canReset := m.sketch.Flags()
	parts := []string{toolStyle.Render("tool: " + m.sketch.Shape().String())}
	if m.anchorSet {
		c := cellCenter(m.anchorX, m.anchorY)
		p := m.sketch.Grid().SnapPoint(c.X, c.Y)
		parts = append(parts, fmt.Sprintf("anchor (%d,%d), space to draw", p.X, p.Y))
	}
	if canUndo {
		parts = append(parts, "u undo")
	}
	if canRedo {
		parts = append(parts, "U redo")
	}
	if canReset {
		parts = append(parts, "R clear")
	}

	status := dimStyle.Render(strings.Join(parts, "  "))
	if m.errorMessage != "" {
		status += "  " + errStyle.Render(m.errorMessage)
	} else if m.successMessage != "" {
		status += "  " + okStyle.Render(m.successMessage)
	}
	return status
}

func helpText() []string {
	return []string{
		"graphterm Help",
		"==============",
		"",
		"Draw piecewise-function sketches on a fixed -10..10 grid.",
		"Everything you draw snaps to integer grid intersections.",
		"",
		"Tools:",
		"------",
		"  1                Line segment",
		"  2                Exponential-rise curve",
		"  3                Parabola (first point is the vertex)",
		"  0                No tool (markers only)",
		"",
		"Mouse:",
		"------",
		"  drag             Draw a segment with the selected tool",
		"  short vertical flick",
		"                   Place an open-circle marker (excluded endpoint)",
		"",
		"Keyboard drawing:",
		"-----------------",
		"  h/←/j/↓/k/↑/l/→  Move the cursor (Shift for 2x speed)",
		"  Space/Enter      Set the anchor, then draw anchor -> cursor",
		"  o                Place an open-circle marker at the cursor",
		"  Esc              Drop the anchor without drawing",
		"",
		"History:",
		"--------",
		"  u                Undo",
		"  U                Redo (new edits discard the redo tail)",
		"  R                Clear the sketch (not undoable)",
		"",
		"Export:",
		"-------",
		"  S                Save as PNG",
		"  T                Save as plain text",
		"  y                Copy the sketch as text to the clipboard",
		"",
		"General:",
		"--------",
		"  ?                Toggle this help screen (j/k to scroll)",
		"  q/Ctrl+C         Quit",
	}
}

func (m model) renderHelp() string {
	lines := helpText()
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[start:end], "\n")
	return body + "\n" + dimStyle.Render("j/k scroll · esc close")
}
