package main

// History is an append-only action log plus a cursor marking how many
// actions are active. Committing while part of the log is undone truncates
// the redo tail first: standard linear undo. The cursor always stays in
// [0, len(actions)].
type History struct {
	actions []Action
	cursor  int
}

func (h *History) Commit(a Action) {
	h.actions = append(h.actions[:h.cursor], a)
	h.cursor++
}

// Undo deactivates the most recent active action. No-op at the start.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo reactivates the next undone action. No-op at the end.
func (h *History) Redo() bool {
	if h.cursor == len(h.actions) {
		return false
	}
	h.cursor++
	return true
}

// Reset drops the whole log, redo tail included. Reset itself is not
// undoable.
func (h *History) Reset() {
	h.actions = nil
	h.cursor = 0
}

func (h *History) CanUndo() bool  { return h.cursor > 0 }
func (h *History) CanRedo() bool  { return h.cursor < len(h.actions) }
func (h *History) CanReset() bool { return len(h.actions) > 0 }

func (h *History) Len() int    { return len(h.actions) }
func (h *History) Cursor() int { return h.cursor }

// Visible folds the active prefix of the log into renderable state.
// Identical segments stack; markers dedup first-wins by coordinate, in
// commit order.
func (h *History) Visible() (segments []Segment, markers []Point) {
	for _, a := range h.actions[:h.cursor] {
		switch a.Type {
		case ActionSegment:
			segments = append(segments, a.Segment)
		case ActionMarker:
			dup := false
			for _, m := range markers {
				if m == a.Marker {
					dup = true
					break
				}
			}
			if !dup {
				markers = append(markers, a.Marker)
			}
		}
	}
	return segments, markers
}
