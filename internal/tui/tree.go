package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"epicview/internal/tui/view"
	"epicview/internal/workqueue"
)

// Tree holds the interactive state of the epic/feature/task hierarchy: the
// current snapshot, the expand/collapse sets, and the cursor. Rendering is
// delegated to the view package; Tree only decides what is visible.
type Tree struct {
	snapshot *workqueue.Snapshot

	// Presence in these sets means expanded. Entries survive their parent
	// collapsing, so re-expanding a parent restores each child to the state
	// it had before.
	expandedEpics    map[string]bool
	expandedFeatures map[string]bool

	cursor int // index into the visible row slice
	offset int // first visible row in the viewport
	width  int
	height int

	showDescriptions bool

	epicBar    progress.Model
	featureBar progress.Model
}

// NewTree creates a tree over the given snapshot with every node expanded.
func NewTree(snap *workqueue.Snapshot) *Tree {
	t := &Tree{
		expandedEpics:    make(map[string]bool),
		expandedFeatures: make(map[string]bool),
		showDescriptions: true,
		epicBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(24),
		),
		featureBar: progress.New(
			progress.WithSolidFill("#60A5FA"),
			progress.WithWidth(16),
		),
	}
	t.SetSnapshot(snap)
	return t
}

// SetSnapshot replaces the tree's data. Expand state is preserved for IDs
// that survive the replacement; nodes new to this snapshot start expanded,
// and state for IDs that disappeared is dropped.
func (t *Tree) SetSnapshot(snap *workqueue.Snapshot) {
	epics := make(map[string]bool)
	features := make(map[string]bool)
	if snap != nil {
		for _, e := range snap.Epics {
			if prev, seen := t.expandedEpics[e.ID]; seen {
				epics[e.ID] = prev
			} else {
				epics[e.ID] = true
			}
			for _, f := range e.Features {
				if prev, seen := t.expandedFeatures[f.ID]; seen {
					features[f.ID] = prev
				} else {
					features[f.ID] = true
				}
			}
		}
	}
	t.snapshot = snap
	t.expandedEpics = epics
	t.expandedFeatures = features
	t.clampCursor()
}

// Snapshot returns the tree's current data.
func (t *Tree) Snapshot() *workqueue.Snapshot {
	return t.snapshot
}

// SetSize updates the viewport dimensions.
func (t *Tree) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.ensureVisible()
}

// ToggleDescriptions flips whether epic descriptions are rendered.
func (t *Tree) ToggleDescriptions() {
	t.showDescriptions = !t.showDescriptions
}

// EpicExpanded reports whether the epic with the given ID is expanded.
func (t *Tree) EpicExpanded(id string) bool {
	return t.expandedEpics[id]
}

// FeatureExpanded reports whether the feature with the given ID is expanded.
func (t *Tree) FeatureExpanded(id string) bool {
	return t.expandedFeatures[id]
}

// VisibleRows returns the rows currently visible under the expand state.
func (t *Tree) VisibleRows() []view.Row {
	return view.FlattenRows(t.snapshot, t.expandedEpics, t.expandedFeatures)
}

// CursorRow returns the row under the cursor, or false when the tree is empty.
func (t *Tree) CursorRow() (view.Row, bool) {
	rows := t.VisibleRows()
	if len(rows) == 0 {
		return view.Row{}, false
	}
	if t.cursor >= len(rows) {
		return rows[len(rows)-1], true
	}
	return rows[t.cursor], true
}

// MoveCursor moves the cursor by delta rows, clamped to the visible range.
func (t *Tree) MoveCursor(delta int) {
	rows := t.VisibleRows()
	if len(rows) == 0 {
		t.cursor = 0
		return
	}
	t.cursor += delta
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	t.ensureVisible()
}

// CursorToTop moves the cursor to the first row.
func (t *Tree) CursorToTop() {
	t.cursor = 0
	t.offset = 0
}

// CursorToBottom moves the cursor to the last row.
func (t *Tree) CursorToBottom() {
	rows := t.VisibleRows()
	if len(rows) == 0 {
		t.cursor = 0
		return
	}
	t.cursor = len(rows) - 1
	t.ensureVisible()
}

// HalfPage moves the cursor by half the viewport height in the given
// direction (-1 up, +1 down).
func (t *Tree) HalfPage(dir int) {
	step := t.height / 2
	if step < 1 {
		step = 1
	}
	t.MoveCursor(dir * step)
}

// Activate applies the click/enter action to the row under the cursor.
// Epic and feature rows toggle their expand state; task rows return the
// task so the caller can notify its selection callback. Notice rows are
// inert. Exactly one of these happens per call.
func (t *Tree) Activate() (*workqueue.Task, bool) {
	row, ok := t.CursorRow()
	if !ok {
		return nil, false
	}
	switch row.Kind {
	case view.RowEpic:
		t.toggleEpic(row.Epic.ID)
	case view.RowFeature:
		t.toggleFeature(row.Feature.ID)
	case view.RowTask:
		return row.Task, true
	}
	return nil, false
}

// ActivateAt moves the cursor to the given visible line and activates it.
// The line is viewport-relative; lines outside the viewport or past the last
// row are ignored, so clicks on the chrome below a scrolled tree never reach
// an off-screen node.
func (t *Tree) ActivateAt(line int) (*workqueue.Task, bool) {
	if line < 0 || (t.height > 0 && line >= t.height) {
		return nil, false
	}
	rows := t.VisibleRows()
	idx := t.offset + line
	if idx >= len(rows) {
		return nil, false
	}
	t.cursor = idx
	return t.Activate()
}

// Collapse collapses the node under the cursor. On a task row, or on an
// already collapsed feature, the cursor jumps to the parent instead so
// repeated presses walk up the hierarchy.
func (t *Tree) Collapse() {
	row, ok := t.CursorRow()
	if !ok {
		return
	}
	switch row.Kind {
	case view.RowEpic:
		t.expandedEpics[row.Epic.ID] = false
	case view.RowFeature:
		if t.expandedFeatures[row.Feature.ID] {
			t.expandedFeatures[row.Feature.ID] = false
		} else {
			t.cursorTo(view.RowEpic, row.Epic.ID)
		}
	case view.RowTask:
		t.cursorTo(view.RowFeature, row.Feature.ID)
	case view.RowNoFeatures:
		t.cursorTo(view.RowEpic, row.Epic.ID)
	}
	t.clampCursor()
}

// Expand expands the node under the cursor. Task rows are unaffected.
func (t *Tree) Expand() {
	row, ok := t.CursorRow()
	if !ok {
		return
	}
	switch row.Kind {
	case view.RowEpic:
		t.expandedEpics[row.Epic.ID] = true
	case view.RowFeature:
		t.expandedFeatures[row.Feature.ID] = true
	}
}

// ExpandAll expands every epic and feature.
func (t *Tree) ExpandAll() {
	if t.snapshot == nil {
		return
	}
	for _, e := range t.snapshot.Epics {
		t.expandedEpics[e.ID] = true
		for _, f := range e.Features {
			t.expandedFeatures[f.ID] = true
		}
	}
}

// CollapseAll collapses every epic and feature and resets the cursor to the
// epic that contained it.
func (t *Tree) CollapseAll() {
	row, hadRow := t.CursorRow()
	for id := range t.expandedEpics {
		t.expandedEpics[id] = false
	}
	for id := range t.expandedFeatures {
		t.expandedFeatures[id] = false
	}
	if hadRow {
		t.cursorTo(view.RowEpic, row.Epic.ID)
	}
	t.clampCursor()
}

// View renders the visible portion of the tree.
func (t *Tree) View() string {
	rows := t.VisibleRows()
	if len(rows) == 0 {
		return view.RenderEmptyState()
	}

	start := t.offset
	if start > len(rows) {
		start = len(rows)
	}
	end := len(rows)
	if t.height > 0 && start+t.height < end {
		end = start + t.height
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(t.renderRow(rows[i], i == t.cursor))
	}
	return b.String()
}

func (t *Tree) renderRow(row view.Row, selected bool) string {
	switch row.Kind {
	case view.RowEpic:
		e := *row.Epic
		if !t.showDescriptions {
			e.Description = ""
		}
		bar := " " + t.epicBar.ViewAs(float64(view.EpicPercent(e))/100)
		return view.RenderEpicRow(&e, t.expandedEpics[e.ID], selected, bar)
	case view.RowFeature:
		f := row.Feature
		bar := " " + t.featureBar.ViewAs(float64(view.FeaturePercent(*f))/100)
		return view.RenderFeatureRow(f, t.expandedFeatures[f.ID], selected, bar)
	case view.RowTask:
		return view.RenderTaskRow(row.Task, selected)
	case view.RowNoFeatures:
		return view.RenderNoFeatures()
	}
	return ""
}

// cursorTo moves the cursor to the visible row of the given kind and ID.
func (t *Tree) cursorTo(kind view.RowKind, id string) {
	for i, row := range t.VisibleRows() {
		switch {
		case kind == view.RowEpic && row.Kind == view.RowEpic && row.Epic.ID == id,
			kind == view.RowFeature && row.Kind == view.RowFeature && row.Feature.ID == id:
			t.cursor = i
			t.ensureVisible()
			return
		}
	}
}

func (t *Tree) toggleEpic(id string) {
	t.expandedEpics[id] = !t.expandedEpics[id]
	t.clampCursor()
}

func (t *Tree) toggleFeature(id string) {
	t.expandedFeatures[id] = !t.expandedFeatures[id]
	t.clampCursor()
}

// clampCursor keeps the cursor inside the visible row range after the set
// of visible rows shrinks.
func (t *Tree) clampCursor() {
	rows := t.VisibleRows()
	if len(rows) == 0 {
		t.cursor = 0
		t.offset = 0
		return
	}
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	t.ensureVisible()
}

// ensureVisible scrolls the viewport so the cursor row stays on screen.
func (t *Tree) ensureVisible() {
	if t.height <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.height {
		t.offset = t.cursor - t.height + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}
