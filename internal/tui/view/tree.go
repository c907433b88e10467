package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"epicview/internal/tui/styles"
	"epicview/internal/workqueue"
)

// Empty-state messages shown instead of tree content.
const (
	EmptyStateMessage = "No work queue data available"
	NoFeaturesMessage = "No features in this epic"
)

// Expand/collapse indicators for collapsible rows.
const (
	IconExpanded  = "▼"
	IconCollapsed = "▶"
)

// RowKind identifies what a flattened row renders.
type RowKind int

const (
	RowEpic RowKind = iota
	RowFeature
	RowTask
	RowNoFeatures
)

// Row is one renderable line of the tree. Exactly one of Epic, Feature, or
// Task is set depending on Kind; Epic is also set for RowNoFeatures so the
// notice can be attributed to its parent.
type Row struct {
	Kind    RowKind
	Epic    *workqueue.Epic
	Feature *workqueue.Feature
	Task    *workqueue.Task
}

// FlattenRows converts the snapshot into the list of currently visible rows,
// respecting the expand/collapse state. A collapsed epic contributes only its
// own row; an expanded epic with no features contributes a notice row; a
// feature with no tasks contributes no task rows. Feature expansion entries
// survive their parent epic collapsing, so re-expanding the epic restores
// each feature to its prior state.
func FlattenRows(snap *workqueue.Snapshot, expandedEpics, expandedFeatures map[string]bool) []Row {
	if snap.Empty() {
		return nil
	}

	var rows []Row
	for i := range snap.Epics {
		epic := &snap.Epics[i]
		rows = append(rows, Row{Kind: RowEpic, Epic: epic})
		if !expandedEpics[epic.ID] {
			continue
		}
		if len(epic.Features) == 0 {
			rows = append(rows, Row{Kind: RowNoFeatures, Epic: epic})
			continue
		}
		for j := range epic.Features {
			feature := &epic.Features[j]
			rows = append(rows, Row{Kind: RowFeature, Epic: epic, Feature: feature})
			if !expandedFeatures[feature.ID] {
				continue
			}
			for k := range feature.Tasks {
				rows = append(rows, Row{Kind: RowTask, Epic: epic, Feature: feature, Task: &feature.Tasks[k]})
			}
		}
	}
	return rows
}

// RenderEmptyState renders the message shown when the snapshot has no epics.
func RenderEmptyState() string {
	return styles.EmptyState.Render(EmptyStateMessage)
}

// RenderNoFeatures renders the notice shown under an expanded epic that has
// no features.
func RenderNoFeatures() string {
	return "  " + styles.EmptySublist.Render(NoFeaturesMessage)
}

// RenderEpicRow renders an epic header line. The bar argument is the already
// rendered epic progress bar (the caller owns the bar model so this package
// stays stateless). Example: "▼ User Authentication [in_progress] ███░░ 33%".
func RenderEpicRow(e *workqueue.Epic, expanded, selected bool, bar string) string {
	indicator := IconExpanded
	if !expanded {
		indicator = IconCollapsed
	}

	nameStyle := styles.EpicRow
	if selected {
		nameStyle = styles.RowSelected
	}

	var b strings.Builder
	b.WriteString(styles.Muted.Render(indicator))
	b.WriteString(" ")
	b.WriteString(nameStyle.Render(e.Name))
	b.WriteString(" ")
	b.WriteString(styles.StatusBadge(string(e.Status)))
	b.WriteString(bar)
	if e.Description != "" {
		b.WriteString("  ")
		b.WriteString(styles.EpicDescription.Render(e.Description))
	}
	return b.String()
}

// RenderFeatureRow renders a feature header line, indented one level under
// its epic, with the priority badge between name and status.
func RenderFeatureRow(f *workqueue.Feature, expanded, selected bool, bar string) string {
	indicator := IconExpanded
	if !expanded {
		indicator = IconCollapsed
	}

	nameStyle := styles.FeatureRow
	if selected {
		nameStyle = styles.RowSelected
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(styles.Muted.Render(indicator))
	b.WriteString(" ")
	b.WriteString(nameStyle.Render(f.Name))
	b.WriteString(" ")
	b.WriteString(styles.PriorityBadge(f.Priority))
	b.WriteString(" ")
	b.WriteString(styles.StatusBadge(string(f.Status)))
	b.WriteString(bar)
	return b.String()
}

// RenderTaskRow renders a task line, indented two levels: completion glyph,
// description, retries_used/retry_budget counter, and status badge.
func RenderTaskRow(t *workqueue.Task, selected bool) string {
	descStyle := styles.TaskRow
	if selected {
		descStyle = styles.RowSelected
	}

	glyph := lipgloss.NewStyle().
		Foreground(styles.StatusColor(string(t.Status))).
		Render(styles.StatusIcon(string(t.Status)))

	var b strings.Builder
	b.WriteString("    ")
	b.WriteString(glyph)
	b.WriteString(" ")
	b.WriteString(descStyle.Render(t.Description))
	b.WriteString(" ")
	b.WriteString(styles.RetryCounter.Render(fmt.Sprintf("%d/%d", t.RetriesUsed, t.RetryBudget)))
	b.WriteString(" ")
	b.WriteString(styles.StatusBadge(string(t.Status)))
	return b.String()
}
