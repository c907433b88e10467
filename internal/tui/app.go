// Package tui implements the epicview terminal dashboard: a Bubble Tea
// model wrapping the tree widget with a header, status bar, help overlay,
// and live snapshot reloads.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"epicview/internal/logging"
	"epicview/internal/tui/keymap"
	"epicview/internal/tui/styles"
	"epicview/internal/workqueue"
)

// snapshotMsg carries a reloaded snapshot from the file watcher.
type snapshotMsg struct {
	snap *workqueue.Snapshot
}

// watchErrMsg carries a reload failure from the file watcher.
type watchErrMsg struct {
	err error
}

// reloadMsg is the result of a manual reload.
type reloadMsg struct {
	snap *workqueue.Snapshot
	err  error
}

// Options configures the App.
type Options struct {
	// Provider supplies snapshots for manual reloads. Required.
	Provider workqueue.Provider

	// Watcher, when set, delivers snapshots as the backing file changes.
	Watcher *workqueue.Watcher

	// Logger receives structured events. Nil means no logging.
	Logger *logging.Logger

	// ShowDescriptions controls whether epic descriptions render initially.
	ShowDescriptions bool

	// OnTaskSelect is invoked exactly once per task activation, whether the
	// task was clicked or selected with the keyboard.
	OnTaskSelect func(workqueue.Task)
}

// App is the top-level Bubble Tea model.
type App struct {
	tree *Tree
	keys *keymap.Keymap
	mode keymap.Mode

	provider workqueue.Provider
	watcher  *workqueue.Watcher
	log      *logging.Logger

	onTaskSelect func(workqueue.Task)

	width  int
	height int

	selected *workqueue.Task // last activated task, shown in the status bar
	loadErr  string
	quitting bool
}

// NewApp creates the dashboard model over an initial snapshot.
func NewApp(snap *workqueue.Snapshot, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger()
	}

	tree := NewTree(snap)
	if !opts.ShowDescriptions {
		tree.ToggleDescriptions()
	}

	return &App{
		tree:         tree,
		keys:         keymap.DefaultKeymap(),
		mode:         keymap.ModeNormal,
		provider:     opts.Provider,
		watcher:      opts.Watcher,
		log:          log.WithComponent("tui"),
		onTaskSelect: opts.OnTaskSelect,
	}
}

// Tree exposes the underlying widget, primarily for tests.
func (a *App) Tree() *Tree {
	return a.tree
}

// SelectedTask returns the most recently activated task, if any.
func (a *App) SelectedTask() *workqueue.Task {
	return a.selected
}

// Init starts listening for watcher deliveries.
func (a *App) Init() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return tea.Batch(a.waitForSnapshot(), a.waitForWatchErr())
}

// waitForSnapshot blocks on the watcher's snapshot channel.
func (a *App) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-a.watcher.Snapshots()
		if !ok {
			return nil
		}
		return snapshotMsg{snap: snap}
	}
}

// waitForWatchErr blocks on the watcher's error channel.
func (a *App) waitForWatchErr() tea.Cmd {
	return func() tea.Msg {
		err, ok := <-a.watcher.Errors()
		if !ok {
			return nil
		}
		return watchErrMsg{err: err}
	}
}

// reload fetches a fresh snapshot from the provider.
func (a *App) reload() tea.Cmd {
	return func() tea.Msg {
		snap, err := a.provider.Snapshot()
		return reloadMsg{snap: snap, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tree.SetSize(msg.Width, a.treeHeight())
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case snapshotMsg:
		epics, features, tasks := msg.snap.Counts()
		a.log.Info("snapshot reloaded", "epics", epics, "features", features, "tasks", tasks)
		a.tree.SetSnapshot(msg.snap)
		a.loadErr = ""
		return a, a.waitForSnapshot()

	case watchErrMsg:
		a.log.Warn("snapshot reload failed", "error", msg.err.Error())
		a.loadErr = msg.err.Error()
		return a, a.waitForWatchErr()

	case reloadMsg:
		if msg.err != nil {
			a.log.Warn("manual reload failed", "error", msg.err.Error())
			a.loadErr = msg.err.Error()
			return a, nil
		}
		a.tree.SetSnapshot(msg.snap)
		a.loadErr = ""
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := a.keys.GetBinding(msg, a.mode)
	if !ok {
		return a, nil
	}

	switch cmd {
	case keymap.CmdCloseHelp:
		a.mode = keymap.ModeNormal
	case keymap.CmdToggleHelp:
		a.mode = keymap.ModeHelp
	case keymap.CmdCursorUp:
		a.tree.MoveCursor(-1)
	case keymap.CmdCursorDown:
		a.tree.MoveCursor(1)
	case keymap.CmdCursorTop:
		a.tree.CursorToTop()
	case keymap.CmdCursorBottom:
		a.tree.CursorToBottom()
	case keymap.CmdHalfPageUp:
		a.tree.HalfPage(-1)
	case keymap.CmdHalfPageDown:
		a.tree.HalfPage(1)
	case keymap.CmdActivate:
		if task, ok := a.tree.Activate(); ok {
			a.selectTask(*task)
		}
	case keymap.CmdCollapse:
		a.tree.Collapse()
	case keymap.CmdExpand:
		a.tree.Expand()
	case keymap.CmdExpandAll:
		a.tree.ExpandAll()
	case keymap.CmdCollapseAll:
		a.tree.CollapseAll()
	case keymap.CmdToggleDescriptions:
		a.tree.ToggleDescriptions()
	case keymap.CmdReload:
		return a, a.reload()
	case keymap.CmdQuit:
		a.quitting = true
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.tree.MoveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.tree.MoveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || a.mode != keymap.ModeNormal {
			return a, nil
		}
		line := msg.Y - a.headerHeight()
		if line < 0 {
			return a, nil
		}
		if task, ok := a.tree.ActivateAt(line); ok {
			a.selectTask(*task)
		}
	}
	return a, nil
}

// selectTask is the single path for task activation, keyboard or mouse.
func (a *App) selectTask(task workqueue.Task) {
	a.selected = &task
	a.log.Info("task selected", "task_id", task.ID, "status", string(task.Status))
	if a.onTaskSelect != nil {
		a.onTaskSelect(task)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n")
	if a.mode == keymap.ModeHelp {
		b.WriteString(a.helpView())
	} else {
		b.WriteString(a.tree.View())
	}
	b.WriteString("\n")
	b.WriteString(a.statusView())
	b.WriteString("\n")
	b.WriteString(a.footerView())
	return b.String()
}

func (a *App) headerView() string {
	epics, features, tasks := a.tree.Snapshot().Counts()
	counts := styles.Subtitle.Render(fmt.Sprintf("%d epics, %d features, %d tasks", epics, features, tasks))
	return styles.Header.Render("Epic Dashboard  " + counts)
}

// headerHeight is the number of terminal lines above the tree, used to map
// mouse clicks onto tree rows.
func (a *App) headerHeight() int {
	return lipgloss.Height(a.headerView())
}

// treeHeight is the viewport height left for the tree after the header,
// status bar, and footer.
func (a *App) treeHeight() int {
	h := a.height - a.headerHeight() - 1 - lipgloss.Height(a.footerView())
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) statusView() string {
	if a.loadErr != "" {
		return styles.ErrorMsg.Render("reload failed: " + a.loadErr)
	}
	if a.selected == nil {
		return styles.StatusBar.Render("no task selected")
	}
	t := a.selected
	detail := fmt.Sprintf("%s  %s  [%s]  retries %d/%d",
		t.ID, t.Description, t.Status, t.RetriesUsed, t.RetryBudget)
	return styles.StatusBar.Render(detail)
}

func (a *App) footerView() string {
	return styles.HelpBar.Render("j/k move  enter toggle/select  E/C expand/collapse all  r reload  ? help  q quit")
}

func (a *App) helpView() string {
	var b strings.Builder
	b.WriteString(styles.Primary.Bold(true).Render("epicview help"))
	b.WriteString("\n\n")

	for _, category := range a.keys.GetCategories(keymap.ModeNormal) {
		b.WriteString(styles.Primary.Render("▸ " + category))
		b.WriteString("\n")
		for _, binding := range a.keys.GetBindingsByCategory(keymap.ModeNormal)[category] {
			b.WriteString(fmt.Sprintf("    %-12s %s\n",
				binding.String(), styles.Muted.Render(binding.Description)))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Muted.Render("press ? or esc to close"))
	return b.String()
}
