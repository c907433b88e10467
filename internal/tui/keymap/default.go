package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default keymap configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default epicview key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeHelp:   defaultHelpBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Cursor movement
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdCursorTop, Description: "Go to top", Category: "Navigation"},
			{KeyType: tea.KeyHome, Command: CmdCursorTop, Description: "Go to top", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdCursorBottom, Description: "Go to bottom", Category: "Navigation"},
			{KeyType: tea.KeyEnd, Command: CmdCursorBottom, Description: "Go to bottom", Category: "Navigation"},
			{KeyType: tea.KeyCtrlU, Command: CmdHalfPageUp, Description: "Half page up", Category: "Navigation"},
			{KeyType: tea.KeyCtrlD, Command: CmdHalfPageDown, Description: "Half page down", Category: "Navigation"},

			// Tree manipulation
			{KeyType: tea.KeyEnter, Command: CmdActivate, Description: "Toggle node / select task", Category: "Tree"},
			{KeyType: tea.KeySpace, Command: CmdActivate, Description: "Toggle node / select task", Category: "Tree"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdCollapse, Description: "Collapse node", Category: "Tree"},
			{KeyType: tea.KeyLeft, Command: CmdCollapse, Description: "Collapse node", Category: "Tree"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdExpand, Description: "Expand node", Category: "Tree"},
			{KeyType: tea.KeyRight, Command: CmdExpand, Description: "Expand node", Category: "Tree"},
			{KeyType: tea.KeyRunes, Rune: 'E', Command: CmdExpandAll, Description: "Expand everything", Category: "Tree"},
			{KeyType: tea.KeyRunes, Rune: 'C', Command: CmdCollapseAll, Description: "Collapse everything", Category: "Tree"},

			// View toggles
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdToggleDescriptions, Description: "Toggle epic descriptions", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "View"},

			// Data
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdReload, Description: "Reload snapshot", Category: "Data"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdCloseHelp, Description: "Close help", Category: "Control"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdCloseHelp, Description: "Close help", Category: "Control"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdCloseHelp, Description: "Close help", Category: "Control"},
		},
	}
}
