// Package view provides the pure rendering layer for the epicview tree.
//
// This package extracts rendering logic from the TUI model into focused,
// testable components: flattening the epic/feature/task hierarchy into
// visible rows under the current expand/collapse state, computing progress
// percentages, and rendering individual rows with lipgloss styling.
//
// Nothing here holds state or performs I/O; the Tree model in package tui
// owns the expanded-ID sets and calls into this package on every frame.
package view
