package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple (violet-400)
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray (brighter for readability)
	SurfaceColor = lipgloss.Color("#1F2937") // Dark surface
	TextColor    = lipgloss.Color("#F9FAFB") // Light text
	BorderColor  = lipgloss.Color("#6B7280") // Gray (gray-500)

	GreenColor = lipgloss.Color("#10B981") // Green
	RedColor   = lipgloss.Color("#F87171") // Red (red-400)
	BlueColor  = lipgloss.Color("#60A5FA") // Blue
	AmberColor = lipgloss.Color("#F59E0B") // Amber

	// Convenience styles for colors
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Text    = lipgloss.NewStyle().Foreground(TextColor)

	// Status colors - pending/in_progress/completed/blocked map to
	// gray/blue/green/red; anything unrecognized falls back to gray.
	StatusPending    = MutedColor
	StatusInProgress = BlueColor
	StatusCompleted  = GreenColor
	StatusBlocked    = RedColor

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Status badge styles
	StatusBadgeBase = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)

	// Priority badges: 0 is urgent, 1 is high, everything else neutral
	PriorityUrgent = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(RedColor).
			Padding(0, 1)

	PriorityHigh = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(AmberColor).
			Padding(0, 1)

	PriorityNormal = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	// Tree rows
	EpicRow = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	FeatureRow = lipgloss.NewStyle().
			Foreground(TextColor)

	TaskRow = lipgloss.NewStyle().
		Foreground(MutedColor)

	RowSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor)

	EpicDescription = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	RetryCounter = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Empty-state messaging
	EmptyState = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			Padding(1, 2)

	EmptySublist = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true)
)

// StatusColor returns the color for a given status. Unrecognized values get
// the neutral gray treatment rather than erroring.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "pending":
		return StatusPending
	case "in_progress":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	case "blocked":
		return StatusBlocked
	default:
		return MutedColor
	}
}

// StatusIcon returns the completion glyph for a given status. Tasks get a
// distinct done mark when completed and a neutral marker otherwise.
func StatusIcon(status string) string {
	switch status {
	case "completed":
		return "✓"
	case "blocked":
		return "✗"
	case "in_progress":
		return "●"
	default:
		return "○"
	}
}

// StatusBadge renders the padded, color-coded badge for a status. The same
// treatment applies whether the status belongs to an epic, feature, or task.
func StatusBadge(status string) string {
	return StatusBadgeBase.Foreground(StatusColor(status)).Render(status)
}

// PriorityBadge renders the badge for a feature priority. Priority 0 is the
// high-visibility urgent treatment, 1 the secondary treatment, and all other
// values share the neutral default.
func PriorityBadge(priority int) string {
	switch priority {
	case 0:
		return PriorityUrgent.Render("P0")
	case 1:
		return PriorityHigh.Render("P1")
	default:
		return PriorityNormal.Render("P" + strconv.Itoa(priority))
	}
}
