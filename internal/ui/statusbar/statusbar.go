package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/emilhart/crouton/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given width and styles
func New(width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// App badge
	badge := sb.styles.StatusMode.Render(" CROUTON ")

	// Keybinding hints
	hints := GetHints()
	hintsRendered := sb.styles.StatusHint.Render(hints)

	// Combine badge and hints with separator
	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, hintsRendered)
	} else {
		content = badge
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
