package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/emilhart/crouton/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Toasts
	ToastInfo  lipgloss.Style
	ToastError lipgloss.Style
	ToastMeta  lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Demo panel
	Title lipgloss.Style
	Body  lipgloss.Style
	Key   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Mantle).
			Foreground(Subtext0).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Background(Mantle).
			Foreground(Maroon).
			Padding(0, 1),

		// Countdown and close glyph are dimmed until the toast has focus,
		// which in a single-toast UI it always does once visible.
		ToastMeta: lipgloss.NewStyle().
			Foreground(Overlay0).
			Faint(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Title: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(Subtext0),

		Key: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),
	}
}

// ToastVariant returns the appropriate style for a toast variant
func (s *Styles) ToastVariant(variant types.Variant) lipgloss.Style {
	switch variant {
	case types.VariantError:
		return s.ToastError
	default:
		return s.ToastInfo
	}
}
