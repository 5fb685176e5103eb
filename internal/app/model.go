// Package app contains the demo application model: the "owner" side of
// the toast contract. It decides when a toast is mounted, routes
// messages to it while mounted, and drops it once the toast's dismissal
// callback fires.
package app

import (
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilhart/crouton/internal/config"
	"github.com/emilhart/crouton/internal/debug"
	"github.com/emilhart/crouton/internal/types"
	"github.com/emilhart/crouton/internal/ui/statusbar"
	"github.com/emilhart/crouton/internal/ui/styles"
	"github.com/emilhart/crouton/internal/ui/toast"
)

// activeToast holds the mounted toast together with its removal flag.
// The dismissal callback closes over the holder, so removal stays
// idempotent however many times the callback fires.
type activeToast struct {
	toast     toast.Model
	dismissed bool
}

// Model is the root TEA model for the demo
type Model struct {
	width  int
	height int
	cfg    *config.Config
	styles *styles.Styles
	active *activeToast
}

// New creates the demo model with the given configuration
func New(cfg *config.Config) Model {
	return Model{
		cfg:    cfg,
		styles: styles.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.active != nil {
			m.active.toast.SetWidth(msg.Width)
		}
		return m, nil

	case timer.TickMsg, timer.TimeoutMsg:
		return m.routeToToast(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "e":
			return m.showToast(m.cfg.Demo.ErrorMessage, types.VariantError)

		case "i":
			return m.showToast(m.cfg.Demo.InfoMessage, types.VariantInfo)

		case "r":
			return m.rebindToast()

		default:
			// Dismiss keys belong to the toast itself
			return m.routeToToast(msg)
		}
	}

	return m, nil
}

// showToast mounts a fresh toast, replacing any current one. Countdown
// messages from a replaced toast carry a stale identity and are ignored
// by the new instance.
func (m Model) showToast(message string, variant types.Variant) (tea.Model, tea.Cmd) {
	a := &activeToast{}
	a.toast = toast.New(message, variant, func() { a.dismissed = true })
	if m.width > 0 {
		a.toast.SetWidth(m.width)
	}
	m.active = a
	debug.Logf("toast shown: variant=%s message=%q id=%d", variant, message, a.toast.ID())
	return m, a.toast.Init()
}

// rebindToast swaps the active toast's callback for a fresh one, which
// restarts its countdown.
func (m Model) rebindToast() (tea.Model, tea.Cmd) {
	a := m.active
	if a == nil {
		return m, nil
	}
	cmd := a.toast.SetOnDismiss(func() { a.dismissed = true })
	debug.Logf("toast rebound: id=%d", a.toast.ID())
	return m, cmd
}

func (m Model) routeToToast(msg tea.Msg) (tea.Model, tea.Cmd) {
	a := m.active
	if a == nil {
		return m, nil
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)

	if a.dismissed {
		// Unmount synchronously: stop rendering and stop routing, which
		// is what cancels the pending countdown.
		m.active = nil
		debug.Logf("toast dismissed: id=%d", a.toast.ID())
	}
	return m, cmd
}

// View renders the instruction panel, the status bar, and the active
// toast in the bottom-right corner above the status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	title := m.styles.Title.Render("crouton")
	lines := []string{
		title,
		m.styles.Key.Render("e") + m.styles.Body.Render("  show an error toast"),
		m.styles.Key.Render("i") + m.styles.Body.Render("  show an info toast"),
		m.styles.Key.Render("r") + m.styles.Body.Render("  rebind the dismissal callback (restarts the countdown)"),
		m.styles.Key.Render("x") + m.styles.Body.Render("  dismiss the visible toast"),
	}
	main := lipgloss.JoinVertical(lipgloss.Left, lines...)

	sb := statusbar.New(m.width, m.styles)
	statusBarView := sb.Render()

	var toastView string
	if m.active != nil {
		toastView = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.active.toast.View())
	}

	// Pin the toast and status bar to the bottom of the screen.
	contentHeight := m.height - lipgloss.Height(statusBarView) - lipgloss.Height(toastView)
	if toastView == "" {
		contentHeight = m.height - lipgloss.Height(statusBarView)
	}
	if contentHeight < 1 {
		contentHeight = 1
	}
	mainArea := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, main)

	if toastView != "" {
		return lipgloss.JoinVertical(lipgloss.Left, mainArea, toastView, statusBarView)
	}
	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusBarView)
}
