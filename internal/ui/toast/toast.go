// Package toast provides a transient notification banner for the TUI.
//
// A Toast is a leaf component: it renders a single message with a visual
// variant, counts down five seconds, and signals its owner through a
// dismissal callback. It holds no visibility state of its own — the
// owner decides when to stop rendering and routing messages to it.
package toast

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emilhart/crouton/internal/types"
	"github.com/emilhart/crouton/internal/ui/styles"
)

const (
	// Timeout is how long a toast stays up before it asks to be dismissed.
	Timeout = 5 * time.Second

	// tickInterval drives the visible [Ns] countdown.
	tickInterval = time.Second

	maxWidth = 40 // Cap maximum toast width
	minWidth = 20
)

// Model is a single toast notification.
type Model struct {
	message   string
	variant   types.Variant
	onDismiss func()

	timer  timer.Model
	fired  bool // onDismiss already invoked by the current countdown
	width  int
	styles *styles.Styles
}

// New creates a toast with the given message, variant, and dismissal
// callback. The countdown starts when the owner runs the command
// returned by Init.
func New(message string, variant types.Variant, onDismiss func()) Model {
	return Model{
		message:   message,
		variant:   variant,
		onDismiss: onDismiss,
		timer:     timer.NewWithInterval(Timeout, tickInterval),
		width:     maxWidth,
		styles:    styles.New(),
	}
}

// ID identifies the current countdown registration. Timer messages
// carrying any other identity are ignored, so an owner that replaced or
// dropped a toast never sees its callback fire from a stale countdown.
func (m Model) ID() int {
	return m.timer.ID()
}

// Init starts the auto-dismiss countdown.
func (m Model) Init() tea.Cmd {
	return m.timer.Init()
}

// SetWidth sizes the toast against the terminal width: a third of the
// screen, capped at maxWidth.
func (m *Model) SetWidth(termWidth int) {
	w := termWidth / 3
	if w > maxWidth {
		w = maxWidth
	}
	if w < minWidth {
		w = minWidth
	}
	m.width = w
}

// SetOnDismiss replaces the dismissal callback and restarts the
// countdown under a fresh identity. The previous countdown is dead from
// this point: its messages no longer match. The returned command must be
// run to start the new countdown.
func (m *Model) SetOnDismiss(onDismiss func()) tea.Cmd {
	m.onDismiss = onDismiss
	m.timer = timer.NewWithInterval(Timeout, tickInterval)
	m.fired = false
	return m.timer.Init()
}

// Update handles countdown ticks, the timeout, and the dismiss keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		// A stale countdown (replaced callback, or a previous toast the
		// owner already dropped) must never invoke anything.
		if msg.ID != m.timer.ID() || m.fired {
			return m, nil
		}
		m.fired = true
		m.onDismiss()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "x", "esc":
			// Manual dismissal fires immediately. The countdown keeps
			// running; the owner is expected to drop the toast in
			// response, which is what actually cancels it.
			m.onDismiss()
			return m, nil
		}
	}

	return m, nil
}

// View renders the message with the variant's styling, plus a dimmed
// remaining-seconds countdown and close glyph aligned to the right.
func (m Model) View() string {
	style := m.styles.ToastVariant(m.variant)

	remaining := int(m.timer.Timeout.Seconds())
	if remaining < 0 {
		remaining = 0
	}
	meta := m.styles.ToastMeta.Render(fmt.Sprintf("[%ds] ✕", remaining))

	// Right-align the countdown under the message.
	contentWidth := m.width - 2 // horizontal padding
	padding := contentWidth - lipgloss.Width(meta)
	if padding < 0 {
		padding = 0
	}
	content := m.message + "\n" + strings.Repeat(" ", padding) + meta

	return style.Width(m.width).Render(content)
}
