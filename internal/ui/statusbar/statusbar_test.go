package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/emilhart/crouton/internal/ui/styles"
)

func TestStatusBar_Render(t *testing.T) {
	sb := New(80, styles.New())

	rendered := sb.Render()

	if rendered == "" {
		t.Fatal("expected a rendered status bar")
	}
	if !strings.Contains(rendered, "CROUTON") {
		t.Error("expected the app badge")
	}
	if !strings.Contains(rendered, "dismiss") {
		t.Error("expected the dismiss hint")
	}
}

func TestStatusBar_FillsWidth(t *testing.T) {
	for _, width := range []int{40, 80, 120} {
		sb := New(width, styles.New())
		if got := lipgloss.Width(sb.Render()); got != width {
			t.Errorf("width %d: rendered %d cells", width, got)
		}
	}
}

func TestGetHints(t *testing.T) {
	hints := GetHints()

	for _, want := range []string{"e:", "i:", "x:", "q:"} {
		if !strings.Contains(hints, want) {
			t.Errorf("expected hint %q in %q", want, hints)
		}
	}
}
