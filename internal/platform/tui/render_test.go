package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorWhite; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colorStyles has no entry for color %d", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Game", core.ColorRed)
	s.DrawText(5, 0, "Over", core.ColorWhite)
	s.DrawText(0, 1, "Score", core.ColorYellow)

	out := RenderScreen(s)
	for _, want := range []string{"Game", "Over", "Score"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("Row separator count mismatch: got %d, expected 1", got)
	}
}
