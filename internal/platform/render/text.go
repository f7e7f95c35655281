package render

import (
	"fmt"
	"io"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// TextRenderer writes every snapshot as a plain-text frame.
// It satisfies scheduler.Renderer.
type TextRenderer struct {
	w      io.Writer
	screen *core.Screen
	err    error
}

// NewTextRenderer creates a renderer sized for a board of tileCount cells.
func NewTextRenderer(w io.Writer, tileCount int) *TextRenderer {
	width, height := MinSize(tileCount)
	return &TextRenderer{
		w:      w,
		screen: core.NewScreen(max(width, 64), height+1), // room for the HUD separator
	}
}

// Render draws snap and writes the frame followed by a blank line.
// After the first write error all further frames are dropped.
func (r *TextRenderer) Render(snap snake.Snapshot) {
	if r.err != nil {
		return
	}
	Board(r.screen, snap)
	if _, err := fmt.Fprintf(r.w, "%s\n\n", r.screen.String()); err != nil {
		r.err = fmt.Errorf("render: write frame: %w", err)
	}
}

// Err returns the first write error, if any.
func (r *TextRenderer) Err() error {
	return r.err
}
