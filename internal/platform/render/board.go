// Package render draws snake snapshots into a core.Screen. It is shared by
// the terminal UI and the headless text front end.
package render

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

const (
	// HUDHeight is the number of rows above the board: the status line and
	// a separator. The separator is dropped when the screen is one row short.
	HUDHeight = 2
	// CellWidth is the number of columns per grid cell. Terminal cells are
	// roughly twice as tall as wide, so two columns keep the board square.
	CellWidth = 2
)

// Glyphs used on the board.
const (
	GlyphHead = '█'
	GlyphBody = '▓'
	GlyphFood = '●'
)

// Layout places the board on the screen.
type Layout struct {
	Board     core.Rect // Including the one-cell border
	Separator bool      // Whether the HUD separator row is drawn
	TooSmall  bool
}

// ComputeLayout centres a board of tileCount cells on a w x h screen.
func ComputeLayout(w, h, tileCount int) Layout {
	boardW := tileCount*CellWidth + 2
	boardH := tileCount + 2
	if w < boardW || h < boardH+HUDHeight-1 {
		return Layout{TooSmall: true}
	}

	hud := HUDHeight
	if h < boardH+HUDHeight {
		hud = HUDHeight - 1
	}
	return Layout{
		Board:     core.NewRect((w-boardW)/2, hud, boardW, boardH),
		Separator: hud == HUDHeight,
	}
}

// MinSize returns the smallest screen that fits a board of tileCount cells.
func MinSize(tileCount int) (w, h int) {
	return tileCount*CellWidth + 2, tileCount + 2 + HUDHeight - 1
}

// CellOrigin returns the screen position of the left column of grid cell p.
func (l Layout) CellOrigin(p snake.Point) (x, y int) {
	return l.Board.X + 1 + p.X*CellWidth, l.Board.Y + 1 + p.Y
}

// SwipeDelta scales a screen-space drag so both axes are measured in
// columns: a grid cell is CellWidth columns wide and one row tall.
func SwipeDelta(dx, dy int) (int, int) {
	return dx, dy * CellWidth
}

// Board draws the HUD, the board and any overlay for the snapshot.
func Board(dst *core.Screen, snap snake.Snapshot) {
	dst.Clear()
	layout := ComputeLayout(dst.Width(), dst.Height(), snap.TileCount)
	drawHUD(dst, snap, layout.Separator)

	if layout.TooSmall {
		w, h := MinSize(snap.TileCount)
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h), core.ColorBrightWhite)
		return
	}

	dst.DrawBox(layout.Board, core.ColorGray)

	if snap.HasFood() {
		fx, fy := layout.CellOrigin(snap.Food)
		dst.SetColored(fx, fy, GlyphFood, core.ColorOrange)
	}

	// Draw tail first so the head is never hidden.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		glyph, color := GlyphBody, core.ColorGreen
		if i == 0 {
			glyph, color = GlyphHead, core.ColorBrightGreen
		}
		sx, sy := layout.CellOrigin(snap.Body[i])
		for c := range CellWidth {
			dst.SetColored(sx+c, sy, glyph, color)
		}
	}

	switch snap.State {
	case snake.StateReady:
		drawOverlay(dst, "Snake", "Press Space to start", core.ColorBrightGreen)
	case snake.StateGameOver:
		drawOverlay(dst, "Game Over!", fmt.Sprintf("Score: %d  -  Space to play again", snap.Score), core.ColorRed)
	}
}

func drawHUD(dst *core.Screen, snap snake.Snapshot, separator bool) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Speed: %dms", snap.Score, len(snap.Body), snap.TickInterval.Milliseconds())
	if snap.State == snake.StateWaiting {
		hud += "  - press an arrow key"
	}
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)

	if !separator {
		return
	}
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string, titleColor core.Color) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, titleColor)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorYellow)
}
