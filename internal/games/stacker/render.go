package stacker

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tower/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	MovingChar = '▓'
	GoalChar   = '┄'
	WallChar   = '│'
)

// debrisChars are picked by rotation so falling pieces appear to tumble.
var debrisChars = []rune{'▒', '░', '▚', '▞'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()
	vp := g.viewport(dst, snap)

	g.renderWalls(dst, vp)
	g.renderGoal(dst, vp, snap)

	for i, b := range snap.Tower {
		drawBlock(dst, vp, b, BlockChar, core.PaletteColor(i))
	}
	if snap.Moving != nil {
		drawBlock(dst, vp, snap.Moving.Block, MovingChar, core.PaletteColor(len(snap.Tower)))
	}
	for _, d := range snap.Debris {
		drawBlock(dst, vp, d.Block, debrisChar(d.Rotation), core.ColorGray)
	}

	g.renderHUD(dst, snap)
	g.renderOverlays(dst, snap)
}

// viewport fits the playfield into the rows below the HUD, keeping its
// aspect ratio and centering it horizontally.
func (g *Game) viewport(dst *core.Screen, snap Snapshot) core.Viewport {
	rows := dst.Height() - hudRows
	aspect := g.cfg.Playfield.CellAspect
	if aspect <= 0 {
		aspect = 2
	}

	cols := dst.Width()
	if snap.Height > 0 {
		cols = int(math.Round(snap.Width / snap.Height * float64(rows) * aspect))
		cols = core.Clamp(cols, 1, dst.Width())
	}

	x := (dst.Width() - cols) / 2
	return core.NewViewport(core.NewRect(x, hudRows, cols, rows), snap.Width, snap.Height)
}

// drawBlock fills the cells a block covers, clipped to the playfield.
func drawBlock(dst *core.Screen, vp core.Viewport, b Block, r rune, c core.Color) {
	cells := clip(vp.Cells(b.Left(), b.Top(), b.Right(), b.Bottom()), vp.Area)
	if cells.Empty() {
		return
	}
	dst.DrawRectColored(cells, r, c)
}

// clip returns the part of r inside area.
func clip(r, area core.Rect) core.Rect {
	x0 := core.Max(r.X, area.X)
	y0 := core.Max(r.Y, area.Y)
	x1 := core.Min(r.Right(), area.Right())
	y1 := core.Min(r.Bottom(), area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func debrisChar(rotation float64) rune {
	quarter := int(math.Floor(rotation / (math.Pi / 4)))
	n := len(debrisChars)
	return debrisChars[((quarter%n)+n)%n]
}

// renderWalls draws the playfield edges when there is room beside it.
func (g *Game) renderWalls(dst *core.Screen, vp core.Viewport) {
	if vp.Area.X > 0 {
		dst.DrawVLine(vp.Area.X-1, vp.Area.Y, vp.Area.H, WallChar)
	}
	if vp.Area.Right() < dst.Width() {
		dst.DrawVLine(vp.Area.Right(), vp.Area.Y, vp.Area.H, WallChar)
	}
}

// renderGoal draws the goal line in goal mode.
func (g *Game) renderGoal(dst *core.Screen, vp core.Viewport, snap Snapshot) {
	if snap.GoalY == nil {
		return
	}
	row := vp.Row(*snap.GoalY)
	if row < vp.Area.Y || row >= vp.Area.Bottom() {
		return
	}
	dst.DrawHLineColored(vp.Area.X, row, vp.Area.W, GoalChar, core.ColorBrightYellow)
	dst.DrawTextColored(vp.Area.X, row, "GOAL", core.ColorBrightYellow)
}

// renderHUD draws score, best score and difficulty.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.BestScore)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	if snap.Difficulty != "" {
		right := fmt.Sprintf(" %s ", snap.Difficulty.Title())
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right), 0, right, core.ColorCyan)
	}
}

// renderOverlays draws the countdown, pause and end-of-game messages.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot) {
	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.CountdownValue != nil:
		text := "GO!"
		if *snap.CountdownValue > 0 {
			text = fmt.Sprintf("%d", *snap.CountdownValue)
		}
		dst.DrawTextCenteredColored(dst.Height()/2, text, core.ColorBrightYellow)
	case snap.Phase == PhaseWon:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  R restart  B menu", snap.Score))
	case snap.Phase == PhaseLost:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  B menu", snap.Score))
	case snap.Phase == PhaseIdle:
		g.drawCenteredMessage(dst, "TOWER", "Press B to return to the menu")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCenteredColored(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}
