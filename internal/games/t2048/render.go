package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Inner width of each cell
	cellHeight = 3 // Inner height of each cell
	hudHeight  = 3

	boardWidth  = BoardSize*(cellWidth+1) + 1
	boardHeight = BoardSize*(cellHeight+1) + 1

	// MinScreenW and MinScreenH are the smallest screen Render can draw on.
	MinScreenW = boardWidth
	MinScreenH = hudHeight + boardHeight + 1
)

// Prompts shown when a game ends.
const (
	WinMessage  = "You won! Would you like to play again?"
	LossMessage = "You lost :( Play again?"
)

var tileColors = map[int]core.Color{
	0:    core.ColorTileEmpty,
	2:    core.ColorTile2,
	4:    core.ColorTile4,
	8:    core.ColorTile8,
	16:   core.ColorTile16,
	32:   core.ColorTile32,
	64:   core.ColorTile64,
	128:  core.ColorTile128,
	256:  core.ColorTile256,
	512:  core.ColorTile512,
	1024: core.ColorTile1024,
	2048: core.ColorTile2048,
}

// TileColor returns the palette entry for a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return core.ColorTileSuper
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	area := core.CenteredIn(dst.Bounds(), boardWidth, hudHeight+boardHeight)
	boardX := area.X
	boardY := area.Y + hudHeight

	g.renderHUD(dst, boardX, area.Y)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlay(dst, core.NewRect(boardX, boardY, boardWidth, boardHeight))
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
}

// renderHUD draws the title, score and remaining undos above the board.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	title := g.Title()
	dst.DrawTextColor(x+(boardWidth-len(title))/2, y, title, core.ColorWhite)

	score := fmt.Sprintf("SCORE %d", g.score)
	dst.DrawTextColor(x, y+1, score, core.ColorDefault)

	undos := fmt.Sprintf("UNDOS %d", g.undos)
	dst.DrawTextColor(x+boardWidth-len(undos), y+1, undos, core.ColorDefault)
}

// renderBoard draws the grid and fills every cell with its tile color.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawRect(core.NewRect(boardX, boardY, boardWidth, boardHeight), ' ', core.ColorBoard)

	for y := range BoardSize {
		for x := range BoardSize {
			val := g.board[y][x]
			cell := core.NewRect(
				boardX+1+x*(cellWidth+1),
				boardY+1+y*(cellHeight+1),
				cellWidth,
				cellHeight,
			)
			color := TileColor(val)
			dst.DrawRect(cell, ' ', color)

			if val == 0 {
				continue
			}
			label := strconv.Itoa(val)
			if len(label) > cellWidth {
				label = label[:cellWidth]
			}
			cx, cy := cell.Center()
			dst.DrawTextColor(cx-len(label)/2, cy, label, color)
		}
	}
}

// renderOverlay draws the end-of-game prompt over the board.
func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	var lines []string
	switch g.status {
	case StatusWon:
		lines = []string{"You won!", "Play again?", "[y] yes  [n] quit"}
	case StatusLost:
		lines = []string{"You lost :(", "Play again?", "[y] yes  [n] quit"}
	default:
		return
	}
	if g.CanUndo() {
		lines = append(lines, "[u] undo")
	}
	drawOverlay(dst, board, lines...)
}

// drawOverlay draws a boxed, centered message.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredIn(area, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColor(cx-len(line)/2, box.Y+1+i, line, core.ColorWhite)
	}
}
