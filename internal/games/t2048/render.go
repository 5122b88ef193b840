package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3

	minScreenW = BoardSize*cellWidth + 1
	minScreenH = hudHeight + BoardSize*cellHeight + 3
)

// FormatBoard renders the board as plain text: one line per row, cells
// separated by tabs, empty cells shown as ".".
func FormatBoard(board Board) string {
	var sb strings.Builder
	for y := range BoardSize {
		for x := range BoardSize {
			if x > 0 {
				sb.WriteByte('\t')
			}
			if board[y][x] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(board[y][x]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TileColor returns the display color for a tile value.
func TileColor(val int) core.Color {
	switch val {
	case 0:
		return core.ColorDefault
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorYellow
	case 8:
		return core.ColorOrange
	case 16:
		return core.ColorRed
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorMagenta
	case 128:
		return core.ColorBrightMagenta
	case 256:
		return core.ColorCyan
	case 512:
		return core.ColorBrightCyan
	case 1024:
		return core.ColorGreen
	case 2048:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	switch g.status {
	case StatusWon:
		g.drawOverlay(dst, core.NewRect(boardX, boardY, boardW, boardH),
			"YOU WIN!", fmt.Sprintf("Reached %d", g.rules.WinTile), "R: Restart  Q: Quit")
	case StatusLost:
		g.drawOverlay(dst, core.NewRect(boardX, boardY, boardW, boardH),
			"GAME OVER", fmt.Sprintf("Max tile: %d", MaxTile(g.board)), "R: Restart  Q: Quit")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, move counter and target.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	target := fmt.Sprintf("Target: %d", g.rules.WinTile)
	dst.DrawText(max(boardX, boardX+boardW-len(target)), 1, target)
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridCorner(x, y))

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y := range BoardSize {
		for x := range BoardSize {
			val := g.board[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// drawOverlay draws a boxed message centered over area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	cx, cy := area.Center()
	box := core.CenteredRect(cx, cy, maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}
