package t2048

// WinTile is the tile value that wins the classic game.
const WinTile = 2048

// CheckWin reports whether any cell holds WinTile.
func CheckWin(board Board) bool {
	return CheckWinAt(board, WinTile)
}

// CheckWinAt reports whether any cell holds exactly target.
func CheckWinAt(board Board, target int) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == target {
				return true
			}
		}
	}
	return false
}

// CheckGameOver reports whether the board is full and no two horizontally or
// vertically adjacent cells are equal. Each cell is compared with its right and
// lower neighbor only, so every pair is checked once.
func CheckGameOver(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				return false
			}
			// Check right neighbor
			if x < BoardSize-1 && board[y][x+1] == val {
				return false
			}
			// Check bottom neighbor
			if y < BoardSize-1 && board[y+1][x] == val {
				return false
			}
		}
	}
	return true
}

// Pos is a cell position on the board.
type Pos struct {
	X, Y int
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(board Board) []Pos {
	var cells []Pos
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Pos{X: x, Y: y})
			}
		}
	}
	return cells
}

// TileCount returns the number of non-empty cells.
func TileCount(board Board) int {
	return BoardSize*BoardSize - len(EmptyCells(board))
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			maxVal = max(maxVal, board[y][x])
		}
	}
	return maxVal
}
