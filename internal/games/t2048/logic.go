// Package t2048 implements the 2048 sliding-tile puzzle: the board transition
// engine, the tile spawner, the win/loss detectors and a Game session that ties
// them together for the front ends.
package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a 4x4 grid of tile values; 0 is an empty cell.
// Boards are values: assignment copies and == compares.
type Board [BoardSize][BoardSize]int

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Compress packs the non-empty tiles of every row to the left, keeping their
// order, and pads the rest of the row with empty cells.
func Compress(board Board) Board {
	var result Board
	for y := range BoardSize {
		writePos := 0
		for x := range BoardSize {
			if board[y][x] == 0 {
				continue
			}
			result[y][writePos] = board[y][x]
			writePos++
		}
	}
	return result
}

// Merge doubles the left tile of each equal, non-empty adjacent pair and clears
// the right one. Each row is scanned once left to right, so a tile takes part in
// at most one merge.
func Merge(board Board) Board {
	for y := range BoardSize {
		for x := range BoardSize - 1 {
			if board[y][x] != 0 && board[y][x] == board[y][x+1] {
				board[y][x] *= 2
				board[y][x+1] = 0
			}
		}
	}
	return board
}

// Rotate turns the board 90° counter-clockwise: the top edge becomes the left
// edge. Four rotations return the original board.
func Rotate(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][BoardSize-1-y]
		}
	}
	return result
}

// rotateBack undoes Rotate by rotating three more times.
func rotateBack(board Board) Board {
	return Rotate(Rotate(Rotate(board)))
}

// Mirror reverses every row.
func Mirror(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[y][BoardSize-1-x]
		}
	}
	return result
}

// slideLeft is the canonical move: compress, merge, compress.
func slideLeft(board Board) Board {
	return Compress(Merge(Compress(board)))
}

// Move slides and merges every tile toward the given edge and returns the
// resulting board. The input is not modified; a move that changes nothing
// returns an equal board.
//
// Move panics if dir is not one of the four directions.
func Move(board Board, dir Direction) Board {
	switch dir {
	case DirLeft:
		return slideLeft(board)
	case DirRight:
		return Mirror(slideLeft(Mirror(board)))
	case DirUp:
		return rotateBack(slideLeft(Rotate(board)))
	case DirDown:
		return rotateBack(Mirror(slideLeft(Mirror(Rotate(board)))))
	default:
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}
}

// CanMove reports whether moving in dir would change the board.
func CanMove(board Board, dir Direction) bool {
	return Move(board, dir) != board
}

// AvailableMoves returns the directions that would change the board,
// in Up, Down, Left, Right order.
func AvailableMoves(board Board) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if CanMove(board, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
