// Package t2048 implements the 2048 sliding-tile puzzle engine: board
// transforms, moves, tile spawning, undo history and save/load.
package t2048

// BoardSize is the board dimension. The engine only supports square boards.
const BoardSize = 4

// Board represents a 4x4 game board. Zero marks an empty cell.
// Boards are arrays, so assignment copies every cell.
type Board [BoardSize][BoardSize]int

// Pos is a cell position on the board.
type Pos struct {
	Row int
	Col int
}

// EmptyCells returns positions of all empty cells in row-major order.
func EmptyCells(board Board) []Pos {
	var cells []Pos
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Pos{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair returns true if two horizontally or vertically adjacent
// tiles hold the same value.
func HasAdjacentPair(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move would change the board.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasAdjacentPair(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// Contains reports whether any cell holds value.
func Contains(board Board, value int) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == value {
				return true
			}
		}
	}
	return false
}

// CountTiles returns the number of non-empty cells.
func CountTiles(board Board) int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTileValue is the largest tile a 4x4 board can reach.
const MaxTileValue = 1 << 17

// ValidTile reports whether v is empty or a power of two in 2..MaxTileValue.
func ValidTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v <= MaxTileValue && v&(v-1) == 0
}

// Valid reports whether every cell holds a valid tile.
func (b Board) Valid() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if !ValidTile(b[y][x]) {
				return false
			}
		}
	}
	return true
}
