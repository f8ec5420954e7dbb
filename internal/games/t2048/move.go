package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseDirection maps key names to directions. Accepts wasd and arrow names.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "w", "up", "Up":
		return DirUp, true
	case "s", "down", "Down":
		return DirDown, true
	case "a", "left", "Left":
		return DirLeft, true
	case "d", "right", "Right":
		return DirRight, true
	default:
		return 0, false
	}
}

// MoveLeft is the canonical move: stack, merge, then stack again to close
// the gaps the merge opened.
func MoveLeft(board Board) (Board, int) {
	merged, score := MergeLeft(StackLeft(board))
	return StackLeft(merged), score
}

// MoveRight mirrors the board around a left move.
func MoveRight(board Board) (Board, int) {
	moved, score := MoveLeft(Reverse(board))
	return Reverse(moved), score
}

// MoveUp transposes the board around a left move.
func MoveUp(board Board) (Board, int) {
	moved, score := MoveLeft(Transpose(board))
	return Transpose(moved), score
}

// MoveDown transposes the board around a right move.
func MoveDown(board Board) (Board, int) {
	moved, score := MoveRight(Transpose(board))
	return Transpose(moved), score
}

// Move performs a move in the given direction.
// Returns the new board and the score gained. An unknown direction returns
// the board untouched. Callers compare boards to detect a no-op move.
func Move(board Board, dir Direction) (Board, int) {
	switch dir {
	case DirLeft:
		return MoveLeft(board)
	case DirRight:
		return MoveRight(board)
	case DirUp:
		return MoveUp(board)
	case DirDown:
		return MoveDown(board)
	default:
		return board, 0
	}
}
