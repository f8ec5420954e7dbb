package t2048

// StackLeft moves every tile as far left as it can go without merging.
func StackLeft(board Board) Board {
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

// MergeLeft merges equal horizontal neighbours, scanning each row left to
// right. A merged cell is not compared against its new right neighbour in
// the same pass. Gaps left by merges are not closed.
// Returns the merged board and the score gained.
func MergeLeft(board Board) (Board, int) {
	result := board
	score := 0
	for y := range BoardSize {
		for x := range BoardSize - 1 {
			if result[y][x] == 0 || result[y][x] != result[y][x+1] {
				continue
			}
			result[y][x] *= 2
			result[y][x+1] = 0
			score += result[y][x]
		}
	}
	return result, score
}

// Reverse mirrors each row horizontally.
func Reverse(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[y][BoardSize-1-x]
		}
	}
	return result
}

// Transpose returns the matrix transpose.
func Transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}
