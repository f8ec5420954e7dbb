package t2048

// Rand is the random source used for tile spawning.
// *math/rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Intn(n int) int
}

// spawnValues gives 2 with probability 5/6 and 4 with probability 1/6.
var spawnValues = [...]int{2, 2, 2, 2, 2, 4}

// Spawner places new tiles on empty cells.
type Spawner struct {
	rng Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn picks a uniformly random empty cell and writes a 2 or 4 into it.
// Returns a *PreconditionError and leaves the board untouched when no cell
// is empty.
func (s *Spawner) Spawn(board *Board) (Pos, int, error) {
	emptyCells := EmptyCells(*board)
	if len(emptyCells) == 0 {
		return Pos{}, 0, &PreconditionError{Op: "spawn", Reason: "board has no empty cell"}
	}

	cell := emptyCells[s.rng.Intn(len(emptyCells))]
	value := spawnValues[s.rng.Intn(len(spawnValues))]

	board[cell.Row][cell.Col] = value
	return cell, value, nil
}
