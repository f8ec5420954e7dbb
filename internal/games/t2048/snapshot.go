package t2048

// Status represents the current game state.
type Status string

const (
	StatusReady        Status = "ready"
	StatusPendingSpawn Status = "pending_spawn"
	StatusWon          Status = "won"
	StatusLost         Status = "lost"
)

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}

// Snapshot captures the observable game state for rendering and tests.
type Snapshot struct {
	Board          Board
	Score          int
	UndosRemaining int
	HistoryLen     int
	CanUndo        bool
	MaxTile        int
	State          Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:          g.board,
		Score:          g.score,
		UndosRemaining: g.undos,
		HistoryLen:     g.history.len(),
		CanUndo:        g.CanUndo(),
		MaxTile:        MaxTile(g.board),
		State:          g.status,
	}
}
