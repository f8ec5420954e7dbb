package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/core"
)

// GameID identifies 2048 in score storage.
const GameID = "2048"

// Rules holds the tunable game rules.
type Rules struct {
	MaxUndos int // Undos granted per game
	WinTile  int // Tile value that wins the game
}

// DefaultRules returns the classic rules: 3 undos, win at 2048.
func DefaultRules() Rules {
	return Rules{
		MaxUndos: 3,
		WinTile:  2048,
	}
}

// Game is the 2048 state machine. It owns the board, score, undo budget
// and history. A Game is not safe for concurrent use.
//
// A step is one changing move followed by one spawned tile:
//
//	ready --AttemptMove--> pending_spawn --SpawnTile--> ready | won | lost
type Game struct {
	rules   Rules
	spawner *Spawner

	board   Board
	score   int
	undos   int
	history history
	status  Status
}

// New creates a game and starts the first round.
func New(rules Rules, rng Rand) *Game {
	g := &Game{
		rules:   rules,
		spawner: NewSpawner(rng),
	}
	g.NewGame()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// NewGame resets to an empty board with two spawned tiles, zero score and
// a full undo budget. The resulting position is the undo floor.
func (g *Game) NewGame() {
	g.board = Board{}
	g.score = 0
	g.undos = g.rules.MaxUndos

	g.spawner.Spawn(&g.board) //nolint:errcheck // cannot fail on an empty board
	g.spawner.Spawn(&g.board) //nolint:errcheck // cannot fail on an empty board

	g.history.reset(g.record())
	g.status = StatusReady
}

// AttemptMove slides the board in dir. Returns false, leaving all state
// untouched, when dir is not a direction, when the game is not awaiting a
// move, or when the move would not change the board. On true the game waits
// for SpawnTile to complete the step.
func (g *Game) AttemptMove(dir Direction) bool {
	if !dir.Valid() || g.status != StatusReady {
		return false
	}

	newBoard, scoreGained := Move(g.board, dir)
	if newBoard == g.board {
		return false
	}

	g.board = newBoard
	g.score += scoreGained
	g.status = StatusPendingSpawn
	return true
}

// SpawnTile completes a step: it places a new tile, records the resulting
// board and score in history, then evaluates win and loss.
// Returns a *PreconditionError if no move is pending or the board is full.
func (g *Game) SpawnTile() (Pos, int, error) {
	if g.status != StatusPendingSpawn {
		return Pos{}, 0, &PreconditionError{Op: "spawn", Reason: "no move awaiting a tile"}
	}

	pos, value, err := g.spawner.Spawn(&g.board)
	if err != nil {
		return Pos{}, 0, err
	}

	g.history.push(g.record())
	g.evaluate()
	return pos, value, nil
}

// Play runs a whole step synchronously: move, then spawn if the move
// changed the board.
func (g *Game) Play(dir Direction) (bool, error) {
	if !g.AttemptMove(dir) {
		return false, nil
	}
	if _, _, err := g.SpawnTile(); err != nil {
		return true, err
	}
	return true, nil
}

// CanUndo reports whether Undo would change anything.
func (g *Game) CanUndo() bool {
	return g.undos > 0 && g.status != StatusPendingSpawn && g.history.canPop()
}

// Undo reverts to the position before the most recent completed step and
// spends one undo. It does nothing when the budget is spent, the game is
// back at its baseline, or a move is still waiting for its tile.
func (g *Game) Undo() bool {
	if !g.CanUndo() {
		return false
	}

	g.undos--
	prev := g.history.pop()
	g.board = prev.Board
	g.score = prev.Score
	g.evaluate()
	return true
}

// HasWon returns true if the win tile is on the board.
func (g *Game) HasWon() bool {
	return Contains(g.board, g.rules.WinTile)
}

// HasLost returns true if the board is full and no two neighbours in any
// row or column are equal.
func (g *Game) HasLost() bool {
	return !CanMove(g.board)
}

// Tiles returns a copy of the board.
func (g *Game) Tiles() Board {
	return g.board
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// UndosRemaining returns the undo budget left in this game.
func (g *Game) UndosRemaining() int {
	return g.undos
}

// Status returns the state machine position.
func (g *Game) Status() Status {
	return g.status
}

// History returns a copy of all history records, oldest first.
func (g *Game) History() []Record {
	return g.history.all()
}

// Step maps a frame of platform actions onto engine calls.
// Moved is set when a move was accepted and a tile spawn is due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Empty() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionNewGame):
		g.NewGame()
	case in.Has(core.ActionUndo):
		g.Undo()
	default:
		if dir, ok := actionDirection(in); ok {
			moved := g.AttemptMove(dir)
			return core.StepResult{State: g.State(), Moved: moved}
		}
	}
	return core.StepResult{State: g.State()}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status.Over(),
	}
}

func actionDirection(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

func (g *Game) record() Record {
	return Record{Board: g.board, Score: g.score}
}

// evaluate sets the status from the board after a completed step.
func (g *Game) evaluate() {
	switch {
	case g.HasWon():
		g.status = StatusWon
	case g.HasLost():
		g.status = StatusLost
	default:
		g.status = StatusReady
	}
}
