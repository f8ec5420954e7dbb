package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedRand replays fixed values, each reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestSpawnScripted(t *testing.T) {
	board := Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Third empty cell, then the sixth value slot (a 4).
	s := NewSpawner(&scriptedRand{vals: []int{2, 5}})
	pos, value, err := s.Spawn(&board)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if pos != (Pos{Row: 0, Col: 3}) || value != 4 {
		t.Errorf("Spawn = %v/%d, want {0 3}/4", pos, value)
	}
	if board[0][3] != 4 {
		t.Errorf("board[0][3] = %d, want 4", board[0][3])
	}
}

func TestSpawnSingleEmptyCell(t *testing.T) {
	full := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	s := NewSpawner(rand.New(rand.NewSource(7)))
	for range 100 {
		board := full
		pos, value, err := s.Spawn(&board)
		if err != nil {
			t.Fatalf("Spawn: %v", err)
		}
		if pos != (Pos{Row: 2, Col: 2}) {
			t.Fatalf("Spawn placed tile at %v, want {2 2}", pos)
		}
		if value != 2 && value != 4 {
			t.Fatalf("Spawn value = %d, want 2 or 4", value)
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	orig := board

	s := NewSpawner(rand.New(rand.NewSource(1)))
	_, _, err := s.Spawn(&board)

	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("Spawn on full board: err = %v, want *PreconditionError", err)
	}
	if board != orig {
		t.Error("failed Spawn modified the board")
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := New(DefaultRules(), rand.New(rand.NewSource(12345)))
	g2 := New(DefaultRules(), rand.New(rand.NewSource(12345)))

	if g1.Tiles() != g2.Tiles() {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Tiles(), g2.Tiles())
	}
}

func TestSpawnDistribution(t *testing.T) {
	const n = 6000
	s := NewSpawner(rand.New(rand.NewSource(99)))

	fours := 0
	for range n {
		var board Board
		_, value, err := s.Spawn(&board)
		if err != nil {
			t.Fatalf("Spawn: %v", err)
		}
		if value == 4 {
			fours++
		}
	}

	// Expect n/6 fours; the bounds sit many standard deviations out.
	if fours < 800 || fours > 1200 {
		t.Errorf("got %d fours out of %d spawns, want about %d", fours, n, n/6)
	}
}
