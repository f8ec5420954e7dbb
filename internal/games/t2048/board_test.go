package t2048

import "testing"

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name: "full board without pairs",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full board with a horizontal pair",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "full board with a vertical pair",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 256},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "one empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMove(tt.board); got != tt.want {
				t.Errorf("CanMove = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasAdjacentPairIgnoresEmpty(t *testing.T) {
	board := Board{
		{0, 0, 2, 4},
	}
	if HasAdjacentPair(board) {
		t.Error("empty neighbours should not count as a pair")
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := MaxTile(Board{}); got != 0 {
		t.Errorf("MaxTile(empty) = %d, want 0", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Pos{Row: 0, Col: 1}) || cells[7] != (Pos{Row: 3, Col: 2}) {
		t.Errorf("EmptyCells not in row-major order: %v", cells)
	}
	if CountTiles(board) != 8 {
		t.Errorf("CountTiles = %d, want 8", CountTiles(board))
	}
}

func TestValidTile(t *testing.T) {
	valid := []int{0, 2, 4, 8, 1024, 2048, MaxTileValue}
	invalid := []int{-2, 1, 3, 6, 100, 2047, MaxTileValue << 1, 1 << 40}

	for _, v := range valid {
		if !ValidTile(v) {
			t.Errorf("ValidTile(%d) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if ValidTile(v) {
			t.Errorf("ValidTile(%d) = true, want false", v)
		}
	}

	b := Board{{2, 4, 0, 0}}
	if !b.Valid() {
		t.Error("board of powers of two should be valid")
	}
	b[3][3] = 5
	if b.Valid() {
		t.Error("board holding 5 should be invalid")
	}
}
