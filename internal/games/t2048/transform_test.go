package t2048

import "testing"

func sampleBoards() []Board {
	return []Board{
		{},
		{
			{2, 2, 0, 0},
			{4, 0, 4, 0},
			{2, 2, 2, 2},
			{0, 0, 0, 2},
		},
		{
			{0, 8, 0, 16},
			{2, 0, 0, 0},
			{0, 0, 0, 1024},
			{4, 4, 0, 8},
		},
		{
			{2, 4, 8, 16},
			{32, 64, 128, 256},
			{512, 1024, 2048, 4096},
			{8192, 16384, 32768, 65536},
		},
	}
}

func TestStackLeft(t *testing.T) {
	board := Board{
		{0, 2, 0, 4},
		{2, 2, 0, 0},
		{0, 0, 0, 8},
		{16, 0, 32, 0},
	}

	expected := Board{
		{2, 4, 0, 0},
		{2, 2, 0, 0},
		{8, 0, 0, 0},
		{16, 32, 0, 0},
	}

	if got := StackLeft(board); got != expected {
		t.Errorf("StackLeft: got\n%v\nwant\n%v", got, expected)
	}
}

func TestStackLeftIdempotent(t *testing.T) {
	for i, b := range sampleBoards() {
		once := StackLeft(b)
		if twice := StackLeft(once); twice != once {
			t.Errorf("board %d: StackLeft not idempotent:\n%v\nvs\n%v", i, once, twice)
		}
	}
}

func TestReverseTransposeInvolutions(t *testing.T) {
	for i, b := range sampleBoards() {
		if got := Reverse(Reverse(b)); got != b {
			t.Errorf("board %d: Reverse(Reverse(b)) = %v, want %v", i, got, b)
		}
		if got := Transpose(Transpose(b)); got != b {
			t.Errorf("board %d: Transpose(Transpose(b)) = %v, want %v", i, got, b)
		}
	}
}

func TestReverse(t *testing.T) {
	board := Board{{1 << 1, 1 << 2, 1 << 3, 1 << 4}}
	got := Reverse(board)
	want := [BoardSize]int{16, 8, 4, 2}
	if got[0] != want {
		t.Errorf("Reverse row = %v, want %v", got[0], want)
	}
}

func TestTranspose(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	got := Transpose(board)
	for y, want := range []int{2, 4, 8, 16} {
		if got[y][0] != want {
			t.Errorf("Transpose[%d][0] = %d, want %d", y, got[y][0], want)
		}
	}
}

func TestMergeLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "pair then trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 0, 2, 0},
			score:    4,
		},
		{
			name:     "two pairs",
			input:    [4]int{4, 4, 4, 4},
			expected: [4]int{8, 0, 8, 0},
			score:    16,
		},
		{
			name:     "pair in the middle",
			input:    [4]int{4, 2, 2, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "gap is not bridged",
			input:    [4]int{2, 0, 2, 0},
			expected: [4]int{2, 0, 2, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := MergeLeft(Board{tt.input})
			if result[0] != tt.expected {
				t.Errorf("MergeLeft(%v) = %v, want %v", tt.input, result[0], tt.expected)
			}
			if score != tt.score {
				t.Errorf("MergeLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	board := Board{
		{2, 2, 0, 4},
		{0, 4, 4, 0},
		{8, 0, 0, 8},
		{0, 0, 2, 0},
	}
	orig := board

	StackLeft(board)
	MergeLeft(board)
	Reverse(board)
	Transpose(board)
	MoveDown(board)

	if board != orig {
		t.Errorf("input board was mutated: %v", board)
	}
}
