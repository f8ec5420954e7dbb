package t2048

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Save file keys, in the order they must appear.
const (
	keyBoard   = "board"
	keyScore   = "score"
	keyUndos   = "undos"
	keyHistory = "history"
	keyRecent  = "recent"
)

var saveKeys = [...]string{keyBoard, keyScore, keyUndos, keyHistory, keyRecent}

// MaxScore bounds the score a save may carry. It is well above what a
// board of MaxTileValue tiles can earn and far from int overflow.
const MaxScore = 1 << 23

// maxSaveLine bounds a single line of a save file. Long games produce long
// history lines.
const maxSaveLine = 16 << 20

// SaveState is everything needed to rebuild a game.
// Recent is the tail of History that undo could reach when the game was saved.
type SaveState struct {
	Board   Board
	Score   int
	Undos   int
	History []Record
	Recent  []Record
}

// yamlRecord is the on-disk form of a Record.
type yamlRecord struct {
	Score int     `yaml:"score"`
	Board [][]int `yaml:"board"`
}

// EncodeState writes s as five key=value lines. Structured values are YAML
// flow sequences kept on a single line.
func EncodeState(w io.Writer, s SaveState) error {
	board, err := flowYAML(boardRows(s.Board))
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	hist, err := flowYAML(toYAMLRecords(s.History))
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	recent, err := flowYAML(toYAMLRecords(s.Recent))
	if err != nil {
		return fmt.Errorf("encode recent: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s=%s\n", keyBoard, board)
	fmt.Fprintf(bw, "%s=%d\n", keyScore, s.Score)
	fmt.Fprintf(bw, "%s=%d\n", keyUndos, s.Undos)
	fmt.Fprintf(bw, "%s=%s\n", keyHistory, hist)
	fmt.Fprintf(bw, "%s=%s\n", keyRecent, recent)
	return bw.Flush()
}

// DecodeState parses a save written by EncodeState. Any deviation from the
// format yields a *CorruptSaveError.
func DecodeState(r io.Reader) (SaveState, error) {
	var s SaveState

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxSaveLine)

	line := 0
	for _, key := range saveKeys {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return SaveState{}, &CorruptSaveError{Line: line + 1, Key: key, Reason: "unreadable line", Err: err}
			}
			return SaveState{}, &CorruptSaveError{Line: line + 1, Key: key, Reason: "missing line"}
		}
		line++

		k, val, ok := strings.Cut(sc.Text(), "=")
		if !ok || k != key {
			return SaveState{}, &CorruptSaveError{Line: line, Key: key, Reason: fmt.Sprintf("expected %q line", key)}
		}

		if err := decodeField(&s, key, val); err != nil {
			return SaveState{}, &CorruptSaveError{Line: line, Key: key, Reason: "malformed value", Err: err}
		}
	}

	// Only blank lines may follow.
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return SaveState{}, &CorruptSaveError{Line: line, Reason: "unexpected trailing data"}
		}
	}
	if err := sc.Err(); err != nil {
		return SaveState{}, &CorruptSaveError{Line: line + 1, Reason: "unreadable line", Err: err}
	}

	return s, nil
}

func decodeField(s *SaveState, key, val string) error {
	var err error
	switch key {
	case keyBoard:
		var rows [][]int
		if err = decodeYAML(val, &rows); err == nil {
			s.Board, err = boardFromRows(rows)
		}
	case keyScore:
		if s.Score, err = parseCount(val); err == nil && s.Score > MaxScore {
			err = fmt.Errorf("score %d exceeds %d", s.Score, MaxScore)
		}
	case keyUndos:
		s.Undos, err = parseCount(val)
	case keyHistory:
		s.History, err = decodeRecords(val)
	case keyRecent:
		s.Recent, err = decodeRecords(val)
	}
	return err
}

func decodeRecords(val string) ([]Record, error) {
	var recs []yamlRecord
	if err := decodeYAML(val, &recs); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(recs))
	for i, yr := range recs {
		b, err := boardFromRows(yr.Board)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if yr.Score < 0 || yr.Score > MaxScore {
			return nil, fmt.Errorf("record %d: score %d outside 0..%d", i, yr.Score, MaxScore)
		}
		out = append(out, Record{Board: b, Score: yr.Score})
	}
	return out, nil
}

func decodeYAML(val string, out any) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("empty value")
	}
	dec := yaml.NewDecoder(strings.NewReader(val))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func parseCount(val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

func boardFromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != BoardSize {
		return b, fmt.Errorf("board has %d rows, want %d", len(rows), BoardSize)
	}
	for y, row := range rows {
		if len(row) != BoardSize {
			return b, fmt.Errorf("row %d has %d cells, want %d", y, len(row), BoardSize)
		}
		for x, v := range row {
			if !ValidTile(v) {
				return b, fmt.Errorf("cell (%d,%d) holds %d, not a power of two in 2..%d", y, x, v, MaxTileValue)
			}
			b[y][x] = v
		}
	}
	return b, nil
}

func boardRows(b Board) [][]int {
	rows := make([][]int, BoardSize)
	for y := range BoardSize {
		rows[y] = append([]int(nil), b[y][:]...)
	}
	return rows
}

func toYAMLRecords(recs []Record) []yamlRecord {
	out := make([]yamlRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, yamlRecord{Score: r.Score, Board: boardRows(r.Board)})
	}
	return out
}

// flowYAML renders v as a single-line YAML flow node.
func flowYAML(v any) (string, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return "", err
	}
	setFlow(&n)
	data, err := yaml.Marshal(&n)
	if err != nil {
		return "", err
	}
	// Flow collections treat line breaks as spaces, and the values here are
	// numbers and plain keys only.
	return strings.Join(strings.Fields(string(data)), " "), nil
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.SequenceNode || n.Kind == yaml.MappingNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}

// SaveState returns the state to persist. Recent holds the history tail
// within reach of the undo budget. A game is only saved between steps:
// while a tile is pending it returns a *PreconditionError.
func (g *Game) SaveState() (SaveState, error) {
	if g.status == StatusPendingSpawn {
		return SaveState{}, &PreconditionError{Op: "save", Reason: "move awaiting its tile"}
	}
	return SaveState{
		Board:   g.board,
		Score:   g.score,
		Undos:   g.undos,
		History: g.history.all(),
		Recent:  g.history.tail(g.rules.MaxUndos + 1),
	}, nil
}

// Serialize encodes the game as save text. It fails like SaveState.
func (g *Game) Serialize() (string, error) {
	s, err := g.SaveState()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := EncodeState(&sb, s); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Deserialize replaces the game with the state encoded in text.
// On error the game is left untouched.
func (g *Game) Deserialize(text string) error {
	s, err := DecodeState(strings.NewReader(text))
	if err != nil {
		return err
	}
	return g.Restore(s)
}

// Restore replaces the game with s after validating it against the rules.
// The restored position becomes a new history baseline that undo cannot
// cross. On error the game is left untouched.
func (g *Game) Restore(s SaveState) error {
	if err := g.validate(s); err != nil {
		return err
	}

	g.board = s.Board
	g.score = s.Score
	g.undos = s.Undos
	g.history.restore(s.History, g.record())
	g.evaluate()
	return nil
}

func (g *Game) validate(s SaveState) error {
	if !s.Board.Valid() {
		return &CorruptSaveError{Key: keyBoard, Reason: "board holds a value that is not a tile"}
	}
	if s.Score < 0 || s.Score > MaxScore {
		return &CorruptSaveError{Key: keyScore, Reason: fmt.Sprintf("score %d outside 0..%d", s.Score, MaxScore)}
	}
	if s.Undos < 0 || s.Undos > g.rules.MaxUndos {
		return &CorruptSaveError{Key: keyUndos, Reason: fmt.Sprintf("undo count %d outside 0..%d", s.Undos, g.rules.MaxUndos)}
	}
	if len(s.History) == 0 {
		return &CorruptSaveError{Key: keyHistory, Reason: "history is empty"}
	}
	for i, r := range s.History {
		if !r.Board.Valid() || r.Score < 0 || r.Score > MaxScore {
			return &CorruptSaveError{Key: keyHistory, Reason: fmt.Sprintf("record %d is invalid", i)}
		}
	}
	if len(s.Recent) > len(s.History) || len(s.Recent) > g.rules.MaxUndos+1 {
		return &CorruptSaveError{Key: keyRecent, Reason: fmt.Sprintf("%d recent records is too many", len(s.Recent))}
	}
	offset := len(s.History) - len(s.Recent)
	for i, r := range s.Recent {
		if r != s.History[offset+i] {
			return &CorruptSaveError{Key: keyRecent, Reason: "recent records do not match the end of history"}
		}
	}
	return nil
}
