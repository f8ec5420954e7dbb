package t2048

// Record is a snapshot of the board and score after a completed step.
type Record struct {
	Board Board
	Score int
}

// history is the append-only record stack that undo walks back through.
// Records at or below floor are never popped: the floor is the baseline of
// the current game (after NewGame or a load).
type history struct {
	records []Record
	floor   int
}

// reset discards all records and starts over from base.
func (h *history) reset(base Record) {
	h.records = []Record{base}
	h.floor = 0
}

// restore replaces the records with recs and appends base as the new floor.
func (h *history) restore(recs []Record, base Record) {
	h.records = make([]Record, 0, len(recs)+1)
	h.records = append(h.records, recs...)
	h.records = append(h.records, base)
	h.floor = len(h.records) - 1
}

func (h *history) push(r Record) {
	h.records = append(h.records, r)
}

// canPop reports whether a record above the floor exists.
func (h *history) canPop() bool {
	return len(h.records)-1 > h.floor
}

// pop drops the top record and returns the one beneath it.
func (h *history) pop() Record {
	h.records = h.records[:len(h.records)-1]
	return h.records[len(h.records)-1]
}

func (h *history) len() int {
	return len(h.records)
}

// tail returns a copy of the last n records (fewer if history is shorter).
func (h *history) tail(n int) []Record {
	if n > len(h.records) {
		n = len(h.records)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Record, n)
	copy(out, h.records[len(h.records)-n:])
	return out
}

// all returns a copy of every record.
func (h *history) all() []Record {
	return h.tail(len(h.records))
}
