package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrSaveNotFound is returned when a save slot does not exist.
var ErrSaveNotFound = errors.New("storage: save not found")

// SaveSlot is one named saved game. Payload is the game's save text.
type SaveSlot struct {
	Slot      string
	Payload   string
	Score     int
	UpdatedAt time.Time
}

// SaveGame stores payload under slot, replacing any previous save.
func (s *Store) SaveGame(slot, payload string, score int) error {
	if slot == "" {
		return errors.New("storage: empty save slot name")
	}
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, payload, score, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
			payload = excluded.payload,
			score = excluded.score,
			updated_at = excluded.updated_at`,
		slot, payload, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", slot, err)
	}
	return nil
}

// LoadGame returns the save in slot, or ErrSaveNotFound.
func (s *Store) LoadGame(slot string) (SaveSlot, error) {
	sv := SaveSlot{Slot: slot}
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT payload, score, updated_at FROM saves WHERE slot = ?",
		slot,
	).Scan(&sv.Payload, &sv.Score, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SaveSlot{}, fmt.Errorf("%w: %q", ErrSaveNotFound, slot)
	}
	if err != nil {
		return SaveSlot{}, fmt.Errorf("storage: cannot load game %q: %w", slot, err)
	}
	sv.UpdatedAt = parseTime(updatedAt)
	return sv, nil
}

// ListSaves returns every save without its payload, newest first.
func (s *Store) ListSaves() ([]SaveSlot, error) {
	rows, err := s.db.Query(
		`SELECT slot, score, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, slot ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list saves: %w", err)
	}
	defer rows.Close()

	var saves []SaveSlot
	for rows.Next() {
		var sv SaveSlot
		var updatedAt any
		if err := rows.Scan(&sv.Slot, &sv.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sv.UpdatedAt = parseTime(updatedAt)
		saves = append(saves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return saves, nil
}

// DeleteSave removes slot. Deleting a missing slot returns ErrSaveNotFound.
func (s *Store) DeleteSave(slot string) error {
	res, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", slot, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrSaveNotFound, slot)
	}
	return nil
}
