package storage

import (
	"fmt"
	"slices"
	"time"
)

// Table is an in-memory highscore table. It is used when the database cannot
// be opened and as the reference for the SQLite ordering.
type Table struct {
	capacity int
	entries  []Entry
	nextID   int64
}

// NewTable creates an empty table holding at most capacity entries.
func NewTable(capacity int) (*Table, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Table{capacity: capacity, entries: make([]Entry, 0, capacity+1)}, nil
}

// Append inserts e after every entry with an equal or higher score.
func (t *Table) Append(e Entry) (int, error) {
	t.nextID++
	e.ID = t.nextID
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	pos := len(t.entries)
	for i, cur := range t.entries {
		if cur.Score < e.Score {
			pos = i
			break
		}
	}
	if pos >= t.capacity {
		return 0, nil
	}

	t.entries = slices.Insert(t.entries, pos, e)
	if len(t.entries) > t.capacity {
		t.entries = t.entries[:t.capacity]
	}
	return pos + 1, nil
}

// Top returns a copy of the best entries.
func (t *Table) Top(limit int) ([]Entry, error) {
	if limit <= 0 || limit > len(t.entries) {
		limit = len(t.entries)
	}
	return slices.Clone(t.entries[:limit]), nil
}

// HighScore returns the first entry's score.
func (t *Table) HighScore() (int, error) {
	if len(t.entries) == 0 {
		return 0, nil
	}
	return t.entries[0].Score, nil
}

// Clear removes all entries.
func (t *Table) Clear() error {
	t.entries = t.entries[:0]
	return nil
}

// Close is a no-op.
func (t *Table) Close() error {
	return nil
}
