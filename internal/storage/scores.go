// Package storage keeps the highscore table: a top-N list of finished rounds
// sorted by score descending, ties in insertion order.
//
// Two implementations exist. Table lives in memory; Store persists to SQLite
// using the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"errors"
	"time"
)

// DefaultCapacity is the number of entries a highscore table keeps.
const DefaultCapacity = 10

// ErrInvalidCapacity is returned when a table is created with capacity < 1.
var ErrInvalidCapacity = errors.New("storage: capacity must be positive")

// Entry is a single highscore record.
type Entry struct {
	ID         int64
	RoundID    string
	Name       string
	Score      int
	Difficulty string
	CreatedAt  time.Time
}

// Scores is a capped highscore table.
type Scores interface {
	// Append inserts e and truncates the table to its capacity.
	// It returns the 1-based rank of e, or 0 if e did not make the table.
	Append(e Entry) (int, error)

	// Top returns up to limit entries, best first. limit <= 0 means all.
	Top(limit int) ([]Entry, error)

	// HighScore returns the best score, or 0 for an empty table.
	HighScore() (int, error)

	Clear() error
	Close() error
}

var (
	_ Scores = (*Table)(nil)
	_ Scores = (*Store)(nil)
)
