package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for highscore persistence.
type Store struct {
	db       *sql.DB
	capacity int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, capacity int) (*Store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, capacity: capacity}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_highscores_rank ON highscores(score DESC, id ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records a finished round and trims the table to capacity in one
// transaction.
func (s *Store) Append(e Entry) (rank int, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	result, err := tx.Exec(
		"INSERT INTO highscores (round_id, name, score, difficulty) VALUES (?, ?, ?, ?)",
		e.RoundID, e.Name, e.Score, e.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	// Earlier rows win ties, so a new entry equal to the last place is dropped.
	_, err = tx.Exec(
		`DELETE FROM highscores WHERE id NOT IN (
			SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT ?
		)`,
		s.capacity,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot trim highscores: %w", err)
	}

	err = tx.QueryRow(
		`SELECT CASE WHEN EXISTS (SELECT 1 FROM highscores WHERE id = ?)
			THEN (SELECT COUNT(*) FROM highscores WHERE score > ? OR (score = ? AND id < ?)) + 1
			ELSE 0 END`,
		id, e.Score, e.Score, id,
	).Scan(&rank)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot rank score: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return rank, nil
}

// Top retrieves the best entries, highest score first.
func (s *Store) Top(limit int) ([]Entry, error) {
	if limit <= 0 || limit > s.capacity {
		limit = s.capacity
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, name, score, difficulty, created_at
		 FROM highscores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Name, &e.Score, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM highscores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ByRound looks up the entry saved for a round. It returns sql.ErrNoRows,
// wrapped, when the round did not make the table.
func (s *Store) ByRound(roundID string) (Entry, error) {
	var e Entry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, round_id, name, score, difficulty, created_at
		 FROM highscores WHERE round_id = ?`,
		roundID,
	).Scan(&e.ID, &e.RoundID, &e.Name, &e.Score, &e.Difficulty, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("storage: round %s: %w", roundID, err)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("storage: cannot query round: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// Clear deletes all highscores.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM highscores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles the datetime column as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
