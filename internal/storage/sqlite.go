// Package storage provides SQLite-based persistence for plugin scores and
// per-plugin stat counters. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	PluginID  string
	Score     int
	CreatedAt time.Time
}

// Well-known stat keys in the per-plugin stat bag.
const (
	StatGamesPlayed   = "games_played"
	StatTotalWinnings = "total_winnings"
	StatHighScore     = "high_score"
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			plugin_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_plugin_id ON scores(plugin_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(plugin_id, score DESC);

		CREATE TABLE IF NOT EXISTS plugin_stats (
			plugin_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (plugin_id, key)
		);
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

// SaveScore records a new score for the given plugin.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(pluginID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (plugin_id, score) VALUES (?, ?)",
		pluginID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given plugin.
// Results are ordered by score descending.
func (s *Store) TopScores(pluginID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, plugin_id, score, created_at
		 FROM scores
		 WHERE plugin_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		pluginID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PluginID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given plugin.
// Returns 0 if no scores exist.
func (s *Store) HighScore(pluginID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE plugin_id = ?",
		pluginID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given plugin.
func (s *Store) ClearScores(pluginID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE plugin_id = ?", pluginID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetStat reads an integer stat for the plugin; missing keys read as 0.
func (s *Store) GetStat(pluginID, key string) (int64, error) {
	var value int64
	err := s.db.QueryRow(
		"SELECT value FROM plugin_stats WHERE plugin_id = ? AND key = ?",
		pluginID, key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query stat %s/%s: %w", pluginID, key, err)
	}
	return value, nil
}

// SetStat writes an integer stat for the plugin.
func (s *Store) SetStat(pluginID, key string, value int64) error {
	_, err := s.db.Exec(
		`INSERT INTO plugin_stats (plugin_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(plugin_id, key) DO UPDATE SET value = excluded.value`,
		pluginID, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set stat %s/%s: %w", pluginID, key, err)
	}
	return nil
}

// IncrStat adds delta to an integer stat, creating it at delta if missing.
func (s *Store) IncrStat(pluginID, key string, delta int64) error {
	_, err := s.db.Exec(
		`INSERT INTO plugin_stats (plugin_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(plugin_id, key) DO UPDATE SET value = value + excluded.value`,
		pluginID, key, delta,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot increment stat %s/%s: %w", pluginID, key, err)
	}
	return nil
}

// Stats returns all stat keys for the plugin.
func (s *Store) Stats(pluginID string) (map[string]int64, error) {
	rows, err := s.db.Query(
		"SELECT key, value FROM plugin_stats WHERE plugin_id = ?",
		pluginID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int64)
	for rows.Next() {
		var key string
		var value int64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// RecordGameEnd updates the stat bag after a finished game: bumps
// games_played, adds the payout to total_winnings, and raises high_score
// when beaten.
func (s *Store) RecordGameEnd(pluginID string, score int) error {
	if err := s.IncrStat(pluginID, StatGamesPlayed, 1); err != nil {
		return err
	}
	if err := s.IncrStat(pluginID, StatTotalWinnings, int64(score)); err != nil {
		return err
	}

	high, err := s.GetStat(pluginID, StatHighScore)
	if err != nil {
		return err
	}
	if int64(score) > high {
		return s.SetStat(pluginID, StatHighScore, int64(score))
	}
	return nil
}

// parseCreatedAt handles both time.Time and string datetimes from the driver.
func parseCreatedAt(v any) time.Time {
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
