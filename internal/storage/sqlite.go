// Package storage provides SQLite-based persistence for player stats and
// the visit journal. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/citadelgame/citadel/internal/player"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// VisitEntry is one recorded interior action.
type VisitEntry struct {
	ID            int64
	Establishment string
	Action        string
	GoldDelta     int
	CreatedAt     time.Time
}

// EstablishmentStats aggregates the visit journal per establishment.
type EstablishmentStats struct {
	Establishment string
	Visits        int
	GoldSpent     int // Total gold paid out (positive number)
	LastVisit     time.Time
}

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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS player (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			health INTEGER NOT NULL,
			stamina INTEGER NOT NULL,
			charisma INTEGER NOT NULL,
			gold INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			establishment TEXT NOT NULL,
			action TEXT NOT NULL,
			gold_delta INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_visits_establishment ON visits(establishment);
		CREATE INDEX IF NOT EXISTS idx_visits_created ON visits(created_at DESC);
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

// LoadStats returns the persisted player stats, creating the default
// character on first run.
func (s *Store) LoadStats() (player.Stats, error) {
	var st player.Stats
	err := s.db.QueryRow(
		"SELECT health, stamina, charisma, gold FROM player WHERE id = 1",
	).Scan(&st.Health, &st.Stamina, &st.Charisma, &st.Gold)

	if err == sql.ErrNoRows {
		st = player.DefaultStats()
		if err := s.SaveStats(st); err != nil {
			return st, err
		}
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("storage: cannot load player: %w", err)
	}
	return st, nil
}

// SaveStats persists the player stats, overwriting the single row.
func (s *Store) SaveStats(st player.Stats) error {
	_, err := s.db.Exec(
		`INSERT INTO player (id, health, stamina, charisma, gold, updated_at)
		 VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			health = excluded.health,
			stamina = excluded.stamina,
			charisma = excluded.charisma,
			gold = excluded.gold,
			updated_at = CURRENT_TIMESTAMP`,
		st.Health, st.Stamina, st.Charisma, st.Gold,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save player: %w", err)
	}
	return nil
}

// RecordVisit logs one interior action. Returns the inserted row ID.
func (s *Store) RecordVisit(establishment, action string, goldDelta int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO visits (establishment, action, gold_delta) VALUES (?, ?, ?)",
		establishment, action, goldDelta,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentVisits retrieves the most recent visit entries, newest first.
func (s *Store) RecentVisits(limit int) ([]VisitEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, establishment, action, gold_delta, created_at
		 FROM visits
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visits: %w", err)
	}
	defer rows.Close()

	var entries []VisitEntry
	for rows.Next() {
		var e VisitEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Establishment, &e.Action, &e.GoldDelta, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// StatsByEstablishment aggregates the visit journal per establishment.
func (s *Store) StatsByEstablishment() ([]EstablishmentStats, error) {
	rows, err := s.db.Query(
		`SELECT establishment,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN gold_delta < 0 THEN -gold_delta ELSE 0 END), 0),
		        MAX(created_at)
		 FROM visits
		 GROUP BY establishment
		 ORDER BY establishment`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visit stats: %w", err)
	}
	defer rows.Close()

	var stats []EstablishmentStats
	for rows.Next() {
		var st EstablishmentStats
		var lastVisit any
		if err := rows.Scan(&st.Establishment, &st.Visits, &st.GoldSpent, &lastVisit); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastVisit = parseTimestamp(lastVisit)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearVisits deletes the entire visit journal.
func (s *Store) ClearVisits() error {
	if _, err := s.db.Exec("DELETE FROM visits"); err != nil {
		return fmt.Errorf("storage: cannot clear visits: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite datetime string.
func parseTimestamp(v any) time.Time {
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
