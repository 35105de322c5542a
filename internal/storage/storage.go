package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Position is the last committed item of a deck
type Position struct {
	Deck      string    `json:"deck"`
	Index     int       `json:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OpenDatabase opens the SQLite database and runs migrations
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pragmas (must be done outside of transactions)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}

	// Suppress goose logging
	goose.SetLogger(goose.NopLogger())

	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Store persists resume positions
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps an open database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open opens the database at path and wraps it in a Store
func Open(path string) (*Store, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Position returns the stored index for deck. ok is false if none is stored.
func (s *Store) Position(deck string) (index int, ok bool, err error) {
	err = s.db.QueryRow("SELECT item_index FROM positions WHERE deck = ?", deck).Scan(&index)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read position: %w", err)
	}
	return index, true, nil
}

// SavePosition records index as the last position of deck
func (s *Store) SavePosition(deck string, index int) error {
	_, err := s.db.Exec(`
		INSERT INTO positions (deck, item_index, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(deck) DO UPDATE SET item_index = excluded.item_index, updated_at = excluded.updated_at
	`, deck, index, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save position: %w", err)
	}
	return nil
}

// Positions lists every stored position, most recently updated first
func (s *Store) Positions() ([]Position, error) {
	rows, err := s.db.Query("SELECT deck, item_index, updated_at FROM positions ORDER BY updated_at DESC, deck")
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var p Position
		var updatedAt string
		if err := rows.Scan(&p.Deck, &p.Index, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// Forget deletes the stored position of deck. It reports whether one existed.
func (s *Store) Forget(deck string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM positions WHERE deck = ?", deck)
	if err != nil {
		return false, fmt.Errorf("failed to forget position: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
