package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Local is the device-local persistence layer: a set of named slots, each
// holding one serialized list (a collection's records, or its outbox).
// Writes replace the whole slot. Reads never fail: a missing slot reads as
// nil and callers treat undecodable payloads as an empty list, so a damaged
// cache can never lock the user out of the app.
type Local struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (and if needed creates) the local store at the given path.
func Open(path string, logger *slog.Logger) (*Local, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	db.SetMaxOpenConns(1)

	// WAL keeps writes durable without blocking readers
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			key        TEXT PRIMARY KEY,
			payload    BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Local{db: db, logger: logger}, nil
}

// ReadAll returns the raw payload of a slot, or nil when the slot does not
// exist or cannot be read. Read errors are logged, never surfaced.
func (l *Local) ReadAll(slot string) []byte {
	var payload []byte
	err := l.db.QueryRow("SELECT payload FROM slots WHERE key = ?", slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		l.logger.Warn("local store read failed, treating slot as empty", "slot", slot, "error", err)
		return nil
	}
	return payload
}

// WriteAll replaces a slot's payload. The write is durable before returning.
func (l *Local) WriteAll(slot string, payload []byte) error {
	_, err := l.db.Exec(`
		INSERT INTO slots (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, slot, payload, time.Now())
	if err != nil {
		return fmt.Errorf("local store write failed for slot %s: %w", slot, err)
	}
	return nil
}

// Delete removes a slot. Missing slots are not an error.
func (l *Local) Delete(slot string) error {
	_, err := l.db.Exec("DELETE FROM slots WHERE key = ?", slot)
	return err
}

func (l *Local) Close() error {
	return l.db.Close()
}
