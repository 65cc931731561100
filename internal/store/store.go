// Package store is the local key-value store behind the saved and read
// markers. Values are strings; id sets are stored as JSON arrays.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/muu0726/Tech-Information/internal/logger"
	_ "modernc.org/sqlite"
)

const keyLastCollect = "last_collect"

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	s := &Store{writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}
	s.readDB = readDB
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	return errors.Join(errs...)
}

// Get returns the value under key and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// LoadIDs reads an id list. A missing key, an unreadable row or a value
// that is not a JSON array of strings all yield an empty list.
func (s *Store) LoadIDs(key string) []string {
	value, ok, err := s.Get(key)
	if err != nil {
		logger.Warnf("[store] %v, starting with an empty set", err)
		return []string{}
	}
	if !ok {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		logger.Warnf("[store] ignoring malformed %s value: %v", key, err)
		return []string{}
	}
	if ids == nil {
		return []string{}
	}
	return ids
}

func (s *Store) SaveIDs(key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Set(key, string(data))
}

// NeedsCollect reports whether the last recorded collect run is older than
// interval, or missing.
func (s *Store) NeedsCollect(interval time.Duration) bool {
	value, ok, err := s.Get(keyLastCollect)
	if err != nil || !ok {
		return true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return true
	}
	return time.Since(t) > interval
}

func (s *Store) SetLastCollect() error {
	return s.Set(keyLastCollect, time.Now().Format(time.RFC3339))
}

// LastCollect returns the time of the last collect run, zero if unknown.
func (s *Store) LastCollect() time.Time {
	value, ok, err := s.Get(keyLastCollect)
	if err != nil || !ok {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Size returns the on-disk size of the database file.
func Size(dbPath string) (int64, error) {
	fi, err := os.Stat(dbPath)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", dbPath, err)
	}
	return fi.Size(), nil
}
