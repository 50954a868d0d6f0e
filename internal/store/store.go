package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// StorageError reports a read or write the database could not complete.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Store is the movies table in a local SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and makes sure
// the movies table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, storageErr("open", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storageErr("open", fmt.Errorf("failed to connect to database: %w", err))
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, storageErr("open", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, storageErr("open", fmt.Errorf("failed to apply schema: %w", err))
	}

	return &Store{db: db}, nil
}

// Close releases the connection. Safe to call more than once.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return storageErr("close", err)
	}
	return nil
}

// Shutdown lets the store be registered with the shutdown manager.
func (s *Store) Shutdown() {
	_ = s.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
