package store

import (
	"context"
	"errors"
	"fmt"

	"mymdb/internal/models"
)

var errClosed = errors.New("store is closed")

// DefaultSeed is the demo data offered on first run.
var DefaultSeed = []models.Movie{
	{Name: "Stalker", Score: 9},
	{Name: "Gattaca", Score: 8},
	{Name: "Starship Troopers", Score: 7},
}

// Insert appends a movie and returns the id the database assigned to it.
func (s *Store) Insert(ctx context.Context, name string, score int) (int64, error) {
	if s.db == nil {
		return 0, storageErr("insert", errClosed)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO movies (name, score) VALUES (?, ?)",
		name, score,
	)
	if err != nil {
		return 0, storageErr("insert", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("insert", err)
	}
	return id, nil
}

// Update replaces name and score of the movie with the given id.
// A missing id affects nothing and is not an error.
func (s *Store) Update(ctx context.Context, id int64, name string, score int) error {
	if s.db == nil {
		return storageErr("update", errClosed)
	}

	_, err := s.db.ExecContext(ctx,
		"UPDATE movies SET name = ?, score = ? WHERE id = ?",
		name, score, id,
	)
	if err != nil {
		return storageErr("update", err)
	}
	return nil
}

// Delete removes the movie with the given id. A missing id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if s.db == nil {
		return storageErr("delete", errClosed)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id); err != nil {
		return storageErr("delete", err)
	}
	return nil
}

// FetchAll returns every movie ordered by id ascending.
func (s *Store) FetchAll(ctx context.Context) ([]models.Movie, error) {
	if s.db == nil {
		return nil, storageErr("fetch", errClosed)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, score FROM movies ORDER BY id ASC")
	if err != nil {
		return nil, storageErr("fetch", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Score); err != nil {
			return nil, storageErr("fetch", fmt.Errorf("scan movie: %w", err))
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("fetch", err)
	}

	return movies, nil
}

// Count returns the number of movies.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storageErr("count", errClosed)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		return 0, storageErr("count", err)
	}
	return n, nil
}

// Seed inserts movies in one transaction, but only into an empty table.
// It returns how many rows were written.
func (s *Store) Seed(ctx context.Context, movies []models.Movie) (int, error) {
	if s.db == nil {
		return 0, storageErr("seed", errClosed)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("seed", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n); err != nil {
		return 0, storageErr("seed", err)
	}
	if n > 0 {
		return 0, nil
	}

	for _, m := range movies {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO movies (name, score) VALUES (?, ?)",
			m.Name, m.Score,
		); err != nil {
			return 0, storageErr("seed", fmt.Errorf("insert %q: %w", m.Name, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("seed", err)
	}
	return len(movies), nil
}
