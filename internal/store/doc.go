// Package store provides SQLite-backed persistence for the movies table.
//
// Every write is a single auto-committed statement, so each call is its own
// durable transaction. Reads return full snapshots ordered by id ascending.
//
// Update and Delete on an id that no longer exists affect zero rows and
// return nil; callers refresh as usual.
//
// # Database Configuration
//
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON
//   - One pooled connection; the store is single-user
package store
