// Package store keeps a local registry of sequences in DuckDB so that
// fetched and derived sequences can be saved and looked up by name.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"
)

// Record is one stored sequence.
type Record struct {
	ID        string
	Kind      string // dna, rna or protein
	Symbols   string
	Source    string // where the sequence came from, e.g. a file or accession
	CreatedAt time.Time
}

// Store manages a DuckDB connection for the sequence registry.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path, logger: zap.NewNop()}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// SetLogger sets the logger for debug messages.
func (s *Store) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS sequences (
		id VARCHAR PRIMARY KEY,
		kind VARCHAR,
		symbols VARCHAR,
		source VARCHAR,
		created_at TIMESTAMP
	)`)
	return err
}

// Put inserts a sequence, replacing any record with the same id.
// A zero CreatedAt is filled in with the current time.
func (s *Store) Put(rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO sequences (id, kind, symbols, source, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.Symbols, rec.Source, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("put sequence %s: %w", rec.ID, err)
	}

	s.logger.Debug("stored sequence",
		zap.String("id", rec.ID),
		zap.String("kind", rec.Kind),
		zap.Int("length", len(rec.Symbols)))
	return nil
}

// Get looks up a sequence by id. Returns sql.ErrNoRows if absent.
func (s *Store) Get(id string) (Record, error) {
	var rec Record
	err := s.db.QueryRow(
		`SELECT id, kind, symbols, source, created_at FROM sequences WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Kind, &rec.Symbols, &rec.Source, &rec.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("get sequence %s: %w", id, err)
	}
	return rec, nil
}

// List returns all stored sequences ordered by id.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, kind, symbols, source, created_at FROM sequences ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Symbols, &rec.Source, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sequence: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sequences: %w", err)
	}
	return records, nil
}

// Delete removes a sequence by id. Deleting an absent id is not an error.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM sequences WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete sequence %s: %w", id, err)
	}
	return nil
}

// Count returns the number of stored sequences.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sequences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sequences: %w", err)
	}
	return n, nil
}
