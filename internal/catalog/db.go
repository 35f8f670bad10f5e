// Package catalog provides the SQLite-backed role catalog used by the
// catalog recommendation provider. The catalog is reference data seeded
// from YAML; it holds no user or session state.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a role does not exist.
var ErrNotFound = errors.New("role not found")

// Term kinds stored in role_terms.
const (
	kindSkill    = "skill"
	kindInterest = "interest"
	kindKeyword  = "keyword"
)

// Store wraps an SQLite connection holding the role catalog.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens the catalog at path, creating parent directories and
// applying migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{conn: conn, path: path}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Path returns the path to the database file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := s.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV1Roles},
		{2, migrationV2Terms},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := s.conn.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration v%d: %w", m.version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration v%d: %w", m.version, err)
		}
	}

	return nil
}

const migrationV1Roles = `
CREATE TABLE IF NOT EXISTS roles (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	summary TEXT NOT NULL DEFAULT ''
);
`

const migrationV2Terms = `
CREATE TABLE IF NOT EXISTS role_terms (
	role_id TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
	kind TEXT NOT NULL,
	term TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (role_id, kind, term)
);

CREATE INDEX IF NOT EXISTS idx_role_terms_kind ON role_terms(kind, term);
`

// Seed replaces the whole catalog with roles in a single transaction.
func (s *Store) Seed(ctx context.Context, roles []Role) error {
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM role_terms"); err != nil {
		return fmt.Errorf("clear role terms: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM roles"); err != nil {
		return fmt.Errorf("clear roles: %w", err)
	}

	for _, r := range roles {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO roles (id, title, summary) VALUES (?, ?, ?)",
			r.ID, r.Title, r.Summary,
		); err != nil {
			return fmt.Errorf("insert role %s: %w", r.ID, err)
		}

		terms := map[string][]string{
			kindSkill:    r.Skills,
			kindInterest: r.Interests,
			kindKeyword:  r.Keywords,
		}
		for kind, values := range terms {
			for i, term := range values {
				if _, err := tx.ExecContext(ctx,
					"INSERT OR IGNORE INTO role_terms (role_id, kind, term, position) VALUES (?, ?, ?, ?)",
					r.ID, kind, term, i,
				); err != nil {
					return fmt.Errorf("insert %s for role %s: %w", kind, r.ID, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// Count returns the number of roles in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM roles").Scan(&n); err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return n, nil
}

// Roles returns every role ordered by title.
func (s *Store) Roles(ctx context.Context) ([]Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.conn.QueryContext(ctx, "SELECT id, title, summary FROM roles ORDER BY title, id")
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}

	var roles []Role
	index := make(map[string]int)
	for rows.Next() {
		var r Role
		if err := rows.Scan(&r.ID, &r.Title, &r.Summary); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan role: %w", err)
		}
		index[r.ID] = len(roles)
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	rows.Close()

	terms, err := s.conn.QueryContext(ctx, "SELECT role_id, kind, term FROM role_terms ORDER BY role_id, kind, position")
	if err != nil {
		return nil, fmt.Errorf("query role terms: %w", err)
	}
	defer terms.Close()

	for terms.Next() {
		var roleID, kind, term string
		if err := terms.Scan(&roleID, &kind, &term); err != nil {
			return nil, fmt.Errorf("scan role term: %w", err)
		}
		i, ok := index[roleID]
		if !ok {
			continue
		}
		roles[i].addTerm(kind, term)
	}
	if err := terms.Err(); err != nil {
		return nil, fmt.Errorf("iterate role terms: %w", err)
	}

	return roles, nil
}

// Role returns a single role by ID.
func (s *Store) Role(ctx context.Context, id string) (Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Role
	err := s.conn.QueryRowContext(ctx,
		"SELECT id, title, summary FROM roles WHERE id = ?", id,
	).Scan(&r.ID, &r.Title, &r.Summary)
	if errors.Is(err, sql.ErrNoRows) {
		return Role{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Role{}, fmt.Errorf("query role %s: %w", id, err)
	}

	rows, err := s.conn.QueryContext(ctx,
		"SELECT kind, term FROM role_terms WHERE role_id = ? ORDER BY kind, position", id,
	)
	if err != nil {
		return Role{}, fmt.Errorf("query terms for role %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, term string
		if err := rows.Scan(&kind, &term); err != nil {
			return Role{}, fmt.Errorf("scan role term: %w", err)
		}
		r.addTerm(kind, term)
	}
	if err := rows.Err(); err != nil {
		return Role{}, fmt.Errorf("iterate role terms: %w", err)
	}
	return r, nil
}
