package announcement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS announcements (
	scope      TEXT NOT NULL,
	event_id   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (scope, event_id)
)`

// SQLiteConfig holds configuration for the SQLite announcement memory
type SQLiteConfig struct {
	// Path of the database file
	Path string
}

// sqliteMemory persists announced ids so restarts do not repeat announcements
type sqliteMemory struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) the announcement database at cfg.Path
func OpenSQLite(cfg *SQLiteConfig) (*sqliteMemory, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create announcements table: %w", err)
	}

	return &sqliteMemory{db: db}, nil
}

// Close closes the underlying database
func (m *sqliteMemory) Close() error {
	return m.db.Close()
}

func (m *sqliteMemory) Seen(ctx context.Context, scope Scope, id string) (bool, error) {
	var one int
	err := m.db.QueryRowContext(ctx,
		`SELECT 1 FROM announcements WHERE scope = ? AND event_id = ?`,
		string(scope), id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query announcement: %w", err)
	}
	return true, nil
}

func (m *sqliteMemory) Mark(ctx context.Context, scope Scope, id string) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO announcements (scope, event_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (scope, event_id) DO NOTHING`,
		string(scope), id, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

func (m *sqliteMemory) Prune(ctx context.Context, scope Scope, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin prune: %w", err)
	}
	defer tx.Rollback()

	removed := 0
	for _, id := range ids {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM announcements WHERE scope = ? AND event_id = ?`,
			string(scope), id,
		)
		if err != nil {
			return 0, fmt.Errorf("delete announcement: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("delete announcement: %w", err)
		}
		removed += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit prune: %w", err)
	}
	return removed, nil
}

func (m *sqliteMemory) List(ctx context.Context, scope Scope) ([]string, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT event_id FROM announcements WHERE scope = ? ORDER BY event_id`,
		string(scope),
	)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
