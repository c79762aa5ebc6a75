package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// SQLite persists records as JSON documents in a local database file.
// Rows carry the lookup keys as columns; everything else lives in the
// JSON blob so schema churn does not require migrations.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS profiles (
		user_id    TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS scores (
		job_id     TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (job_id, user_id)
	);
	CREATE TABLE IF NOT EXISTS behaviors (
		user_id    TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) GetProfile(ctx context.Context, userID string) (*engine.UserProfile, error) {
	return getJSON[engine.UserProfile](ctx, s.db,
		`SELECT data FROM profiles WHERE user_id = ?`, "profile "+userID, userID)
}

func (s *SQLite) PutProfile(ctx context.Context, p *engine.UserProfile) error {
	if p == nil || p.UserID == "" {
		return fmt.Errorf("store: profile requires a user id")
	}
	return putJSON(ctx, s.db, `INSERT INTO profiles (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		p, p.UserID)
}

func (s *SQLite) UpsertScore(ctx context.Context, sc *engine.JobScore) error {
	if sc == nil || sc.JobID == "" || sc.UserID == "" {
		return fmt.Errorf("store: score requires job and user ids")
	}
	return putJSON(ctx, s.db, `INSERT INTO scores (job_id, user_id, data, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (job_id, user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		sc, sc.JobID, sc.UserID)
}

func (s *SQLite) GetScore(ctx context.Context, jobID, userID string) (*engine.JobScore, error) {
	return getJSON[engine.JobScore](ctx, s.db,
		`SELECT data FROM scores WHERE job_id = ? AND user_id = ?`,
		fmt.Sprintf("score %s/%s", jobID, userID), jobID, userID)
}

func (s *SQLite) GetBehavior(ctx context.Context, userID string) (*engine.UserBehaviorPattern, error) {
	return getJSON[engine.UserBehaviorPattern](ctx, s.db,
		`SELECT data FROM behaviors WHERE user_id = ?`, "behavior "+userID, userID)
}

func (s *SQLite) PutBehavior(ctx context.Context, b *engine.UserBehaviorPattern) error {
	if b == nil || b.UserID == "" {
		return fmt.Errorf("store: behavior requires a user id")
	}
	return putJSON(ctx, s.db, `INSERT INTO behaviors (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		b, b.UserID)
}

// getJSON runs a single-row data lookup and decodes the JSON document.
func getJSON[T any](ctx context.Context, db *sql.DB, query, what string, args ...any) (*T, error) {
	var data []byte
	err := db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, engine.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: %s: %w", what, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("sqlite: decode %s: %w", what, err)
	}
	return &out, nil
}

// putJSON encodes v and executes the upsert with keys followed by the
// document and timestamp.
func putJSON(ctx context.Context, db *sql.DB, query string, v any, keys ...any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("sqlite: encode: %w", err)
	}
	args := append(keys, string(data), time.Now().UTC().Format(time.RFC3339))
	_, err = db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: write: %w", err)
	}
	return nil
}
