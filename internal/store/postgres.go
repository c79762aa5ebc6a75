package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Postgres persists records as JSONB documents behind a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres creates a pgx pool, verifies connectivity, and ensures
// the schema exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	if databaseURL == "" {
		return nil, errors.New("store: database URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: parse database URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("store: create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}

	slog.Info("postgres connected", slog.String("addr", config.ConnConfig.Host))
	return p, nil
}

// Close releases the pool.
func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS profiles (
		user_id    TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS scores (
		job_id     TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (job_id, user_id)
	);
	CREATE TABLE IF NOT EXISTS behaviors (
		user_id    TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

func (p *Postgres) GetProfile(ctx context.Context, userID string) (*engine.UserProfile, error) {
	return pgGet[engine.UserProfile](ctx, p.pool,
		`SELECT data FROM profiles WHERE user_id = $1`, "profile "+userID, userID)
}

func (p *Postgres) PutProfile(ctx context.Context, profile *engine.UserProfile) error {
	if profile == nil || profile.UserID == "" {
		return fmt.Errorf("store: profile requires a user id")
	}
	return pgPut(ctx, p.pool, `INSERT INTO profiles (user_id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		profile, profile.UserID)
}

func (p *Postgres) UpsertScore(ctx context.Context, s *engine.JobScore) error {
	if s == nil || s.JobID == "" || s.UserID == "" {
		return fmt.Errorf("store: score requires job and user ids")
	}
	return pgPut(ctx, p.pool, `INSERT INTO scores (job_id, user_id, data, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (job_id, user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		s, s.JobID, s.UserID)
}

func (p *Postgres) GetScore(ctx context.Context, jobID, userID string) (*engine.JobScore, error) {
	return pgGet[engine.JobScore](ctx, p.pool,
		`SELECT data FROM scores WHERE job_id = $1 AND user_id = $2`,
		fmt.Sprintf("score %s/%s", jobID, userID), jobID, userID)
}

func (p *Postgres) GetBehavior(ctx context.Context, userID string) (*engine.UserBehaviorPattern, error) {
	return pgGet[engine.UserBehaviorPattern](ctx, p.pool,
		`SELECT data FROM behaviors WHERE user_id = $1`, "behavior "+userID, userID)
}

func (p *Postgres) PutBehavior(ctx context.Context, b *engine.UserBehaviorPattern) error {
	if b == nil || b.UserID == "" {
		return fmt.Errorf("store: behavior requires a user id")
	}
	return pgPut(ctx, p.pool, `INSERT INTO behaviors (user_id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		b, b.UserID)
}

func pgGet[T any](ctx context.Context, pool *pgxpool.Pool, query, what string, args ...any) (*T, error) {
	var data []byte
	err := pool.QueryRow(ctx, query, args...).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, engine.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: %s: %w", what, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("postgres: decode %s: %w", what, err)
	}
	return &out, nil
}

func pgPut(ctx context.Context, pool *pgxpool.Pool, query string, v any, keys ...any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("postgres: encode: %w", err)
	}
	args := append(keys, data)
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("postgres: write: %w", err)
	}
	return nil
}
