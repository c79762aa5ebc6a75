// go_jobrank — job posting extraction, scoring, and ranking MCP server.
//
// Pipeline: parse_job extracts structured postings from raw text or HTML,
// score_job / batch_score_jobs rate them against a user profile, and
// rank_jobs / job_recommendations order them with a per-user adaptive
// model fed by record_interaction.
//
// Runs as HTTP MCP server or stdio transport. Storage is selected by
// environment: DATABASE_URL → Postgres, JOBRANK_DB → SQLite, neither →
// in-memory.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
	"github.com/anatolykoptev/go_jobrank/internal/engine/extract"
	"github.com/anatolykoptev/go_jobrank/internal/engine/rank"
	"github.com/anatolykoptev/go_jobrank/internal/engine/score"
	"github.com/anatolykoptev/go_jobrank/internal/jobserver"
	"github.com/anatolykoptev/go_jobrank/internal/store"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	c := engine.Config{
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		SQLitePath:           env.Str("JOBRANK_DB", ""),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		ParsePerMinute:       env.Int("PARSE_PER_MINUTE", 60),
	}
	engine.Init(c)
	engine.InitCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	stores, closeStores := openStores(c)
	defer closeStores()

	deps := jobserver.Deps{
		Parser:   extract.New(),
		Scorer:   score.New(stores, stores),
		Matcher:  rank.NewMatcher(stores),
		Profiles: stores,
		Scores:   stores,
	}

	slog.Info("starting go_jobrank",
		slog.String("port", mcpPort),
		slog.String("version", version),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_jobrank",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server, deps)
	slog.Info("tools registered", slog.Int("count", 9))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_jobrank",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

// backend is the full store surface behind one value.
type backend interface {
	engine.ProfileStore
	engine.ScoreStore
	engine.BehaviorStore
}

// openStores selects the persistence backend from configuration.
func openStores(c engine.Config) (backend, func()) {
	if c.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pg, err := store.ConnectPostgres(ctx, c.DatabaseURL)
		if err != nil {
			slog.Error("postgres init failed", slog.Any("error", err))
			os.Exit(1)
		}
		return pg, pg.Close
	}

	if c.SQLitePath != "" {
		db, err := store.OpenSQLite(c.SQLitePath)
		if err != nil {
			slog.Error("sqlite init failed", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("sqlite store opened", slog.String("path", c.SQLitePath))
		return db, func() { _ = db.Close() }
	}

	slog.Warn("no DATABASE_URL or JOBRANK_DB set, using in-memory stores")
	return store.NewMemory(), func() {}
}
