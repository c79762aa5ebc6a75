package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	DatabaseURL          string // Postgres DSN; empty = no Postgres stores
	SQLitePath           string // SQLite file path; empty = in-memory stores
	RedisURL             string // L2 cache; empty = L1 only
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	ParsePerMinute       int // parse_job rate limit, 0 = unlimited
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (extract, score, rank).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
