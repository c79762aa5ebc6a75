package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ParseRequests    atomic.Int64
	ParseLowConf     atomic.Int64
	ScoreRequests    atomic.Int64
	ScoreErrors      atomic.Int64
	BatchScoreJobs   atomic.Int64
	RankRequests     atomic.Int64
	BehaviorUpdates  atomic.Int64
	StoreWriteErrors atomic.Int64
}

// IncrParseRequests increments the parse request counter.
func IncrParseRequests() { metrics.ParseRequests.Add(1) }

// IncrParseLowConf increments the low-confidence extraction counter.
func IncrParseLowConf() { metrics.ParseLowConf.Add(1) }

// IncrScoreRequests increments the score request counter.
func IncrScoreRequests() { metrics.ScoreRequests.Add(1) }

// IncrScoreErrors increments the score error counter.
func IncrScoreErrors() { metrics.ScoreErrors.Add(1) }

// AddBatchScoreJobs adds n to the batch-scored jobs counter.
func AddBatchScoreJobs(n int) { metrics.BatchScoreJobs.Add(int64(n)) }

// IncrRankRequests increments the rank request counter.
func IncrRankRequests() { metrics.RankRequests.Add(1) }

// IncrBehaviorUpdates increments the behavior update counter.
func IncrBehaviorUpdates() { metrics.BehaviorUpdates.Add(1) }

// IncrStoreWriteErrors increments the store write error counter.
func IncrStoreWriteErrors() { metrics.StoreWriteErrors.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"parse_requests":     metrics.ParseRequests.Load(),
		"parse_low_conf":     metrics.ParseLowConf.Load(),
		"score_requests":     metrics.ScoreRequests.Load(),
		"score_errors":       metrics.ScoreErrors.Load(),
		"batch_score_jobs":   metrics.BatchScoreJobs.Load(),
		"rank_requests":      metrics.RankRequests.Load(),
		"behavior_updates":   metrics.BehaviorUpdates.Load(),
		"store_write_errors": metrics.StoreWriteErrors.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"parse_requests", "parse_low_conf",
		"score_requests", "score_errors", "batch_score_jobs",
		"rank_requests", "behavior_updates", "store_write_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
