// Package jobserver wires the extraction, scoring, and ranking engine into
// MCP tools: parse_job, save_profile, get_profile, score_job,
// batch_score_jobs, rank_jobs, job_recommendations, record_interaction,
// get_behavior.
package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
	"github.com/anatolykoptev/go_jobrank/internal/engine/extract"
	"github.com/anatolykoptev/go_jobrank/internal/engine/rank"
	"github.com/anatolykoptev/go_jobrank/internal/engine/score"
)

// Deps are the engine components the tools operate on, built in main.
type Deps struct {
	Parser   *extract.Parser
	Scorer   *score.Scorer
	Matcher  *rank.Matcher
	Profiles engine.ProfileStore
	Scores   engine.ScoreStore
}

// RegisterTools registers the full tool surface on the given MCP server.
func RegisterTools(server *mcp.Server, deps Deps) {
	registerParseJob(server, deps)
	registerProfileTools(server, deps)
	registerScoreJob(server, deps)
	registerBatchScoreJobs(server, deps)
	registerRankJobs(server, deps)
	registerRecommendations(server, deps)
	registerRecordInteraction(server, deps)
	registerGetBehavior(server, deps)
}
