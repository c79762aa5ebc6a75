package jobserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

func registerScoreJob(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_job",
		Description: "Score one job posting against a user profile. Returns an overall 0-100 score, a six-component breakdown (skills, experience, location, salary, company, requirements), strengths/concerns/suggestions, compatibility detail, and a recommendation tier. Deterministic: same job and profile always give the same score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ScoreJobInput) (*mcp.CallToolResult, engine.JobScore, error) {
		if input.UserID == "" {
			return nil, engine.JobScore{}, fmt.Errorf("user_id is required")
		}
		if input.Job.ID == "" {
			return nil, engine.JobScore{}, fmt.Errorf("job.id is required; parse_job assigns one")
		}
		result, err := deps.Scorer.ScoreJob(ctx, input.Job, input.UserID, nil, input.Criteria)
		if err != nil {
			return nil, engine.JobScore{}, err
		}
		return nil, result, nil
	})
}

func registerBatchScoreJobs(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "batch_score_jobs",
		Description: "Score many job postings against a user profile in one call. The profile is resolved once; a bad posting is skipped rather than failing the batch. Returns scores sorted by overall score, descending.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.BatchScoreJobsInput) (*mcp.CallToolResult, engine.BatchScoreJobsOutput, error) {
		if input.UserID == "" {
			return nil, engine.BatchScoreJobsOutput{}, fmt.Errorf("user_id is required")
		}
		if len(input.Jobs) == 0 {
			return nil, engine.BatchScoreJobsOutput{Scores: []engine.JobScore{}}, nil
		}
		scores, err := deps.Scorer.BatchScoreJobs(ctx, input.Jobs, input.UserID, input.Criteria)
		if err != nil {
			return nil, engine.BatchScoreJobsOutput{}, err
		}
		return nil, engine.BatchScoreJobsOutput{Scores: scores, Total: len(scores)}, nil
	})
}
