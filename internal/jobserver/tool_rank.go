package jobserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

const defaultRecommendationLimit = 10

func registerRankJobs(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rank_jobs",
		Description: "Rank job postings for a user with the adaptive model: content features (title/description similarity, skills coverage, salary, location, experience) weighted by the user's learned model weights, plus behavioral likelihood features. Returns jobs sorted by ml_score with the full feature vector per job.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.RankJobsInput) (*mcp.CallToolResult, engine.RankJobsOutput, error) {
		profile, err := resolveProfile(ctx, deps, input.UserID)
		if err != nil {
			return nil, engine.RankJobsOutput{}, err
		}
		ranked, err := deps.Matcher.RankJobs(ctx, input.Jobs, profile)
		if err != nil {
			return nil, engine.RankJobsOutput{}, err
		}
		return nil, engine.RankJobsOutput{Ranked: ranked, Total: len(ranked)}, nil
	})
}

func registerRecommendations(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_recommendations",
		Description: "Rank candidate postings for a user and return the top matches, each with a one-line explanation of why it was recommended.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.RecommendationsInput) (*mcp.CallToolResult, engine.RankJobsOutput, error) {
		profile, err := resolveProfile(ctx, deps, input.UserID)
		if err != nil {
			return nil, engine.RankJobsOutput{}, err
		}
		limit := input.Limit
		if limit <= 0 {
			limit = defaultRecommendationLimit
		}
		ranked, err := deps.Matcher.Recommendations(ctx, input.Jobs, profile, limit)
		if err != nil {
			return nil, engine.RankJobsOutput{}, err
		}
		return nil, engine.RankJobsOutput{Ranked: ranked, Total: len(ranked)}, nil
	})
}

// resolveProfile loads the user's profile for ranking. Unlike scoring, a
// missing profile is not fatal here: ranking falls back to an empty profile
// and lets the behavioral model carry the personalization.
func resolveProfile(ctx context.Context, deps Deps, userID string) (*engine.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	profile, err := deps.Profiles.GetProfile(ctx, userID)
	if errors.Is(err, engine.ErrNotFound) {
		return &engine.UserProfile{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}
