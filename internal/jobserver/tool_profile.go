package jobserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

func registerProfileTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_profile",
		Description: "Create or replace a user profile: skills with proficiency and recency, experience years, desired roles, salary expectations, location and employment preferences, deal-breakers, and priorities. Scoring and ranking require a saved profile.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SaveProfileInput) (*mcp.CallToolResult, engine.SaveProfileOutput, error) {
		if input.Profile.UserID == "" {
			return nil, engine.SaveProfileOutput{}, fmt.Errorf("profile.user_id is required")
		}
		if err := deps.Profiles.PutProfile(ctx, &input.Profile); err != nil {
			return nil, engine.SaveProfileOutput{}, fmt.Errorf("save profile: %w", err)
		}
		return nil, engine.SaveProfileOutput{
			UserID:  input.Profile.UserID,
			Message: fmt.Sprintf("profile saved with %d skills", len(input.Profile.Skills)),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_profile",
		Description: "Fetch a previously saved user profile by user_id.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.GetProfileInput) (*mcp.CallToolResult, engine.UserProfile, error) {
		if input.UserID == "" {
			return nil, engine.UserProfile{}, fmt.Errorf("user_id is required")
		}
		profile, err := deps.Profiles.GetProfile(ctx, input.UserID)
		if err != nil {
			return nil, engine.UserProfile{}, err
		}
		return nil, *profile, nil
	})
}
