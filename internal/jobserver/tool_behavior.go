package jobserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// validActions gates record_interaction input.
var validActions = map[engine.InteractionAction]bool{
	engine.ActionViewed:      true,
	engine.ActionSaved:       true,
	engine.ActionApplied:     true,
	engine.ActionRejected:    true,
	engine.ActionInterviewed: true,
	engine.ActionHired:       true,
}

func registerRecordInteraction(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_interaction",
		Description: "Record a user interaction with a posting (viewed, saved, applied, rejected, interviewed, hired) and update the user's behavioral model: application/response/success rates, view statistics, and learned title/company preferences. Include the job object so preferences can be learned from it.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.RecordInteractionInput) (*mcp.CallToolResult, engine.RecordInteractionOutput, error) {
		if input.UserID == "" {
			return nil, engine.RecordInteractionOutput{}, fmt.Errorf("user_id is required")
		}
		if input.JobID == "" {
			return nil, engine.RecordInteractionOutput{}, fmt.Errorf("job_id is required")
		}
		action := engine.InteractionAction(input.Action)
		if !validActions[action] {
			return nil, engine.RecordInteractionOutput{}, fmt.Errorf("unknown action %q", input.Action)
		}
		if input.FeedbackRating < 0 || input.FeedbackRating > 5 {
			return nil, engine.RecordInteractionOutput{}, fmt.Errorf("feedback_rating must be 1-5, or 0 for none")
		}

		interaction := engine.JobInteraction{
			UserID:         input.UserID,
			JobID:          input.JobID,
			Action:         action,
			Timestamp:      time.Now().UTC(),
			DurationViewed: input.DurationViewed,
			FeedbackRating: input.FeedbackRating,
		}
		behavior, err := deps.Matcher.UpdateUserBehavior(ctx, interaction, input.Job)
		if err != nil {
			return nil, engine.RecordInteractionOutput{}, err
		}
		return nil, engine.RecordInteractionOutput{
			UserID:   input.UserID,
			Behavior: *behavior,
			Message:  fmt.Sprintf("recorded %s for job %s", action, input.JobID),
		}, nil
	})
}

func registerGetBehavior(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_behavior",
		Description: "Fetch a user's behavioral model: application/response/success rates, view statistics, learned title and company preferences, and current model weights.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.GetBehaviorInput) (*mcp.CallToolResult, engine.UserBehaviorPattern, error) {
		if input.UserID == "" {
			return nil, engine.UserBehaviorPattern{}, fmt.Errorf("user_id is required")
		}
		behavior, err := deps.Matcher.Behavior(ctx, input.UserID)
		if err != nil {
			return nil, engine.UserBehaviorPattern{}, err
		}
		return nil, *behavior, nil
	})
}
