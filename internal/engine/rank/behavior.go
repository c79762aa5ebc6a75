package rank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Conservative priors for a user with no interaction history.
const (
	defaultApplicationRate = 0.1
	defaultResponseRate    = 0.05
	defaultSuccessRate     = 0.02
)

// maxPreferred caps the learned title and company lists.
const maxPreferred = 20

// defaultPattern is the behavioral model seeded for a new user.
func defaultPattern(userID string, now time.Time) *engine.UserBehaviorPattern {
	return &engine.UserBehaviorPattern{
		UserID:             userID,
		ApplicationRate:    defaultApplicationRate,
		ResponseRate:       defaultResponseRate,
		SuccessRate:        defaultSuccessRate,
		PreferredTitles:    []string{},
		PreferredCompanies: []string{},
		ModelWeights:       defaultModelWeights(),
		LastUpdated:        now,
	}
}

// UpdateUserBehavior applies one interaction to the user's behavioral
// pattern and persists the result. job is the posting the interaction
// refers to and may be nil when only the rates should move. Updates for
// the same user are serialized.
func (m *Matcher) UpdateUserBehavior(ctx context.Context, interaction engine.JobInteraction, job *engine.JobPosting) (*engine.UserBehaviorPattern, error) {
	if interaction.UserID == "" {
		return nil, fmt.Errorf("rank: interaction has no user id")
	}

	lock := m.userLock(interaction.UserID)
	lock.Lock()
	defer lock.Unlock()

	behavior, err := m.loadBehavior(ctx, interaction.UserID)
	if err != nil {
		return nil, err
	}

	t := m.tunables
	switch interaction.Action {
	case engine.ActionViewed:
		behavior.ViewCount++
		if interaction.DurationViewed > 0 {
			n := float64(behavior.ViewCount)
			behavior.AvgViewSeconds += (interaction.DurationViewed - behavior.AvgViewSeconds) / n
		}
	case engine.ActionSaved:
		learnPreferences(behavior, job)
	case engine.ActionApplied:
		behavior.ApplicationRate = clamp01(behavior.ApplicationRate * t.AppliedBoost)
		learnPreferences(behavior, job)
	case engine.ActionInterviewed:
		behavior.ResponseRate = clamp01(behavior.ResponseRate * t.InterviewedBoost)
	case engine.ActionHired:
		behavior.SuccessRate = clamp01(behavior.SuccessRate * t.HiredBoost)
		behavior.ResponseRate = clamp01(behavior.ResponseRate * t.HiredBoost)
		learnPreferences(behavior, job)
	case engine.ActionRejected:
		if interaction.FeedbackRating > 0 && interaction.FeedbackRating <= t.LowRatingMax {
			behavior.ApplicationRate *= t.RejectedDiscount
			if behavior.ApplicationRate < t.RateFloor {
				behavior.ApplicationRate = t.RateFloor
			}
		}
	default:
		return nil, fmt.Errorf("rank: unknown interaction action %q", interaction.Action)
	}

	behavior.LastUpdated = m.now()
	engine.IncrBehaviorUpdates()

	_, err = engine.RetryDo(ctx, engine.DefaultRetryConfig, func() (struct{}, error) {
		return struct{}{}, m.behaviors.PutBehavior(ctx, behavior)
	})
	if err != nil {
		engine.IncrStoreWriteErrors()
		slog.Warn("behavior update write failed",
			slog.String("user_id", interaction.UserID),
			slog.String("action", string(interaction.Action)),
			slog.Any("error", err),
		)
		return behavior, fmt.Errorf("rank: persist behavior: %w", err)
	}
	return behavior, nil
}

// learnPreferences records the posting's title and company as positive
// signals, deduplicated and capped.
func learnPreferences(behavior *engine.UserBehaviorPattern, job *engine.JobPosting) {
	if job == nil {
		return
	}
	if job.Title != "" {
		behavior.PreferredTitles = appendUnique(behavior.PreferredTitles, job.Title)
	}
	if job.Company != "" {
		behavior.PreferredCompanies = appendUnique(behavior.PreferredCompanies, job.Company)
	}
}

// appendUnique appends s unless already present (case-insensitive),
// dropping the oldest entry when the list is full.
func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, s) {
			return list
		}
	}
	if len(list) >= maxPreferred {
		list = list[1:]
	}
	return append(list, s)
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, engine.ErrNotFound)
}
