package engine

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores when a record does not exist.
// The scorer treats a missing profile as fatal; the matcher seeds defaults.
var ErrNotFound = errors.New("not found")

// ProfileStore resolves user profiles.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	PutProfile(ctx context.Context, p *UserProfile) error
}

// ScoreStore persists scoring results, keyed by (job_id, user_id).
type ScoreStore interface {
	UpsertScore(ctx context.Context, s *JobScore) error
	GetScore(ctx context.Context, jobID, userID string) (*JobScore, error)
}

// BehaviorStore persists per-user behavioral models.
type BehaviorStore interface {
	GetBehavior(ctx context.Context, userID string) (*UserBehaviorPattern, error)
	PutBehavior(ctx context.Context, b *UserBehaviorPattern) error
}
