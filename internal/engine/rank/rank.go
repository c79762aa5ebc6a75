// Package rank orders postings for a user with an adaptive model: a fixed
// feature extractor combined with per-user weights and behavioral rates
// that drift as interactions are recorded.
package rank

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Matcher ranks jobs and maintains per-user behavioral state. Safe for
// concurrent use; updates to one user's pattern are serialized.
type Matcher struct {
	behaviors engine.BehaviorStore
	tunables  Tunables
	now       func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMatcher returns a Matcher with default tunables.
func NewMatcher(behaviors engine.BehaviorStore) *Matcher {
	return &Matcher{
		behaviors: behaviors,
		tunables:  DefaultTunables(),
		now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

// RankJobs orders the postings for the user by composite score, highest
// first. Equal scores keep input order, so re-ranking the same slice is
// deterministic. The input slice is not modified. A nil profile ranks
// against an empty one; ranking never fails for a missing profile.
func (m *Matcher) RankJobs(ctx context.Context, jobs []engine.JobPosting, profile *engine.UserProfile) ([]engine.RankedJob, error) {
	engine.IncrRankRequests()

	if profile == nil {
		profile = &engine.UserProfile{}
	}

	behavior, err := m.loadBehavior(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	ranked := make([]engine.RankedJob, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		features := m.featuresFor(ctx, job, profile, behavior)
		ranked = append(ranked, engine.RankedJob{
			Job:      job,
			MLScore:  compositeScore(features, behavior.ModelWeights, m.tunables),
			Features: features,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MLScore > ranked[j].MLScore
	})
	return ranked, nil
}

// Recommendations ranks the postings and returns the top limit entries
// with a one-line explanation each. limit <= 0 means no cap.
func (m *Matcher) Recommendations(ctx context.Context, jobs []engine.JobPosting, profile *engine.UserProfile, limit int) ([]engine.RankedJob, error) {
	ranked, err := m.RankJobs(ctx, jobs, profile)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Reasoning = explain(ranked[i].Features)
	}
	return ranked, nil
}

// featuresFor computes the feature vector, consulting the result cache
// first. The key includes the behavioral model's LastUpdated stamp so a
// pattern change invalidates the cached vector.
func (m *Matcher) featuresFor(ctx context.Context, job engine.JobPosting, profile *engine.UserProfile, behavior *engine.UserBehaviorPattern) engine.MLJobFeatures {
	key := engine.CacheKey("features", job.ID, profile.UserID, behavior.LastUpdated.UTC().Format(time.RFC3339Nano))
	if cached, ok := engine.CacheLoadJSON[engine.MLJobFeatures](ctx, key); ok {
		return cached
	}

	features := generateFeatures(job, profile, behavior, m.tunables)
	engine.CacheStoreJSON(ctx, key, features)
	return features
}

// compositeScore blends the content features under the user's adaptive
// weights with the three behavioral features under a fixed weight.
func compositeScore(f engine.MLJobFeatures, w engine.ModelWeights, t Tunables) float64 {
	score := f.SkillsCoverage*w.SkillsCoverage +
		f.SalaryFit*w.SalaryFit +
		f.LocationPreference*w.LocationPreference +
		f.TitleSimilarity*w.TitleSimilarity +
		f.ExperienceMatch*w.ExperienceMatch +
		t.BehavioralWeight*(f.ApplicationLikelihood+f.ResponseProbability+f.SuccessPrediction)
	return clamp01(score)
}

// explain produces a short deterministic rationale naming the strongest
// content features of the vector.
func explain(f engine.MLJobFeatures) string {
	type named struct {
		label string
		value float64
	}
	signals := []named{
		{"strong skills coverage", f.SkillsCoverage},
		{"title matches desired roles", f.TitleSimilarity},
		{"salary fits expectations", f.SalaryFit},
		{"location works", f.LocationPreference},
		{"experience lines up", f.ExperienceMatch},
	}

	var parts []string
	for _, s := range signals {
		if s.value >= 0.7 {
			parts = append(parts, s.label)
		}
	}
	if len(parts) == 0 {
		return "partial match on profile preferences"
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return "recommended: " + strings.Join(parts, "; ")
}

// Behavior returns the user's behavioral pattern, seeding defaults on
// first use.
func (m *Matcher) Behavior(ctx context.Context, userID string) (*engine.UserBehaviorPattern, error) {
	return m.loadBehavior(ctx, userID)
}

// loadBehavior fetches the user's pattern, seeding defaults on first use.
func (m *Matcher) loadBehavior(ctx context.Context, userID string) (*engine.UserBehaviorPattern, error) {
	behavior, err := m.behaviors.GetBehavior(ctx, userID)
	if err == nil {
		return behavior, nil
	}
	if !errorsIsNotFound(err) {
		return nil, fmt.Errorf("rank: load behavior for %q: %w", userID, err)
	}

	seeded := defaultPattern(userID, m.now())
	if putErr := m.behaviors.PutBehavior(ctx, seeded); putErr != nil {
		engine.IncrStoreWriteErrors()
		slog.Warn("behavior seed write failed", slog.String("user_id", userID), slog.Any("error", putErr))
	}
	return seeded, nil
}

// userLock returns the mutex serializing updates for one user.
func (m *Matcher) userLock(userID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	return lock
}
