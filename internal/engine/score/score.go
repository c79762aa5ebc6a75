// Package score rates a structured job posting against a user profile.
// The model is a weighted blend of six component scores, each a pure
// function of the posting and the profile, so identical inputs always
// produce identical output.
package score

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// components holds the six sub-scores, each in [0,1].
type components struct {
	skills       float64
	experience   float64
	location     float64
	salary       float64
	company      float64
	requirements float64
}

// Scorer rates jobs against profiles. Safe for concurrent use.
// The ScoreStore is optional; when set, results are persisted best-effort
// after each scoring call.
type Scorer struct {
	profiles engine.ProfileStore
	scores   engine.ScoreStore
	weights  Weights
	now      func() time.Time
}

// New returns a Scorer with the default weights.
func New(profiles engine.ProfileStore, scores engine.ScoreStore) *Scorer {
	return &Scorer{
		profiles: profiles,
		scores:   scores,
		weights:  DefaultWeights(),
		now:      time.Now,
	}
}

// NewWithWeights returns a Scorer with a custom model.
func NewWithWeights(profiles engine.ProfileStore, scores engine.ScoreStore, w Weights) *Scorer {
	return &Scorer{profiles: profiles, scores: scores, weights: w, now: time.Now}
}

// ScoreJob rates one posting for one user. A nil profile is resolved from
// the profile store; a missing profile is the one fatal error of the
// scorer. criteria optionally overrides individual component weights.
func (s *Scorer) ScoreJob(ctx context.Context, job engine.JobPosting, userID string, profile *engine.UserProfile, criteria map[string]float64) (engine.JobScore, error) {
	engine.IncrScoreRequests()

	if profile == nil {
		var err error
		profile, err = s.resolveProfile(ctx, userID)
		if err != nil {
			engine.IncrScoreErrors()
			return engine.JobScore{}, err
		}
	}

	w := s.weights.withOverrides(criteria)
	result := s.scoreAgainst(job, profile, w)
	s.persist(ctx, &result)
	return result, nil
}

// BatchScoreJobs rates many postings for one user, resolving the profile
// once. A failure on one job is logged and skipped rather than failing the
// batch. Results come back sorted by overall score, descending; ties keep
// input order.
func (s *Scorer) BatchScoreJobs(ctx context.Context, jobs []engine.JobPosting, userID string, criteria map[string]float64) ([]engine.JobScore, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		engine.IncrScoreErrors()
		return nil, err
	}

	w := s.weights.withOverrides(criteria)
	engine.AddBatchScoreJobs(len(jobs))
	results := make([]engine.JobScore, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if job.ID == "" {
			slog.Warn("skipping job with empty id in batch", slog.String("title", job.Title))
			continue
		}
		result := s.scoreAgainst(job, profile, w)
		s.persist(ctx, &result)
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
	return results, nil
}

// resolveProfile fetches the user's profile, mapping a missing record to
// the scorer's single fatal condition.
func (s *Scorer) resolveProfile(ctx context.Context, userID string) (*engine.UserProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cannot score without a profile for user %q: %w", userID, err)
	}
	return profile, nil
}

// scoreAgainst runs the pure scoring model.
func (s *Scorer) scoreAgainst(job engine.JobPosting, profile *engine.UserProfile, w Weights) engine.JobScore {
	skills := skillsMatch(job.Skills, profile.Skills, w, s.now())
	expScore, expGap := experienceMatch(job.ExperienceLevel, profile.ExperienceYears, w)
	salScore, salGapPct := salaryMatch(job.Salary, profile.SalaryExpectations, w)

	comp := components{
		skills:       skills.score,
		experience:   expScore,
		location:     locationMatch(job, profile.LocationPreferences, w),
		salary:       salScore,
		company:      companyMatch(job, profile.EmploymentPreferences, w),
		requirements: requirementsMatch(job.Requirements, profile.DealBreakers, w),
	}

	weighted := comp.skills*w.Skills +
		comp.experience*w.Experience +
		comp.location*w.Location +
		comp.salary*w.Salary +
		comp.company*w.Company +
		comp.requirements*w.Requirements
	overall := int(math.Round(clamp01(weighted) * 100))

	matchedRequired := skills.matchedRequired
	if matchedRequired == nil {
		matchedRequired = []string{}
	}
	matchedOptional := skills.matchedOptional
	if matchedOptional == nil {
		matchedOptional = []string{}
	}

	return engine.JobScore{
		JobID:        job.ID,
		UserID:       profile.UserID,
		OverallScore: overall,
		Breakdown: engine.ScoreBreakdown{
			SkillsMatch:       comp.skills * 100,
			ExperienceMatch:   comp.experience * 100,
			LocationMatch:     comp.location * 100,
			SalaryMatch:       comp.salary * 100,
			CompanyMatch:      comp.company * 100,
			RequirementsMatch: comp.requirements * 100,
		},
		Reasoning: buildReasoning(comp, skills, expGap, salGapPct, job),
		Compatibility: engine.Compatibility{
			MustHaveSkills:   matchedRequired,
			NiceToHaveSkills: matchedOptional,
			ExperienceGap:    expGap,
			SalaryGap:        salGapPct,
		},
		Recommendation: RecommendationFor(overall, w),
		Confidence:     scoreConfidence(job, profile),
		ScoredAt:       s.now(),
	}
}

// persist upserts the score best-effort. Storage trouble never fails a
// scoring call; it is logged and counted instead.
func (s *Scorer) persist(ctx context.Context, result *engine.JobScore) {
	if s.scores == nil {
		return
	}
	_, err := engine.RetryDo(ctx, engine.DefaultRetryConfig, func() (struct{}, error) {
		return struct{}{}, s.scores.UpsertScore(ctx, result)
	})
	if err != nil {
		engine.IncrStoreWriteErrors()
		slog.Warn("score upsert failed",
			slog.String("job_id", result.JobID),
			slog.String("user_id", result.UserID),
			slog.Any("error", err),
		)
	}
}
