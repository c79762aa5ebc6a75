package score

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// stubStore implements the profile and score store interfaces in memory.
type stubStore struct {
	profiles map[string]*engine.UserProfile
	scores   map[string]*engine.JobScore
	putErr   error
}

func newStubStore() *stubStore {
	return &stubStore{
		profiles: make(map[string]*engine.UserProfile),
		scores:   make(map[string]*engine.JobScore),
	}
}

func (s *stubStore) GetProfile(_ context.Context, userID string) (*engine.UserProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", userID, engine.ErrNotFound)
	}
	return p, nil
}

func (s *stubStore) PutProfile(_ context.Context, p *engine.UserProfile) error {
	s.profiles[p.UserID] = p
	return nil
}

func (s *stubStore) UpsertScore(_ context.Context, sc *engine.JobScore) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.scores[sc.JobID+"/"+sc.UserID] = sc
	return nil
}

func (s *stubStore) GetScore(_ context.Context, jobID, userID string) (*engine.JobScore, error) {
	sc, ok := s.scores[jobID+"/"+userID]
	if !ok {
		return nil, engine.ErrNotFound
	}
	return sc, nil
}

func intp(n int) *int { return &n }

func goodFitProfile() *engine.UserProfile {
	return &engine.UserProfile{
		UserID: "u1",
		Skills: []engine.UserSkill{
			{Name: "python", Proficiency: engine.ProficiencyAdvanced},
			{Name: "django", Proficiency: engine.ProficiencyIntermediate},
			{Name: "postgresql", Proficiency: engine.ProficiencyAdvanced},
		},
		ExperienceYears:    6,
		DesiredRoles:       []string{"Backend Engineer"},
		SalaryExpectations: engine.SalaryExpectations{Min: 110000, Max: 160000, Currency: "USD"},
		LocationPreferences: engine.LocationPreferences{
			Locations: []string{"San Francisco, CA"},
		},
	}
}

func backendJob() engine.JobPosting {
	return engine.JobPosting{
		ID:       "job-aaaa",
		Title:    "Senior Backend Engineer",
		Company:  "TechCorp",
		Location: "San Francisco, CA",
		Description: "Build backend services with Python and Django on PostgreSQL. " +
			"You will own services end to end and work with a senior team.",
		Salary:          engine.Salary{Min: intp(120000), Max: intp(150000), Currency: "USD", Period: "yearly"},
		EmploymentType:  engine.EmploymentFullTime,
		ExperienceLevel: engine.ExperienceSenior,
		Skills: []engine.ExtractedSkill{
			{Name: "python", Required: true, Confidence: 1.0},
			{Name: "django", Required: true, Confidence: 0.8},
			{Name: "postgresql", Required: false, Confidence: 0.85},
		},
	}
}

func TestScoreJobGoodFit(t *testing.T) {
	st := newStubStore()
	require.NoError(t, st.PutProfile(context.Background(), goodFitProfile()))
	s := New(st, st)

	result, err := s.ScoreJob(context.Background(), backendJob(), "u1", nil, nil)
	require.NoError(t, err)

	require.GreaterOrEqual(t, result.OverallScore, 80)
	require.Equal(t, engine.GoodMatch, result.Recommendation)
	require.InDelta(t, 100.0, result.Breakdown.LocationMatch, 1e-9)
	require.ElementsMatch(t, []string{"python", "django"}, result.Compatibility.MustHaveSkills)
	require.Contains(t, result.Compatibility.NiceToHaveSkills, "postgresql")
	require.NotEmpty(t, result.Reasoning.Strengths)

	// Persisted.
	stored, err := st.GetScore(context.Background(), "job-aaaa", "u1")
	require.NoError(t, err)
	require.Equal(t, result.OverallScore, stored.OverallScore)
}

func TestScoreJobPoorFit(t *testing.T) {
	st := newStubStore()
	profile := goodFitProfile()
	profile.ExperienceYears = 5
	require.NoError(t, st.PutProfile(context.Background(), profile))
	s := New(st, st)

	job := engine.JobPosting{
		ID:              "job-bbbb",
		Title:           "Chief Technology Officer",
		Company:         "MegaCorp",
		Location:        "New York, NY",
		Salary:          engine.Salary{Min: intp(60000), Max: intp(80000), Currency: "USD", Period: "yearly"},
		EmploymentType:  engine.EmploymentFullTime,
		ExperienceLevel: engine.ExperienceExecutive,
		Skills: []engine.ExtractedSkill{
			{Name: "java", Required: true, Confidence: 0.9},
			{Name: "kubernetes", Required: true, Confidence: 0.9},
		},
	}

	result, err := s.ScoreJob(context.Background(), job, "u1", nil, nil)
	require.NoError(t, err)
	require.Less(t, result.OverallScore, 50)
	require.Equal(t, engine.PoorMatch, result.Recommendation)
	require.NotEmpty(t, result.Reasoning.Concerns)
}

func TestScoreJobDeterministic(t *testing.T) {
	st := newStubStore()
	require.NoError(t, st.PutProfile(context.Background(), goodFitProfile()))
	fixed := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s := NewWithWeights(st, st, DefaultWeights())
	s.now = func() time.Time { return fixed }

	a, err := s.ScoreJob(context.Background(), backendJob(), "u1", nil, nil)
	require.NoError(t, err)
	b, err := s.ScoreJob(context.Background(), backendJob(), "u1", nil, nil)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestScoreJobMissingProfileIsFatal(t *testing.T) {
	st := newStubStore()
	s := New(st, st)

	_, err := s.ScoreJob(context.Background(), backendJob(), "ghost", nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, engine.ErrNotFound)
	require.Contains(t, err.Error(), "cannot score without a profile")
}

func TestScoreJobCriteriaOverrides(t *testing.T) {
	st := newStubStore()
	profile := goodFitProfile()
	profile.SalaryExpectations = engine.SalaryExpectations{Min: 300000, Max: 400000}
	require.NoError(t, st.PutProfile(context.Background(), profile))
	s := New(st, st)

	base, err := s.ScoreJob(context.Background(), backendJob(), "u1", nil, nil)
	require.NoError(t, err)

	// Shifting all weight onto the (bad) salary component must lower the score.
	salaryOnly, err := s.ScoreJob(context.Background(), backendJob(), "u1", nil, map[string]float64{
		WeightSkills: 0, WeightExperience: 0, WeightLocation: 0,
		WeightSalary: 1, WeightCompany: 0, WeightRequirements: 0,
	})
	require.NoError(t, err)
	require.Less(t, salaryOnly.OverallScore, base.OverallScore)
}

func TestBatchScoreJobsSortedAndIsolated(t *testing.T) {
	st := newStubStore()
	require.NoError(t, st.PutProfile(context.Background(), goodFitProfile()))
	s := New(st, st)

	good := backendJob()
	bad := backendJob()
	bad.ID = "job-cccc"
	bad.Skills = []engine.ExtractedSkill{{Name: "cobol", Required: true}}
	bad.Salary = engine.Salary{Min: intp(40000), Max: intp(50000)}
	bad.Location = "Tokyo, Japan"
	noID := backendJob()
	noID.ID = ""

	scores, err := s.BatchScoreJobs(context.Background(), []engine.JobPosting{bad, good, noID}, "u1", nil)
	require.NoError(t, err)
	require.Len(t, scores, 2, "job without an id is skipped")
	require.Equal(t, "job-aaaa", scores[0].JobID)
	require.GreaterOrEqual(t, scores[0].OverallScore, scores[1].OverallScore)
}

func TestBatchScoreJobsMissingProfile(t *testing.T) {
	st := newStubStore()
	s := New(st, st)
	_, err := s.BatchScoreJobs(context.Background(), []engine.JobPosting{backendJob()}, "ghost", nil)
	require.Error(t, err)
}

func TestRecommendationFor(t *testing.T) {
	w := DefaultWeights()
	tests := []struct {
		score int
		want  engine.Recommendation
	}{
		{100, engine.HighlyRecommended},
		{85, engine.HighlyRecommended},
		{84, engine.GoodMatch},
		{70, engine.GoodMatch},
		{69, engine.Consider},
		{50, engine.Consider},
		{49, engine.PoorMatch},
		{0, engine.PoorMatch},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RecommendationFor(tt.score, w), "score %d", tt.score)
	}
}

func TestScoreUpsertFailureIsNonFatal(t *testing.T) {
	st := newStubStore()
	require.NoError(t, st.PutProfile(context.Background(), goodFitProfile()))
	st.putErr = fmt.Errorf("disk full")
	s := New(st, st)

	result, err := s.ScoreJob(context.Background(), backendJob(), "u1", nil, nil)
	require.NoError(t, err)
	require.NotZero(t, result.OverallScore)
}
