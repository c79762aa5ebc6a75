package score

import (
	"fmt"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// RecommendationFor maps an overall 0–100 score to its discrete tier.
// Pure and deterministic: the tier depends only on the score, never on
// which components produced it.
func RecommendationFor(overall int, w Weights) engine.Recommendation {
	switch {
	case overall >= w.HighlyRecommendedMin:
		return engine.HighlyRecommended
	case overall >= w.GoodMatchMin:
		return engine.GoodMatch
	case overall >= w.ConsiderMin:
		return engine.Consider
	default:
		return engine.PoorMatch
	}
}

// buildReasoning derives strengths, concerns, and suggestions from the
// component scores. All strings are generated from fixed templates so a
// re-score of identical input reproduces identical reasoning.
func buildReasoning(comp components, skills skillsResult, expGap, salaryGapPct float64, job engine.JobPosting) engine.ScoreReasoning {
	var r engine.ScoreReasoning

	// Skills.
	switch {
	case comp.skills >= 0.8:
		r.Strengths = append(r.Strengths, fmt.Sprintf("Strong skills match: %d of %d required skills covered", len(skills.matchedRequired), skills.totalRequired))
	case comp.skills < 0.4 && skills.totalSkills > 0:
		r.Concerns = append(r.Concerns, fmt.Sprintf("Skills coverage is thin: %d of %d required skills covered", len(skills.matchedRequired), skills.totalRequired))
		r.Suggestions = append(r.Suggestions, "Highlight adjacent skills and recent projects that compensate for the gaps")
	}

	// Experience.
	switch {
	case expGap < 0 && comp.experience < 0.7:
		r.Concerns = append(r.Concerns, fmt.Sprintf("Experience is %.1f years below the role's ideal", -expGap))
		r.Suggestions = append(r.Suggestions, "Emphasize transferable experience and measurable outcomes")
	case expGap > 0 && comp.experience <= 0.7:
		r.Concerns = append(r.Concerns, "Likely overqualified for this level")
	case comp.experience >= 0.9:
		r.Strengths = append(r.Strengths, "Experience sits squarely in the role's target band")
	}

	// Salary.
	switch {
	case comp.salary >= 0.9:
		r.Strengths = append(r.Strengths, "Salary band aligns with expectations")
	case comp.salary < 0.4:
		if salaryGapPct < 0 {
			r.Concerns = append(r.Concerns, fmt.Sprintf("Salary is about %.0f%% below expectations", -salaryGapPct))
			r.Suggestions = append(r.Suggestions, "Clarify the full compensation picture (equity, benefits) before ruling it out")
		} else {
			r.Concerns = append(r.Concerns, "Salary band does not line up with expectations")
		}
	}

	// Location.
	switch {
	case comp.location >= 0.9 && job.Remote:
		r.Strengths = append(r.Strengths, "Remote-friendly role matches location preferences")
	case comp.location >= 0.9:
		r.Strengths = append(r.Strengths, "Location matches preferences")
	case comp.location < 0.4:
		r.Concerns = append(r.Concerns, fmt.Sprintf("Location %q does not match any preferred location", job.Location))
	}

	// Company.
	if comp.company >= 0.8 {
		r.Strengths = append(r.Strengths, "Company profile fits industry and employment preferences")
	}

	// Requirements / deal breakers.
	if comp.requirements <= 0.1 {
		r.Concerns = append(r.Concerns, "A listed requirement matches one of your deal-breakers")
	}

	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Concerns == nil {
		r.Concerns = []string{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	return r
}

// scoreConfidence is a presence-weighted completeness estimate over job and
// profile fields — a heuristic, not a statistical measure.
func scoreConfidence(job engine.JobPosting, profile *engine.UserProfile) float64 {
	conf := 0.2
	if job.Salary.Min != nil || job.Salary.Max != nil {
		conf += 0.15
	}
	if len(job.Skills) > 0 {
		conf += 0.2
	}
	if len(job.Description) > 100 {
		conf += 0.1
	}
	if len(profile.Skills) > 0 {
		conf += 0.15
	}
	if profile.SalaryExpectations.Min > 0 || profile.SalaryExpectations.Max > 0 {
		conf += 0.1
	}
	if len(profile.LocationPreferences.Locations) > 0 || profile.LocationPreferences.RemoteOnly {
		conf += 0.1
	}
	return clamp01(conf)
}
