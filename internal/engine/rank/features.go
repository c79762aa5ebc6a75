package rank

import (
	"strings"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Tunables collects the numeric constants of the ranking model.
type Tunables struct {
	// Fixed weight applied to each of the three behavioral features when
	// composing the final score. The five content weights live in the
	// per-user ModelWeights and adapt over time; this one does not.
	BehavioralWeight float64

	// Behavioral feature multipliers. Each fires when the posting matches
	// a learned preference; the product is clamped to 1.
	PreferredTitleBoost   float64
	PreferredCompanyBoost float64
	SalaryWindowBoost     float64
	RemoteBoost           float64
	FewRequirementsBoost  float64
	FewRequirementsMax    int // "few" means at most this many required skills

	// Interaction nudges applied by UpdateUserBehavior.
	AppliedBoost     float64
	HiredBoost       float64
	InterviewedBoost float64
	RejectedDiscount float64
	RateFloor        float64
	LowRatingMax     int // feedback at or below this counts as negative

	// Neutral feature values when a side of the comparison is unstated.
	NeutralFit float64
	// Feature value on an explicit mismatch of a stated preference.
	MismatchFit float64
}

// DefaultTunables returns the standard ranking model constants.
func DefaultTunables() Tunables {
	return Tunables{
		BehavioralWeight: 0.1,

		PreferredTitleBoost:   1.5,
		PreferredCompanyBoost: 1.3,
		SalaryWindowBoost:     1.2,
		RemoteBoost:           1.15,
		FewRequirementsBoost:  1.05,
		FewRequirementsMax:    5,

		AppliedBoost:     1.05,
		HiredBoost:       1.1,
		InterviewedBoost: 1.1,
		RejectedDiscount: 0.95,
		RateFloor:        0.05,
		LowRatingMax:     2,

		NeutralFit:  0.5,
		MismatchFit: 0.2,
	}
}

// defaultModelWeights are the content weights every new user starts with.
// Together with 3 × BehavioralWeight they sum to 1.0.
func defaultModelWeights() engine.ModelWeights {
	return engine.ModelWeights{
		SkillsCoverage:     0.25,
		SalaryFit:          0.15,
		LocationPreference: 0.1,
		TitleSimilarity:    0.1,
		ExperienceMatch:    0.1,
	}
}

// generateFeatures computes the full feature vector for one (job, profile)
// pair under the user's behavioral pattern. Pure: identical inputs yield an
// identical vector.
func generateFeatures(job engine.JobPosting, profile *engine.UserProfile, behavior *engine.UserBehaviorPattern, t Tunables) engine.MLJobFeatures {
	var f engine.MLJobFeatures

	titleKW := extractKeywords(job.Title)
	for _, role := range profile.DesiredRoles {
		if sim := overlapCoefficient(titleKW, extractKeywords(role)); sim > f.TitleSimilarity {
			f.TitleSimilarity = sim
		}
	}

	f.DescriptionSimilarity = jaccard(extractKeywords(job.Description), profileKeywords(profile))

	f.SkillsCoverage, f.RequiredSkillsRatio = skillCoverage(job.Skills, profile.Skills, t)
	f.ExperienceMatch = experienceFit(job.ExperienceLevel, profile.ExperienceYears)
	f.SalaryFit = salaryFit(job.Salary, profile.SalaryExpectations, t)
	f.LocationPreference = locationFit(job, profile.LocationPreferences, t)
	f.RemoteMatch = remoteFit(job.Remote, profile.LocationPreferences)
	f.EmploymentTypeMatch = employmentTypeFit(job.EmploymentType, profile.EmploymentPreferences.Types, t)
	f.IndustryAffinity = listFit(job.Metadata.Industry, profile.EmploymentPreferences.Industries, t)
	f.CompanySizeMatch = sizeFit(job.Metadata.CompanySize, profile.EmploymentPreferences.CompanySizes, t)

	boost := behavioralBoost(job, profile.SalaryExpectations, behavior, t)
	f.ApplicationLikelihood = clamp01(behavior.ApplicationRate * boost)
	f.ResponseProbability = clamp01(behavior.ResponseRate * boost)
	f.SuccessPrediction = clamp01(behavior.SuccessRate * boost)

	return f
}

// profileKeywords is the keyword set of the user's skills and desired roles.
func profileKeywords(profile *engine.UserProfile) map[string]bool {
	var b strings.Builder
	for _, s := range profile.Skills {
		b.WriteString(s.Name)
		b.WriteByte(' ')
	}
	for _, r := range profile.DesiredRoles {
		b.WriteString(r)
		b.WriteByte(' ')
	}
	return extractKeywords(b.String())
}

// skillCoverage is the fraction of posting skills the user has, and the
// fraction of required ones. No listed skills is neutral; no required
// skills counts as full required coverage.
func skillCoverage(jobSkills []engine.ExtractedSkill, userSkills []engine.UserSkill, t Tunables) (coverage, requiredRatio float64) {
	if len(jobSkills) == 0 {
		return t.NeutralFit, 1.0
	}
	have := make(map[string]bool, len(userSkills))
	for _, us := range userSkills {
		have[strings.ToLower(us.Name)] = true
	}

	matched, matchedReq, totalReq := 0, 0, 0
	for _, js := range jobSkills {
		if js.Required {
			totalReq++
		}
		if have[js.Name] {
			matched++
			if js.Required {
				matchedReq++
			}
		}
	}

	coverage = float64(matched) / float64(len(jobSkills))
	requiredRatio = 1.0
	if totalReq > 0 {
		requiredRatio = float64(matchedReq) / float64(totalReq)
	}
	return coverage, requiredRatio
}

// levelYears is the minimum years each posting level implies.
var levelYears = map[engine.ExperienceLevel]float64{
	engine.ExperienceEntry:     0,
	engine.ExperienceMid:       2,
	engine.ExperienceSenior:    5,
	engine.ExperienceLead:      8,
	engine.ExperienceExecutive: 10,
}

// experienceFit is 1.0 at or above the level's minimum years, decaying with
// the shortfall below it.
func experienceFit(level engine.ExperienceLevel, years float64) float64 {
	minYears, ok := levelYears[level]
	if !ok || minYears == 0 {
		return 1.0
	}
	if years >= minYears {
		return 1.0
	}
	return clamp01(years / minYears)
}

// salaryFit is 1.0 when the bands overlap, decaying with the relative gap
// otherwise. Missing data on either side is neutral.
func salaryFit(sal engine.Salary, exp engine.SalaryExpectations, t Tunables) float64 {
	if (sal.Min == nil && sal.Max == nil) || (exp.Min == 0 && exp.Max == 0) {
		return t.NeutralFit
	}
	if salaryInWindow(sal, exp) {
		return 1.0
	}
	jobMin, jobMax := bounds(sal)
	if jobMax < exp.Min {
		if exp.Min == 0 {
			return 0
		}
		return clamp01(1 - float64(exp.Min-jobMax)/float64(exp.Min))
	}
	if exp.Max == 0 {
		return 0
	}
	return clamp01(1 - float64(jobMin-exp.Max)/float64(exp.Max))
}

// salaryInWindow reports whether a stated salary band overlaps the user's
// stated expectation window. False when either side is unstated.
func salaryInWindow(sal engine.Salary, exp engine.SalaryExpectations) bool {
	if (sal.Min == nil && sal.Max == nil) || (exp.Min == 0 && exp.Max == 0) {
		return false
	}
	jobMin, jobMax := bounds(sal)
	return jobMax >= exp.Min && jobMin <= exp.Max
}

func bounds(sal engine.Salary) (int, int) {
	switch {
	case sal.Min != nil && sal.Max != nil:
		return *sal.Min, *sal.Max
	case sal.Min != nil:
		return *sal.Min, *sal.Min
	default:
		return *sal.Max, *sal.Max
	}
}

// locationFit mirrors the scorer's location tiers in simplified form.
func locationFit(job engine.JobPosting, prefs engine.LocationPreferences, t Tunables) float64 {
	if prefs.RemoteOnly {
		if job.Remote {
			return 1.0
		}
		return 0.0
	}
	if job.Remote {
		return 1.0
	}
	jobLoc := strings.ToLower(strings.TrimSpace(job.Location))
	for _, loc := range prefs.Locations {
		if strings.EqualFold(strings.TrimSpace(loc), jobLoc) {
			return 1.0
		}
	}
	if len(prefs.Locations) == 0 {
		return t.NeutralFit
	}
	if prefs.WillingToRelocate {
		return t.NeutralFit
	}
	return t.MismatchFit
}

// remoteFit measures agreement between the posting's remote flag and the
// user's stated preference.
func remoteFit(jobRemote bool, prefs engine.LocationPreferences) float64 {
	if prefs.RemoteOnly {
		if jobRemote {
			return 1.0
		}
		return 0.0
	}
	if jobRemote {
		return 1.0
	}
	return 0.7
}

func employmentTypeFit(et engine.EmploymentType, prefs []engine.EmploymentType, t Tunables) float64 {
	if len(prefs) == 0 {
		return 1.0
	}
	for _, p := range prefs {
		if p == et {
			return 1.0
		}
	}
	return t.MismatchFit
}

// listFit compares two case-insensitive string sets: no stated preference
// is neutral, any overlap is a full match, a stated-but-missed preference
// scores the mismatch value.
func listFit(jobVals, prefVals []string, t Tunables) float64 {
	if len(prefVals) == 0 || len(jobVals) == 0 {
		return t.NeutralFit
	}
	for _, p := range prefVals {
		for _, j := range jobVals {
			if strings.EqualFold(p, j) {
				return 1.0
			}
		}
	}
	return t.MismatchFit
}

func sizeFit(jobSize string, prefSizes []string, t Tunables) float64 {
	if len(prefSizes) == 0 || jobSize == "" {
		return t.NeutralFit
	}
	for _, p := range prefSizes {
		if strings.EqualFold(p, jobSize) {
			return 1.0
		}
	}
	return t.MismatchFit
}

// behavioralBoost multiplies the base behavioral rates up when the posting
// matches learned preferences: title, company, a salary inside the user's
// expectation window, remote, and a short required-skill list.
func behavioralBoost(job engine.JobPosting, exp engine.SalaryExpectations, behavior *engine.UserBehaviorPattern, t Tunables) float64 {
	boost := 1.0

	titleLower := strings.ToLower(job.Title)
	for _, pt := range behavior.PreferredTitles {
		if pt != "" && strings.Contains(titleLower, strings.ToLower(pt)) {
			boost *= t.PreferredTitleBoost
			break
		}
	}
	for _, pc := range behavior.PreferredCompanies {
		if strings.EqualFold(pc, job.Company) {
			boost *= t.PreferredCompanyBoost
			break
		}
	}
	if salaryInWindow(job.Salary, exp) {
		boost *= t.SalaryWindowBoost
	}
	if job.Remote {
		boost *= t.RemoteBoost
	}
	required := 0
	for _, s := range job.Skills {
		if s.Required {
			required++
		}
	}
	if required > 0 && required <= t.FewRequirementsMax {
		boost *= t.FewRequirementsBoost
	}

	return boost
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
