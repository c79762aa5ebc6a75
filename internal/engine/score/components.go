package score

import (
	"strings"
	"time"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Each component scorer is a pure function job × profile → [0,1].
// The scorer blends them with the component weights and scales to 0–100.

// skillsResult carries the skills component score plus the match detail
// needed for compatibility and reasoning output.
type skillsResult struct {
	score           float64
	matchedRequired []string
	matchedOptional []string
	totalRequired   int
	totalSkills     int
}

// skillsMatch scores skill coverage. Required skills weigh double; a
// matched skill contributes its proficiency score adjusted for recency of
// last use. The raw weighted coverage is blended 70/30 with the
// required-only ratio so missing required skills hurt even when optional
// coverage is high.
func skillsMatch(jobSkills []engine.ExtractedSkill, userSkills []engine.UserSkill, w Weights, now time.Time) skillsResult {
	res := skillsResult{totalSkills: len(jobSkills)}
	if len(jobSkills) == 0 {
		res.score = w.EmptySkillsScore
		return res
	}

	bySkill := make(map[string]engine.UserSkill, len(userSkills))
	for _, us := range userSkills {
		bySkill[strings.ToLower(us.Name)] = us
	}

	var matchedWeight, totalWeight float64
	for _, js := range jobSkills {
		weight := w.OptionalSkillWeight
		if js.Required {
			weight = w.RequiredSkillWeight
			res.totalRequired++
		}
		totalWeight += weight

		us, ok := bySkill[js.Name]
		if !ok {
			continue
		}

		contrib := w.ProficiencyScores[us.Proficiency]
		if contrib == 0 {
			contrib = w.ProficiencyScores[engine.ProficiencyIntermediate]
		}
		contrib *= recencyFactor(us.LastUsed, now, w)
		if contrib > 1 {
			contrib = 1
		}
		matchedWeight += weight * contrib

		if js.Required {
			res.matchedRequired = append(res.matchedRequired, js.Name)
		} else {
			res.matchedOptional = append(res.matchedOptional, js.Name)
		}
	}

	raw := matchedWeight / totalWeight

	requiredRatio := 1.0
	if res.totalRequired > 0 {
		requiredRatio = float64(len(res.matchedRequired)) / float64(res.totalRequired)
	}

	res.score = w.RawBlend*raw + w.RequiredBlend*requiredRatio
	return res
}

// recencyFactor boosts skills used within the recency window and discounts
// skills idle beyond the stale window. A zero LastUsed is treated neutrally.
func recencyFactor(lastUsed, now time.Time, w Weights) float64 {
	if lastUsed.IsZero() {
		return 1.0
	}
	months := now.Sub(lastUsed).Hours() / (24 * 30)
	switch {
	case months < float64(w.RecencyMonths):
		return w.RecencyBoost
	case months > float64(w.StaleMonths):
		return w.StaleDiscount
	default:
		return 1.0
	}
}

// experienceMatch scores the user's years against the posting level's band.
// Inside the band the score decays linearly from 1.0 at the ideal point to
// the edge score at either end. Below the minimum it degrades with the
// shortfall; above the maximum it settles on a gentle overqualified floor,
// since overqualification carries less rejection risk.
func experienceMatch(level engine.ExperienceLevel, years float64, w Weights) (score, gap float64) {
	band, ok := experienceBands[level]
	if !ok {
		band = experienceBands[engine.ExperienceMid]
	}
	gap = years - band.ideal

	switch {
	case years < band.min:
		if band.min == 0 {
			return 1.0, gap
		}
		return (years / band.min) * w.BandEdgeScore, gap
	case years > band.max:
		return w.OverqualifiedScore, gap
	default:
		var span float64
		if years <= band.ideal {
			span = band.ideal - band.min
		} else {
			span = band.max - band.ideal
		}
		if span == 0 {
			return 1.0, gap
		}
		dist := years - band.ideal
		if dist < 0 {
			dist = -dist
		}
		return 1.0 - (1.0-w.BandEdgeScore)*(dist/span), gap
	}
}

// locationMatch scores work-location fit. A remote-only user gets a binary
// answer from the remote flag. Otherwise remote jobs always fit; on-site
// jobs fall through exact, partial (same trailing region token), and miss
// tiers, with relocation willingness softening the lower tiers.
func locationMatch(job engine.JobPosting, prefs engine.LocationPreferences, w Weights) float64 {
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
	for _, loc := range prefs.Locations {
		if regionToken(loc) != "" && regionToken(loc) == regionToken(jobLoc) {
			if prefs.WillingToRelocate {
				return w.PartialRelocate
			}
			return w.PartialStay
		}
	}
	if prefs.WillingToRelocate {
		return w.MissRelocate
	}
	return w.MissStay
}

// regionToken is the trailing comma-separated token of a location string,
// lower-cased ("San Francisco, CA" → "ca").
func regionToken(loc string) string {
	parts := strings.Split(loc, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}

// salaryMatch scores band overlap between the posting salary and the
// user's expectations. Overlapping bands start at the overlap base and earn
// a bonus scaled by overlap-to-average-range ratio. A job paying entirely
// below expectations degrades with the gap; entirely above degrades more
// gently since an above-band offer is still viable.
func salaryMatch(sal engine.Salary, exp engine.SalaryExpectations, w Weights) (score, gapPct float64) {
	if sal.Min == nil && sal.Max == nil {
		return w.NoSalaryScore, 0
	}
	if exp.Min == 0 && exp.Max == 0 {
		return w.NoSalaryScore, 0
	}

	jobMin, jobMax := salaryBounds(sal)
	expMid := float64(exp.Min+exp.Max) / 2
	jobMid := float64(jobMin+jobMax) / 2
	if expMid > 0 {
		gapPct = (jobMid - expMid) / expMid * 100
	}

	lo := max(jobMin, exp.Min)
	hi := min(jobMax, exp.Max)
	if hi >= lo {
		overlap := float64(hi - lo)
		avgRange := (float64(jobMax-jobMin) + float64(exp.Max-exp.Min)) / 2
		if avgRange <= 0 {
			return 1.0, gapPct
		}
		ratio := overlap / avgRange
		if ratio > 1 {
			ratio = 1
		}
		return w.OverlapBase + w.OverlapBonus*ratio, gapPct
	}

	if jobMax < exp.Min { // pays below expectations
		gap := float64(exp.Min - jobMax)
		score = w.OverlapBase * (1 - gap/float64(exp.Min))
		if score < 0 {
			score = 0
		}
		return score, gapPct
	}

	// pays above expectations
	gap := float64(jobMin - exp.Max)
	score = w.OverlapBase * (1 - gap/float64(exp.Max))
	if score < w.AboveBandFloor {
		score = w.AboveBandFloor
	}
	return score, gapPct
}

// salaryBounds fills a missing bound from the other one.
func salaryBounds(sal engine.Salary) (int, int) {
	switch {
	case sal.Min != nil && sal.Max != nil:
		return *sal.Min, *sal.Max
	case sal.Min != nil:
		return *sal.Min, *sal.Min
	default:
		return *sal.Max, *sal.Max
	}
}

// companyMatch starts neutral and adjusts for industry overlap, company
// size preference, and employment type preference, clamped to [0,1].
func companyMatch(job engine.JobPosting, prefs engine.EmploymentPreferences, w Weights) float64 {
	score := w.CompanyBase

	if len(prefs.Industries) > 0 && len(job.Metadata.Industry) > 0 {
		if overlaps(prefs.Industries, job.Metadata.Industry) {
			score += w.IndustryBonus
		} else {
			score -= w.IndustryPenalty
		}
	}

	if len(prefs.CompanySizes) > 0 && job.Metadata.CompanySize != "" {
		if containsFold(prefs.CompanySizes, job.Metadata.CompanySize) {
			score += w.SizeAdjust
		} else {
			score -= w.SizeAdjust
		}
	}

	if len(prefs.Types) > 0 {
		matched := false
		for _, t := range prefs.Types {
			if t == job.EmploymentType {
				matched = true
				break
			}
		}
		if matched {
			score += w.TypeAdjust
		} else {
			score -= w.TypeAdjust
		}
	}

	return clamp01(score)
}

// requirementsMatch drops to the deal-breaker score when any listed
// requirement textually contains one of the user's declared deal-breakers.
func requirementsMatch(requirements, dealBreakers []string, w Weights) float64 {
	for _, req := range requirements {
		reqLower := strings.ToLower(req)
		for _, db := range dealBreakers {
			db = strings.TrimSpace(strings.ToLower(db))
			if db != "" && strings.Contains(reqLower, db) {
				return w.DealBreakerScore
			}
		}
	}
	return w.RequirementsBase
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, x := range list {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
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
