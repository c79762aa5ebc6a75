package score

import "github.com/anatolykoptev/go_jobrank/internal/engine"

// Component weight keys accepted as overrides.
const (
	WeightSkills       = "skills"
	WeightExperience   = "experience"
	WeightLocation     = "location"
	WeightSalary       = "salary"
	WeightCompany      = "company"
	WeightRequirements = "requirements"
)

// Weights collects every numeric constant of the scoring model: the six
// component weights plus all per-component thresholds and factors. Tests
// override individual fields; production uses DefaultWeights.
type Weights struct {
	// Component weights. Must sum to 1.0 in the default configuration.
	Skills       float64
	Experience   float64
	Location     float64
	Salary       float64
	Company      float64
	Requirements float64

	// Skills component.
	RequiredSkillWeight float64 // required skills count double
	OptionalSkillWeight float64
	RawBlend            float64 // blend of raw weighted coverage ...
	RequiredBlend       float64 // ... and the required-only match ratio
	RecencyBoost        float64 // used within the last RecencyMonths
	StaleDiscount       float64 // unused for more than StaleMonths
	RecencyMonths       int
	StaleMonths         int
	EmptySkillsScore    float64 // posting lists no skills at all

	// Experience component.
	BandEdgeScore      float64 // score at either edge of the level band
	OverqualifiedScore float64 // gentle floor above the band maximum

	// Location component.
	PartialRelocate   float64 // partial match, willing to relocate
	PartialStay       float64 // partial match, not willing
	MissRelocate      float64 // no match, willing to relocate
	MissStay          float64 // no match, not willing

	// Salary component.
	OverlapBase    float64 // any overlap starts here
	OverlapBonus   float64 // scaled by overlap-to-average-range ratio
	AboveBandFloor float64 // job pays entirely above expectations
	NoSalaryScore  float64 // posting states no salary

	// Company component.
	CompanyBase     float64
	IndustryBonus   float64
	IndustryPenalty float64
	SizeAdjust      float64
	TypeAdjust      float64

	// Requirements component.
	RequirementsBase float64
	DealBreakerScore float64

	// Proficiency contribution per level.
	ProficiencyScores map[engine.Proficiency]float64

	// Recommendation thresholds on the overall 0–100 score.
	HighlyRecommendedMin int
	GoodMatchMin         int
	ConsiderMin          int
}

// DefaultWeights returns the standard scoring model.
func DefaultWeights() Weights {
	return Weights{
		Skills:       0.35,
		Experience:   0.20,
		Location:     0.15,
		Salary:       0.15,
		Company:      0.10,
		Requirements: 0.05,

		RequiredSkillWeight: 2.0,
		OptionalSkillWeight: 1.0,
		RawBlend:            0.7,
		RequiredBlend:       0.3,
		RecencyBoost:        1.1,
		StaleDiscount:       0.9,
		RecencyMonths:       12,
		StaleMonths:         24,
		EmptySkillsScore:    0.5,

		BandEdgeScore:      0.7,
		OverqualifiedScore: 0.7,

		PartialRelocate: 0.7,
		PartialStay:     0.4,
		MissRelocate:    0.3,
		MissStay:        0.1,

		OverlapBase:    0.7,
		OverlapBonus:   0.3,
		AboveBandFloor: 0.3,
		NoSalaryScore:  0.5,

		CompanyBase:     0.5,
		IndustryBonus:   0.3,
		IndustryPenalty: 0.1,
		SizeAdjust:      0.2,
		TypeAdjust:      0.2,

		RequirementsBase: 0.6,
		DealBreakerScore: 0.1,

		ProficiencyScores: map[engine.Proficiency]float64{
			engine.ProficiencyBeginner:     0.4,
			engine.ProficiencyIntermediate: 0.7,
			engine.ProficiencyAdvanced:     0.9,
			engine.ProficiencyExpert:       1.0,
		},

		HighlyRecommendedMin: 85,
		GoodMatchMin:         70,
		ConsiderMin:          50,
	}
}

// withOverrides returns a copy of w with any subset of the six component
// weights replaced. Unknown keys are ignored.
func (w Weights) withOverrides(criteria map[string]float64) Weights {
	for key, val := range criteria {
		switch key {
		case WeightSkills:
			w.Skills = val
		case WeightExperience:
			w.Experience = val
		case WeightLocation:
			w.Location = val
		case WeightSalary:
			w.Salary = val
		case WeightCompany:
			w.Company = val
		case WeightRequirements:
			w.Requirements = val
		}
	}
	return w
}

// experienceBand is the {min, max, ideal} year range for one level.
type experienceBand struct {
	min, max, ideal float64
}

// experienceBands maps each posting level to its year band.
var experienceBands = map[engine.ExperienceLevel]experienceBand{
	engine.ExperienceEntry:     {0, 2, 1},
	engine.ExperienceMid:       {2, 5, 3.5},
	engine.ExperienceSenior:    {5, 10, 7},
	engine.ExperienceLead:      {8, 15, 11},
	engine.ExperienceExecutive: {10, 25, 15},
}
