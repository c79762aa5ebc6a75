// Package extract turns unstructured job-ad text into structured postings
// with a confidence report. Extraction never fails: every field has a
// documented placeholder, and problems surface only through the confidence
// score, missing_fields, and warnings.
package extract

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Placeholder values substituted when a field cannot be found.
const (
	PlaceholderTitle    = "Unknown Position"
	PlaceholderCompany  = "Unknown Company"
	PlaceholderLocation = "Not specified"
)

// Tunables collects every numeric constant of the confidence ledger so
// tests can override them and the defaults are discoverable in one place.
type Tunables struct {
	ConfidenceBase      float64 // starting confidence before any field lands
	TitleBonus          float64
	CompanyBonus        float64
	LocationBonus       float64
	SalaryBonus         float64
	SkillsBonus         float64 // any skill extracted
	ManySkillsBonus     float64 // more than 5 skills extracted
	RequirementsBonus   float64
	MissingPenalty      float64 // per entry in missing_fields
	LowConfidence       float64 // below this, a review warning is emitted
	MaxCriticalMissing  int     // more than this many critical fields missing warns
	MaxDescriptionRunes int
}

// DefaultTunables returns the standard confidence ledger.
func DefaultTunables() Tunables {
	return Tunables{
		ConfidenceBase:      0.1,
		TitleBonus:          0.3,
		CompanyBonus:        0.15,
		LocationBonus:       0.1,
		SalaryBonus:         0.15,
		SkillsBonus:         0.1,
		ManySkillsBonus:     0.05,
		RequirementsBonus:   0.1,
		MissingPenalty:      0.05,
		LowConfidence:       0.5,
		MaxCriticalMissing:  2,
		MaxDescriptionRunes: 5000,
	}
}

// criticalFields drive the "too much missing" warning.
var criticalFields = map[string]bool{
	"title":    true,
	"company":  true,
	"location": true,
	"salary":   true,
}

// Parser is the extraction pipeline. Safe for concurrent use.
type Parser struct {
	tunables Tunables
	now      func() time.Time
}

// New returns a Parser with default tunables.
func New() *Parser {
	return &Parser{tunables: DefaultTunables(), now: time.Now}
}

// NewWithTunables returns a Parser with a custom confidence ledger.
func NewWithTunables(t Tunables) *Parser {
	return &Parser{tunables: t, now: time.Now}
}

// Parse runs the full extraction pipeline on raw posting text. It never
// returns an error: unfound fields get placeholders and are recorded in
// MissingFields, and overall quality is reported via Confidence and
// Warnings.
func (p *Parser) Parse(raw string, source engine.Source, url string) engine.ExtractionResult {
	engine.IncrParseRequests()

	text := NormalizeText(raw)
	now := p.now()

	var missing []string
	job := engine.JobPosting{
		Source:       source,
		URL:          url,
		Requirements: []string{},
		Benefits:     []string{},
		Skills:       []engine.ExtractedSkill{},
	}

	title, ok := ExtractTitle(text)
	if !ok {
		title = PlaceholderTitle
		missing = append(missing, "title")
	}
	job.Title = title

	company, ok := ExtractCompany(text)
	if !ok {
		company = PlaceholderCompany
		missing = append(missing, "company")
	}
	job.Company = company

	location, ok := ExtractLocation(text)
	if !ok {
		location = PlaceholderLocation
		missing = append(missing, "location")
	}
	job.Location = location

	salary, salaryFound := ExtractSalary(text)
	if !salaryFound {
		missing = append(missing, "salary")
	}
	job.Salary = salary

	employment, ok := ExtractEmploymentType(text)
	if !ok {
		missing = append(missing, "employment_type")
	}
	job.EmploymentType = employment

	level, ok := ExtractExperienceLevel(text)
	if !ok {
		missing = append(missing, "experience_level")
	}
	job.ExperienceLevel = level

	job.Remote = ExtractRemote(text)

	job.Skills = ExtractSkills(text)
	if len(job.Skills) == 0 {
		missing = append(missing, "skills")
	}

	requirements, reqFound := ExtractRequirements(text)
	if reqFound {
		job.Requirements = requirements
	}
	if benefits, ok := ExtractBenefits(text); ok {
		job.Benefits = benefits
	}

	posted, ok := ExtractPostedDate(text, now)
	if !ok {
		posted = now
	}
	job.PostedDate = posted
	if deadline, ok := ExtractDeadline(text, now); ok {
		job.ApplicationDeadline = &deadline
	}

	job.Description = engine.TruncateRunes(text, p.tunables.MaxDescriptionRunes, "")
	job.ID = engine.CanonicalJobID(job.Title, job.Company, posted)

	redFlags := DetectRedFlags(text)
	job.Metadata = engine.JobMetadata{
		Industry:    DetectIndustries(text, job.Company),
		CompanySize: DetectCompanySize(text),
		Category:    CategorizeJob(job.Title),
		Language:    DetectLanguage(text),
	}

	confidence := p.confidence(job, reqFound, missing)
	job.Metadata.ConfidenceScore = confidence

	warnings := p.warnings(confidence, missing, redFlags)
	if confidence < p.tunables.LowConfidence {
		engine.IncrParseLowConf()
		slog.Debug("low confidence extraction",
			slog.String("title", job.Title),
			slog.Float64("confidence", confidence),
			slog.Any("missing", missing),
		)
	}

	if missing == nil {
		missing = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}
	return engine.ExtractionResult{
		Job:           job,
		Confidence:    confidence,
		Warnings:      warnings,
		MissingFields: missing,
	}
}

// confidence aggregates the extraction ledger: fixed bonuses for each field
// that landed, a flat penalty per missing field, clamped to [0,1].
func (p *Parser) confidence(job engine.JobPosting, reqFound bool, missing []string) float64 {
	t := p.tunables
	conf := t.ConfidenceBase

	missingSet := make(map[string]bool, len(missing))
	for _, f := range missing {
		missingSet[f] = true
	}

	if !missingSet["title"] {
		conf += t.TitleBonus
	}
	if !missingSet["company"] {
		conf += t.CompanyBonus
	}
	if !missingSet["location"] {
		conf += t.LocationBonus
	}
	if !missingSet["salary"] {
		conf += t.SalaryBonus
	}
	if len(job.Skills) > 0 {
		conf += t.SkillsBonus
	}
	if len(job.Skills) > 5 {
		conf += t.ManySkillsBonus
	}
	if reqFound {
		conf += t.RequirementsBonus
	}

	conf -= float64(len(missing)) * t.MissingPenalty

	return clamp01(conf)
}

// warnings emits review prompts: low confidence, too many critical fields
// missing, and scam markers.
func (p *Parser) warnings(confidence float64, missing, redFlags []string) []string {
	var out []string

	if confidence < p.tunables.LowConfidence {
		out = append(out, fmt.Sprintf("extraction confidence %.2f is below %.2f; review before use", confidence, p.tunables.LowConfidence))
	}

	criticalMissing := 0
	for _, f := range missing {
		if criticalFields[f] {
			criticalMissing++
		}
	}
	if criticalMissing > p.tunables.MaxCriticalMissing {
		out = append(out, fmt.Sprintf("%d critical fields could not be extracted: check source text", criticalMissing))
	}

	if len(redFlags) > 0 {
		out = append(out, "possible scam markers: "+strings.Join(redFlags, ", "))
	}

	return out
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
