package extract

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// --- company ---

var companyLabelRe = regexp.MustCompile(`(?im)^(?:company|employer|organization)\s*:\s*(.+)$`)

var companyPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`(?m)\bat\s+([A-Z][A-Za-z0-9&.' -]{1,40}?)(?:\s+(?:is|we|in|as)\b|[,.\n]|$)`),
	regexp.MustCompile(`(?m)^([A-Z][A-Za-z0-9&.' -]{1,40}?)\s+is\s+(?:hiring|seeking|looking)`),
	regexp.MustCompile(`(?i)\bjoin\s+(?:the\s+)?([A-Z][A-Za-z0-9&.' -]{1,40}?)\s+(?:team|as)\b`),
}

// ExtractCompany finds the hiring company name. Returns false when nothing
// plausible matches.
func ExtractCompany(text string) (string, bool) {
	if m := companyLabelRe.FindStringSubmatch(text); m != nil {
		return trimCompany(m[1]), true
	}
	for _, re := range companyPhraseRes {
		if m := re.FindStringSubmatch(text); m != nil {
			cand := trimCompany(m[1])
			if len(cand) >= 2 {
				return cand, true
			}
		}
	}
	return "", false
}

func trimCompany(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'()[]{}.,;:!`)
	return strings.TrimSpace(s)
}

// --- location ---

var locationLabelRe = regexp.MustCompile(`(?im)^location\s*:\s*(.+)$`)
// Capture stops at the first non-capitalized word so prose after the city
// name is not swallowed.
var basedInRe = regexp.MustCompile(`\b(?:[Bb]ased|[Ll]ocated)\s+in\s+([A-Z][a-zA-Z.'-]+(?: [A-Z][a-zA-Z.'-]+)*(?:, [A-Z][a-zA-Z.'-]*(?: [A-Z][a-zA-Z.'-]*)*)?)`)
var cityStateRe = regexp.MustCompile(`\b([A-Z][a-z.'-]+(?: [A-Z][a-z.'-]+)*, [A-Z]{2})\b`)

// ExtractLocation finds the work location. Parenthesized remote notes on a
// labeled location line (e.g. "San Francisco, CA (Remote OK)") are stripped;
// remote detection handles them separately.
func ExtractLocation(text string) (string, bool) {
	if m := locationLabelRe.FindStringSubmatch(text); m != nil {
		loc := strings.TrimSpace(m[1])
		if idx := strings.Index(loc, "("); idx > 0 {
			loc = strings.TrimSpace(loc[:idx])
		}
		loc = strings.TrimRight(loc, ".,;")
		if loc != "" {
			return loc, true
		}
	}
	if m := basedInRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := cityStateRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// --- employment type ---

// employmentKeywords is checked in fixed priority order: an explicit
// contract/internship/part-time/temporary marker beats the full-time default.
var employmentKeywords = []struct {
	typ      engine.EmploymentType
	keywords []string
}{
	{engine.EmploymentContract, []string{"contract", "contractor", "freelance", "b2b"}},
	{engine.EmploymentInternship, []string{"internship", "intern position", "intern,"}},
	{engine.EmploymentTemporary, []string{"temporary", "temp position", "seasonal"}},
	{engine.EmploymentPartTime, []string{"part-time", "part time"}},
	{engine.EmploymentFullTime, []string{"full-time", "full time", "permanent"}},
}

// ExtractEmploymentType returns the employment type and whether an explicit
// keyword was found. Default is full-time.
func ExtractEmploymentType(text string) (engine.EmploymentType, bool) {
	lower := strings.ToLower(text)
	for _, e := range employmentKeywords {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				return e.typ, true
			}
		}
	}
	return engine.EmploymentFullTime, false
}

// --- experience level ---

var experienceKeywords = []struct {
	level    engine.ExperienceLevel
	keywords []string
}{
	{engine.ExperienceExecutive, []string{"executive", "vp of", "vice president", "chief ", "cto", "ceo", "coo", "head of department"}},
	{engine.ExperienceLead, []string{"lead ", "principal", "staff engineer", "staff developer", "tech lead", "team lead"}},
	{engine.ExperienceSenior, []string{"senior", "sr.", "sr "}},
	{engine.ExperienceEntry, []string{"junior", "jr.", "entry level", "entry-level", "graduate", "internship", "intern "}},
}

// ExtractExperienceLevel returns the seniority band and whether an explicit
// keyword was found. Default is mid.
func ExtractExperienceLevel(text string) (engine.ExperienceLevel, bool) {
	lower := strings.ToLower(text)
	for _, e := range experienceKeywords {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				return e.level, true
			}
		}
	}
	return engine.ExperienceMid, false
}

// --- remote ---

var remoteNegativeRe = regexp.MustCompile(`(?i)\b(?:no\s+remote|not\s+remote|on-?site\s+only|office[- ]based\s+only)\b`)
var remotePositiveRe = regexp.MustCompile(`(?i)\b(?:remote|work\s+from\s+home|wfh|fully\s+distributed|distributed\s+team)\b`)

// ExtractRemote reports whether the posting allows remote work. Negative
// phrasing ("no remote") wins over the bare keyword.
func ExtractRemote(text string) bool {
	if remoteNegativeRe.MatchString(text) {
		return false
	}
	return remotePositiveRe.MatchString(text)
}
