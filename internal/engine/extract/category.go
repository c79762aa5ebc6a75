package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// categoryKeywords classifies a job by title keywords, checked in fixed
// order; the first category with a hit wins.
var categoryKeywords = []struct {
	category engine.JobCategory
	keywords []string
}{
	{engine.CategoryDevOps, []string{"devops", "sre", "site reliability", "infrastructure", "platform engineer", "cloud engineer"}},
	{engine.CategoryDataScience, []string{"data scientist", "data engineer", "machine learning", "ml engineer", "data analyst", "ai engineer"}},
	{engine.CategorySoftwareEngineering, []string{"software", "developer", "engineer", "programmer", "backend", "frontend", "full stack", "full-stack", "fullstack"}},
	{engine.CategoryDesign, []string{"designer", "ux", "ui", "graphic", "creative director"}},
	{engine.CategoryProduct, []string{"product manager", "product owner", "product lead"}},
	{engine.CategoryMarketing, []string{"marketing", "seo", "content", "growth"}},
	{engine.CategorySales, []string{"sales", "account executive", "business development"}},
	{engine.CategoryManagement, []string{"manager", "director", "head of", "vp", "chief"}},
}

// CategorizeJob classifies the job into exactly one category by title
// keyword match. Unmatched titles fall into "other".
func CategorizeJob(title string) engine.JobCategory {
	lower := strings.ToLower(title)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.category
			}
		}
	}
	return engine.CategoryOther
}

// industryKeywords maps industry names to the keywords that signal them in
// the combined text and company name.
var industryKeywords = map[string][]string{
	"technology": {"software", "saas", "tech company", "startup", "cloud", "platform"},
	"finance":    {"fintech", "bank", "banking", "trading", "investment", "insurance"},
	"healthcare": {"health", "medical", "biotech", "pharma", "clinical"},
	"ecommerce":  {"e-commerce", "ecommerce", "retail", "marketplace"},
	"education":  {"edtech", "education", "university", "learning platform"},
	"gaming":     {"gaming", "game studio", "game developer"},
	"media":      {"media", "publishing", "streaming", "entertainment"},
	"logistics":  {"logistics", "supply chain", "shipping", "delivery"},
}

// DetectIndustries classifies the posting into one or more industries by
// keyword match against the combined text and company name. Defaults to
// ["other"] when nothing matches.
func DetectIndustries(text, company string) []string {
	combined := strings.ToLower(text + " " + company)
	var out []string
	for _, name := range []string{"technology", "finance", "healthcare", "ecommerce", "education", "gaming", "media", "logistics"} {
		for _, kw := range industryKeywords[name] {
			if strings.Contains(combined, kw) {
				out = append(out, name)
				break
			}
		}
	}
	if len(out) == 0 {
		return []string{"other"}
	}
	return out
}

// --- company size ---

var employeeCountRe = regexp.MustCompile(`(?i)\b([\d,]{1,7})\s*\+?\s*(?:employees|people|person team|engineers)\b`)

// DetectCompanySize buckets the company size from an employee-count mention
// or size keywords. Returns "" when nothing is stated.
func DetectCompanySize(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "fortune 500"), strings.Contains(lower, "enterprise company"):
		return "enterprise"
	case strings.Contains(lower, "early-stage startup"), strings.Contains(lower, "early stage startup"), strings.Contains(lower, "seed-stage"):
		return "startup"
	}

	m := employeeCountRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return ""
	}
	switch {
	case n < 20:
		return "startup"
	case n < 100:
		return "small"
	case n < 1000:
		return "medium"
	case n < 10000:
		return "large"
	default:
		return "enterprise"
	}
}

// --- language ---

// languageMarkers votes on the posting language with high-frequency
// function words. English wins ties; default is "en".
var languageMarkers = map[string][]string{
	"de": {" und ", " der ", " die ", " mit ", " für ", " wir "},
	"fr": {" et ", " les ", " des ", " avec ", " nous ", " vous "},
	"es": {" y ", " los ", " las ", " con ", " para ", " nosotros "},
	"en": {" the ", " and ", " with ", " for ", " you ", " we "},
}

// DetectLanguage guesses the posting language from stop-word frequency.
func DetectLanguage(text string) string {
	lower := " " + strings.ToLower(text) + " "
	best, bestCount := "en", 0
	for _, lang := range []string{"en", "de", "fr", "es"} {
		count := 0
		for _, marker := range languageMarkers[lang] {
			count += strings.Count(lower, marker)
		}
		if count > bestCount {
			best, bestCount = lang, count
		}
	}
	return best
}
