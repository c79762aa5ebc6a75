package extract

import (
	"regexp"
	"strings"
)

// Labeled sections are bounded by the next blank line or the next known
// section label. Within the span, bullet lines win over numbered lines,
// which win over filtered free-text lines.

var requirementLabels = []string{
	"requirements", "qualifications", "must have", "what you'll need", "what you will need",
}

var benefitLabels = []string{
	"benefits", "we offer", "perks", "what we offer",
}

// allSectionLabels terminates a span when another section starts.
var allSectionLabels = []string{
	"requirements", "qualifications", "must have", "what you'll need", "what you will need",
	"benefits", "we offer", "perks", "what we offer",
	"responsibilities", "about us", "about the role", "about you", "description",
	"salary", "compensation", "location", "how to apply",
}

var bulletLineRe = regexp.MustCompile(`^-\s+(.+)$`)
var numberedLineRe = regexp.MustCompile(`^\d{1,2}[.)]\s+(.+)$`)

const (
	maxRequirements = 15
	maxBenefits     = 10
)

// ExtractRequirements returns the items of the requirements section, capped
// at 15. Returns false when no labeled section exists.
func ExtractRequirements(text string) ([]string, bool) {
	span, ok := sectionSpan(text, requirementLabels)
	if !ok {
		return nil, false
	}
	items := sectionItems(span, maxRequirements)
	return items, len(items) > 0
}

// ExtractBenefits returns the items of the benefits section, capped at 10.
func ExtractBenefits(text string) ([]string, bool) {
	span, ok := sectionSpan(text, benefitLabels)
	if !ok {
		return nil, false
	}
	items := sectionItems(span, maxBenefits)
	return items, len(items) > 0
}

// sectionSpan locates the first line matching one of labels (as a "label:"
// or standalone heading) and returns the text until the next blank line or
// the next known section label.
func sectionSpan(text string, labels []string) (string, bool) {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if isSectionLabel(line, labels) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var span []string
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		if isSectionLabel(line, allSectionLabels) {
			break
		}
		span = append(span, line)
	}
	if len(span) == 0 {
		return "", false
	}
	return strings.Join(span, "\n"), true
}

// isSectionLabel reports whether line is a heading for one of labels:
// either "label:" (with optional trailing text) or the bare label line.
func isSectionLabel(line string, labels []string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	l = strings.TrimPrefix(l, "# ")
	l = strings.TrimPrefix(l, "## ")
	for _, label := range labels {
		if l == label || l == label+":" || strings.HasPrefix(l, label+":") {
			return true
		}
	}
	return false
}

// sectionItems extracts list items from a section span: bullet lines first,
// else numbered lines, else free-text lines of plausible length.
func sectionItems(span string, limit int) []string {
	lines := strings.Split(span, "\n")

	var bullets, numbered, free []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if m := bulletLineRe.FindStringSubmatch(line); m != nil {
			bullets = append(bullets, strings.TrimSpace(m[1]))
			continue
		}
		if m := numberedLineRe.FindStringSubmatch(line); m != nil {
			numbered = append(numbered, strings.TrimSpace(m[1]))
			continue
		}
		if len(line) >= 10 && len(line) <= 200 && !isSectionLabel(line, allSectionLabels) {
			free = append(free, line)
		}
	}

	items := bullets
	if len(items) == 0 {
		items = numbered
	}
	if len(items) == 0 {
		items = free
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
