package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Skill-name matching needs custom word boundaries: \b breaks on "c++",
// "c#" and "node.js". A token boundary here is anything that is not a
// letter, digit, or one of + # .
const tokenBoundary = `[^a-z0-9+#.]`

type skillPattern struct {
	name    string
	entry   TaxonomyEntry
	matchRe *regexp.Regexp // canonical name or any alias, whole-word
	reqRe   *regexp.Regexp // requirement keyword in the same clause
	yearsRe *regexp.Regexp // "N years ... skill" or "skill ... N years"
}

var (
	skillPatterns     []skillPattern
	skillPatternsOnce sync.Once
)

// compileSkillPatterns builds per-taxonomy-entry regexes once. Sorted by
// canonical name so extraction order is deterministic.
func compileSkillPatterns() []skillPattern {
	skillPatternsOnce.Do(func() {
		names := make([]string, 0, len(Taxonomy))
		for name := range Taxonomy {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			entry := Taxonomy[name]
			variants := make([]string, 0, len(entry.Aliases)+1)
			if name != "go" { // see taxonomy: bare "go" matches only via alias
				variants = append(variants, regexp.QuoteMeta(name))
			}
			for _, a := range entry.Aliases {
				variants = append(variants, regexp.QuoteMeta(a))
			}
			alt := strings.Join(variants, "|")
			skillPatterns = append(skillPatterns, skillPattern{
				name:    name,
				entry:   entry,
				matchRe: regexp.MustCompile(`(?i)(?:^|` + tokenBoundary + `)(?:` + alt + `)(?:` + tokenBoundary + `|$)`),
				reqRe: regexp.MustCompile(`(?i)(?:required|must\s+have|essential|mandatory|proficien\w+\s+in)[^.\n]*(?:^|` + tokenBoundary + `)(?:` + alt + `)(?:` + tokenBoundary + `|$)` +
					`|(?:^|` + tokenBoundary + `)(?:` + alt + `)(?:` + tokenBoundary + `)[^.\n]*(?:required|must\s+have|essential|mandatory)`),
				yearsRe: regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)[^.\n]{0,50}?(?:^|` + tokenBoundary + `)(?:` + alt + `)(?:` + tokenBoundary + `|$)` +
					`|(?:^|` + tokenBoundary + `)(?:` + alt + `)(?:` + tokenBoundary + `)[^.\n]{0,50}?(\d{1,2})\+?\s*(?:years?|yrs?)`),
			})
		}
	})
	return skillPatterns
}

// ExtractSkills scans text against the full taxonomy: canonical names and
// aliases as whole-word matches, deduplicated by canonical name. A skill is
// marked required when a requirement keyword appears in the same clause or
// the match falls inside a requirements section. Confidence is the taxonomy
// weight, boosted when the skill is mentioned more than once.
func ExtractSkills(text string) []engine.ExtractedSkill {
	reqSection, _ := sectionSpan(text, requirementLabels)

	var skills []engine.ExtractedSkill
	for _, sp := range compileSkillPatterns() {
		hits := sp.matchRe.FindAllStringIndex(text, -1)
		if len(hits) == 0 {
			continue
		}

		required := sp.reqRe.MatchString(text)
		if !required && reqSection != "" && sp.matchRe.MatchString(reqSection) {
			required = true
		}

		conf := sp.entry.Weight
		if len(hits) > 1 {
			conf = min(1.0, conf+0.1)
		}

		skill := engine.ExtractedSkill{
			Name:       sp.name,
			Category:   sp.entry.Category,
			Required:   required,
			Confidence: conf,
		}
		if years, ok := extractYears(sp.yearsRe, text); ok {
			skill.YearsRequired = &years
		}
		skills = append(skills, skill)
	}
	return skills
}

// extractYears pulls the years figure out of whichever alternative of the
// bidirectional pattern matched.
func extractYears(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		if n, err := strconv.Atoi(g); err == nil && n > 0 && n <= 30 {
			return n, true
		}
	}
	return 0, false
}

// FormatSkillSummary renders a short human-readable skill list for warnings
// and tool output.
func FormatSkillSummary(skills []engine.ExtractedSkill) string {
	if len(skills) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Required {
			parts = append(parts, s.Name+" (required)")
		} else {
			parts = append(parts, s.Name)
		}
	}
	return fmt.Sprintf("%d: %s", len(skills), strings.Join(parts, ", "))
}
