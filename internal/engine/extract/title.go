package extract

import (
	"regexp"
	"strings"
)

// Title extraction policy, in priority order:
//  1. explicit "title:/position:/role:" labels
//  2. first line before a dash separator, when it looks like a role
//  3. "hiring a/seeking a/position:" phrasing
//  4. a fixed set of common-title patterns (seniority + domain + role noun)
//
// First matching pattern wins; enclosing punctuation is trimmed.

var titleLabelRe = regexp.MustCompile(`(?im)^(?:job\s+)?(?:title|position|role)\s*[:\-]\s*(.+)$`)

var titlePhraseRe = regexp.MustCompile(`(?i)(?:hiring|seeking|looking\s+for)(?:\s+an?)?\s+([A-Za-z][A-Za-z+#./ -]{2,60}?)(?:\s+(?:to|who|at|in|with)\b|[.,!\n]|$)`)

var roleNounRe = regexp.MustCompile(`(?i)\b(engineer|developer|programmer|architect|designer|manager|analyst|scientist|consultant|specialist|administrator|lead|intern|director|recruiter|writer)\b`)

var commonTitleRe = regexp.MustCompile(`(?i)\b((?:senior|junior|staff|principal|lead|chief|head of|entry[- ]level)\s+)?((?:software|backend|back[- ]end|frontend|front[- ]end|full[- ]stack|fullstack|data|machine learning|ml|devops|cloud|platform|site reliability|security|mobile|ios|android|qa|product|project|ux|ui|marketing|sales)\s+)+(engineer|developer|scientist|analyst|architect|designer|manager|lead|specialist|administrator)\b`)

// ExtractTitle finds the job title in posting text. Returns false when no
// pattern matches.
func ExtractTitle(text string) (string, bool) {
	if m := titleLabelRe.FindStringSubmatch(text); m != nil {
		return trimTitle(m[1]), true
	}

	// First non-empty line, part before a dash, if it names a role.
	if line := firstLine(text); line != "" {
		for _, sep := range []string{" - ", " – ", " — ", " | "} {
			if idx := strings.Index(line, sep); idx > 0 {
				cand := trimTitle(line[:idx])
				if len(cand) >= 3 && len(cand) <= 80 && roleNounRe.MatchString(cand) {
					return cand, true
				}
			}
		}
	}

	if m := titlePhraseRe.FindStringSubmatch(text); m != nil {
		cand := trimTitle(m[1])
		if roleNounRe.MatchString(cand) {
			return cand, true
		}
	}

	if m := commonTitleRe.FindString(text); m != "" {
		return trimTitle(m), true
	}

	return "", false
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

func trimTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'()[]{}.,;:!`)
	return strings.TrimSpace(s)
}
