package engine

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/strutil"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

var spaceRunRe = regexp.MustCompile(`[ \t]+`)

// NormalizeWhitespace collapses runs of spaces and tabs, trims each line,
// and collapses three or more consecutive newlines into two. Line structure
// is preserved because section extraction is line-oriented.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRunRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(s)
}

// CanonicalJobID derives a deterministic posting id from title, company and
// a timestamp. The id is stable for identical inputs and immutable once set.
func CanonicalJobID(title, company string, ts time.Time) string {
	norm := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	h := sha256.Sum256([]byte(norm(title) + "|" + norm(company) + "|" + ts.UTC().Format(time.RFC3339)))
	return fmt.Sprintf("job-%x", h[:8])
}
