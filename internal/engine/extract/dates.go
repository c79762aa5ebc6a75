package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date extraction accepts absolute MM/DD/YYYY or YYYY-MM-DD forms, plus
// relative forms ("N days ago", "N hours ago", "yesterday", "today") which
// are resolved against now at parse time.

var (
	postedLabelRe   = regexp.MustCompile(`(?i)\bposted\s*(?:on|:)?\s*([^\n,]+)`)
	deadlineLabelRe = regexp.MustCompile(`(?i)\b(?:apply\s+by|application\s+deadline|deadline|applications?\s+(?:due|close)s?(?:\s+on|by)?)\s*:?\s*([^\n,]+)`)

	usDateRe   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	isoDateRe  = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	relativeRe = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(day|hour)s?\s+ago\b`)
)

// ExtractPostedDate finds when the posting was published, relative to now.
func ExtractPostedDate(text string, now time.Time) (time.Time, bool) {
	if m := postedLabelRe.FindStringSubmatch(text); m != nil {
		if ts, ok := parseDate(m[1], now); ok {
			return ts, true
		}
	}
	// Relative forms often appear without a "posted" label.
	if ts, ok := parseRelative(text, now); ok {
		return ts, true
	}
	return time.Time{}, false
}

// ExtractDeadline finds the application deadline. Relative forms are not
// accepted for deadlines; only absolute dates count.
func ExtractDeadline(text string, now time.Time) (time.Time, bool) {
	m := deadlineLabelRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	return parseAbsolute(m[1])
}

func parseDate(s string, now time.Time) (time.Time, bool) {
	if ts, ok := parseAbsolute(s); ok {
		return ts, true
	}
	return parseRelative(s, now)
}

func parseAbsolute(s string) (time.Time, bool) {
	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}
	if m := usDateRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parseRelative(s string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "today") || strings.Contains(lower, "just posted") {
		return now, true
	}
	if strings.Contains(lower, "yesterday") {
		return now.AddDate(0, 0, -1), true
	}
	if m := relativeRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch strings.ToLower(m[2]) {
		case "day":
			return now.AddDate(0, 0, -n), true
		case "hour":
			return now.Add(-time.Duration(n) * time.Hour), true
		}
	}
	return time.Time{}, false
}

func validDate(year, month, day int) bool {
	return year >= 2000 && year <= 2100 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}
