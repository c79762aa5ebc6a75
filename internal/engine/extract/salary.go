package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Salary extraction policy, in priority order:
//  1. "$min - $max <period>" range (k-suffixes allowed on either bound)
//  2. labeled "salary: ..." line, parsed with the same range patterns
//  3. bare "$N+" minimum-only form
//  4. "Nk-Mk" shorthand without currency symbol
//
// Currency defaults to USD and period to yearly when unstated. Equity is
// detected by keyword search, independent of the numeric match.

var (
	salaryRangeRe  = regexp.MustCompile(`(?i)\$\s*([\d][\d,]*(?:\.\d+)?)\s*(k)?\s*(?:-|–|—|to)\s*\$?\s*([\d][\d,]*(?:\.\d+)?)\s*(k)?\s*(per\s+(?:year|annum|hour|month)|/\s*(?:yr|year|hr|hour|mo|month)|annually|yearly|hourly|monthly)?`)
	salaryLabelRe  = regexp.MustCompile(`(?im)^(?:salary|compensation|pay)(?:\s+range)?\s*:\s*(.+)$`)
	salaryMinRe    = regexp.MustCompile(`(?i)\$\s*([\d][\d,]*(?:\.\d+)?)\s*(k)?\s*\+`)
	salaryKRangeRe = regexp.MustCompile(`(?i)\b(\d{2,3})\s*(k)\s*(?:-|–|to)\s*(\d{2,3})\s*(k)\b`)
	equityRe       = regexp.MustCompile(`(?i)\b(?:equity|stock\s+options?|rsus?)\b`)
	hourlyRe       = regexp.MustCompile(`(?i)(?:per\s+hour|/\s*(?:hr|hour)|hourly)`)
	monthlyRe      = regexp.MustCompile(`(?i)(?:per\s+month|/\s*(?:mo|month)|monthly)`)
)

// ExtractSalary parses the compensation band from posting text.
// Returns false when no numeric salary is present; equity detection still
// applies to the returned value in that case.
func ExtractSalary(text string) (engine.Salary, bool) {
	sal := engine.Salary{Currency: "USD", Period: "yearly", Equity: equityRe.MatchString(text)}

	if m := salaryRangeRe.FindStringSubmatch(text); m != nil {
		lo := parseAmount(m[1], m[2], m[4])
		hi := parseAmount(m[3], m[4], m[2])
		sal.Min, sal.Max = &lo, &hi
		sal.Period = parsePeriod(m[5])
		return sal, true
	}

	if m := salaryLabelRe.FindStringSubmatch(text); m != nil {
		line := m[1]
		if lm := salaryRangeRe.FindStringSubmatch(line); lm != nil {
			lo := parseAmount(lm[1], lm[2], lm[4])
			hi := parseAmount(lm[3], lm[4], lm[2])
			sal.Min, sal.Max = &lo, &hi
			sal.Period = parsePeriod(lm[5])
			return sal, true
		}
		if lm := salaryKRangeRe.FindStringSubmatch(line); lm != nil {
			lo := parseAmount(lm[1], lm[2], "")
			hi := parseAmount(lm[3], lm[4], "")
			sal.Min, sal.Max = &lo, &hi
			return sal, true
		}
	}

	if m := salaryMinRe.FindStringSubmatch(text); m != nil {
		lo := parseAmount(m[1], m[2], "")
		sal.Min = &lo
		if hourlyRe.MatchString(text) {
			sal.Period = "hourly"
		}
		return sal, true
	}

	if m := salaryKRangeRe.FindStringSubmatch(text); m != nil {
		lo := parseAmount(m[1], m[2], "")
		hi := parseAmount(m[3], m[4], "")
		sal.Min, sal.Max = &lo, &hi
		return sal, true
	}

	return sal, false
}

// parseAmount converts a numeric string to an int salary amount. A bound
// inherits the other bound's "k" suffix when it lacks its own and the bare
// number is implausibly small for the stated form ("$120 - $150k" means
// 120k–150k, not $120–$150k).
func parseAmount(num, ownSuffix, otherSuffix string) int {
	num = strings.ReplaceAll(num, ",", "")
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	suffix := ownSuffix
	if suffix == "" && otherSuffix != "" && f < 1000 {
		suffix = otherSuffix
	}
	if strings.EqualFold(suffix, "k") {
		f *= 1000
	}
	return int(f)
}

func parsePeriod(period string) string {
	switch {
	case period == "":
		return "yearly"
	case hourlyRe.MatchString(period):
		return "hourly"
	case monthlyRe.MatchString(period):
		return "monthly"
	default:
		return "yearly"
	}
}
