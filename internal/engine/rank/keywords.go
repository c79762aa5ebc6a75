package rank

import (
	"strings"
	"unicode"
)

// matchStopWords filters common English words that add noise to keyword matching.
var matchStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
}

// extractKeywords tokenizes text into lowercase keywords, skipping stop words.
// Preserves tech suffixes like "c++", "c#", "node.js" by treating + # . as word chars.
func extractKeywords(text string) map[string]bool {
	kw := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimRight(w, ".") // drop trailing dots
		if len([]rune(w)) >= 3 && !matchStopWords[w] {
			kw[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return kw
}

// jaccard is |a ∩ b| / |a ∪ b|. Empty sets yield 0.
func jaccard(a, b map[string]bool) float64 {
	inter := 0
	for kw := range a {
		if b[kw] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// overlapCoefficient is |a ∩ b| / min(|a|, |b|): how much of the smaller
// set the larger one covers. Better than Jaccard for short titles against
// a handful of desired roles.
func overlapCoefficient(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for kw := range a {
		if b[kw] {
			inter++
		}
	}
	smaller := min(len(a), len(b))
	return float64(inter) / float64(smaller)
}
