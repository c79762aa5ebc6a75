package extract

import "strings"

// scamMarkers are phrases common in fraudulent postings. A hit does not
// block extraction; it only adds a warning for the caller to surface.
var scamMarkers = []string{
	"no experience necessary",
	"unlimited earning potential",
	"be your own boss",
	"quick money",
	"pay a fee",
	"registration fee",
	"wire transfer",
	"western union",
	"pyramid",
	"mlm",
	"multi-level marketing",
	"guaranteed income",
}

// DetectRedFlags returns the scam markers present in the posting text
// (case-insensitive substring match).
func DetectRedFlags(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, marker := range scamMarkers {
		if strings.Contains(lower, marker) {
			found = append(found, marker)
		}
	}
	return found
}
