package rank

import "testing"

func TestExtractKeywords(t *testing.T) {
	kw := extractKeywords("Senior Go developer, C++ and Node.js. Join the team!")

	for _, want := range []string{"senior", "developer", "c++", "node.js"} {
		if !kw[want] {
			t.Errorf("missing keyword %q in %v", want, kw)
		}
	}
	for _, unwanted := range []string{"and", "the", "join", "team", "go"} {
		if kw[unwanted] {
			t.Errorf("unexpected keyword %q (stop word or too short)", unwanted)
		}
	}
}

func TestExtractKeywordsTrailingDot(t *testing.T) {
	kw := extractKeywords("We love python.")
	if !kw["python"] {
		t.Errorf("sentence-final dot not trimmed: %v", kw)
	}
}

func TestJaccard(t *testing.T) {
	a := map[string]bool{"python": true, "django": true, "postgres": true}
	b := map[string]bool{"python": true, "django": true, "react": true}

	if got := jaccard(a, b); got != 0.5 {
		t.Errorf("jaccard = %.3f, want 0.5", got)
	}
	if got := jaccard(a, a); got != 1.0 {
		t.Errorf("self jaccard = %.3f, want 1.0", got)
	}
	if got := jaccard(nil, b); got != 0 {
		t.Errorf("empty jaccard = %.3f, want 0", got)
	}
	if got := jaccard(nil, nil); got != 0 {
		t.Errorf("both empty = %.3f, want 0", got)
	}
}

func TestOverlapCoefficient(t *testing.T) {
	title := extractKeywords("Senior Backend Engineer")
	role := extractKeywords("Backend Engineer")

	if got := overlapCoefficient(title, role); got != 1.0 {
		t.Errorf("role fully contained in title, got %.3f", got)
	}
	if got := overlapCoefficient(title, extractKeywords("Sales Manager")); got != 0 {
		t.Errorf("disjoint sets, got %.3f", got)
	}
	if got := overlapCoefficient(nil, role); got != 0 {
		t.Errorf("empty set, got %.3f", got)
	}
}
