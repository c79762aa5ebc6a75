package extract

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractRequirements(t *testing.T) {
	text := `About the role
We build infrastructure.

Requirements:
- 5+ years of Go
- Solid SQL knowledge
- Kubernetes in production

Benefits:
- Remote budget`

	items, ok := ExtractRequirements(text)
	if !ok {
		t.Fatal("requirements section not found")
	}
	want := []string{"5+ years of Go", "Solid SQL knowledge", "Kubernetes in production"}
	if len(items) != len(want) {
		t.Fatalf("items = %v", items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, items[i], want[i])
		}
	}
}

func TestExtractRequirementsNumbered(t *testing.T) {
	text := "Qualifications:\n1. BS in CS or equivalent\n2) Strong communication skills"
	items, ok := ExtractRequirements(text)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v, ok = %v", items, ok)
	}
	if items[0] != "BS in CS or equivalent" {
		t.Errorf("items[0] = %q", items[0])
	}
}

func TestExtractRequirementsFreeText(t *testing.T) {
	text := "What you'll need:\nSeveral years of backend experience.\nComfort with ambiguity and fast iteration."
	items, ok := ExtractRequirements(text)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v, ok = %v", items, ok)
	}
}

func TestExtractRequirementsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("Requirements:\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "- requirement number %d\n", i)
	}
	items, ok := ExtractRequirements(b.String())
	if !ok {
		t.Fatal("section not found")
	}
	if len(items) != maxRequirements {
		t.Errorf("len = %d, want cap %d", len(items), maxRequirements)
	}
}

func TestExtractRequirementsAbsent(t *testing.T) {
	if items, ok := ExtractRequirements("Just a short pitch with no sections."); ok {
		t.Errorf("unexpected items %v", items)
	}
}

func TestExtractBenefits(t *testing.T) {
	text := "Benefits:\n- Health insurance\n- 401k matching\n\nApply today."
	items, ok := ExtractBenefits(text)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v, ok = %v", items, ok)
	}
}

func TestSectionEndsAtNextLabel(t *testing.T) {
	text := "Requirements:\n- Go experience\nBenefits:\n- Free lunch"
	items, ok := ExtractRequirements(text)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, ok = %v", items, ok)
	}
	if items[0] != "Go experience" {
		t.Errorf("items[0] = %q", items[0])
	}
}
