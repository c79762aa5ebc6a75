package extract

import (
	"strings"
	"testing"
)

func TestNormalizeTextBullets(t *testing.T) {
	got := NormalizeText("Requirements:\n• First thing\n● Second thing\n* Third thing")
	want := "Requirements:\n- First thing\n- Second thing\n- Third thing"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeTextEntities(t *testing.T) {
	got := NormalizeText("Engineers &amp; designers wanted")
	if got != "Engineers & designers wanted" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeTextWhitespace(t *testing.T) {
	got := NormalizeText("Title   here\n\n\n\nNext   section")
	if got != "Title here\n\nNext section" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeTextHTML(t *testing.T) {
	raw := "<html><body><h1>Backend Engineer</h1><p>Company: Acme</p><ul><li>Go experience</li><li>SQL knowledge</li></ul></body></html>"
	got := NormalizeText(raw)

	if strings.Contains(got, "<") {
		t.Errorf("tags survived: %q", got)
	}
	for _, want := range []string{"Backend Engineer", "Company: Acme", "Go experience", "SQL knowledge"} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q: %q", want, got)
		}
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if looksLikeHTML("plain text with a < b comparison") {
		t.Error("false positive on plain text")
	}
	if !looksLikeHTML("<div class=\"job\">text</div>") {
		t.Error("missed obvious markup")
	}
}
