package engine

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses space runs", "a   b\t\tc", "a b c"},
		{"trims lines", "  hello  \n  world  ", "hello\nworld"},
		{"collapses blank runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"crlf", "a\r\nb", "a\nb"},
		{"keeps single blank line", "a\n\nb", "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanHTML(t *testing.T) {
	got := CleanHTML("<p>Senior <b>Engineer</b></p>")
	if got != "Senior Engineer" {
		t.Errorf("got %q", got)
	}
}

func TestCanonicalJobID(t *testing.T) {
	ts := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	a := CanonicalJobID("Senior Engineer", "Acme", ts)
	b := CanonicalJobID("senior   engineer", "ACME", ts)
	if a != b {
		t.Errorf("id not canonical across case/spacing: %q != %q", a, b)
	}
	if !strings.HasPrefix(a, "job-") {
		t.Errorf("id %q lacks job- prefix", a)
	}

	c := CanonicalJobID("Senior Engineer", "Acme", ts.Add(time.Second))
	if a == c {
		t.Error("different timestamps should produce different ids")
	}
}
