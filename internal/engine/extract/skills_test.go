package extract

import (
	"testing"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

func skillMap(skills []engine.ExtractedSkill) map[string]engine.ExtractedSkill {
	m := make(map[string]engine.ExtractedSkill, len(skills))
	for _, s := range skills {
		m[s.Name] = s
	}
	return m
}

func TestExtractSkillsRequiredDetection(t *testing.T) {
	text := `Requirements:
- Strong proficiency in JavaScript
- Experience with React

Nice to have: exposure to Kubernetes.`

	m := skillMap(ExtractSkills(text))

	js, ok := m["javascript"]
	if !ok || !js.Required {
		t.Errorf("javascript = %+v, want required", js)
	}
	react, ok := m["react"]
	if !ok || !react.Required {
		t.Errorf("react = %+v, want required (inside requirements section)", react)
	}
	k8s, ok := m["kubernetes"]
	if !ok {
		t.Fatal("kubernetes not extracted")
	}
	if k8s.Required {
		t.Error("kubernetes marked required, but it is outside the requirements section")
	}
}

func TestExtractSkillsPunctuatedNames(t *testing.T) {
	text := "We work with C++, C# and Node.js daily. C++ experience is required."
	m := skillMap(ExtractSkills(text))

	cpp, ok := m["c++"]
	if !ok {
		t.Fatal("c++ not extracted")
	}
	if !cpp.Required {
		t.Error("c++ not marked required")
	}
	if _, ok := m["c#"]; !ok {
		t.Error("c# not extracted")
	}
	if _, ok := m["node.js"]; !ok {
		t.Error("node.js not extracted")
	}
}

func TestExtractSkillsGoNeedsGolang(t *testing.T) {
	if m := skillMap(ExtractSkills("Go to our careers page for details.")); len(m) != 0 {
		t.Errorf("bare 'go' matched: %v", m)
	}
	m := skillMap(ExtractSkills("We write Golang services."))
	if _, ok := m["go"]; !ok {
		t.Error("golang alias did not map to go")
	}
}

func TestExtractSkillsYears(t *testing.T) {
	m := skillMap(ExtractSkills("3+ years of React experience expected."))
	react, ok := m["react"]
	if !ok {
		t.Fatal("react not extracted")
	}
	if react.YearsRequired == nil || *react.YearsRequired != 3 {
		t.Errorf("years = %v, want 3", react.YearsRequired)
	}
}

func TestExtractSkillsConfidenceBoost(t *testing.T) {
	single := skillMap(ExtractSkills("We use Python."))
	double := skillMap(ExtractSkills("We use Python. Python powers everything."))
	if single["python"].Confidence >= double["python"].Confidence {
		t.Errorf("repeat mention should boost confidence: %.2f vs %.2f",
			single["python"].Confidence, double["python"].Confidence)
	}
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	skills := ExtractSkills("PostgreSQL and postgres and Postgres again.")
	count := 0
	for _, s := range skills {
		if s.Name == "postgresql" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("postgresql appears %d times", count)
	}
}
