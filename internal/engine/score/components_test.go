package score

import (
	"testing"
	"time"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

var testNow = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func reqSkill(name string) engine.ExtractedSkill {
	return engine.ExtractedSkill{Name: name, Required: true, Confidence: 0.9}
}

func optSkill(name string) engine.ExtractedSkill {
	return engine.ExtractedSkill{Name: name, Required: false, Confidence: 0.8}
}

func userSkill(name string, prof engine.Proficiency) engine.UserSkill {
	return engine.UserSkill{Name: name, Proficiency: prof}
}

func TestSkillsMatchMonotonic(t *testing.T) {
	w := DefaultWeights()
	jobSkills := []engine.ExtractedSkill{reqSkill("python"), reqSkill("django"), optSkill("redis")}

	none := skillsMatch(jobSkills, nil, w, testNow)
	one := skillsMatch(jobSkills, []engine.UserSkill{userSkill("python", engine.ProficiencyExpert)}, w, testNow)
	two := skillsMatch(jobSkills, []engine.UserSkill{
		userSkill("python", engine.ProficiencyExpert),
		userSkill("django", engine.ProficiencyExpert),
	}, w, testNow)

	if !(none.score < one.score && one.score < two.score) {
		t.Errorf("scores not increasing: %.3f, %.3f, %.3f", none.score, one.score, two.score)
	}
	if len(two.matchedRequired) != 2 || two.totalRequired != 2 {
		t.Errorf("matched = %v of %d", two.matchedRequired, two.totalRequired)
	}
}

func TestSkillsMatchRequiredWeighsDouble(t *testing.T) {
	w := DefaultWeights()
	jobSkills := []engine.ExtractedSkill{reqSkill("go"), optSkill("redis")}

	onlyRequired := skillsMatch(jobSkills, []engine.UserSkill{userSkill("go", engine.ProficiencyExpert)}, w, testNow)
	onlyOptional := skillsMatch(jobSkills, []engine.UserSkill{userSkill("redis", engine.ProficiencyExpert)}, w, testNow)

	if onlyRequired.score <= onlyOptional.score {
		t.Errorf("required match %.3f should beat optional match %.3f", onlyRequired.score, onlyOptional.score)
	}
}

func TestSkillsMatchEmptyJobSkills(t *testing.T) {
	w := DefaultWeights()
	res := skillsMatch(nil, []engine.UserSkill{userSkill("go", engine.ProficiencyExpert)}, w, testNow)
	if res.score != w.EmptySkillsScore {
		t.Errorf("score = %.3f, want neutral %.3f", res.score, w.EmptySkillsScore)
	}
}

func TestExperienceMatch(t *testing.T) {
	w := DefaultWeights()
	tests := []struct {
		name    string
		level   engine.ExperienceLevel
		years   float64
		wantMin float64
		wantMax float64
	}{
		{"at ideal", engine.ExperienceSenior, 7, 1.0, 1.0},
		{"inside band", engine.ExperienceSenior, 6, 0.7, 1.0},
		{"at band edge", engine.ExperienceSenior, 5, 0.7, 0.7},
		{"below band degrades", engine.ExperienceExecutive, 5, 0.3, 0.4},
		{"zero years for senior", engine.ExperienceSenior, 0, 0, 0},
		{"overqualified floor", engine.ExperienceEntry, 15, 0.7, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := experienceMatch(tt.level, tt.years, w)
			if got < tt.wantMin-1e-9 || got > tt.wantMax+1e-9 {
				t.Errorf("score = %.3f, want in [%.2f, %.2f]", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestExperienceMatchGapSign(t *testing.T) {
	w := DefaultWeights()
	_, below := experienceMatch(engine.ExperienceExecutive, 5, w)
	if below >= 0 {
		t.Errorf("gap = %.1f, want negative for underqualified", below)
	}
	_, above := experienceMatch(engine.ExperienceEntry, 10, w)
	if above <= 0 {
		t.Errorf("gap = %.1f, want positive for overqualified", above)
	}
}

func TestLocationMatch(t *testing.T) {
	w := DefaultWeights()
	onsite := func(loc string) engine.JobPosting {
		return engine.JobPosting{Location: loc}
	}
	remote := engine.JobPosting{Location: "Anywhere", Remote: true}

	tests := []struct {
		name  string
		job   engine.JobPosting
		prefs engine.LocationPreferences
		want  float64
	}{
		{"remote only gets remote job", remote, engine.LocationPreferences{RemoteOnly: true}, 1.0},
		{"remote only rejects onsite", onsite("Berlin"), engine.LocationPreferences{RemoteOnly: true}, 0.0},
		{"remote job fits anyone", remote, engine.LocationPreferences{Locations: []string{"Berlin"}}, 1.0},
		{"exact city", onsite("San Francisco, CA"), engine.LocationPreferences{Locations: []string{"san francisco, ca"}}, 1.0},
		{"same region relocating", onsite("Oakland, CA"), engine.LocationPreferences{Locations: []string{"San Francisco, CA"}, WillingToRelocate: true}, w.PartialRelocate},
		{"same region staying", onsite("Oakland, CA"), engine.LocationPreferences{Locations: []string{"San Francisco, CA"}}, w.PartialStay},
		{"miss but relocating", onsite("Berlin, Germany"), engine.LocationPreferences{Locations: []string{"Austin, TX"}, WillingToRelocate: true}, w.MissRelocate},
		{"miss and staying", onsite("Berlin, Germany"), engine.LocationPreferences{Locations: []string{"Austin, TX"}}, w.MissStay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := locationMatch(tt.job, tt.prefs, w); got != tt.want {
				t.Errorf("score = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestSalaryMatch(t *testing.T) {
	w := DefaultWeights()
	exp := engine.SalaryExpectations{Min: 110000, Max: 160000, Currency: "USD"}

	t.Run("overlapping bands score high", func(t *testing.T) {
		got, _ := salaryMatch(engine.Salary{Min: intp(120000), Max: intp(150000)}, exp, w)
		if got < 0.9 {
			t.Errorf("score = %.3f, want >= 0.9", got)
		}
	})
	t.Run("below expectations degrades with gap", func(t *testing.T) {
		near, _ := salaryMatch(engine.Salary{Min: intp(90000), Max: intp(105000)}, exp, w)
		far, _ := salaryMatch(engine.Salary{Min: intp(40000), Max: intp(60000)}, exp, w)
		if !(near > far) {
			t.Errorf("near %.3f should beat far %.3f", near, far)
		}
	})
	t.Run("above expectations keeps a floor", func(t *testing.T) {
		got, _ := salaryMatch(engine.Salary{Min: intp(400000), Max: intp(500000)}, exp, w)
		if got < w.AboveBandFloor {
			t.Errorf("score = %.3f, want >= floor %.2f", got, w.AboveBandFloor)
		}
	})
	t.Run("gap percent is signed", func(t *testing.T) {
		_, gap := salaryMatch(engine.Salary{Min: intp(60000), Max: intp(80000)}, exp, w)
		if gap >= 0 {
			t.Errorf("gap = %.1f, want negative for low-paying job", gap)
		}
	})
	t.Run("unstated salary is neutral", func(t *testing.T) {
		got, gap := salaryMatch(engine.Salary{}, exp, w)
		if got != w.NoSalaryScore || gap != 0 {
			t.Errorf("got %.3f/%.1f, want neutral", got, gap)
		}
	})
	t.Run("no expectations is neutral", func(t *testing.T) {
		got, _ := salaryMatch(engine.Salary{Min: intp(100000)}, engine.SalaryExpectations{}, w)
		if got != w.NoSalaryScore {
			t.Errorf("got %.3f, want neutral", got)
		}
	})
}

func TestRequirementsMatchDealBreaker(t *testing.T) {
	w := DefaultWeights()
	reqs := []string{"On-call rotation every third week", "5 years of Java"}

	if got := requirementsMatch(reqs, []string{"on-call"}, w); got != w.DealBreakerScore {
		t.Errorf("deal breaker hit = %.2f, want %.2f", got, w.DealBreakerScore)
	}
	if got := requirementsMatch(reqs, []string{"relocation"}, w); got != w.RequirementsBase {
		t.Errorf("no hit = %.2f, want %.2f", got, w.RequirementsBase)
	}
	if got := requirementsMatch(reqs, nil, w); got != w.RequirementsBase {
		t.Errorf("no deal breakers = %.2f, want %.2f", got, w.RequirementsBase)
	}
}

func TestCompanyMatch(t *testing.T) {
	w := DefaultWeights()
	job := engine.JobPosting{
		EmploymentType: engine.EmploymentFullTime,
		Metadata:       engine.JobMetadata{Industry: []string{"technology"}, CompanySize: "startup"},
	}

	aligned := companyMatch(job, engine.EmploymentPreferences{
		Types:        []engine.EmploymentType{engine.EmploymentFullTime},
		CompanySizes: []string{"startup"},
		Industries:   []string{"technology"},
	}, w)
	misaligned := companyMatch(job, engine.EmploymentPreferences{
		Types:        []engine.EmploymentType{engine.EmploymentContract},
		CompanySizes: []string{"enterprise"},
		Industries:   []string{"finance"},
	}, w)
	neutral := companyMatch(job, engine.EmploymentPreferences{}, w)

	if aligned != 1.0 {
		t.Errorf("aligned = %.2f, want clamped 1.0", aligned)
	}
	if misaligned >= neutral {
		t.Errorf("misaligned %.2f should score below neutral %.2f", misaligned, neutral)
	}
	if neutral != w.CompanyBase {
		t.Errorf("neutral = %.2f, want base %.2f", neutral, w.CompanyBase)
	}
}
