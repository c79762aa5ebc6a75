package extract

import "github.com/anatolykoptev/go_jobrank/internal/engine"

// TaxonomyEntry describes one canonical skill: its category, the aliases it
// may appear under in posting text, a scoring weight in (0,1], and related
// canonical skills.
type TaxonomyEntry struct {
	Category engine.SkillCategory
	Aliases  []string
	Weight   float64
	Related  []string
}

// Taxonomy is the static skill table, keyed by canonical lower-cased name.
// Read-only at runtime: extraction resolves aliases against it, scoring
// reads weights from it.
var Taxonomy = map[string]TaxonomyEntry{
	// --- programming ---
	"javascript": {engine.SkillProgramming, []string{"js", "ecmascript"}, 1.0, []string{"typescript", "node.js", "react"}},
	"typescript": {engine.SkillProgramming, []string{"ts"}, 0.95, []string{"javascript", "angular"}},
	"python":     {engine.SkillProgramming, []string{"py"}, 1.0, []string{"django", "flask", "fastapi"}},
	"java":       {engine.SkillProgramming, nil, 0.95, []string{"spring", "kotlin"}},
	// Bare "go" is too ambiguous for whole-word matching; only the alias hits.
	"go":     {engine.SkillProgramming, []string{"golang"}, 0.95, []string{"kubernetes", "docker"}},
	"c++":    {engine.SkillProgramming, []string{"cpp"}, 0.9, []string{"c#", "rust"}},
	"c#":     {engine.SkillProgramming, []string{"csharp"}, 0.9, []string{".net"}},
	"ruby":   {engine.SkillProgramming, nil, 0.85, []string{"rails"}},
	"php":    {engine.SkillProgramming, nil, 0.8, []string{"laravel"}},
	"rust":   {engine.SkillProgramming, nil, 0.85, []string{"c++"}},
	"kotlin": {engine.SkillProgramming, nil, 0.85, []string{"java", "swift"}},
	"swift":  {engine.SkillProgramming, nil, 0.85, []string{"kotlin"}},
	"scala":  {engine.SkillProgramming, nil, 0.8, []string{"java", "kafka"}},
	"sql":    {engine.SkillProgramming, nil, 0.9, []string{"postgresql", "mysql"}},

	// --- frameworks ---
	"react":   {engine.SkillFramework, []string{"react.js", "reactjs"}, 0.9, []string{"javascript", "typescript"}},
	"angular": {engine.SkillFramework, []string{"angularjs"}, 0.8, []string{"typescript"}},
	"vue":     {engine.SkillFramework, []string{"vue.js", "vuejs"}, 0.8, []string{"javascript"}},
	"node.js": {engine.SkillFramework, []string{"nodejs", "node js"}, 0.9, []string{"javascript", "express"}},
	"django":  {engine.SkillFramework, nil, 0.8, []string{"python"}},
	"flask":   {engine.SkillFramework, nil, 0.75, []string{"python"}},
	"fastapi": {engine.SkillFramework, nil, 0.75, []string{"python"}},
	"spring":  {engine.SkillFramework, []string{"spring boot", "springboot"}, 0.8, []string{"java"}},
	"rails":   {engine.SkillFramework, []string{"ruby on rails"}, 0.75, []string{"ruby"}},
	"express": {engine.SkillFramework, []string{"express.js", "expressjs"}, 0.7, []string{"node.js"}},
	"laravel": {engine.SkillFramework, nil, 0.7, []string{"php"}},
	".net":    {engine.SkillFramework, []string{"dotnet", "asp.net"}, 0.8, []string{"c#"}},

	// --- databases ---
	"postgresql":    {engine.SkillDatabase, []string{"postgres", "psql"}, 0.85, []string{"sql", "mysql"}},
	"mysql":         {engine.SkillDatabase, []string{"mariadb"}, 0.8, []string{"sql", "postgresql"}},
	"mongodb":       {engine.SkillDatabase, []string{"mongo"}, 0.8, []string{"node.js"}},
	"redis":         {engine.SkillDatabase, nil, 0.75, []string{"mongodb", "kafka"}},
	"elasticsearch": {engine.SkillDatabase, []string{"elastic search", "opensearch"}, 0.75, []string{"kibana"}},
	"sqlite":        {engine.SkillDatabase, nil, 0.6, []string{"sql"}},
	"cassandra":     {engine.SkillDatabase, nil, 0.65, []string{"kafka"}},
	"dynamodb":      {engine.SkillDatabase, nil, 0.65, []string{"aws"}},

	// --- tools / infrastructure ---
	"docker":     {engine.SkillTool, []string{"containers", "containerization"}, 0.85, []string{"kubernetes"}},
	"kubernetes": {engine.SkillTool, []string{"k8s"}, 0.85, []string{"docker", "terraform"}},
	"git":        {engine.SkillTool, []string{"github", "gitlab"}, 0.7, nil},
	"jenkins":    {engine.SkillTool, nil, 0.65, []string{"ci/cd"}},
	"terraform":  {engine.SkillTool, []string{"iac"}, 0.75, []string{"aws", "kubernetes"}},
	"aws":        {engine.SkillTool, []string{"amazon web services"}, 0.9, []string{"gcp", "azure"}},
	"gcp":        {engine.SkillTool, []string{"google cloud", "google cloud platform"}, 0.8, []string{"aws", "azure"}},
	"azure":      {engine.SkillTool, []string{"microsoft azure"}, 0.8, []string{"aws", "gcp"}},
	"kafka":      {engine.SkillTool, []string{"apache kafka"}, 0.75, []string{"rabbitmq"}},
	"rabbitmq":   {engine.SkillTool, nil, 0.65, []string{"kafka"}},
	"graphql":    {engine.SkillTool, nil, 0.7, []string{"react"}},
	"linux":      {engine.SkillTool, []string{"unix"}, 0.7, []string{"docker"}},
	"ci/cd":      {engine.SkillTool, []string{"cicd", "continuous integration"}, 0.7, []string{"jenkins", "git"}},

	// --- soft skills ---
	"communication":   {engine.SkillSoft, []string{"communication skills"}, 0.5, nil},
	"leadership":      {engine.SkillSoft, []string{"team leadership"}, 0.5, []string{"mentoring"}},
	"teamwork":        {engine.SkillSoft, []string{"collaboration", "team player"}, 0.5, nil},
	"problem solving": {engine.SkillSoft, []string{"problem-solving", "analytical skills"}, 0.5, nil},
	"mentoring":       {engine.SkillSoft, []string{"mentorship", "coaching"}, 0.5, []string{"leadership"}},
	"agile":           {engine.SkillSoft, []string{"scrum", "kanban"}, 0.55, nil},

	// --- certifications ---
	"aws certified": {engine.SkillCertification, []string{"aws certification"}, 0.6, []string{"aws"}},
	"pmp":           {engine.SkillCertification, nil, 0.6, nil},
	"cissp":         {engine.SkillCertification, nil, 0.6, nil},
	"scrum master":  {engine.SkillCertification, []string{"csm"}, 0.55, []string{"agile"}},

	// --- spoken languages ---
	"english":  {engine.SkillLanguage, []string{"fluent english"}, 0.4, nil},
	"german":   {engine.SkillLanguage, nil, 0.4, nil},
	"french":   {engine.SkillLanguage, nil, 0.4, nil},
	"spanish":  {engine.SkillLanguage, nil, 0.4, nil},
	"mandarin": {engine.SkillLanguage, []string{"chinese"}, 0.4, nil},
}

// SkillWeight returns the taxonomy weight for a canonical skill name,
// or a neutral 0.5 for skills outside the taxonomy.
func SkillWeight(name string) float64 {
	if e, ok := Taxonomy[name]; ok {
		return e.Weight
	}
	return 0.5
}
