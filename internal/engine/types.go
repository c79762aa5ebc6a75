package engine

import "time"

// Source identifies where a raw posting came from.
type Source string

const (
	SourceLinkedIn       Source = "linkedin"
	SourceIndeed         Source = "indeed"
	SourceGlassdoor      Source = "glassdoor"
	SourceCompanyWebsite Source = "company-website"
	SourceEmail          Source = "email"
	SourceOther          Source = "other"
)

// EmploymentType is the contract form of a posting.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

// ExperienceLevel is the seniority band of a posting.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceLead      ExperienceLevel = "lead"
	ExperienceExecutive ExperienceLevel = "executive"
)

// SkillCategory classifies a taxonomy entry.
type SkillCategory string

const (
	SkillProgramming   SkillCategory = "programming"
	SkillFramework     SkillCategory = "framework"
	SkillDatabase      SkillCategory = "database"
	SkillTool          SkillCategory = "tool"
	SkillSoft          SkillCategory = "soft-skill"
	SkillCertification SkillCategory = "certification"
	SkillLanguage      SkillCategory = "language"
)

// Proficiency is a user's self-reported level for one skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Recommendation is the discrete tier derived from an overall score.
type Recommendation string

const (
	HighlyRecommended Recommendation = "highly_recommended"
	GoodMatch         Recommendation = "good_match"
	Consider          Recommendation = "consider"
	PoorMatch         Recommendation = "poor_match"
)

// InteractionAction is a user action on a job posting.
type InteractionAction string

const (
	ActionViewed      InteractionAction = "viewed"
	ActionSaved       InteractionAction = "saved"
	ActionApplied     InteractionAction = "applied"
	ActionRejected    InteractionAction = "rejected"
	ActionInterviewed InteractionAction = "interviewed"
	ActionHired       InteractionAction = "hired"
)

// JobCategory is the single functional category assigned during extraction.
type JobCategory string

const (
	CategorySoftwareEngineering JobCategory = "software-engineering"
	CategoryDataScience         JobCategory = "data-science"
	CategoryDesign              JobCategory = "design"
	CategoryProduct             JobCategory = "product"
	CategoryDevOps              JobCategory = "devops"
	CategoryMarketing           JobCategory = "marketing"
	CategorySales               JobCategory = "sales"
	CategoryManagement          JobCategory = "management"
	CategoryOther               JobCategory = "other"
)

// Salary is a parsed compensation band. Min/Max are nil when unstated.
type Salary struct {
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
	Currency string `json:"currency"`
	Period   string `json:"period"` // "yearly", "monthly", "hourly"
	Equity   bool   `json:"equity,omitempty"`
}

// ExtractedSkill is one skill recognized in posting text.
// Name is the canonical lower-cased taxonomy key.
type ExtractedSkill struct {
	Name          string        `json:"name"`
	Category      SkillCategory `json:"category"`
	Required      bool          `json:"required"`
	YearsRequired *int          `json:"years_required,omitempty"`
	Confidence    float64       `json:"confidence"` // [0,1]
}

// JobMetadata carries extraction-time classification and quality signals.
type JobMetadata struct {
	ConfidenceScore float64     `json:"confidence_score"` // [0,1]
	Industry        []string    `json:"industry"`
	CompanySize     string      `json:"company_size,omitempty"` // startup/small/medium/large/enterprise
	Category        JobCategory `json:"category"`
	Language        string      `json:"language"`
}

// JobPosting is a structured job ad produced by the extractor.
// ID is derived deterministically from title+company+timestamp and is
// immutable once assigned.
type JobPosting struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	Company             string           `json:"company"`
	Location            string           `json:"location"`
	Description         string           `json:"description"`
	URL                 string           `json:"url,omitempty"`
	Source              Source           `json:"source"`
	Requirements        []string         `json:"requirements"`
	Benefits            []string         `json:"benefits"`
	Salary              Salary           `json:"salary"`
	EmploymentType      EmploymentType   `json:"employment_type"`
	ExperienceLevel     ExperienceLevel  `json:"experience_level"`
	Remote              bool             `json:"remote"`
	PostedDate          time.Time        `json:"posted_date"`
	ApplicationDeadline *time.Time       `json:"application_deadline,omitempty"`
	Skills              []ExtractedSkill `json:"skills"`
	Metadata            JobMetadata      `json:"metadata"`
}

// ExtractionResult is the full output of one Parse call.
type ExtractionResult struct {
	Job           JobPosting `json:"job"`
	Confidence    float64    `json:"confidence"` // [0,1]
	Warnings      []string   `json:"warnings"`
	MissingFields []string   `json:"missing_fields"`
}

// UserSkill is one skill in a user profile.
type UserSkill struct {
	Name            string      `json:"name"`
	Proficiency     Proficiency `json:"proficiency"`
	YearsExperience float64     `json:"years_experience"`
	Verified        bool        `json:"verified"`
	LastUsed        time.Time   `json:"last_used"`
}

// SalaryExpectations is the user's desired compensation band.
type SalaryExpectations struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// LocationPreferences captures where the user is willing to work.
type LocationPreferences struct {
	RemoteOnly        bool     `json:"remote_only"`
	Locations         []string `json:"locations"`
	WillingToRelocate bool     `json:"willing_to_relocate"`
}

// EmploymentPreferences captures employment-shape preferences.
type EmploymentPreferences struct {
	Types        []EmploymentType `json:"types"`
	CompanySizes []string         `json:"company_sizes"`
	Industries   []string         `json:"industries"`
}

// Priorities weight the user's decision dimensions. Informally sums to 1.0.
type Priorities struct {
	Salary   float64 `json:"salary"`
	Location float64 `json:"location"`
	Culture  float64 `json:"culture"`
	Growth   float64 `json:"growth"`
	Balance  float64 `json:"balance"`
	Benefits float64 `json:"benefits"`
}

// UserProfile is everything the scorer and matcher know about a user.
type UserProfile struct {
	UserID                string                `json:"user_id"`
	Skills                []UserSkill           `json:"skills"`
	ExperienceYears       float64               `json:"experience_years"`
	DesiredRoles          []string              `json:"desired_roles"`
	SalaryExpectations    SalaryExpectations    `json:"salary_expectations"`
	LocationPreferences   LocationPreferences   `json:"location_preferences"`
	EmploymentPreferences EmploymentPreferences `json:"employment_preferences"`
	DealBreakers          []string              `json:"deal_breakers"`
	Priorities            Priorities            `json:"priorities"`
}

// ScoreBreakdown holds the six component sub-scores, each 0–100.
type ScoreBreakdown struct {
	SkillsMatch       float64 `json:"skills_match"`
	ExperienceMatch   float64 `json:"experience_match"`
	LocationMatch     float64 `json:"location_match"`
	SalaryMatch       float64 `json:"salary_match"`
	CompanyMatch      float64 `json:"company_match"`
	RequirementsMatch float64 `json:"requirements_match"`
}

// ScoreReasoning is the natural-language explanation of a score.
type ScoreReasoning struct {
	Strengths   []string `json:"strengths"`
	Concerns    []string `json:"concerns"`
	Suggestions []string `json:"suggestions"`
}

// Compatibility summarizes the concrete fit between job and profile.
type Compatibility struct {
	MustHaveSkills   []string `json:"must_have_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	ExperienceGap    float64  `json:"experience_gap"` // years, signed
	SalaryGap        float64  `json:"salary_gap"`     // percent, signed
}

// JobScore is the immutable result of one scoring call. A re-score
// produces a new record; persistence upserts by (job_id, user_id).
type JobScore struct {
	JobID          string         `json:"job_id"`
	UserID         string         `json:"user_id"`
	OverallScore   int            `json:"overall_score"` // [0,100]
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Reasoning      ScoreReasoning `json:"reasoning"`
	Compatibility  Compatibility  `json:"compatibility"`
	Recommendation Recommendation `json:"recommendation"`
	Confidence     float64        `json:"confidence"` // [0,1]
	ScoredAt       time.Time      `json:"scored_at"`
}

// MLJobFeatures is the fixed-shape feature vector computed per
// (job, profile) pair. Every feature is conceptually in [0,1].
type MLJobFeatures struct {
	TitleSimilarity       float64 `json:"title_similarity"`
	DescriptionSimilarity float64 `json:"description_similarity"`
	SkillsCoverage        float64 `json:"skills_coverage"`
	RequiredSkillsRatio   float64 `json:"required_skills_ratio"`
	ExperienceMatch       float64 `json:"experience_match"`
	SalaryFit             float64 `json:"salary_fit"`
	LocationPreference    float64 `json:"location_preference"`
	RemoteMatch           float64 `json:"remote_match"`
	EmploymentTypeMatch   float64 `json:"employment_type_match"`
	IndustryAffinity      float64 `json:"industry_affinity"`
	CompanySizeMatch      float64 `json:"company_size_match"`
	ApplicationLikelihood float64 `json:"application_likelihood"`
	ResponseProbability   float64 `json:"response_probability"`
	SuccessPrediction     float64 `json:"success_prediction"`
}

// ModelWeights are the per-user weights of the composite ranking score.
type ModelWeights struct {
	SkillsCoverage     float64 `json:"skills_coverage"`
	SalaryFit          float64 `json:"salary_fit"`
	LocationPreference float64 `json:"location_preference"`
	TitleSimilarity    float64 `json:"title_similarity"`
	ExperienceMatch    float64 `json:"experience_match"`
}

// UserBehaviorPattern is per-user mutable ranking state. Created lazily
// with defaults on first use; persisted after each mutation.
type UserBehaviorPattern struct {
	UserID             string       `json:"user_id"`
	ApplicationRate    float64      `json:"application_rate"`
	ResponseRate       float64      `json:"response_rate"`
	SuccessRate        float64      `json:"success_rate"`
	AvgViewSeconds     float64      `json:"avg_view_seconds"`
	ViewCount          int64        `json:"view_count"`
	PreferredTitles    []string     `json:"preferred_titles"`
	PreferredCompanies []string     `json:"preferred_companies"`
	ModelWeights       ModelWeights `json:"model_weights"`
	LastUpdated        time.Time    `json:"last_updated"`
}

// JobInteraction is one append-only user interaction event.
type JobInteraction struct {
	UserID         string            `json:"user_id"`
	JobID          string            `json:"job_id"`
	Action         InteractionAction `json:"action"`
	Timestamp      time.Time         `json:"timestamp"`
	DurationViewed float64           `json:"duration_viewed,omitempty"` // seconds
	FeedbackRating int               `json:"feedback_rating,omitempty"` // 1–5, 0 = none
}

// RankedJob is one entry of a ranking result.
type RankedJob struct {
	Job       JobPosting    `json:"job"`
	MLScore   float64       `json:"ml_score"` // [0,1]
	Features  MLJobFeatures `json:"features"`
	Reasoning string        `json:"reasoning,omitempty"`
}
