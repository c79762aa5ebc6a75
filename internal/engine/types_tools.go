package engine

// Tool input/output types for the MCP surface.

// ParseJobInput is the input for parse_job.
type ParseJobInput struct {
	Text   string `json:"text" jsonschema:"Raw job posting text or HTML to extract structured data from"`
	Source string `json:"source,omitempty" jsonschema:"Where the posting came from: linkedin, indeed, glassdoor, company-website, email, other (default: other)"`
	URL    string `json:"url,omitempty" jsonschema:"Original posting URL, stored as-is"`
}

// ParseJobOutput is the output for parse_job.
type ParseJobOutput struct {
	Job           JobPosting `json:"job"`
	Confidence    float64    `json:"confidence" jsonschema:"Extraction confidence in [0,1]"`
	Warnings      []string   `json:"warnings"`
	MissingFields []string   `json:"missing_fields"`
}

// SaveProfileInput is the input for save_profile.
type SaveProfileInput struct {
	Profile UserProfile `json:"profile" jsonschema:"Complete user profile; replaces any existing profile for the same user_id"`
}

// SaveProfileOutput is the output for save_profile.
type SaveProfileOutput struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// GetProfileInput is the input for get_profile.
type GetProfileInput struct {
	UserID string `json:"user_id" jsonschema:"User whose profile to fetch"`
}

// ScoreJobInput is the input for score_job.
type ScoreJobInput struct {
	Job      JobPosting         `json:"job" jsonschema:"Structured posting, typically the output of parse_job"`
	UserID   string             `json:"user_id" jsonschema:"User to score against; their profile must exist"`
	Criteria map[string]float64 `json:"criteria,omitempty" jsonschema:"Optional component weight overrides: skills, experience, location, salary, company, requirements"`
}

// BatchScoreJobsInput is the input for batch_score_jobs.
type BatchScoreJobsInput struct {
	Jobs     []JobPosting       `json:"jobs" jsonschema:"Postings to score"`
	UserID   string             `json:"user_id" jsonschema:"User to score against; their profile must exist"`
	Criteria map[string]float64 `json:"criteria,omitempty" jsonschema:"Optional component weight overrides: skills, experience, location, salary, company, requirements"`
}

// BatchScoreJobsOutput is the output for batch_score_jobs.
type BatchScoreJobsOutput struct {
	Scores []JobScore `json:"scores" jsonschema:"Sorted by overall_score, descending"`
	Total  int        `json:"total"`
}

// RankJobsInput is the input for rank_jobs.
type RankJobsInput struct {
	Jobs   []JobPosting `json:"jobs" jsonschema:"Postings to rank"`
	UserID string       `json:"user_id" jsonschema:"User whose profile and behavioral model drive the ranking"`
}

// RankJobsOutput is the output for rank_jobs.
type RankJobsOutput struct {
	Ranked []RankedJob `json:"ranked" jsonschema:"Sorted by ml_score, descending"`
	Total  int         `json:"total"`
}

// RecommendationsInput is the input for job_recommendations.
type RecommendationsInput struct {
	Jobs   []JobPosting `json:"jobs" jsonschema:"Candidate postings to pick recommendations from"`
	UserID string       `json:"user_id" jsonschema:"User whose profile and behavioral model drive the ranking"`
	Limit  int          `json:"limit,omitempty" jsonschema:"Maximum recommendations to return (default 10)"`
}

// RecordInteractionInput is the input for record_interaction.
type RecordInteractionInput struct {
	UserID         string      `json:"user_id" jsonschema:"User who acted"`
	JobID          string      `json:"job_id" jsonschema:"Posting acted on"`
	Action         string      `json:"action" jsonschema:"One of: viewed, saved, applied, rejected, interviewed, hired"`
	DurationViewed float64     `json:"duration_viewed,omitempty" jsonschema:"Seconds spent viewing, for the viewed action"`
	FeedbackRating int         `json:"feedback_rating,omitempty" jsonschema:"Optional 1-5 rating; low ratings on rejections discount future likelihood"`
	Job            *JobPosting `json:"job,omitempty" jsonschema:"Optional posting details so title/company preferences can be learned"`
}

// RecordInteractionOutput is the output for record_interaction.
type RecordInteractionOutput struct {
	UserID   string              `json:"user_id"`
	Behavior UserBehaviorPattern `json:"behavior" jsonschema:"Behavioral model after applying the interaction"`
	Message  string              `json:"message"`
}

// GetBehaviorInput is the input for get_behavior.
type GetBehaviorInput struct {
	UserID string `json:"user_id" jsonschema:"User whose behavioral model to fetch"`
}
