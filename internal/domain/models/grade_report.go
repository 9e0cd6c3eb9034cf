package models

// GradeReport is the external contract consumed by the serving layer
// and downstream report rendering. Field names are part of that
// contract and must not change.
type GradeReport struct {
	Success         bool          `json:"success"`
	URL             string        `json:"url"`
	Domain          string        `json:"domain"`
	Scores          ScoreGroups   `json:"scores"`
	Details         ReportDetails `json:"details"`
	Issues          []string      `json:"issues"`
	Recommendations []string      `json:"recommendations"`
}

type ScoreGroups struct {
	Overall            int             `json:"overall"`
	OverallGrade       string          `json:"overall_grade"`
	AIVisibility       int             `json:"ai_visibility"`
	AIVisibilityGrade  string          `json:"ai_visibility_grade"`
	BusinessEssentials int             `json:"business_essentials"`
	SEO                SEOScores       `json:"seo"`
	Technical          TechnicalScores `json:"technical"`
	Presence           PresenceScores  `json:"presence"`
}

type SEOScores struct {
	MetaTags       int `json:"meta_tags"`
	Headings       int `json:"headings"`
	StructuredData int `json:"structured_data"`
}

type TechnicalScores struct {
	HTTPS  int `json:"https"`
	Mobile int `json:"mobile"`
	Speed  int `json:"speed"`
	Images int `json:"images"`
}

type PresenceScores struct {
	Social  int `json:"social"`
	Contact int `json:"contact"`
	Content int `json:"content"`
}

type ReportDetails struct {
	LoadTime        float64  `json:"load_time"`
	WordCount       int      `json:"word_count"`
	SocialPlatforms []string `json:"social_platforms"`
	SchemaTypes     []string `json:"schema_types"`
	AIFactors       []string `json:"ai_factors"`
	BusinessFactors []string `json:"business_factors"`
}
