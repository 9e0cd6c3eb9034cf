// Package checks holds the heuristic check modules of the grading
// engine. Each check is a pure function of the fetched page and
// returns a small result record; results are merged by the aggregator
// in aggregate.go, so no check ever observes another check's output.
package checks

import (
	"strings"

	"site_grader/internal/pkg/document"
)

// Score keys. These appear verbatim in the report contract.
const (
	KeyHTTPS              = "https"
	KeyMobile             = "mobile"
	KeyMetaTags           = "meta_tags"
	KeyHeadings           = "headings"
	KeyImages             = "images"
	KeySpeed              = "speed"
	KeyStructuredData     = "structured_data"
	KeySocial             = "social"
	KeyContact            = "contact"
	KeyContent            = "content"
	KeyBusinessEssentials = "business_essentials"
	KeyAIVisibility       = "ai_visibility"
	KeyOverall            = "overall"
)

// Input is the immutable view of one fetched page handed to every
// check module.
type Input struct {
	Doc     *document.Document
	RawHTML string
	// FinalURL is the resolved URL after redirects.
	FinalURL string
	// LoadTime is the fetch wall-clock time in seconds; zero or
	// negative means unknown.
	LoadTime float64
}

// Result is one check's contribution to the grading run: its own
// sub-score in [0,100], its findings, and any auxiliary values it
// detected along the way.
type Result struct {
	Key             string
	Score           int
	Issues          []string
	Recommendations []string

	// Auxiliary outputs, set only by the checks that produce them.
	SchemaTypes     []string
	Platforms       []string
	WordCount       int
	Factors         []string
}

func (r *Result) issue(msg string) {
	r.Issues = append(r.Issues, msg)
}

func (r *Result) recommend(msg string) {
	r.Recommendations = append(r.Recommendations, msg)
}

// CheckFunc is the shape every independent check module has.
type CheckFunc func(in Input) Result

// Registration pairs a check with the score key it owns.
type Registration struct {
	Key string
	Run CheckFunc
}

// Independent lists the checks without data dependencies, in the
// canonical order used to merge their findings. The AI-visibility
// composite and the overall score are not in this list: they read the
// merged ScoreSet and must run strictly after it is complete.
func Independent() []Registration {
	return []Registration{
		{KeyHTTPS, HTTPS},
		{KeyMobile, MobileViewport},
		{KeyMetaTags, MetaTags},
		{KeyHeadings, Headings},
		{KeyImages, Images},
		{KeySpeed, PageSpeed},
		{KeyStructuredData, StructuredData},
		{KeySocial, SocialPresence},
		{KeyContact, ContactInfo},
		{KeyContent, ContentQuality},
		{KeyBusinessEssentials, BusinessEssentials},
	}
}

func anyContains(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func countContains(haystack string, needles []string) int {
	count := 0
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			count++
		}
	}
	return count
}
