package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeCanonicalOrder(t *testing.T) {
	// The merge order is fixed, no matter what order the checks
	// actually finished in.
	results := map[string]Result{
		KeyContent:  {Key: KeyContent, Score: 20, Issues: []string{"content issue"}, WordCount: 250},
		KeyHTTPS:    {Key: KeyHTTPS, Score: 0, Issues: []string{"https issue"}},
		KeyMobile:   {Key: KeyMobile, Score: 0, Issues: []string{"mobile issue"}},
		KeySocial:   {Key: KeySocial, Score: 50, Platforms: []string{"Facebook"}},
		KeyHeadings: {Key: KeyHeadings, Score: 40},
	}

	set := Merge(results)
	assert.Equal(t, []string{"https issue", "mobile issue", "content issue"}, set.Issues)
	assert.Equal(t, 250, set.WordCount)
	assert.Equal(t, []string{"Facebook"}, set.SocialPlatforms)
	assert.Equal(t, 40, set.Scores[KeyHeadings])
}

func TestMergeClampsScores(t *testing.T) {
	set := Merge(map[string]Result{
		KeyContent:  {Key: KeyContent, Score: 150},
		KeyHeadings: {Key: KeyHeadings, Score: -10},
	})

	assert.Equal(t, 100, set.Scores[KeyContent])
	assert.Equal(t, 0, set.Scores[KeyHeadings])
}

func TestMergeToleratesMissingCheck(t *testing.T) {
	// A faulted check contributes nothing; its key reads as zero.
	set := Merge(map[string]Result{
		KeyHTTPS: {Key: KeyHTTPS, Score: 100},
	})

	assert.Equal(t, 100, set.Scores[KeyHTTPS])
	assert.Equal(t, 0, set.Scores[KeyMobile])
}

func perfectScoreSet() *ScoreSet {
	scores := make(map[string]int)
	for _, key := range canonicalOrder {
		scores[key] = 100
	}
	return &ScoreSet{
		Scores:          scores,
		SchemaTypes:     []string{"LocalBusiness", "Service", "FAQPage"},
		SocialPlatforms: []string{"Facebook", "Instagram", "LinkedIn", "YouTube"},
		WordCount:       1200,
		BusinessFactors: []string{FactorTrustSignals, FactorReviewsShown},
	}
}

func TestFinalizePerfectSite(t *testing.T) {
	set := perfectScoreSet()
	set.Finalize()

	assert.Equal(t, 100, set.Scores[KeyAIVisibility])
	assert.Equal(t, 100, set.Scores[KeyOverall])
	assert.Contains(t, set.AIFactors, "Strong structured data")
	assert.Contains(t, set.AIFactors, "FAQ schema present")
	assert.Contains(t, set.AIFactors, "Strong social presence")
	assert.Contains(t, set.AIFactors, "YouTube presence")
	assert.Contains(t, set.AIFactors, "Complete contact info")
	assert.Contains(t, set.AIFactors, "Strong business fundamentals")
	assert.Contains(t, set.AIFactors, "Customer reviews shown")
	assert.Empty(t, set.Recommendations)
}

func TestFinalizeEmptySite(t *testing.T) {
	set := &ScoreSet{Scores: make(map[string]int)}
	set.Finalize()

	assert.Equal(t, 0, set.Scores[KeyAIVisibility])
	assert.Equal(t, 0, set.Scores[KeyOverall])
	// Low AI visibility inserts the priority recommendation first.
	assert.NotEmpty(t, set.Recommendations)
	assert.Equal(t, "PRIORITY: Improve AI visibility to be found by ChatGPT, Grok, etc.",
		set.Recommendations[0])
}

func TestFinalizeMidTierBonuses(t *testing.T) {
	set := &ScoreSet{
		Scores: map[string]int{
			KeyStructuredData:     50, // +12
			KeyContact:            50, // +5
			KeyBusinessEssentials: 40, // +8
		},
		SocialPlatforms: []string{"Facebook", "Instagram"}, // +8
		WordCount:       600,                               // +8
	}
	set.Finalize()

	assert.Equal(t, 41, set.Scores[KeyAIVisibility])
	assert.Empty(t, set.AIFactors)
}

func TestOverallWeightedSum(t *testing.T) {
	all := func(score int) map[string]int {
		scores := make(map[string]int)
		for key := range overallWeights {
			scores[key] = score
		}
		return scores
	}

	assert.Equal(t, 100, Overall(all(100)))
	assert.Equal(t, 0, Overall(all(0)))
	assert.Equal(t, 50, Overall(all(50)))

	// Missing keys weigh in as zero.
	assert.Equal(t, 22, Overall(map[string]int{KeyAIVisibility: 100}))
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Grade(tt.score), "score %d", tt.score)
	}
}
