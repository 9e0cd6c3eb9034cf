package checks

import "math"

// ScoreSet is the merged output of a grading run. Numeric sub-scores
// live in Scores (clamped to [0,100]); auxiliary values detected by
// individual checks live in the typed fields.
type ScoreSet struct {
	Scores          map[string]int
	SchemaTypes     []string
	SocialPlatforms []string
	WordCount       int
	AIFactors       []string
	BusinessFactors []string
	Issues          []string
	Recommendations []string
}

// canonicalOrder fixes the order check findings appear in, no matter
// what order the checks actually ran in.
var canonicalOrder = []string{
	KeyHTTPS,
	KeyMobile,
	KeyMetaTags,
	KeyHeadings,
	KeyImages,
	KeySpeed,
	KeyStructuredData,
	KeySocial,
	KeyContact,
	KeyContent,
	KeyBusinessEssentials,
}

// Merge folds the independent check results into a ScoreSet. Results
// are keyed by check; a missing key (a check that faulted) simply
// contributes nothing, so one faulty check never corrupts the rest.
func Merge(results map[string]Result) *ScoreSet {
	set := &ScoreSet{Scores: make(map[string]int, len(canonicalOrder)+2)}
	for _, key := range canonicalOrder {
		r, ok := results[key]
		if !ok {
			continue
		}
		set.Scores[key] = clamp(r.Score)
		set.Issues = append(set.Issues, r.Issues...)
		set.Recommendations = append(set.Recommendations, r.Recommendations...)

		switch key {
		case KeyStructuredData:
			set.SchemaTypes = r.SchemaTypes
		case KeySocial:
			set.SocialPlatforms = r.Platforms
		case KeyContent:
			set.WordCount = r.WordCount
		case KeyBusinessEssentials:
			set.BusinessFactors = r.Factors
		}
	}
	return set
}

// Finalize runs the dependent second phase: the AI-visibility
// composite and the weighted overall score. It must only be called on
// a ScoreSet holding the full, merged output of the independent
// checks.
func (s *ScoreSet) Finalize() {
	ai := aiVisibility(s)
	s.Scores[KeyAIVisibility] = ai.Score
	s.AIFactors = ai.Factors
	if ai.Score < 50 {
		s.Recommendations = append(
			[]string{"PRIORITY: Improve AI visibility to be found by ChatGPT, Grok, etc."},
			s.Recommendations...)
	}
	s.Scores[KeyOverall] = Overall(s.Scores)
}

// aiVisibility estimates how likely AI assistants are to find and
// cite the business. It is a second-order heuristic built entirely
// from already-computed sub-scores and their auxiliary outputs.
func aiVisibility(s *ScoreSet) Result {
	r := Result{Key: KeyAIVisibility}

	switch sd := s.Scores[KeyStructuredData]; {
	case sd >= 75:
		r.Score += 20
		r.Factors = append(r.Factors, "Strong structured data")
	case sd >= 50:
		r.Score += 12
	}

	if containsString(s.SchemaTypes, "FAQPage") {
		r.Score += 12
		r.Factors = append(r.Factors, "FAQ schema present")
	}

	switch socialCount := len(s.SocialPlatforms); {
	case socialCount >= 4:
		r.Score += 15
		r.Factors = append(r.Factors, "Strong social presence")
	case socialCount >= 2:
		r.Score += 8
	}

	if containsString(s.SocialPlatforms, "YouTube") {
		r.Score += 8
		r.Factors = append(r.Factors, "YouTube presence")
	}

	switch contact := s.Scores[KeyContact]; {
	case contact >= 80:
		r.Score += 10
		r.Factors = append(r.Factors, "Complete contact info")
	case contact >= 50:
		r.Score += 5
	}

	if s.WordCount >= 500 {
		r.Score += 8
	}

	if s.Scores[KeyHTTPS] == 100 {
		r.Score += 5
	}

	switch be := s.Scores[KeyBusinessEssentials]; {
	case be >= 70:
		r.Score += 15
		r.Factors = append(r.Factors, "Strong business fundamentals")
	case be >= 40:
		r.Score += 8
	}

	if containsString(s.BusinessFactors, FactorReviewsShown) {
		r.Score += 7
		r.Factors = append(r.Factors, "Customer reviews shown")
	}

	r.Score = clamp(r.Score)
	return r
}

// overallWeights is the fixed convex combination behind the overall
// score. The exact values are a compatibility contract with existing
// reports; they sum to 1.0.
var overallWeights = map[string]float64{
	KeyAIVisibility:       0.22,
	KeyBusinessEssentials: 0.15,
	KeyStructuredData:     0.12,
	KeyMetaTags:           0.10,
	KeyMobile:             0.08,
	KeySpeed:              0.07,
	KeyHeadings:           0.06,
	KeyContent:            0.06,
	KeySocial:             0.05,
	KeyContact:            0.05,
	KeyHTTPS:              0.02,
	KeyImages:             0.02,
}

// Overall computes the weighted overall score, rounded half-up.
func Overall(scores map[string]int) int {
	total := 0.0
	for key, weight := range overallWeights {
		total += float64(scores[key]) * weight
	}
	return int(math.Round(total))
}

// Grade maps a 0-100 score to a letter grade. Band lower bounds are
// inclusive.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
