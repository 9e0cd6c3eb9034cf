package service

import (
	"math"

	"site_grader/internal/domain/models"
	"site_grader/internal/service/checks"
)

// Findings beyond these bounds are dropped from the report; insertion
// order decides what survives, not severity.
const (
	maxIssues          = 10
	maxRecommendations = 8
)

// buildReport assembles the final immutable report from the completed
// score set, grouping sub-scores into the seo/technical/presence
// presentation buckets.
func buildReport(url string, page *models.FetchResult, set *checks.ScoreSet) *models.GradeReport {
	overall := set.Scores[checks.KeyOverall]
	aiVisibility := set.Scores[checks.KeyAIVisibility]

	return &models.GradeReport{
		Success: true,
		URL:     url,
		Domain:  domainOf(url),
		Scores: models.ScoreGroups{
			Overall:            overall,
			OverallGrade:       checks.Grade(overall),
			AIVisibility:       aiVisibility,
			AIVisibilityGrade:  checks.Grade(aiVisibility),
			BusinessEssentials: set.Scores[checks.KeyBusinessEssentials],
			SEO: models.SEOScores{
				MetaTags:       set.Scores[checks.KeyMetaTags],
				Headings:       set.Scores[checks.KeyHeadings],
				StructuredData: set.Scores[checks.KeyStructuredData],
			},
			Technical: models.TechnicalScores{
				HTTPS:  set.Scores[checks.KeyHTTPS],
				Mobile: set.Scores[checks.KeyMobile],
				Speed:  set.Scores[checks.KeySpeed],
				Images: set.Scores[checks.KeyImages],
			},
			Presence: models.PresenceScores{
				Social:  set.Scores[checks.KeySocial],
				Contact: set.Scores[checks.KeyContact],
				Content: set.Scores[checks.KeyContent],
			},
		},
		Details: models.ReportDetails{
			LoadTime:        math.Round(page.Elapsed*100) / 100,
			WordCount:       set.WordCount,
			SocialPlatforms: orEmpty(set.SocialPlatforms),
			SchemaTypes:     orEmpty(set.SchemaTypes),
			AIFactors:       orEmpty(set.AIFactors),
			BusinessFactors: orEmpty(set.BusinessFactors),
		},
		Issues:          truncate(set.Issues, maxIssues),
		Recommendations: truncate(set.Recommendations, maxRecommendations),
	}
}

// truncate bounds a findings list, keeping insertion order.
func truncate(list []string, max int) []string {
	if len(list) > max {
		list = list[:max]
	}
	return orEmpty(list)
}

// orEmpty guarantees an empty (not nil) slice so the JSON contract
// always carries arrays.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
