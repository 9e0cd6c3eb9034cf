package models

import (
	"fmt"
	"strings"
)

// Summary renders the report as human-readable lines for terminal
// output.
func (r *GradeReport) Summary() []string {
	lines := []string{
		fmt.Sprintf("Analyzing: %s", r.URL),
		"",
		fmt.Sprintf("Overall Score: %d/100 (%s)", r.Scores.Overall, r.Scores.OverallGrade),
		fmt.Sprintf("AI Visibility: %d/100 (%s)", r.Scores.AIVisibility, r.Scores.AIVisibilityGrade),
		"",
		fmt.Sprintf("Load Time: %.2fs", r.Details.LoadTime),
		fmt.Sprintf("Word Count: %d", r.Details.WordCount),
		"",
		fmt.Sprintf("Social Platforms: %s", orNone(r.Details.SocialPlatforms)),
		fmt.Sprintf("Schema Types: %s", orNone(r.Details.SchemaTypes)),
	}

	lines = append(lines, "", "--- Top Issues ---")
	for _, issue := range r.Issues {
		lines = append(lines, "  - "+issue)
	}

	lines = append(lines, "", "--- Recommendations ---")
	for _, rec := range r.Recommendations {
		lines = append(lines, "  - "+rec)
	}
	return lines
}

func orNone(list []string) string {
	if len(list) == 0 {
		return "None found"
	}
	return strings.Join(list, ", ")
}
