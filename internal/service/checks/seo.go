package checks

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MetaTags scores five independent signals at 20 points each: title,
// meta description, Open Graph coverage, canonical link and meta
// keywords.
func MetaTags(in Input) Result {
	r := Result{Key: KeyMetaTags}
	const pointsPerItem = 20

	if title := in.Doc.First("title", nil); title != nil && strings.TrimSpace(title.Text()) != "" {
		// Lengths count characters, not bytes, so non-ASCII titles
		// land in the same bands.
		titleLen := utf8.RuneCountInString(strings.TrimSpace(title.Text()))
		if titleLen >= 10 && titleLen <= 60 {
			r.Score += pointsPerItem
		} else {
			r.Score += pointsPerItem / 2
			r.issue(fmt.Sprintf("Title length (%d chars) should be 10-60 characters", titleLen))
		}
	} else {
		r.issue("Missing page title")
		r.recommend("Add a descriptive page title (50-60 characters)")
	}

	if desc := in.Doc.First("meta", map[string]string{"name": "description"}); desc != nil && desc.Attr("content") != "" {
		descLen := utf8.RuneCountInString(desc.Attr("content"))
		if descLen >= 120 && descLen <= 160 {
			r.Score += pointsPerItem
		} else {
			r.Score += pointsPerItem / 2
			r.issue(fmt.Sprintf("Meta description length (%d chars) should be 120-160 characters", descLen))
		}
	} else {
		r.issue("Missing meta description")
		r.recommend("Add meta description for search results")
	}

	ogCount := 0
	for _, property := range []string{"og:title", "og:description", "og:image"} {
		if in.Doc.First("meta", map[string]string{"property": property}) != nil {
			ogCount++
		}
	}
	switch {
	case ogCount == 3:
		r.Score += pointsPerItem
	case ogCount > 0:
		r.Score += pointsPerItem / 2
		r.issue("Incomplete Open Graph tags for social sharing")
	default:
		r.issue("No Open Graph tags - poor social media sharing")
		r.recommend("Add Open Graph tags for better social sharing")
	}

	if in.Doc.First("link", map[string]string{"rel": "canonical"}) != nil {
		r.Score += pointsPerItem
	} else {
		r.issue("No canonical URL specified")
	}

	if keywords := in.Doc.First("meta", map[string]string{"name": "keywords"}); keywords != nil && keywords.Attr("content") != "" {
		r.Score += pointsPerItem
	}

	if r.Score > 100 {
		r.Score = 100
	}
	return r
}

// Headings scores the heading structure: exactly one H1, at least two
// H2s and at least one H3.
func Headings(in Input) Result {
	r := Result{Key: KeyHeadings}
	h1Count := len(in.Doc.All("h1", nil))
	h2Count := len(in.Doc.All("h2", nil))
	h3Count := len(in.Doc.All("h3", nil))

	switch {
	case h1Count == 1:
		r.Score += 40
	case h1Count > 1:
		r.Score += 20
		r.issue(fmt.Sprintf("Multiple H1 tags found (%d) - should have only one", h1Count))
	default:
		r.issue("No H1 tag found")
		r.recommend("Add a single H1 tag with your main keyword")
	}

	switch {
	case h2Count >= 2:
		r.Score += 30
	case h2Count == 1:
		r.Score += 15
	default:
		r.issue("No H2 tags for content structure")
	}

	if h3Count >= 1 {
		r.Score += 30
	}
	return r
}

// importantSchemas are the Schema.org types with the most weight for
// AI discoverability.
var importantSchemas = map[string]bool{
	"LocalBusiness":   true,
	"Organization":    true,
	"Service":         true,
	"Product":         true,
	"FAQPage":         true,
	"HowTo":           true,
	"Review":          true,
	"AggregateRating": true,
}

// StructuredData collects @type values from every JSON-LD block and
// scores how many important Schema.org types the page declares.
// Malformed JSON-LD is skipped, never fatal: one broken script tag
// must not abort the run.
func StructuredData(in Input) Result {
	r := Result{Key: KeyStructuredData}
	scripts := in.Doc.All("script", map[string]string{"type": "application/ld+json"})

	var schemaTypes []string
	for _, script := range scripts {
		var data any
		if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
			continue
		}
		switch block := data.(type) {
		case []any:
			for _, item := range block {
				if m, ok := item.(map[string]any); ok {
					if t, ok := m["@type"].(string); ok {
						schemaTypes = append(schemaTypes, t)
					}
				}
			}
		case map[string]any:
			if t, ok := block["@type"].(string); ok {
				schemaTypes = append(schemaTypes, t)
			}
		}
	}

	foundImportant := 0
	hasFAQ := false
	for _, t := range schemaTypes {
		if importantSchemas[t] {
			foundImportant++
		}
		if t == "FAQPage" {
			hasFAQ = true
		}
	}

	switch {
	case foundImportant >= 3:
		r.Score = 100
	case foundImportant >= 2:
		r.Score = 75
	case foundImportant >= 1:
		r.Score = 50
	case len(scripts) > 0:
		r.Score = 25
	default:
		r.issue("No structured data (Schema.org) found")
		r.recommend("Add LocalBusiness and Service schema for AI discoverability")
	}

	if !hasFAQ {
		r.recommend("Add FAQ schema - AI assistants love citing FAQ content")
	}

	r.SchemaTypes = schemaTypes
	return r
}
