package checks

import (
	"fmt"
	"regexp"
	"strings"
)

// socialPlatforms maps href substrings to display names. Order
// matters: findings keep the order platforms are first seen in.
var socialPlatforms = []struct {
	substr string
	name   string
}{
	{"facebook.com", "Facebook"},
	{"twitter.com", "Twitter/X"},
	{"x.com", "Twitter/X"},
	{"instagram.com", "Instagram"},
	{"linkedin.com", "LinkedIn"},
	{"youtube.com", "YouTube"},
	{"tiktok.com", "TikTok"},
	{"nextdoor.com", "Nextdoor"},
	{"yelp.com", "Yelp"},
}

// SocialPresence scans anchor hrefs for known social platforms,
// deduplicated by display name.
func SocialPresence(in Input) Result {
	r := Result{Key: KeySocial}

	seen := map[string]bool{}
	var found []string
	for _, link := range in.Doc.All("a", nil) {
		if !link.HasAttr("href") {
			continue
		}
		href := strings.ToLower(link.Attr("href"))
		for _, platform := range socialPlatforms {
			if strings.Contains(href, platform.substr) && !seen[platform.name] {
				seen[platform.name] = true
				found = append(found, platform.name)
			}
		}
	}

	switch {
	case len(found) >= 5:
		r.Score = 100
	case len(found) >= 3:
		r.Score = 75
	case len(found) >= 1:
		r.Score = 50
	default:
		r.issue("No social media links found")
		r.recommend("Add links to social profiles - increases AI visibility")
	}

	if !seen["YouTube"] {
		r.recommend("Create YouTube presence - AI heavily indexes video content")
	}
	if !seen["Yelp"] {
		r.recommend("Claim Yelp listing - important for local AI search")
	}

	r.Platforms = found
	return r
}

var (
	phonePattern = regexp.MustCompile(`\+?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4}`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// addressWords are indicators of a street address in the visible text.
var addressWords = []string{
	"street", "avenue", "ave", "road", "rd", "boulevard",
	"blvd", "suite", "floor", "az", "arizona", "phoenix",
}

// ContactInfo looks for a phone number, an email address and a street
// address: 35 + 30 + 35 points.
func ContactInfo(in Input) Result {
	r := Result{Key: KeyContact}
	pageText := strings.ToLower(in.Doc.Text())

	if phonePattern.MatchString(in.RawHTML) {
		r.Score += 35
	} else {
		r.issue("No phone number visible on page")
		r.recommend("Display phone number prominently")
	}

	if emailPattern.MatchString(in.RawHTML) {
		r.Score += 30
	} else {
		r.issue("No email address visible")
	}

	if anyContains(pageText, addressWords) {
		r.Score += 35
	} else {
		r.issue("No physical address found")
		r.recommend("Add full business address for local AI visibility")
	}
	return r
}

var (
	faqIndicators = []string{"faq", "frequently asked", "questions", "q:", "a:", "q&a"}
	serviceWords  = []string{
		"service", "we offer", "we provide", "our services",
		"what we do", "how we help",
	}
)

// structuralTags are removed before counting body content, since
// navigation and boilerplate inflate the word count.
var structuralTags = []string{"script", "style", "nav", "footer", "header"}

// ContentQuality counts body words after stripping structural markup,
// then rewards FAQ-style and service-description content.
func ContentQuality(in Input) Result {
	r := Result{Key: KeyContent}
	text := in.Doc.Text(structuralTags...)
	wordCount := len(strings.Fields(text))

	switch {
	case wordCount >= 1000:
		r.Score += 40
	case wordCount >= 500:
		r.Score += 30
	case wordCount >= 300:
		r.Score += 20
	default:
		r.issue(fmt.Sprintf("Low content: only %d words", wordCount))
		r.recommend("Add more content - aim for 500+ words on main pages")
	}

	lower := strings.ToLower(text)
	if anyContains(lower, faqIndicators) {
		r.Score += 30
	} else {
		r.recommend("Add FAQ section - AI assistants frequently cite Q&A content")
	}

	if anyContains(lower, serviceWords) {
		r.Score += 30
	}

	if r.Score > 100 {
		r.Score = 100
	}
	r.WordCount = wordCount
	return r
}
