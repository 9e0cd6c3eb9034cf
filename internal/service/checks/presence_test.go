package checks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSocialPresence(t *testing.T) {
	tests := []struct {
		name              string
		html              string
		expectedScore     int
		expectedPlatforms []string
	}{
		{
			name: "five platforms",
			html: `<body>
				<a href="https://facebook.com/acme">f</a>
				<a href="https://instagram.com/acme">i</a>
				<a href="https://linkedin.com/company/acme">l</a>
				<a href="https://youtube.com/@acme">y</a>
				<a href="https://yelp.com/biz/acme">ye</a>
			</body>`,
			expectedScore:     100,
			expectedPlatforms: []string{"Facebook", "Instagram", "LinkedIn", "YouTube", "Yelp"},
		},
		{
			name: "twitter and x dedupe to one platform",
			html: `<body>
				<a href="https://twitter.com/acme">t</a>
				<a href="https://x.com/acme">x</a>
			</body>`,
			expectedScore:     50,
			expectedPlatforms: []string{"Twitter/X"},
		},
		{
			name:              "no social links",
			html:              `<body><a href="/about">about</a></body>`,
			expectedScore:     0,
			expectedPlatforms: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SocialPresence(pageInput(tt.html))
			assert.Equal(t, tt.expectedScore, r.Score)
			assert.Equal(t, tt.expectedPlatforms, r.Platforms)
		})
	}
}

func TestSocialPresenceRecommendations(t *testing.T) {
	r := SocialPresence(pageInput(`<body><a href="https://facebook.com/acme">f</a></body>`))

	assert.Empty(t, r.Issues)
	assert.Contains(t, r.Recommendations, "Create YouTube presence - AI heavily indexes video content")
	assert.Contains(t, r.Recommendations, "Claim Yelp listing - important for local AI search")

	withBoth := SocialPresence(pageInput(`<body>
		<a href="https://youtube.com/@acme">y</a>
		<a href="https://yelp.com/biz/acme">ye</a>
	</body>`))
	assert.Empty(t, withBoth.Recommendations)
}

func TestContactInfo(t *testing.T) {
	tests := []struct {
		name          string
		html          string
		expectedScore int
	}{
		{
			name: "phone email and address",
			html: `<body><p>Call (602) 555-0134 or email info@acme.com.
				Visit us at 12 Main Street, Phoenix.</p></body>`,
			expectedScore: 100,
		},
		{
			name:          "phone only",
			html:          `<body><p>Call 602-555-0134 today</p></body>`,
			expectedScore: 35,
		},
		{
			name:          "email only",
			html:          `<body><p>Write to hello@acme.com</p></body>`,
			expectedScore: 30,
		},
		{
			name:          "address keyword only",
			html:          `<body><p>Find our suite downtown</p></body>`,
			expectedScore: 35,
		},
		{
			name:          "nothing",
			html:          `<body><p>welcome</p></body>`,
			expectedScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ContactInfo(pageInput(tt.html))
			assert.Equal(t, tt.expectedScore, r.Score)
		})
	}
}

func TestContactInfoIssues(t *testing.T) {
	r := ContactInfo(pageInput(`<body><p>welcome</p></body>`))

	assert.Contains(t, r.Issues, "No phone number visible on page")
	assert.Contains(t, r.Issues, "No email address visible")
	assert.Contains(t, r.Issues, "No physical address found")
	assert.Contains(t, r.Recommendations, "Display phone number prominently")
	assert.Contains(t, r.Recommendations, "Add full business address for local AI visibility")
}

func TestContentQuality(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name          string
		html          string
		expectedScore int
		expectedWords int
	}{
		{
			name:          "thin content",
			html:          `<body><p>` + words(50) + `</p></body>`,
			expectedScore: 0,
			expectedWords: 50,
		},
		{
			name:          "300 words",
			html:          `<body><p>` + words(300) + `</p></body>`,
			expectedScore: 20,
			expectedWords: 300,
		},
		{
			name:          "500 words with faq",
			html:          `<body><h2>Frequently Asked Questions</h2><p>` + words(500) + `</p></body>`,
			expectedScore: 60,
			expectedWords: 503,
		},
		{
			name: "1000 words with faq and services capped at 100",
			html: `<body><h2>FAQ</h2><p>We offer full remodeling service.</p><p>` + words(1000) + `</p></body>`,
			expectedScore: 100,
			expectedWords: 1006,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ContentQuality(pageInput(tt.html))
			assert.Equal(t, tt.expectedScore, r.Score)
			assert.Equal(t, tt.expectedWords, r.WordCount)
		})
	}
}

func TestContentQualityStripsStructuralTags(t *testing.T) {
	html := `<body>
		<nav>` + strings.Repeat("navword ", 400) + `</nav>
		<p>only twelve words of real body content live here on this page</p>
	</body>`

	r := ContentQuality(pageInput(html))
	assert.Equal(t, 12, r.WordCount)
	assert.Contains(t, r.Issues, "Low content: only 12 words")
	assert.Contains(t, r.Recommendations, "Add more content - aim for 500+ words on main pages")
}
