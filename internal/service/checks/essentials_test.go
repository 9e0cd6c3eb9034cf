package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessEssentialsFullScore(t *testing.T) {
	html := `<body>
		<h2>Serving the entire Phoenix service area</h2>
		<p>We are licensed, insured and bonded, and every job carries a warranty.</p>
		<p>Request a quote or call now for a free estimate.</p>
		<p>Browse our gallery of recent projects and read every customer review and testimonial.</p>
		<p>Kitchen and bathroom remodels, plumbing, electrical, roofing and flooring.</p>
	</body>`

	r := BusinessEssentials(pageInput(html))
	assert.Equal(t, 100, r.Score)
	assert.Empty(t, r.Issues)
	assert.Empty(t, r.Recommendations)
	assert.Equal(t, []string{
		FactorServiceArea,
		FactorTrustSignals,
		FactorCallToAction,
		FactorPortfolio,
		FactorReviewsShown,
		FactorServices,
	}, r.Factors)
}

func TestBusinessEssentialsTrustAndCTAWithoutHeadings(t *testing.T) {
	// A page may have strong trust and CTA language while failing
	// other checks entirely (e.g. no H1).
	html := `<body><p>licensed, insured, bonded, warranty, free quote, call now,
		and five hundred words of body text</p></body>`

	r := BusinessEssentials(pageInput(html))
	// Trust: licensed+insured+bonded+warranty -> top tier (+20).
	// CTA: free quote + call now -> top tier (+15).
	assert.Equal(t, 35, r.Score)
	assert.Contains(t, r.Factors, FactorTrustSignals)
	assert.Contains(t, r.Factors, FactorCallToAction)
	assert.NotContains(t, r.Factors, FactorReviewsShown)
}

func TestBusinessEssentialsPartialTiers(t *testing.T) {
	tests := []struct {
		name          string
		html          string
		expectedScore int
	}{
		{
			name:          "single trust signal scores the low tier",
			html:          `<body><p>fully licensed contractor</p></body>`,
			expectedScore: 10,
		},
		{
			name:          "single call to action scores the low tier",
			html:          `<body><p>get a free quote</p></body>`,
			expectedScore: 8,
		},
		{
			name:          "two named services score the low tier",
			html:          `<body><p>plumbing and electrical work</p></body>`,
			expectedScore: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BusinessEssentials(pageInput(tt.html))
			assert.Equal(t, tt.expectedScore, r.Score)
		})
	}
}

func TestBusinessEssentialsEmptyPage(t *testing.T) {
	r := BusinessEssentials(pageInput(`<body><p>hello</p></body>`))

	assert.Equal(t, 0, r.Score)
	assert.Len(t, r.Issues, 4)
	assert.Len(t, r.Recommendations, 6)
	assert.Empty(t, r.Factors)
}
