package checks

import "strings"

// Business-factor labels reported under details.business_factors.
// FactorReviewsShown also feeds the AI-visibility composite.
const (
	FactorServiceArea  = "Service area listed"
	FactorTrustSignals = "Trust signals present"
	FactorCallToAction = "Clear calls to action"
	FactorPortfolio    = "Project gallery shown"
	FactorReviewsShown = "Reviews/testimonials shown"
	FactorServices     = "Services described"
)

var (
	serviceAreaWords = []string{
		"service area", "areas we serve", "we serve", "serving", "locations",
	}
	trustWords = []string{
		"licensed", "insured", "bonded", "certified", "warranty",
		"guarantee", "accredited", "background check", "bbb",
	}
	ctaPhrases = []string{
		"free quote", "free estimate", "call now", "call today",
		"schedule", "book now", "get started", "request a quote",
		"contact us today",
	}
	portfolioWords = []string{
		"portfolio", "gallery", "our work", "before and after",
		"recent projects",
	}
	reviewWords = []string{
		"review", "testimonial", "five star", "5-star",
		"what our customers",
	}
	serviceTypeWords = []string{
		"remodel", "renovation", "kitchen", "bathroom", "plumbing",
		"electrical", "hvac", "roofing", "flooring", "painting",
		"landscaping", "countertop", "cabinet", "tile", "drywall",
		"concrete",
	}
)

// BusinessEssentials scores six signals a home-services site needs to
// convert visitors: service area, trust signals, calls to action, a
// project gallery, reviews, and named services.
func BusinessEssentials(in Input) Result {
	r := Result{Key: KeyBusinessEssentials}
	text := strings.ToLower(in.Doc.Text(structuralTags...))

	if anyContains(text, serviceAreaWords) {
		r.Score += 15
		r.Factors = append(r.Factors, FactorServiceArea)
	} else {
		r.issue("No service area information found")
		r.recommend("List the cities and areas you serve")
	}

	switch trustCount := countContains(text, trustWords); {
	case trustCount >= 3:
		r.Score += 20
		r.Factors = append(r.Factors, FactorTrustSignals)
	case trustCount >= 1:
		r.Score += 10
		r.Factors = append(r.Factors, FactorTrustSignals)
	default:
		r.issue("No trust signals (licensed, insured, warranty) found")
		r.recommend("Highlight licensing, insurance and warranties")
	}

	switch ctaCount := countContains(text, ctaPhrases); {
	case ctaCount >= 2:
		r.Score += 15
		r.Factors = append(r.Factors, FactorCallToAction)
	case ctaCount >= 1:
		r.Score += 8
		r.Factors = append(r.Factors, FactorCallToAction)
	default:
		r.issue("No clear call to action found")
		r.recommend("Add prominent calls to action (free quote, call now)")
	}

	if anyContains(text, portfolioWords) {
		r.Score += 15
		r.Factors = append(r.Factors, FactorPortfolio)
	} else {
		r.recommend("Showcase completed projects in a photo gallery")
	}

	if anyContains(text, reviewWords) {
		r.Score += 15
		r.Factors = append(r.Factors, FactorReviewsShown)
	} else {
		r.recommend("Display customer reviews and testimonials")
	}

	switch serviceCount := countContains(text, serviceTypeWords); {
	case serviceCount >= 4:
		r.Score += 20
		r.Factors = append(r.Factors, FactorServices)
	case serviceCount >= 2:
		r.Score += 10
		r.Factors = append(r.Factors, FactorServices)
	default:
		r.issue("Few named services found on page")
		r.recommend("Name each service you offer on the page")
	}

	if r.Score > 100 {
		r.Score = 100
	}
	return r
}
