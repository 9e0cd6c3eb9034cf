package checks

import (
	"fmt"
	"strings"
)

// HTTPS scores 100 when the final resolved URL is served over TLS,
// 0 otherwise.
func HTTPS(in Input) Result {
	r := Result{Key: KeyHTTPS}
	if strings.HasPrefix(in.FinalURL, "https://") {
		r.Score = 100
		return r
	}
	r.issue("Website not using HTTPS - security risk")
	r.recommend("Install SSL certificate for HTTPS")
	return r
}

// MobileViewport checks the viewport meta tag. A responsive
// width=device-width declaration scores 100, any other declared
// viewport 50, a missing one 0.
func MobileViewport(in Input) Result {
	r := Result{Key: KeyMobile}
	viewport := in.Doc.First("meta", map[string]string{"name": "viewport"})
	if viewport != nil && viewport.Attr("content") != "" {
		if strings.Contains(viewport.Attr("content"), "width=device-width") {
			r.Score = 100
		} else {
			r.Score = 50
			r.issue("Viewport meta tag exists but may not be optimal")
		}
		return r
	}
	r.issue("No viewport meta tag - not mobile friendly")
	r.recommend("Add mobile viewport meta tag")
	return r
}

// Images scores alt-text and lazy-loading coverage. A page with no
// images at all is neutral, not penalized.
func Images(in Input) Result {
	r := Result{Key: KeyImages}
	images := in.Doc.All("img", nil)
	if len(images) == 0 {
		r.Score = 50
		return r
	}

	withAlt, withLazy := 0, 0
	for _, img := range images {
		if img.Attr("alt") != "" {
			withAlt++
		}
		if img.Attr("loading") == "lazy" {
			withLazy++
		}
	}

	total := float64(len(images))
	altRatio := float64(withAlt) / total
	lazyRatio := float64(withLazy) / total
	r.Score = int(altRatio*70 + lazyRatio*30)

	if altRatio < 1 {
		r.issue(fmt.Sprintf("%d images missing alt text", len(images)-withAlt))
		r.recommend("Add descriptive alt text to all images")
	}
	if lazyRatio < 0.5 && len(images) > 3 {
		r.recommend("Add lazy loading to images for better performance")
	}
	return r
}

// PageSpeed buckets the measured fetch time. An unknown load time
// defaults to a full score rather than penalizing the page.
func PageSpeed(in Input) Result {
	r := Result{Key: KeySpeed, Score: 100}
	if in.LoadTime <= 0 {
		return r
	}
	switch {
	case in.LoadTime < 1:
		r.Score = 100
	case in.LoadTime < 2:
		r.Score = 80
	case in.LoadTime < 3:
		r.Score = 60
	case in.LoadTime < 5:
		r.Score = 40
		r.issue(fmt.Sprintf("Slow page load time: %.2fs", in.LoadTime))
	default:
		r.Score = 20
		r.issue(fmt.Sprintf("Very slow page load: %.2fs", in.LoadTime))
		r.recommend("Optimize page speed - compress images, minify CSS/JS")
	}
	return r
}
