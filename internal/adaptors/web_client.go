package adaptors

import (
	"context"
	"io"
	"net/http"
	"time"

	"site_grader/internal/domain/models"
	"site_grader/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// WebClient is the engine's sole I/O boundary: it retrieves raw
// markup and response metadata for a URL with a bounded timeout,
// measuring wall-clock fetch time along the way.
type WebClient struct {
	client    *http.Client
	userAgent string
	log       *log.Logger
}

func NewWebClient(timeout time.Duration, userAgent string, log *log.Logger) *WebClient {
	rTripper := promhttp.InstrumentRoundTripperDuration(
		metrics.HTTPClientRequestDuration,
		promhttp.InstrumentRoundTripperCounter(metrics.HTTPClientRequestsTotal, http.DefaultTransport))

	return &WebClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: rTripper,
		},
		userAgent: userAgent,
		log:       log,
	}
}

// Fetch performs a GET with redirects enabled. Any transport failure
// (timeout, DNS, TLS, refused connection) is terminal for the grading
// run and surfaces as a FetchError; no retries are performed.
func (w *WebClient) Fetch(ctx context.Context, url string) (*models.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		w.log.WithError(err).Error(`failed to create request`)
		return nil, &models.FetchError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", w.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	start := time.Now()
	resp, err := w.client.Do(req)
	if err != nil {
		w.log.WithError(err).Error(`failed to fetch page`)
		return nil, &models.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	bodyByte, err := io.ReadAll(resp.Body)
	if err != nil {
		w.log.WithError(err).Error(`failed to read response body`)
		return nil, &models.FetchError{URL: url, Err: err}
	}
	elapsed := time.Since(start).Seconds()

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &models.FetchResult{
		Body:       string(bodyByte),
		Headers:    resp.Header,
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
		FinalURL:   finalURL,
	}, nil
}
