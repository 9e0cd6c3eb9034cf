package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"site_grader/internal/domain/adaptors"
	"site_grader/internal/domain/models"
	"site_grader/internal/pkg/document"
	"site_grader/internal/pkg/metrics"
	"site_grader/internal/pkg/worker_pool"
	"site_grader/internal/service/checks"

	log "github.com/sirupsen/logrus"
)

// checkWorkers is the pool size for the independent check phase.
const checkWorkers = 4

// Grader runs the whole grading pipeline for one URL: normalize,
// fetch, parse, run the independent checks, aggregate, report.
type Grader struct {
	log     *log.Logger
	fetcher adaptors.Fetcher
}

func NewGrader(log *log.Logger, fetcher adaptors.Fetcher) *Grader {
	return &Grader{
		log:     log,
		fetcher: fetcher,
	}
}

// NormalizeURL canonicalizes user input into a fetchable absolute
// URL: prepend https:// when no scheme is present and strip a single
// trailing slash. Malformed input flows through unchanged; the fetch
// is the real validation point.
func NormalizeURL(raw string) string {
	normalized := strings.TrimSpace(raw)
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}
	return strings.TrimSuffix(normalized, "/")
}

// Grade produces the full grading report for one URL. A fetch failure
// is terminal: the error carries a *models.FetchError and no partial
// report is produced.
func (g *Grader) Grade(ctx context.Context, rawURL string) (*models.GradeReport, error) {
	start := time.Now()
	target := NormalizeURL(rawURL)
	g.log.WithField(`url`, target).Debug(`grading run started`)

	page, err := g.fetcher.Fetch(ctx, target)
	if err != nil {
		metrics.GradeRunsTotal.WithLabelValues(`fetch_error`).Inc()
		metrics.GradeRunDuration.Observe(time.Since(start).Seconds())
		g.log.WithError(err).Error(`failed to fetch page`)
		return nil, err
	}

	in := checks.Input{
		Doc:      document.Parse(page.Body),
		RawHTML:  page.Body,
		FinalURL: page.FinalURL,
		LoadTime: page.Elapsed,
	}

	// Phase one: independent checks, safe to run concurrently since
	// each only reads the immutable input and writes its own key.
	results := g.runChecks(ctx, in)

	// Phase two: aggregation over the complete merged score set.
	set := checks.Merge(results)
	set.Finalize()

	report := buildReport(target, page, set)
	metrics.GradeRunsTotal.WithLabelValues(`success`).Inc()
	metrics.GradeRunDuration.Observe(time.Since(start).Seconds())
	g.log.WithField(`url`, target).Debug(`grading run finished`)
	return report, nil
}

func (g *Grader) runChecks(ctx context.Context, in checks.Input) map[string]checks.Result {
	regs := checks.Independent()
	pool := worker_pool.New[checks.Result](ctx, checkWorkers, g.log)

	// There are more checks than workers, so submission must not block
	// result consumption: a worker can only take the next check after
	// its finished result is read. Submit from a producer goroutine and
	// drain results here until the pool closes the channel.
	go func() {
		for _, reg := range regs {
			run := reg.Run
			err := pool.Submit(reg.Key, func(_ context.Context) (checks.Result, error) {
				return run(in), nil
			})
			if err != nil {
				g.log.WithError(err).Errorf(`failed to submit check %s`, reg.Key)
			}
		}
		pool.Stop()
	}()

	results := make(map[string]checks.Result, len(regs))
	for res := range pool.Results() {
		if res.Err != nil {
			// An isolated check fault scores as absent; the other
			// checks still complete and get reported.
			g.log.WithError(res.Err).Errorf(`check %s faulted`, res.ID)
			continue
		}
		results[res.Result.Key] = res.Result
	}
	return results
}

func domainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
