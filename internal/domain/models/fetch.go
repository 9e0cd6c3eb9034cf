package models

import (
	"fmt"
	"net/http"
)

// FetchResult holds everything the grading engine needs from one page
// retrieval. It is built once per run and discarded after the document
// model is constructed.
type FetchResult struct {
	Body       string
	Headers    http.Header
	StatusCode int
	// Elapsed is wall-clock fetch time in seconds.
	Elapsed float64
	// FinalURL is the URL after following redirects.
	FinalURL string
}

// FetchError is terminal for a grading run: without a fetched page no
// check can execute, so no partial report is produced.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
