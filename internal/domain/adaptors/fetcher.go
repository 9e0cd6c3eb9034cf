package adaptors

import (
	"context"
	"site_grader/internal/domain/models"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) (*models.FetchResult, error)
}
