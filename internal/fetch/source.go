package fetch

import (
	"context"

	"jobhunt/internal/usecase"
)

// Source pulls job postings from one external site.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]usecase.IngestJobInput, error)
}
