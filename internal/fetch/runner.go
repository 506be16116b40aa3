package fetch

import (
	"context"
	"log"

	"jobhunt/internal/usecase"
)

// Runner drives all configured sources through the worker pool and hands
// their postings to ingestion.
type Runner struct {
	sources []Source
	ingest  usecase.IngestUsecase
	workers int
	logger  *log.Logger
}

func NewRunner(sources []Source, ingest usecase.IngestUsecase, workers int, logger *log.Logger) *Runner {
	if workers <= 0 {
		workers = 2
	}
	return &Runner{sources: sources, ingest: ingest, workers: workers, logger: logger}
}

func (r *Runner) Run(ctx context.Context) error {
	pool := NewWorkerPool(r.workers, len(r.sources))
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	for _, src := range r.sources {
		src := src
		pool.Submit(src.Name(), func(ctx context.Context) (int, error) {
			items, err := src.Fetch(ctx)
			if err != nil {
				return 0, err
			}
			if len(items) == 0 {
				return 0, nil
			}
			res, err := r.ingest.IngestBatch(ctx, items)
			if err != nil {
				return 0, err
			}
			return res.Ingested + res.Updated, nil
		})
	}
	pool.Close()

	var firstErr error
	for res := range results {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			if r.logger != nil {
				r.logger.Printf("[Fetch] Source failed source=%s err=%v", res.Source, res.Err)
			}
			continue
		}
		if r.logger != nil {
			r.logger.Printf("[Fetch] Source done source=%s jobs=%d", res.Source, res.Count)
		}
	}
	return firstErr
}
