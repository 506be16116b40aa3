package usecase

import (
	"context"
	"log"
	"time"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"
)

type JobListParams struct {
	MinScore float64 `json:"min_score"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}

type JobListResult struct {
	Jobs []job.Job `json:"jobs"`
}

type JobListUsecase interface {
	List(ctx context.Context, params JobListParams) (JobListResult, error)
}

type JobList struct {
	jobs     repository.JobRepository
	cache    JobsCache
	cacheTTL time.Duration
	logger   *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, cache JobsCache, cacheTTL time.Duration, logger *log.Logger) *JobList {
	if cacheTTL <= 0 {
		cacheTTL = 60 * time.Second
	}
	return &JobList{jobs: jobs, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns jobs ordered by match score descending, newest first on ties.
func (u *JobList) List(ctx context.Context, params JobListParams) (JobListResult, error) {
	if params.Limit < 0 || params.Limit > 100 || params.Offset < 0 {
		return JobListResult{}, ErrInvalidInput
	}
	if params.MinScore < 0 {
		params.MinScore = 0
	}
	if params.MinScore > 1 {
		params.MinScore = 1
	}

	key := JobListCacheKey(params)
	if u.cache != nil {
		var cached JobListResult
		ok, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT key=%s", key)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache MISS key=%s", key)
		}
	}

	rows, err := u.jobs.ListRanked(ctx, repository.JobListFilter{
		MinScore: params.MinScore,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] List failed err=%v", err)
		}
		return JobListResult{}, ErrInternal
	}

	result := JobListResult{Jobs: rows}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, result, u.cacheTTL)
	}
	return result, nil
}
