package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobhunt/internal/domain/job"

	"github.com/google/uuid"
)

func TestJobListInvalidParams(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{}, nil, time.Minute, nil)

	cases := []JobListParams{
		{Limit: -1},
		{Limit: 101},
		{Offset: -5},
	}
	for _, p := range cases {
		if _, err := uc.List(context.Background(), p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
}

func TestJobListClampsMinScore(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobListUsecase(repo, nil, time.Minute, nil)

	if _, err := uc.List(context.Background(), JobListParams{MinScore: 1.7, Limit: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.MinScore != 1.0 {
		t.Fatalf("expected min score clamped to 1.0, got %v", repo.lastFilter.MinScore)
	}

	if _, err := uc.List(context.Background(), JobListParams{MinScore: -0.3, Limit: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.MinScore != 0.0 {
		t.Fatalf("expected min score clamped to 0.0, got %v", repo.lastFilter.MinScore)
	}
}

func TestJobListCachesResult(t *testing.T) {
	repo := &mockJobRepo{listed: []job.Job{
		{ID: uuid.New(), Title: "Backend Engineer", Company: "Acme", MatchScore: 0.91},
	}}
	cache := newMockCache()
	uc := NewJobListUsecase(repo, cache, time.Minute, nil)

	params := JobListParams{MinScore: 0.5, Limit: 20}

	first, err := uc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	if len(first.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(first.Jobs))
	}

	second, err := uc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cache hit to skip the repository, got %d calls", repo.listCalls)
	}
	if len(second.Jobs) != 1 || second.Jobs[0].Title != "Backend Engineer" {
		t.Fatalf("cached result mismatch: %+v", second.Jobs)
	}
}

func TestJobListDistinctParamsDistinctKeys(t *testing.T) {
	a := JobListCacheKey(JobListParams{MinScore: 0.5, Limit: 20})
	b := JobListCacheKey(JobListParams{MinScore: 0.5, Limit: 20, Offset: 20})
	if a == b {
		t.Fatalf("expected distinct cache keys for distinct params")
	}
}

func TestJobListRepositoryError(t *testing.T) {
	repo := &mockJobRepo{listErr: errors.New("boom")}
	uc := NewJobListUsecase(repo, nil, time.Minute, nil)

	if _, err := uc.List(context.Background(), JobListParams{Limit: 10}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
