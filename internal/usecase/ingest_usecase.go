package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jobhunt/internal/domain/profile"
	"jobhunt/internal/domain/scoring"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

// MatchNotifier pushes a freshly ingested high-scoring job to subscribers.
type MatchNotifier interface {
	NotifyNewMatch(id uuid.UUID, title, company string, score float64)
}

type IngestJobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
	SourceID    string
	PublishedAt *time.Time
}

type IngestResult struct {
	Ingested int
	Updated  int
}

type IngestUsecase interface {
	IngestBatch(ctx context.Context, items []IngestJobInput) (IngestResult, error)
}

type Ingest struct {
	jobs            repository.JobRepository
	profiles        repository.ProfileRepository
	engine          *scoring.Engine
	cache           JobsCache
	notifier        MatchNotifier
	notifyThreshold float64
	logger          *log.Logger
}

func NewIngestUsecase(
	jobs repository.JobRepository,
	profiles repository.ProfileRepository,
	engine *scoring.Engine,
	cache JobsCache,
	notifier MatchNotifier,
	notifyThreshold float64,
	logger *log.Logger,
) *Ingest {
	return &Ingest{
		jobs:            jobs,
		profiles:        profiles,
		engine:          engine,
		cache:           cache,
		notifier:        notifier,
		notifyThreshold: notifyThreshold,
		logger:          logger,
	}
}

// IngestBatch scores every incoming posting against the current profile and
// upserts it keyed by (source, source_id). The batch is atomic: one invalid
// item rejects the whole request.
func (u *Ingest) IngestBatch(ctx context.Context, items []IngestJobInput) (IngestResult, error) {
	if len(items) == 0 {
		return IngestResult{}, ErrInvalidInput
	}
	for _, it := range items {
		if strings.TrimSpace(it.Title) == "" ||
			strings.TrimSpace(it.Company) == "" ||
			strings.TrimSpace(it.URL) == "" ||
			strings.TrimSpace(it.Source) == "" ||
			strings.TrimSpace(it.SourceID) == "" {
			return IngestResult{}, ErrInvalidInput
		}
	}

	prof, err := u.currentProfile(ctx)
	if err != nil {
		return IngestResult{}, ErrInternal
	}
	sp := toScoringProfile(prof)

	upserts := make([]repository.JobUpsert, 0, len(items))
	for _, it := range items {
		score := u.engine.Compute(scoring.Job{
			Title:       it.Title,
			Description: it.Description,
			Location:    it.Location,
			PublishedAt: it.PublishedAt,
		}, sp)

		upserts = append(upserts, repository.JobUpsert{
			Title:       it.Title,
			Company:     it.Company,
			Location:    it.Location,
			Description: it.Description,
			URL:         it.URL,
			Source:      it.Source,
			SourceID:    it.SourceID,
			PublishedAt: it.PublishedAt,
			MatchScore:  score,
		})
	}

	outcomes, err := u.jobs.UpsertBatch(ctx, upserts)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Ingest] Upsert batch failed count=%d err=%v", len(upserts), err)
		}
		return IngestResult{}, ErrInternal
	}

	res := IngestResult{}
	for i, o := range outcomes {
		if o.Inserted {
			res.Ingested++
		} else {
			res.Updated++
		}

		if o.Inserted && u.notifier != nil && upserts[i].MatchScore >= u.notifyThreshold {
			u.notifier.NotifyNewMatch(o.ID, upserts[i].Title, upserts[i].Company, upserts[i].MatchScore)
		}
	}

	if u.cache != nil {
		_ = u.cache.InvalidateJobLists(ctx)
	}

	if u.logger != nil {
		u.logger.Printf("[Ingest] Batch done ingested=%d updated=%d", res.Ingested, res.Updated)
	}
	return res, nil
}

func (u *Ingest) currentProfile(ctx context.Context) (profile.Profile, error) {
	p, err := u.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, nil
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func toScoringProfile(p profile.Profile) scoring.Profile {
	return scoring.Profile{
		TargetRoles:         p.TargetRoles,
		Skills:              p.Skills,
		PreferredLocations:  p.PreferredLocations,
		RemoteOnly:          p.RemoteOnly,
		SeniorityPreference: p.SeniorityPreference,
		BadKeywords:         p.BadKeywords,
	}
}
