package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"jobhunt/internal/domain/profile"
	"jobhunt/internal/domain/scoring"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

const (
	rescoreLockTTL  = 60 * time.Second
	rescoreWaitMax  = 3
	rescoreWaitBase = 200 * time.Millisecond
)

type ProfileUpdateInput struct {
	FullName            string
	TargetRoles         []string
	Skills              []string
	PreferredLocations  []string
	BadKeywords         []string
	RemoteOnly          bool
	SeniorityPreference string
}

type ProfileUsecase interface {
	Get(ctx context.Context) (profile.Profile, error)
	Update(ctx context.Context, in ProfileUpdateInput) (profile.Profile, error)
}

type Profiles struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	engine   *scoring.Engine
	cache    JobsCache
	logger   *log.Logger
}

func NewProfileUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	engine *scoring.Engine,
	cache JobsCache,
	logger *log.Logger,
) *Profiles {
	return &Profiles{profiles: profiles, jobs: jobs, engine: engine, cache: cache, logger: logger}
}

// Get returns the stored profile, or the zero profile when none has been
// saved yet.
func (u *Profiles) Get(ctx context.Context) (profile.Profile, error) {
	p, err := u.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, nil
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

// Update saves the profile and recomputes every stored match score against
// it, then drops the cached job lists.
func (u *Profiles) Update(ctx context.Context, in ProfileUpdateInput) (profile.Profile, error) {
	if in.SeniorityPreference != "" {
		if _, ok := scoring.ParseLevel(in.SeniorityPreference); !ok {
			return profile.Profile{}, ErrInvalidInput
		}
	}

	p := profile.Profile{
		FullName:            strings.TrimSpace(in.FullName),
		TargetRoles:         cleanList(in.TargetRoles),
		Skills:              cleanList(in.Skills),
		PreferredLocations:  cleanList(in.PreferredLocations),
		BadKeywords:         cleanList(in.BadKeywords),
		RemoteOnly:          in.RemoteOnly,
		SeniorityPreference: strings.ToLower(strings.TrimSpace(in.SeniorityPreference)),
	}

	saved, err := u.profiles.Save(ctx, p)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Profile] Save failed err=%v", err)
		}
		return profile.Profile{}, ErrInternal
	}

	if err := u.rescoreAll(ctx, saved); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Profile] Rescore failed err=%v", err)
		}
		return profile.Profile{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.InvalidateJobLists(ctx)
	}
	return saved, nil
}

// rescoreAll recomputes scores for the full jobs table. A short-lived Redis
// lock keeps concurrent updates from burning the same work twice; if the
// lock stays held the rescore proceeds anyway so the latest profile always
// wins.
func (u *Profiles) rescoreAll(ctx context.Context, p profile.Profile) error {
	release := u.acquireRescoreLock(ctx)
	defer release()

	rows, err := u.jobs.ListForScoring(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	sp := toScoringProfile(p)
	scores := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		scores[row.ID] = u.engine.Compute(scoring.Job{
			Title:       row.Title,
			Description: row.Description,
			Location:    row.Location,
			PublishedAt: row.PublishedAt,
		}, sp)
	}

	if err := u.jobs.UpdateScores(ctx, scores); err != nil {
		return err
	}
	if u.logger != nil {
		u.logger.Printf("[Profile] Rescored jobs count=%d", len(rows))
	}
	return nil
}

// acquireRescoreLock returns a release func. Release deletes the lock key
// only when this caller actually took it; a holder's lock is never removed
// by a waiter that gave up.
func (u *Profiles) acquireRescoreLock(ctx context.Context) func() {
	if u.cache == nil {
		return func() {}
	}
	for i := 0; i < rescoreWaitMax; i++ {
		ok, err := u.cache.SetIfNotExists(ctx, rescoreLockKey, "1", rescoreLockTTL)
		if err != nil {
			return func() {}
		}
		if ok {
			return func() {
				_ = u.cache.Delete(context.Background(), rescoreLockKey)
			}
		}
		wait := rescoreWaitBase + time.Duration(rand.Int63n(int64(rescoreWaitBase)))
		select {
		case <-ctx.Done():
			return func() {}
		case <-time.After(wait):
		}
	}
	return func() {}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
