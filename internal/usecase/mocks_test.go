package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/domain/profile"
	"jobhunt/internal/pkg/jwt"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	upserts      []repository.JobUpsert
	outcomes     []repository.UpsertOutcome
	upsertErr    error
	listed       []job.Job
	listErr      error
	lastFilter   repository.JobListFilter
	listCalls    int
	scoringRows  []repository.JobScoringRow
	savedScores  map[uuid.UUID]float64
	updateCalled bool
}

func (m *mockJobRepo) UpsertBatch(_ context.Context, items []repository.JobUpsert) ([]repository.UpsertOutcome, error) {
	m.upserts = items
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	if m.outcomes != nil {
		return m.outcomes, nil
	}
	out := make([]repository.UpsertOutcome, len(items))
	for i := range items {
		out[i] = repository.UpsertOutcome{ID: uuid.New(), Inserted: true}
	}
	return out, nil
}

func (m *mockJobRepo) ListRanked(_ context.Context, filter repository.JobListFilter) ([]job.Job, error) {
	m.listCalls++
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listed, nil
}

func (m *mockJobRepo) ListForScoring(_ context.Context) ([]repository.JobScoringRow, error) {
	return m.scoringRows, nil
}

func (m *mockJobRepo) UpdateScores(_ context.Context, scores map[uuid.UUID]float64) error {
	m.updateCalled = true
	m.savedScores = scores
	return nil
}

type mockProfileRepo struct {
	stored  profile.Profile
	getErr  error
	saved   *profile.Profile
	saveErr error
}

func (m *mockProfileRepo) Get(_ context.Context) (profile.Profile, error) {
	if m.getErr != nil {
		return profile.Profile{}, m.getErr
	}
	return m.stored, nil
}

func (m *mockProfileRepo) Save(_ context.Context, p profile.Profile) (profile.Profile, error) {
	if m.saveErr != nil {
		return profile.Profile{}, m.saveErr
	}
	m.saved = &p
	return p, nil
}

// mockCache is an in-memory stand-in for the Redis wrapper.
type mockCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated int
	setNXHeld   bool
	deleted     []string
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, _ string, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setNXHeld {
		return false, nil
	}
	m.setNXHeld = true
	return true, nil
}

func (m *mockCache) InvalidateJobLists(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated++
	for k := range m.entries {
		delete(m.entries, k)
	}
	return nil
}

type mockNotifier struct {
	mu     sync.Mutex
	events []notifyEvent
}

type notifyEvent struct {
	id      uuid.UUID
	title   string
	company string
	score   float64
}

func (m *mockNotifier) NotifyNewMatch(id uuid.UUID, title, company string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, notifyEvent{id: id, title: title, company: company, score: score})
}

type mockTokenService struct {
	token string
	err   error
}

func (m *mockTokenService) GenerateAccessToken() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func (m *mockTokenService) ValidateToken(string) (jwt.Claims, error) {
	return jwt.Claims{}, nil
}
