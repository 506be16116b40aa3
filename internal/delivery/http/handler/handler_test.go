package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/domain/job"
	"jobhunt/internal/domain/profile"
	"jobhunt/internal/pkg/jwt"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type stubListUsecase struct {
	result usecase.JobListResult
	err    error
	params usecase.JobListParams
}

func (s *stubListUsecase) List(_ context.Context, params usecase.JobListParams) (usecase.JobListResult, error) {
	s.params = params
	if s.err != nil {
		return usecase.JobListResult{}, s.err
	}
	return s.result, nil
}

type stubIngestUsecase struct {
	items  []usecase.IngestJobInput
	result usecase.IngestResult
	err    error
}

func (s *stubIngestUsecase) IngestBatch(_ context.Context, items []usecase.IngestJobInput) (usecase.IngestResult, error) {
	s.items = items
	if s.err != nil {
		return usecase.IngestResult{}, s.err
	}
	return s.result, nil
}

type stubProfileUsecase struct {
	stored profile.Profile
	err    error
}

func (s *stubProfileUsecase) Get(_ context.Context) (profile.Profile, error) {
	if s.err != nil {
		return profile.Profile{}, s.err
	}
	return s.stored, nil
}

func (s *stubProfileUsecase) Update(_ context.Context, in usecase.ProfileUpdateInput) (profile.Profile, error) {
	if s.err != nil {
		return profile.Profile{}, s.err
	}
	s.stored = profile.Profile{
		FullName:            in.FullName,
		TargetRoles:         in.TargetRoles,
		Skills:              in.Skills,
		PreferredLocations:  in.PreferredLocations,
		BadKeywords:         in.BadKeywords,
		RemoteOnly:          in.RemoteOnly,
		SeniorityPreference: in.SeniorityPreference,
	}
	return s.stored, nil
}

func newTestApp(t *testing.T, list usecase.JobListUsecase, ingest usecase.IngestUsecase, prof usecase.ProfileUsecase, tokens jwt.Service) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())

	authMw := middleware.NewAuthMiddleware(tokens)
	if list != nil || ingest != nil {
		NewJobsHandler(list, ingest, authMw, nil).RegisterRoutes(app)
	}
	if prof != nil {
		NewProfileHandler(prof, authMw).RegisterRoutes(app)
	}
	NewHealthHandler().RegisterRoutes(app)
	return app
}

func decodeResponse(t *testing.T, body io.Reader) semanticResponse {
	t.Helper()
	var out semanticResponse
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, nil, nil, nil, jwt.NewHMACService("secret", time.Minute))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestJobListQueryParams(t *testing.T) {
	list := &stubListUsecase{result: usecase.JobListResult{Jobs: []job.Job{
		{ID: uuid.New(), Title: "Go Developer", Company: "Acme", MatchScore: 0.8},
	}}}
	app := newTestApp(t, list, &stubIngestUsecase{}, nil, jwt.NewHMACService("secret", time.Minute))

	resp, err := app.Test(httptest.NewRequest("GET", "/jobs?min_score=0.5&limit=10&offset=20", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if list.params.MinScore != 0.5 || list.params.Limit != 10 || list.params.Offset != 20 {
		t.Fatalf("params not forwarded: %+v", list.params)
	}

	body := decodeResponse(t, resp.Body)
	var data struct {
		Jobs  []json.RawMessage `json:"jobs"`
		Count int               `json:"count"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Count != 1 || len(data.Jobs) != 1 {
		t.Fatalf("expected one job in response, got %+v", data)
	}
}

func TestJobListBadQueryParam(t *testing.T) {
	app := newTestApp(t, &stubListUsecase{}, &stubIngestUsecase{}, nil, jwt.NewHMACService("secret", time.Minute))

	resp, err := app.Test(httptest.NewRequest("GET", "/jobs?limit=abc", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestIngestRequiresAuth(t *testing.T) {
	app := newTestApp(t, &stubListUsecase{}, &stubIngestUsecase{}, nil, jwt.NewHMACService("secret", time.Minute))

	req := httptest.NewRequest("POST", "/jobs/ingest/batch", bytes.NewBufferString(`{"jobs":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestIngestWithValidToken(t *testing.T) {
	tokens := jwt.NewHMACService("secret", time.Minute)
	ingest := &stubIngestUsecase{result: usecase.IngestResult{Ingested: 1}}
	app := newTestApp(t, &stubListUsecase{}, ingest, nil, tokens)

	token, err := tokens.GenerateAccessToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	payload := `{"jobs":[{"title":"Go Dev","company":"Acme","url":"https://x.test/1","source":"manual","source_id":"1","published_at":"2026-08-30T10:00:00Z"}]}`
	req := httptest.NewRequest("POST", "/jobs/ingest/batch", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(ingest.items) != 1 {
		t.Fatalf("expected 1 item forwarded, got %d", len(ingest.items))
	}
	if ingest.items[0].PublishedAt == nil {
		t.Fatalf("expected published_at to be parsed")
	}
}

func TestIngestUnparsableTimestampDegrades(t *testing.T) {
	tokens := jwt.NewHMACService("secret", time.Minute)
	ingest := &stubIngestUsecase{}
	app := newTestApp(t, &stubListUsecase{}, ingest, nil, tokens)

	token, _ := tokens.GenerateAccessToken()
	payload := `{"jobs":[{"title":"Go Dev","company":"Acme","url":"https://x.test/1","source":"manual","source_id":"1","published_at":"yesterday"}]}`
	req := httptest.NewRequest("POST", "/jobs/ingest/batch", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ingest.items[0].PublishedAt != nil {
		t.Fatalf("unparsable timestamp must degrade to absent, got %v", ingest.items[0].PublishedAt)
	}
}

func TestProfileGetIsPublic(t *testing.T) {
	prof := &stubProfileUsecase{stored: profile.Profile{Skills: []string{"go"}}}
	app := newTestApp(t, nil, nil, prof, jwt.NewHMACService("secret", time.Minute))

	resp, err := app.Test(httptest.NewRequest("GET", "/profile", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestProfileUpdateRequiresAuth(t *testing.T) {
	app := newTestApp(t, nil, nil, &stubProfileUsecase{}, jwt.NewHMACService("secret", time.Minute))

	req := httptest.NewRequest("PUT", "/profile", bytes.NewBufferString(`{"skills":["go"]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestProfileUpdateWithToken(t *testing.T) {
	tokens := jwt.NewHMACService("secret", time.Minute)
	prof := &stubProfileUsecase{}
	app := newTestApp(t, nil, nil, prof, tokens)

	token, _ := tokens.GenerateAccessToken()
	req := httptest.NewRequest("PUT", "/profile", bytes.NewBufferString(`{"skills":["go"],"remote_only":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !prof.stored.RemoteOnly || len(prof.stored.Skills) != 1 {
		t.Fatalf("update not forwarded: %+v", prof.stored)
	}
}
