package handler

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/domain/scoring"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list   usecase.JobListUsecase
	ingest usecase.IngestUsecase
	auth   *middleware.AuthMiddleware
	logger *log.Logger
}

type ingestJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	SourceID    string `json:"source_id"`
	PublishedAt string `json:"published_at"`
}

type ingestBatchRequest struct {
	Jobs []ingestJobRequest `json:"jobs"`
}

func NewJobsHandler(list usecase.JobListUsecase, ingest usecase.IngestUsecase, auth *middleware.AuthMiddleware, logger *log.Logger) *JobsHandler {
	return &JobsHandler{list: list, ingest: ingest, auth: auth, logger: logger}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Post("/jobs/ingest/batch", h.auth.Middleware(), h.IngestBatch)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	minScore, err := parseQueryFloat(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
	}
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	res, err := h.list.List(c.Context(), usecase.JobListParams{
		MinScore: minScore,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid pagination", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(res.Jobs))
}

func (h *JobsHandler) IngestBatch(c fiber.Ctx) error {
	var req ingestBatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items := make([]usecase.IngestJobInput, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		published, ok := scoring.ParseTimestamp(j.PublishedAt)
		if !ok && h.logger != nil {
			h.logger.Printf("[Jobs] Unparsable published_at source=%s source_id=%s value=%q",
				j.Source, j.SourceID, j.PublishedAt)
		}
		items = append(items, usecase.IngestJobInput{
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Description: j.Description,
			URL:         j.URL,
			Source:      j.Source,
			SourceID:    j.SourceID,
			PublishedAt: published,
		})
	}

	res, err := h.ingest.IngestBatch(c.Context(), items)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid job payload", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"ingested": res.Ingested,
		"updated":  res.Updated,
	})
}

func parseQueryInt(c fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func parseQueryFloat(c fiber.Ctx, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
