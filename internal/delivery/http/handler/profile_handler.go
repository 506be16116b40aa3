package handler

import (
	"errors"

	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc   usecase.ProfileUsecase
	auth *middleware.AuthMiddleware
}

type profileUpdateRequest struct {
	FullName            string   `json:"full_name"`
	TargetRoles         []string `json:"target_roles"`
	Skills              []string `json:"skills"`
	PreferredLocations  []string `json:"preferred_locations"`
	BadKeywords         []string `json:"bad_keywords"`
	RemoteOnly          bool     `json:"remote_only"`
	SeniorityPreference string   `json:"seniority_preference"`
}

func NewProfileHandler(uc usecase.ProfileUsecase, auth *middleware.AuthMiddleware) *ProfileHandler {
	return &ProfileHandler{uc: uc, auth: auth}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Get)
	r.Put("/profile", h.auth.Middleware(), h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Get(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(p))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	var req profileUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.Update(c.Context(), usecase.ProfileUpdateInput{
		FullName:            req.FullName,
		TargetRoles:         req.TargetRoles,
		Skills:              req.Skills,
		PreferredLocations:  req.PreferredLocations,
		BadKeywords:         req.BadKeywords,
		RemoteOnly:          req.RemoteOnly,
		SeniorityPreference: req.SeniorityPreference,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid profile", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(saved))
}
