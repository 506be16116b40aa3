package app

import (
	"fmt"
	"strings"

	"jobhunt/internal/delivery/http/handler"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/delivery/http/routes"
	"jobhunt/internal/domain/scoring"
	"jobhunt/internal/pkg/jwt"
	"jobhunt/internal/repository"
	"jobhunt/internal/usecase"
	"jobhunt/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap assembles the HTTP server from a connected container. The hub
// goroutine is started here; Fiber listening is left to the caller.
func Bootstrap(c *Container) (*App, error) {
	cfg := c.Config
	logger := c.Logger

	if cfg.JWT.Secret == "" {
		logger.Printf("[App] JWT_SECRET not set, authenticated endpoints will reject all requests")
	}
	if cfg.Auth.PasswordHash == "" && cfg.Auth.Password == "" {
		logger.Printf("[App] No auth password configured, login is disabled")
	}

	jobs := repository.NewPostgresJobRepository(c.DB)
	profiles := repository.NewPostgresProfileRepository(c.DB)
	engine := scoring.NewEngine()

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.AccessExpiresIn)
	authUC, err := usecase.NewAuthUsecase(cfg.Auth.PasswordHash, cfg.Auth.Password, tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("auth setup: %w", err)
	}

	listUC := usecase.NewJobListUsecase(jobs, c.Cache, 0, logger)
	ingestUC := usecase.NewIngestUsecase(jobs, profiles, engine, c.Cache, notifier, cfg.Scoring.NotifyThreshold, logger)
	profileUC := usecase.NewProfileUsecase(profiles, jobs, engine, c.Cache, logger)

	authMw := middleware.NewAuthMiddleware(tokens)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(),
		handler.NewAuthHandler(authUC),
		handler.NewJobsHandler(listUC, ingestUC, authMw, logger),
		handler.NewProfileHandler(profileUC, authMw),
	)
	registry.Register(f)

	wsHandler := ws.NewHandler(hub, logger)
	f.Get("/ws/matches", wsHandler.HandleMatchesWS)

	return &App{Fiber: f, Hub: hub}, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
