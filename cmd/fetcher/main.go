package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"jobhunt/internal/app"
	"jobhunt/internal/config"
	"jobhunt/internal/database/migration"
	"jobhunt/internal/domain/scoring"
	"jobhunt/internal/fetch"
	"jobhunt/internal/repository"
	"jobhunt/internal/usecase"
)

func main() {
	search := flag.String("search", "", "Remotive search query")
	limit := flag.Int("limit", 50, "max jobs per source")
	workers := flag.Int("workers", 2, "concurrent sources")
	boardURL := flag.String("board_url", "", "optional HTML board base URL")
	boardName := flag.String("board_name", "board", "source name for the HTML board")
	boardList := flag.String("board_list", "/jobs", "listing path on the HTML board")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	jobs := repository.NewPostgresJobRepository(c.DB)
	profiles := repository.NewPostgresProfileRepository(c.DB)
	ingest := usecase.NewIngestUsecase(jobs, profiles, scoring.NewEngine(), c.Cache, nil, cfg.Scoring.NotifyThreshold, c.Logger)

	sources := []fetch.Source{
		fetch.NewRemotiveSource(*search, *limit),
	}
	if strings.TrimSpace(*boardURL) != "" {
		sources = append(sources, fetch.NewBoardSource(*boardName, *boardURL, *boardList, *limit))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	runner := fetch.NewRunner(sources, ingest, *workers, c.Logger)
	if err := runner.Run(ctx); err != nil {
		log.Fatalf("fetch run failed: %v", err)
	}
}
