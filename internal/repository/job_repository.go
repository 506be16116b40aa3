package repository

import (
	"context"
	"errors"
	"time"

	"jobhunt/internal/database"
	"jobhunt/internal/domain/job"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	UpsertBatch(ctx context.Context, items []JobUpsert) ([]UpsertOutcome, error)
	ListRanked(ctx context.Context, filter JobListFilter) ([]job.Job, error)
	ListForScoring(ctx context.Context) ([]JobScoringRow, error)
	UpdateScores(ctx context.Context, scores map[uuid.UUID]float64) error
}

// JobUpsert carries one incoming posting with its already-computed match
// score. Identity is (Source, SourceID).
type JobUpsert struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
	SourceID    string
	PublishedAt *time.Time
	MatchScore  float64
}

type UpsertOutcome struct {
	ID       uuid.UUID
	Inserted bool
}

type JobListFilter struct {
	MinScore float64
	Limit    int
	Offset   int
}

// JobScoringRow is the slice of a job row the scoring engine reads.
type JobScoringRow struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	PublishedAt *time.Time
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) UpsertBatch(ctx context.Context, items []JobUpsert) ([]UpsertOutcome, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	out := make([]UpsertOutcome, 0, len(items))
	for _, it := range items {
		row := tx.QueryRow(ctx,
			`INSERT INTO jobs (id, title, company, location, description, url, source, source_id, published_at, match_score)
			 VALUES ($1,$2,$3,NULLIF($4,''),NULLIF($5,''),$6,$7,$8,$9,$10)
			 ON CONFLICT (source, source_id) DO UPDATE SET
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				location = EXCLUDED.location,
				description = EXCLUDED.description,
				url = EXCLUDED.url,
				published_at = EXCLUDED.published_at,
				match_score = EXCLUDED.match_score,
				updated_at = now()
			 RETURNING id, (xmax = 0)`,
			uuid.New(), it.Title, it.Company, it.Location, it.Description,
			it.URL, it.Source, it.SourceID, it.PublishedAt, it.MatchScore,
		)

		var o UpsertOutcome
		if err := row.Scan(&o.ID, &o.Inserted); err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) ListRanked(ctx context.Context, filter JobListFilter) ([]job.Job, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, COALESCE(location, ''), COALESCE(description, ''),
		        url, source, source_id, published_at, match_score, created_at, updated_at
		 FROM jobs
		 WHERE match_score >= $1
		 ORDER BY match_score DESC, created_at DESC
		 LIMIT $2 OFFSET $3`,
		filter.MinScore, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
			&j.URL, &j.Source, &j.SourceID, &j.PublishedAt, &j.MatchScore,
			&j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) ListForScoring(ctx context.Context) ([]JobScoringRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(location, ''), published_at
		 FROM jobs`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobScoringRow, 0)
	for rows.Next() {
		var row JobScoringRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Description, &row.Location, &row.PublishedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) UpdateScores(ctx context.Context, scores map[uuid.UUID]float64) error {
	if len(scores) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for id, score := range scores {
		if _, err := tx.Exec(ctx,
			`UPDATE jobs SET match_score = $2, updated_at = now() WHERE id = $1`,
			id, score,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
