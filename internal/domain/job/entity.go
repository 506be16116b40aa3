package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a single stored job posting. Identity across re-ingests is
// (Source, SourceID); ID is assigned on first insert.
type Job struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
	SourceID    string
	PublishedAt *time.Time
	MatchScore  float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
