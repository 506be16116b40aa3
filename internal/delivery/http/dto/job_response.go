package dto

import (
	"time"

	"jobhunt/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	SourceID    string    `json:"source_id"`
	PublishedAt *string   `json:"published_at"`
	MatchScore  float64   `json:"match_score"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Count int           `json:"count"`
}

func FromJob(j job.Job) JobResponse {
	var published *string
	if j.PublishedAt != nil {
		s := j.PublishedAt.UTC().Format(time.RFC3339)
		published = &s
	}
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		URL:         j.URL,
		Source:      j.Source,
		SourceID:    j.SourceID,
		PublishedAt: published,
		MatchScore:  j.MatchScore,
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromJobs(jobs []job.Job) JobListResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return JobListResponse{Jobs: out, Count: len(out)}
}
