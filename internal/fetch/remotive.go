package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobhunt/internal/domain/scoring"
	"jobhunt/internal/usecase"
)

// RemotiveSource pulls remote postings from the Remotive public API.
type RemotiveSource struct {
	client  *http.Client
	apiBase string
	search  string
	limit   int
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID                        int    `json:"id"`
	URL                       string `json:"url"`
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	PublicationDate           string `json:"publication_date"`
	Description               string `json:"description"`
}

func NewRemotiveSource(search string, limit int) *RemotiveSource {
	if limit <= 0 {
		limit = 50
	}
	return &RemotiveSource{
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		apiBase: "https://remotive.com",
		search:  strings.TrimSpace(search),
		limit:   limit,
	}
}

func (s *RemotiveSource) Name() string {
	return "remotive"
}

func (s *RemotiveSource) Fetch(ctx context.Context) ([]usecase.IngestJobInput, error) {
	endpoint := fmt.Sprintf("%s/api/remote-jobs?limit=%d", strings.TrimRight(s.apiBase, "/"), s.limit)
	if s.search != "" {
		endpoint += "&search=" + url.QueryEscape(s.search)
	}

	body, err := httpGetWithRetry(ctx, s.client, endpoint, 3)
	if err != nil {
		return nil, err
	}

	var resp remotiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	out := make([]usecase.IngestJobInput, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		if j.ID == 0 || strings.TrimSpace(j.Title) == "" || strings.TrimSpace(j.URL) == "" {
			continue
		}
		published, _ := scoring.ParseTimestamp(j.PublicationDate)
		out = append(out, usecase.IngestJobInput{
			Title:       j.Title,
			Company:     pickNonEmpty(j.CompanyName, "Unknown"),
			Location:    j.CandidateRequiredLocation,
			Description: j.Description,
			URL:         j.URL,
			Source:      s.Name(),
			SourceID:    strconv.Itoa(j.ID),
			PublishedAt: published,
		})
	}
	return out, nil
}
