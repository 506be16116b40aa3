package fetch

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"jobhunt/internal/usecase"

	"github.com/gocolly/colly/v2"
)

// BoardSource scrapes a plain-HTML job board: one listing page of links to
// job detail pages at /job/<slug>. The slug doubles as the source id.
type BoardSource struct {
	name        string
	baseURL     string
	listPath    string
	allowedHost string
	maxJobs     int
}

func NewBoardSource(name, baseURL, listPath string, maxJobs int) *BoardSource {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if maxJobs <= 0 {
		maxJobs = 50
	}
	return &BoardSource{
		name:        strings.TrimSpace(name),
		baseURL:     baseURL,
		listPath:    listPath,
		allowedHost: hostFromBaseURL(baseURL),
		maxJobs:     maxJobs,
	}
}

func (s *BoardSource) Name() string {
	return s.name
}

func (s *BoardSource) Fetch(ctx context.Context) ([]usecase.IngestJobInput, error) {
	links, err := s.fetchListingLinks(ctx)
	if err != nil {
		return nil, err
	}
	if len(links) > s.maxJobs {
		links = links[:s.maxJobs]
	}

	out := make([]usecase.IngestJobInput, 0, len(links))
	for _, link := range links {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		detail, err := s.fetchDetailPage(ctx, link)
		if err != nil {
			continue
		}
		if strings.TrimSpace(detail.title) == "" {
			continue
		}
		out = append(out, usecase.IngestJobInput{
			Title:       detail.title,
			Company:     pickNonEmpty(detail.company, "Unknown"),
			Location:    detail.location,
			Description: detail.description,
			URL:         link,
			Source:      s.name,
			SourceID:    slugFromURL(link),
		})
	}
	return out, nil
}

func (s *BoardSource) fetchListingLinks(ctx context.Context) ([]string, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 750 * time.Millisecond})

	links := make([]string, 0)

	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/job/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(s.baseURL + s.listPath); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, l := range links {
		if _, ok := dedup[l]; ok {
			continue
		}
		dedup[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

type boardDetail struct {
	title       string
	company     string
	location    string
	description string
}

func (s *BoardSource) fetchDetailPage(ctx context.Context, jobURL string) (boardDetail, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond, RandomDelay: 850 * time.Millisecond})

	var out boardDetail
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.title == "" {
			out.title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("h2", func(e *colly.HTMLElement) {
		if out.company == "" {
			out.company = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("[class*=location]", func(e *colly.HTMLElement) {
		if out.location == "" {
			out.location = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("body", func(e *colly.HTMLElement) {
		out.description = strings.TrimSpace(e.DOM.Find("body").Text())
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return boardDetail{}, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return boardDetail{}, err
	}
	c.Wait()
	if reqErr != nil {
		return boardDetail{}, reqErr
	}
	return out, nil
}

func slugFromURL(jobURL string) string {
	u, err := url.Parse(strings.TrimSpace(jobURL))
	if err == nil {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) > 0 {
			last := strings.TrimSpace(parts[len(parts)-1])
			if last != "" {
				return last
			}
		}
	}
	return jobURL
}

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return ""
	}
	host := u.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
