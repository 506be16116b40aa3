package scoring

import (
	"math"
	"strings"
	"time"
)

// Job carries the fields of a stored job the scorer reads. All fields except
// Title may be empty.
type Job struct {
	Title       string
	Description string
	Location    string
	PublishedAt *time.Time
}

// Profile carries the user's preferences. Empty collections and the empty
// seniority preference degrade to neutral sub-scores.
type Profile struct {
	TargetRoles         []string
	Skills              []string
	PreferredLocations  []string
	RemoteOnly          bool
	SeniorityPreference string
	BadKeywords         []string
}

const (
	weightTitle     = 3.0
	weightSkills    = 3.0
	weightLocation  = 1.5
	weightSeniority = 1.0
	weightRecency   = 1.0

	neutralScore      = 0.5
	badKeywordPenalty = 0.3

	defaultMaxAgeDays = 60
)

// Engine computes match scores. It holds no mutable state and is safe for
// concurrent use; the clock is a field so tests can pin it.
type Engine struct {
	now        func() time.Time
	maxAgeDays int
}

func NewEngine() *Engine {
	return &Engine{now: time.Now, maxAgeDays: defaultMaxAgeDays}
}

// Compute combines title, skills, location, seniority and recency signals
// into a single score in [0,1], rounded to 4 decimal places. Missing or
// malformed input never fails; every absent signal contributes its neutral
// default instead.
func (e *Engine) Compute(job Job, profile Profile) float64 {
	title := Normalize(job.Title)
	description := Normalize(job.Description)
	location := Normalize(job.Location)

	titleTokens := Tokenize(title)
	allTokens := Tokenize(title + " " + description)

	titleScore := keywordRatioScore(titleTokens, profile.TargetRoles)
	skillScore := keywordRatioScore(allTokens, profile.Skills)
	locationScore := scoreLocation(location, profile.PreferredLocations, profile.RemoteOnly)
	seniorityScore := scoreSeniority(title, profile.SeniorityPreference)
	recencyScore := e.scoreRecency(job.PublishedAt)

	weighted := weightTitle*titleScore +
		weightSkills*skillScore +
		weightLocation*locationScore +
		weightSeniority*seniorityScore +
		weightRecency*recencyScore
	score := weighted / (weightTitle + weightSkills + weightLocation + weightSeniority + weightRecency)

	if len(profile.BadKeywords) > 0 && ContainsAny(title+" "+description, profile.BadKeywords) {
		score *= badKeywordPenalty
	}

	return round4(clamp01(score))
}

// keywordRatioScore is the shared title/skills signal: distinct keyword hits
// over the raw keyword count, clamped to 1. No keywords means no signal.
func keywordRatioScore(tokens map[string]struct{}, keywords []string) float64 {
	if len(keywords) == 0 {
		return neutralScore
	}
	matches := CountKeywords(tokens, keywords)
	s := float64(matches) / float64(maxInt(1, len(keywords)))
	if s > 1 {
		return 1
	}
	return s
}

// scoreLocation expects loc already normalized.
func scoreLocation(loc string, preferred []string, remoteOnly bool) float64 {
	if loc == "" {
		return 0.2
	}

	isRemote := strings.Contains(loc, "remote")

	if remoteOnly && !isRemote {
		return 0.0
	}

	if len(preferred) > 0 {
		for _, pref := range preferred {
			if pref == "" {
				continue
			}
			if strings.Contains(loc, Normalize(pref)) {
				return 1.0
			}
		}
		if remoteOnly && isRemote {
			return 0.8
		}
		if isRemote {
			return 0.3
		}
		return 0.1
	}

	if isRemote {
		return 0.6
	}
	return 0.4
}

func scoreSeniority(title, preference string) float64 {
	if preference == "" {
		return neutralScore
	}

	prefLevel, ok := ParseLevel(preference)
	if !ok {
		return neutralScore
	}
	jobLevel, ok := LevelFromTitle(title)
	if !ok {
		return neutralScore
	}

	prefOrd, _ := prefLevel.Ordinal()
	jobOrd, _ := jobLevel.Ordinal()

	diff := jobOrd - prefOrd
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.7
	case 2:
		return 0.4
	default:
		return 0.1
	}
}

// scoreRecency decays linearly with whole days elapsed since publish. Jobs
// published now or in the future cap at full freshness.
func (e *Engine) scoreRecency(publishedAt *time.Time) float64 {
	if publishedAt == nil {
		return neutralScore
	}

	now := e.now().UTC()
	days := int(math.Floor(now.Sub(publishedAt.UTC()).Hours() / 24))

	if days <= 0 {
		return 1.0
	}
	if days >= e.maxAgeDays {
		return 0.0
	}
	s := 1.0 - float64(days)/float64(e.maxAgeDays)
	if s < 0 {
		return 0
	}
	return s
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601-ish timestamp string. Timestamps without
// an offset are taken as UTC. Unparsable input reports ok=false and callers
// treat the timestamp as absent; scoring never surfaces the parse failure.
func ParseTimestamp(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
