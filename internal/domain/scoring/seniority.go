package scoring

import "strings"

type Level string

const (
	LevelIntern    Level = "intern"
	LevelJunior    Level = "junior"
	LevelMid       Level = "mid"
	LevelSenior    Level = "senior"
	LevelLead      Level = "lead"
	LevelPrincipal Level = "principal"
)

// ParseLevel maps free text to a known seniority level.
func ParseLevel(s string) (Level, bool) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelIntern:
		return LevelIntern, true
	case LevelJunior:
		return LevelJunior, true
	case LevelMid:
		return LevelMid, true
	case LevelSenior:
		return LevelSenior, true
	case LevelLead:
		return LevelLead, true
	case LevelPrincipal:
		return LevelPrincipal, true
	default:
		return "", false
	}
}

// Ordinal returns the comparable rank of a level. Lead and principal share
// the top rank. Unknown levels report ok=false; callers fall back to the
// neutral score instead of comparing.
func (l Level) Ordinal() (int, bool) {
	switch l {
	case LevelIntern:
		return 0, true
	case LevelJunior:
		return 1, true
	case LevelMid:
		return 2, true
	case LevelSenior:
		return 3, true
	case LevelLead, LevelPrincipal:
		return 4, true
	default:
		return 0, false
	}
}

// LevelFromTitle extracts a seniority level from a job title by keyword.
// Rules are checked in a fixed priority order and the first hit wins, so a
// title carrying both "junior" and "lead" resolves to junior.
func LevelFromTitle(title string) (Level, bool) {
	t := Normalize(title)

	switch {
	case strings.Contains(t, "intern") || strings.Contains(t, "trainee"):
		return LevelIntern, true
	case strings.Contains(t, "junior") || strings.Contains(t, " jr ") || strings.Contains(t, " jr."):
		return LevelJunior, true
	case strings.Contains(t, "lead") || strings.Contains(t, "staff") || strings.Contains(t, "principal"):
		return LevelLead, true
	case strings.Contains(t, "senior") || strings.Contains(t, " sr ") || strings.Contains(t, " sr."):
		return LevelSenior, true
	case strings.Contains(t, "mid") || strings.Contains(t, "middle"):
		return LevelMid, true
	default:
		return "", false
	}
}
