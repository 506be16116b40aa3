package scoring

import "testing"

func TestLevelFromTitle_PriorityOrder(t *testing.T) {
	cases := []struct {
		title string
		want  Level
		ok    bool
	}{
		{"Software Engineering Intern", LevelIntern, true},
		{"Backend Trainee", LevelIntern, true},
		{"Junior Backend Developer", LevelJunior, true},
		{"Backend jr engineer", LevelJunior, true},
		{"Backend jr. engineer", LevelJunior, true},
		{"Tech Lead", LevelLead, true},
		{"Staff Engineer", LevelLead, true},
		{"Principal Engineer", LevelLead, true},
		{"Senior Backend Engineer", LevelSenior, true},
		{"Backend sr engineer", LevelSenior, true},
		{"Mid-level Developer", LevelMid, true},
		{"Middle Backend Developer", LevelMid, true},
		{"Backend Engineer", "", false},

		// First rule hit wins: junior beats lead, intern beats everything,
		// lead beats senior.
		{"Junior Team Lead", LevelJunior, true},
		{"Senior Engineering Intern", LevelIntern, true},
		{"Senior Staff Engineer", LevelLead, true},

		// "Jr." at the start of the title has no leading space, so the
		// " jr." rule does not fire.
		{"Jr. Developer", "", false},
	}

	for _, tc := range cases {
		got, ok := LevelFromTitle(tc.title)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("title %q: expected (%q,%v), got (%q,%v)", tc.title, tc.want, tc.ok, got, ok)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, ok := ParseLevel(" Senior "); !ok || lvl != LevelSenior {
		t.Fatalf("expected senior, got (%q,%v)", lvl, ok)
	}
	if _, ok := ParseLevel("architect"); ok {
		t.Fatalf("expected unrecognized level")
	}
	if _, ok := ParseLevel(""); ok {
		t.Fatalf("expected empty string to be unrecognized")
	}
}

func TestOrdinal(t *testing.T) {
	cases := []struct {
		level Level
		want  int
	}{
		{LevelIntern, 0},
		{LevelJunior, 1},
		{LevelMid, 2},
		{LevelSenior, 3},
		{LevelLead, 4},
		{LevelPrincipal, 4},
	}
	for _, tc := range cases {
		got, ok := tc.level.Ordinal()
		if !ok || got != tc.want {
			t.Fatalf("level %q: expected %d, got (%d,%v)", tc.level, tc.want, got, ok)
		}
	}

	if _, ok := Level("architect").Ordinal(); ok {
		t.Fatalf("expected unknown ordinal")
	}
}
