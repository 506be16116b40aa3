package profile

import "time"

// Profile holds the single user's job preferences. The store keeps exactly
// one row; an unset profile behaves as the zero value (all signals neutral).
type Profile struct {
	FullName            string
	TargetRoles         []string
	Skills              []string
	PreferredLocations  []string
	BadKeywords         []string
	RemoteOnly          bool
	SeniorityPreference string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsZero reports whether no preference field is set.
func (p Profile) IsZero() bool {
	return p.FullName == "" &&
		len(p.TargetRoles) == 0 &&
		len(p.Skills) == 0 &&
		len(p.PreferredLocations) == 0 &&
		len(p.BadKeywords) == 0 &&
		!p.RemoteOnly &&
		p.SeniorityPreference == ""
}
