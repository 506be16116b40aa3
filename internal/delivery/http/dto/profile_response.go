package dto

import (
	"time"

	"jobhunt/internal/domain/profile"
)

type ProfileResponse struct {
	FullName            string   `json:"full_name"`
	TargetRoles         []string `json:"target_roles"`
	Skills              []string `json:"skills"`
	PreferredLocations  []string `json:"preferred_locations"`
	BadKeywords         []string `json:"bad_keywords"`
	RemoteOnly          bool     `json:"remote_only"`
	SeniorityPreference string   `json:"seniority_preference"`
	UpdatedAt           *string  `json:"updated_at"`
}

func FromProfile(p profile.Profile) ProfileResponse {
	var updated *string
	if !p.UpdatedAt.IsZero() {
		s := p.UpdatedAt.UTC().Format(time.RFC3339)
		updated = &s
	}
	return ProfileResponse{
		FullName:            p.FullName,
		TargetRoles:         emptyIfNil(p.TargetRoles),
		Skills:              emptyIfNil(p.Skills),
		PreferredLocations:  emptyIfNil(p.PreferredLocations),
		BadKeywords:         emptyIfNil(p.BadKeywords),
		RemoteOnly:          p.RemoteOnly,
		SeniorityPreference: p.SeniorityPreference,
		UpdatedAt:           updated,
	}
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
