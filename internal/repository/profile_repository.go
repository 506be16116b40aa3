package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobhunt/internal/database"
	"jobhunt/internal/domain/profile"

	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores the single user profile row (id = 1).
type ProfileRepository interface {
	Get(ctx context.Context) (profile.Profile, error)
	Save(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Get(ctx context.Context) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(full_name, ''), target_roles, skills, preferred_locations,
		        bad_keywords, remote_only, COALESCE(seniority_preference, ''),
		        created_at, updated_at
		 FROM user_profile
		 WHERE id = 1`,
	)

	var p profile.Profile
	err := row.Scan(
		&p.FullName, &p.TargetRoles, &p.Skills, &p.PreferredLocations,
		&p.BadKeywords, &p.RemoteOnly, &p.SeniorityPreference,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Save(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_profile (id, full_name, target_roles, skills, preferred_locations, bad_keywords, remote_only, seniority_preference)
		 VALUES (1, NULLIF($1,''), $2, $3, $4, $5, $6, NULLIF($7,''))
		 ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			target_roles = EXCLUDED.target_roles,
			skills = EXCLUDED.skills,
			preferred_locations = EXCLUDED.preferred_locations,
			bad_keywords = EXCLUDED.bad_keywords,
			remote_only = EXCLUDED.remote_only,
			seniority_preference = EXCLUDED.seniority_preference,
			updated_at = now()
		 RETURNING created_at, updated_at`,
		p.FullName, textArray(p.TargetRoles), textArray(p.Skills),
		textArray(p.PreferredLocations), textArray(p.BadKeywords),
		p.RemoteOnly, p.SeniorityPreference,
	)

	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// textArray keeps nil slices out of the driver so empty lists round-trip as
// empty arrays, not NULL.
func textArray(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
