package repository

import (
	"context"
	"encoding/json"
	"time"

	"career-guide/internal/database"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
)

const profileColumns = `id, user_id, skills, target_roles, experience_level, availability, education, projects,
	languages, address, cv_text, bio, headline, is_public, last_profile_update_at, created_at, updated_at`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)

	var p profile.Profile
	var exp, avail string
	var edu, projects, langs, addr []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Skills, &p.TargetRoles, &exp, &avail, &edu, &projects,
		&langs, &addr, &p.CVText, &p.Bio, &p.Headline, &p.IsPublic, &p.LastProfileUpdateAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.ExperienceLevel = skill.ParseExperienceLevel(exp)
	p.Availability = profile.Availability(avail)

	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{edu, &p.Education},
		{projects, &p.Projects},
		{langs, &p.Languages},
		{addr, &p.Address},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return profile.Profile{}, err
		}
	}
	return p, nil
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.LastProfileUpdateAt.IsZero() {
		p.LastProfileUpdateAt = now
	}

	docs, err := marshalProfileDocs(p)
	if err != nil {
		return profile.Profile{}, err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (`+profileColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		p.ID, p.UserID, p.Skills, p.TargetRoles, string(p.ExperienceLevel), string(p.Availability),
		docs[0], docs[1], docs[2], docs[3],
		p.CVText, p.Bio, p.Headline, p.IsPublic, p.LastProfileUpdateAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return profile.Profile{}, profile.ErrAlreadyExists
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	p.UpdatedAt = time.Now().UTC()

	docs, err := marshalProfileDocs(p)
	if err != nil {
		return profile.Profile{}, err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE profiles SET
			skills = $2, target_roles = $3, experience_level = $4, availability = $5,
			education = $6, projects = $7, languages = $8, address = $9,
			cv_text = $10, bio = $11, headline = $12, is_public = $13,
			last_profile_update_at = $14, updated_at = $15
		 WHERE user_id = $1`,
		p.UserID, p.Skills, p.TargetRoles, string(p.ExperienceLevel), string(p.Availability),
		docs[0], docs[1], docs[2], docs[3],
		p.CVText, p.Bio, p.Headline, p.IsPublic, p.LastProfileUpdateAt, p.UpdatedAt,
	)
	if err != nil {
		return profile.Profile{}, err
	}
	if n == 0 {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func marshalProfileDocs(p profile.Profile) ([4][]byte, error) {
	var out [4][]byte
	for i, v := range []any{p.Education, p.Projects, p.Languages, p.Address} {
		b, err := json.Marshal(v)
		if err != nil {
			return out, err
		}
		out[i] = b
	}
	return out, nil
}
